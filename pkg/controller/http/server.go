package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/osintkit/pkg/domain/interfaces"
)

// config holds internal HTTP server configuration
type config struct {
	addr string
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	repoUC interfaces.RepositoryReportUseCase,
	phoneUC interfaces.PhoneReportUseCase,
	opts ...Option,
) (*Server, error) {
	cfg := &config{
		addr: "localhost:8080",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	pages, err := newPageRenderer()
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/health", handleHealth)

	reports := &reportHandler{
		repoUC:  repoUC,
		phoneUC: phoneUC,
		pages:   pages,
	}

	// Browser form
	router.Get("/", reports.repositoryPage)
	router.Post("/", reports.repositoryPage)
	router.Get("/phone", reports.phonePage)
	router.Post("/phone", reports.phonePage)

	// JSON API
	router.Route("/api", func(r chi.Router) {
		r.Get("/repos/{owner}/{name}", reports.repositoryAPI)
		r.Get("/phones/{number}", reports.phoneAPI)
	})

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
