package numlookup

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/osintkit/pkg/domain/model"
	"github.com/m-mizutani/osintkit/pkg/domain/types"
	"github.com/m-mizutani/osintkit/pkg/infra/transport"
	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the public NumLookup API root
const DefaultBaseURL = "https://api.numlookupapi.com"

// maxBodySize caps how much of a response body is read
const maxBodySize = 1 << 20

// Client is the remote phone validation provider backed by NumLookup
type Client struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// Option is a functional option for Client
type Option func(*Client)

// WithBaseURL overrides the API root
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

// WithTimeout bounds the validation call
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a NumLookup client. An empty apiKey is accepted; every
// call then fails with ErrorKindNotConfigured without touching the network.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		timeout:    transport.DefaultTimeout,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Name() string { return "numlookup" }

// Fetch validates the number with one GET request
func (c *Client) Fetch(ctx context.Context, subject model.PhoneSubject) model.Result[*model.PhoneValidation] {
	return transport.Call(ctx, c.Name(), c.timeout, func(ctx context.Context) (*model.PhoneValidation, error) {
		if c.apiKey == "" {
			return nil, model.NewProviderError(types.ErrorKindNotConfigured, c.Name(), nil)
		}

		query := url.Values{}
		if !subject.International && subject.CountryHint != "" {
			query.Set("country_code", subject.CountryHint)
		}

		body, err := c.get(ctx, "/v1/validate/"+url.PathEscape(subject.String()), query, map[string]string{
			"Accept": "application/json",
		})
		if err != nil {
			return nil, err
		}

		return parseValidation(c.Name(), body)
	})
}

// get performs a GET request and returns the body of a 2xx response. The API
// key is added to query.
func (c *Client) get(ctx context.Context, path string, query url.Values, headers map[string]string) ([]byte, error) {
	query.Set("apikey", c.apiKey)
	reqURL := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create NumLookup request")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The URL carries the API key; keep it out of the error chain
		return nil, goerr.Wrap(unwrapURLError(err), "NumLookup request failed", goerr.V("path", path))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, model.NewBadStatusError(c.Name(), resp.StatusCode, nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read NumLookup response body")
	}

	return body, nil
}

func unwrapURLError(err error) error {
	if urlErr, ok := err.(*url.Error); ok {
		return urlErr.Err
	}
	return err
}

// parseValidation extracts each field independently; a missing or null key
// becomes Absent rather than failing the whole payload.
func parseValidation(provider string, body []byte) (*model.PhoneValidation, error) {
	if !gjson.ValidBytes(body) {
		return nil, model.NewProviderError(types.ErrorKindMalformedPayload, provider,
			goerr.New("response body is not JSON"))
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, model.NewProviderError(types.ErrorKindMalformedPayload, provider,
			goerr.New("response body is not a JSON object"))
	}

	return &model.PhoneValidation{
		Valid:       boolField(doc, "valid"),
		CallerName:  stringField(doc, "name"),
		LineType:    stringField(doc, "line_type"),
		Location:    stringField(doc, "location"),
		Carrier:     stringField(doc, "carrier"),
		CountryCode: stringField(doc, "country_code"),
	}, nil
}

func stringField(doc gjson.Result, path string) model.Field[string] {
	r := doc.Get(path)
	if !r.Exists() || r.Type == gjson.Null {
		return model.Absent[string]()
	}
	return model.Present(r.String())
}

func boolField(doc gjson.Result, path string) model.Field[bool] {
	r := doc.Get(path)
	if !r.Exists() || (r.Type != gjson.True && r.Type != gjson.False) {
		return model.Absent[bool]()
	}
	return model.Present(r.Bool())
}
