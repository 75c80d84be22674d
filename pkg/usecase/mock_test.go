package usecase_test

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/m-mizutani/osintkit/pkg/domain/model"
	"github.com/m-mizutani/osintkit/pkg/domain/types"
)

// mockProvider is a mock implementation of interfaces.Provider
type mockProvider[S model.Subject, T any] struct {
	name      string
	fetchFunc func(ctx context.Context, subject S) model.Result[T]
	calls     atomic.Int32
}

func newMock[S model.Subject, T any](name string, fn func(ctx context.Context, subject S) model.Result[T]) *mockProvider[S, T] {
	return &mockProvider[S, T]{name: name, fetchFunc: fn}
}

func (m *mockProvider[S, T]) Name() string { return m.name }

func (m *mockProvider[S, T]) Fetch(ctx context.Context, subject S) model.Result[T] {
	m.calls.Add(1)
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, subject)
	}
	return model.Failure[T](model.NewProviderError(types.ErrorKindUnreachable, m.name, errors.New("mock not configured")))
}

func succeed[S model.Subject, T any](payload T) func(context.Context, S) model.Result[T] {
	return func(context.Context, S) model.Result[T] {
		return model.Success(payload)
	}
}

func fail[S model.Subject, T any](kind types.ErrorKind, provider string) func(context.Context, S) model.Result[T] {
	return func(context.Context, S) model.Result[T] {
		return model.Failure[T](model.NewProviderError(kind, provider, nil))
	}
}
