package mocks

import (
	"context"
	"sync"

	"tzresolve/infras/otel"
)

// Otel hands out recording scopes and keeps every one it created.
type Otel struct {
	mu     sync.Mutex
	scopes []*Scope
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	defer o.mu.Unlock()

	scope := &Scope{Name: spanName}
	o.scopes = append(o.scopes, scope)

	return ctx, scope
}

// Shutdown implements otel.Otel.
func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Errors returns every error traced by any scope.
func (o *Otel) Errors() []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	var errs []error
	for _, scope := range o.scopes {
		errs = append(errs, scope.Errors...)
	}

	return errs
}

func NewOtel() *Otel {
	return &Otel{}
}
