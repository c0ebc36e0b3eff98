package otel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"tzresolve/config"
	"tzresolve/infras/otel"
)

func TestScope(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "resolve")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"timezone.name":   "Asia/Jakarta",
		"timezone.dst":    false,
		"timezone.offset": 7 * time.Hour,
		"zones":           []string{"UTC"},
	})
	scope.AddEvent("resolved")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	attrs := spans[0].Attributes()
	assert.Contains(t, attrs, attribute.String("timezone.name", "Asia/Jakarta"))
	assert.Contains(t, attrs, attribute.Bool("timezone.dst", false))
	assert.Contains(t, attrs, attribute.Int64("timezone.offset", 25200))
	assert.Contains(t, attrs, attribute.StringSlice("zones", []string{"UTC"}))
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
}

func TestNewWithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "tzresolve"

	tracer := otel.New(cfg)

	ctx, scope := tracer.NewScope(context.Background(), "test", "span")
	assert.NotNil(t, ctx)
	scope.End()

	assert.NoError(t, tracer.Shutdown(context.Background()))
}
