package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tzresolve/config"
	otelMocks "tzresolve/infras/otel/mocks"
	"tzresolve/shared/cache"
	cacheMocks "tzresolve/shared/cache/mocks"
	"tzresolve/shared/constant"
	"tzresolve/transport/http/middleware"
)

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func limitedConfig(maxRequests int) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRequestID(t *testing.T) {
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	var seen string
	handler := mw.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	t.Run("propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constant.RequestHeaderRequestID, "abc-123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("mints an id", func(t *testing.T) {
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, seen, 36)
		assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))
	})
}

func TestTracing(t *testing.T) {
	ot := otelMocks.NewOtel()
	mw := middleware.NewAppMiddleware(ot, &config.Config{}, nil)

	router := chi.NewRouter()
	router.Use(mw.Tracing)
	router.Get("/zones/*", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/zones/UTC", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, ot.Errors(), 1)
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled passes through", func(t *testing.T) {
		mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

		rec := httptest.NewRecorder()
		mw.RateLimit()(http.HandlerFunc(ok)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("first request in window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := cacheMocks.NewMockRedisCache(ctrl)
		mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), limitedConfig(2), redisCache)

		redisCache.EXPECT().Get(gomock.Any(), "limiter:10.0.0.1:unknown", gomock.Any()).Return(cache.Nil)
		redisCache.EXPECT().Save(gomock.Any(), "limiter:10.0.0.1:unknown", 1, 60).Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 192.168.0.1")
		rec := httptest.NewRecorder()

		mw.RateLimit()(http.HandlerFunc(ok)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
		assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("limit exceeded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := cacheMocks.NewMockRedisCache(ctrl)
		mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), limitedConfig(2), redisCache)

		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*int) = 2

				return nil
			})

		rec := httptest.NewRecorder()
		mw.RateLimit()(http.HandlerFunc(ok)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("cache failure fails open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := cacheMocks.NewMockRedisCache(ctrl)
		mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), limitedConfig(2), redisCache)

		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		rec := httptest.NewRecorder()
		mw.RateLimit()(http.HandlerFunc(ok)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet}

	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()

	mw.CORS()(http.HandlerFunc(ok)).ServeHTTP(rec, req)

	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
