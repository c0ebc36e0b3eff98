package cache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"tzresolve/infras/otel/mocks"
	"tzresolve/shared/cache"
)

func TestNewRedisCache_WithoutClient(t *testing.T) {
	c := cache.NewRedisCache(nil, mocks.NewOtel())
	ctx := context.Background()

	var zones []string
	err := c.Get(ctx, "zones:catalog", &zones)
	assert.True(t, errors.Is(err, cache.Nil))
	assert.Empty(t, zones)

	assert.NoError(t, c.Save(ctx, "zones:catalog", []string{"UTC"}, 60))
	assert.NoError(t, c.Delete(ctx, "zones:catalog"))
}
