package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tzresolve/shared"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{name: "prefix only", prefix: "zones", expected: "zones"},
		{name: "single part", prefix: "limiter", parts: []string{"10.0.0.1"}, expected: "limiter:10.0.0.1"},
		{name: "many parts", prefix: "limiter", parts: []string{"10.0.0.1", "curl/8.0"}, expected: "limiter:10.0.0.1:curl/8.0"},
		{name: "empty part kept", prefix: "limiter", parts: []string{"", "ua"}, expected: "limiter::ua"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.prefix, tt.parts...))
		})
	}
}
