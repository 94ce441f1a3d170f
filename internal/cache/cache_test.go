package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabledCacheIsInert(t *testing.T) {
	ctx := context.Background()
	c := &Cache{}

	assert.False(t, c.Enabled())

	key := c.Key(ctx, "clients", "/clients?page=1")
	assert.Equal(t, key, c.Key(ctx, "clients", "/clients?page=1"))
	assert.NotEqual(t, key, c.Key(ctx, "clients", "/clients?page=2"))
	assert.Contains(t, key, "cache:clients:v0:")

	c.Set(ctx, key, []byte(`{}`))
	_, ok := c.Get(ctx, key)
	assert.False(t, ok)

	c.Bump(ctx, "clients")
	_, ok = c.Get(ctx, key)
	assert.False(t, ok)
}

func TestNilCacheIsEnabledSafe(t *testing.T) {
	var c *Cache
	assert.False(t, c.Enabled())
}
