package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-count-api/internal/application/dto"
)

func TestMemoryOptionsCache_ExpiraEInvalida(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryOptionsCache(time.Minute)
	c.now = func() time.Time { return now }

	_, ok, err := c.Get(ctx, "a.myshopify.com")
	require.NoError(t, err)
	assert.False(t, ok)

	opts := &dto.FilterOptions{Titles: []string{"Gorra"}}
	require.NoError(t, c.Set(ctx, "a.myshopify.com", opts))

	got, ok, _ := c.Get(ctx, "a.myshopify.com")
	assert.True(t, ok)
	assert.Equal(t, opts, got)

	_, ok, _ = c.Get(ctx, "b.myshopify.com")
	assert.False(t, ok, "la caché es por tienda")

	now = now.Add(time.Minute)
	_, ok, _ = c.Get(ctx, "a.myshopify.com")
	assert.False(t, ok, "entrada vencida")

	require.NoError(t, c.Set(ctx, "a.myshopify.com", opts))
	require.NoError(t, c.Invalidate(ctx, "a.myshopify.com"))
	_, ok, _ = c.Get(ctx, "a.myshopify.com")
	assert.False(t, ok)
}

func TestOptionsKey(t *testing.T) {
	assert.Equal(t, "stockcount:options:demo.myshopify.com", optionsKey("demo.myshopify.com"))
}
