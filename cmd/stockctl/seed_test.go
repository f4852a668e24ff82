package main

import (
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeCatalog_Deterministic(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	opts := seedOptions{Shop: "demo.myshopify.com", Products: 8, Locations: 3, Seed: 7}

	a := fakeCatalog(gofakeit.New(opts.Seed), opts, now)
	b := fakeCatalog(gofakeit.New(opts.Seed), opts, now)

	require.Len(t, a, 8)
	for i := range a {
		assert.Equal(t, a[i].Title, b[i].Title)
		assert.Equal(t, len(a[i].Variants), len(b[i].Variants))
	}
}

func TestFakeCatalog_Shape(t *testing.T) {
	now := time.Now().UTC()
	opts := seedOptions{Shop: "demo.myshopify.com", Products: 20, Locations: 1, Seed: 1}

	products := fakeCatalog(gofakeit.New(opts.Seed), opts, now)
	seen := map[string]bool{}
	for _, p := range products {
		assert.True(t, strings.HasPrefix(p.ID, "gid://shopify/Product/"))
		assert.Equal(t, opts.Shop, p.Shop)
		require.NotEmpty(t, p.Variants)
		for _, v := range p.Variants {
			assert.False(t, seen[v.ID], "variante duplicada %s", v.ID)
			seen[v.ID] = true
			assert.Equal(t, p.ID, v.ProductID)
			// con una sola ubicación todas las variantes tienen nivel
			require.Len(t, v.Levels, 1)
			assert.GreaterOrEqual(t, v.Levels[0].Available, 0)
		}
	}
}

func TestFakeCounts_Rate(t *testing.T) {
	now := time.Now().UTC()
	opts := seedOptions{Shop: "demo.myshopify.com", Products: 10, Locations: 2, Seed: 3}
	f := gofakeit.New(opts.Seed)
	products := fakeCatalog(f, opts, now)

	assert.Empty(t, fakeCounts(f, products, 0, now))

	variants := 0
	for _, p := range products {
		variants += len(p.Variants)
	}
	all := fakeCounts(f, products, 1, now)
	assert.Len(t, all, variants)
	for _, c := range all {
		assert.GreaterOrEqual(t, c.Counted, 0)
		assert.Equal(t, opts.Shop, c.Shop)
	}
}
