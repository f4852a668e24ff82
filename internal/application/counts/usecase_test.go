package counts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-count-api/internal/application/dto"
	"github.com/jhoicas/stock-count-api/internal/application/ports"
	"github.com/jhoicas/stock-count-api/internal/domain"
	"github.com/jhoicas/stock-count-api/internal/domain/entity"
	"github.com/jhoicas/stock-count-api/internal/domain/repository"
)

type fakeCounts struct {
	added   []*entity.PhysicalCount
	cleared string
	history []entity.PhysicalCount
	limit   int
}

func (f *fakeCounts) Add(_ context.Context, c *entity.PhysicalCount) error {
	f.added = append(f.added, c)
	return nil
}

func (f *fakeCounts) ClearByShop(_ context.Context, shop string) (int64, error) {
	f.cleared = shop
	return int64(len(f.added)), nil
}

func (f *fakeCounts) ListByVariant(_ context.Context, _, _ string, limit int) ([]entity.PhysicalCount, error) {
	f.limit = limit
	return f.history, nil
}

type fakeCatalog struct {
	repository.CatalogRepository
	known map[string]bool
}

func (f *fakeCatalog) VariantExists(_ context.Context, _, variantID string) (bool, error) {
	return f.known[variantID], nil
}

type recordingPublisher struct {
	events []ports.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev ports.Event) error {
	p.events = append(p.events, ev)
	return p.err
}

const (
	shop    = "demo.myshopify.com"
	variant = "gid://shopify/ProductVariant/1"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(pub ports.EventPublisher) (*UseCase, *fakeCounts) {
	repo := &fakeCounts{}
	uc := NewUseCase(repo, &fakeCatalog{known: map[string]bool{variant: true}}, pub, nil, zerolog.Nop())
	uc.now = func() time.Time { return fixedNow }
	return uc, repo
}

func intPtr(n int) *int { return &n }

func TestAdd_RegistraConteoYPublicaEvento(t *testing.T) {
	pub := &recordingPublisher{}
	uc, repo := newTestUseCase(pub)

	out, err := uc.Add(context.Background(), shop, "77", dto.AddCountRequest{VariantID: variant, Counted: intPtr(12)})
	require.NoError(t, err)
	assert.True(t, out.OK)

	require.Len(t, repo.added, 1)
	c := repo.added[0]
	assert.Equal(t, 12, c.Counted)
	assert.Equal(t, "77", c.UserID)
	assert.Equal(t, shop, c.Shop)
	assert.Equal(t, fixedNow, c.CreatedAt)
	assert.NotEmpty(t, c.ID)

	require.Len(t, pub.events, 1)
	assert.Equal(t, ports.EventCountRecorded, pub.events[0].Type)
	assert.Equal(t, variant, pub.events[0].Payload["variantId"])
}

func TestAdd_ConteoCeroEsValido(t *testing.T) {
	uc, repo := newTestUseCase(nil)
	_, err := uc.Add(context.Background(), shop, "1", dto.AddCountRequest{VariantID: variant, Counted: intPtr(0)})
	require.NoError(t, err)
	assert.Len(t, repo.added, 1)
}

func TestAdd_Validaciones(t *testing.T) {
	cases := []struct {
		name string
		in   dto.AddCountRequest
	}{
		{"sin variante", dto.AddCountRequest{Counted: intPtr(1)}},
		{"sin conteo", dto.AddCountRequest{VariantID: variant}},
		{"conteo negativo", dto.AddCountRequest{VariantID: variant, Counted: intPtr(-1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo := newTestUseCase(nil)
			_, err := uc.Add(context.Background(), shop, "1", tc.in)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput), "error: %v", err)
			assert.Empty(t, repo.added)
		})
	}
}

func TestAdd_VarianteDeOtraTienda(t *testing.T) {
	uc, repo := newTestUseCase(nil)
	_, err := uc.Add(context.Background(), shop, "1", dto.AddCountRequest{VariantID: "gid://shopify/ProductVariant/999", Counted: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.added)
}

func TestAdd_FalloAlPublicarNoRevierte(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker caído")}
	uc, repo := newTestUseCase(pub)

	out, err := uc.Add(context.Background(), shop, "1", dto.AddCountRequest{VariantID: variant, Counted: intPtr(3)})
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Len(t, repo.added, 1)
}

func TestClearAll(t *testing.T) {
	pub := &recordingPublisher{}
	uc, repo := newTestUseCase(pub)
	repo.added = []*entity.PhysicalCount{{}, {}}

	out, err := uc.ClearAll(context.Background(), shop)
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, int64(2), out.Removed)
	assert.Equal(t, shop, repo.cleared)
	require.Len(t, pub.events, 1)
	assert.Equal(t, ports.EventCountsCleared, pub.events[0].Type)
}

func TestHistory_AcotaLimite(t *testing.T) {
	uc, repo := newTestUseCase(nil)
	repo.history = []entity.PhysicalCount{{ID: "c1", Counted: 4, CreatedAt: fixedNow}}

	out, err := uc.History(context.Background(), shop, variant, 500)
	require.NoError(t, err)
	assert.Equal(t, 100, repo.limit)
	require.Len(t, out, 1)
	assert.Equal(t, 4, out[0].Counted)

	_, err = uc.History(context.Background(), shop, variant, 0)
	require.NoError(t, err)
	assert.Equal(t, 20, repo.limit)

	_, err = uc.History(context.Background(), shop, "", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
