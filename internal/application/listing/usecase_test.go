package listing_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-count-api/internal/application/dto"
	"github.com/jhoicas/stock-count-api/internal/application/listing"
	"github.com/jhoicas/stock-count-api/internal/domain"
	"github.com/jhoicas/stock-count-api/internal/domain/entity"
	"github.com/jhoicas/stock-count-api/internal/domain/reconciliation"
	"github.com/jhoicas/stock-count-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeCatalog struct {
	repository.CatalogRepository // métodos de escritura no usados

	records    []reconciliation.VariantRecord
	lastFilter repository.VariantFilter
	lastPage   repository.VariantPage
	listErr    error

	mu           sync.Mutex
	optionsCalls int
}

func (f *fakeCatalog) CountVariants(_ context.Context, filter repository.VariantFilter) (int, error) {
	f.lastFilter = filter
	return len(f.records), nil
}

func (f *fakeCatalog) ListVariantPage(_ context.Context, filter repository.VariantFilter, p repository.VariantPage) ([]reconciliation.VariantRecord, error) {
	f.lastFilter = filter
	f.lastPage = p
	if f.listErr != nil {
		return nil, f.listErr
	}
	end := p.Offset + p.Limit
	if p.Offset >= len(f.records) {
		return nil, nil
	}
	if end > len(f.records) {
		end = len(f.records)
	}
	out := make([]reconciliation.VariantRecord, end-p.Offset)
	copy(out, f.records[p.Offset:end])
	return out, nil
}

func (f *fakeCatalog) ListTitles(context.Context, string, int) ([]string, error) {
	f.mu.Lock()
	f.optionsCalls++
	f.mu.Unlock()
	return []string{"Camiseta", "Gorra", "Camiseta", ""}, nil
}

func (f *fakeCatalog) ListProductTypes(context.Context, string, int) ([]string, error) {
	return []string{"Ropa", "Accesorios"}, nil
}

func (f *fakeCatalog) ListLocations(context.Context, string, int) ([]entity.Location, error) {
	return []entity.Location{{ID: "loc-1", Name: "Bodega"}, {ID: "loc-2"}}, nil
}

type memCache struct {
	data map[string]*dto.FilterOptions
}

func (m *memCache) Get(_ context.Context, shop string) (*dto.FilterOptions, bool, error) {
	o, ok := m.data[shop]
	return o, ok, nil
}

func (m *memCache) Set(_ context.Context, shop string, o *dto.FilterOptions) error {
	m.data[shop] = o
	return nil
}

func (m *memCache) Invalidate(_ context.Context, shop string) error {
	delete(m.data, shop)
	return nil
}

const shop = "demo.myshopify.com"

var now = time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC)

func record(i, available int, counted *int) reconciliation.VariantRecord {
	rec := reconciliation.VariantRecord{
		VariantID:    fmt.Sprintf("gid://shopify/ProductVariant/%d", i),
		ProductTitle: fmt.Sprintf("Producto %d", i),
		ProductType:  "Ropa",
		Levels: []entity.InventoryLevel{
			{LocationID: "loc-1", Available: available},
			{LocationID: "loc-2", Available: 1},
		},
	}
	if counted != nil {
		rec.Counts = []entity.PhysicalCount{{Counted: *counted, CreatedAt: now}}
	}
	return rec
}

func intPtr(n int) *int { return &n }

func newUseCase(cat *fakeCatalog) *listing.UseCase {
	return listing.NewUseCase(cat, nil, nil, zerolog.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestParseQuery_Normaliza(t *testing.T) {
	cases := []struct {
		name         string
		raw          listing.RawQuery
		wantPage     int
		wantPageSize int
	}{
		{"por defecto", listing.RawQuery{}, 1, 25},
		{"pagina cero", listing.RawQuery{Page: "0"}, 1, 25},
		{"pagina no numerica", listing.RawQuery{Page: "abc"}, 1, 25},
		{"pageSize bajo", listing.RawQuery{PageSize: "1"}, 1, 5},
		{"pageSize alto", listing.RawQuery{PageSize: "1000"}, 1, 100},
		{"valores validos", listing.RawQuery{Page: "3", PageSize: "50"}, 3, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := listing.ParseQuery(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.wantPage, q.Page)
			assert.Equal(t, tc.wantPageSize, q.PageSize)
		})
	}

	_, err := listing.ParseQuery(listing.RawQuery{Status: "perdido"})
	assert.True(t, errors.Is(err, domain.ErrInvalidStatus))
}

func TestParseQuery_PaginaEnormeNoDesbordaOffset(t *testing.T) {
	for _, page := range []string{"922337203685477590", "9223372036854775807", "21474837"} {
		q, err := listing.ParseQuery(listing.RawQuery{Page: page, PageSize: "100"})
		require.NoError(t, err)
		assert.Equal(t, dto.MaxPage, q.Page, page)
		assert.Equal(t, (dto.MaxPage-1)*100, q.Offset(), page)
		assert.Positive(t, q.Offset(), page)
	}
}

func TestAdminList_FiltroDeEstadoPostFetch(t *testing.T) {
	cat := &fakeCatalog{}
	for i := 0; i < 25; i++ {
		switch {
		case i%8 == 0: // 0, 8, 16, 24 → 4 filas; dejamos solo 3 con match
			if i == 24 {
				cat.records = append(cat.records, record(i, 4, nil))
				continue
			}
			cat.records = append(cat.records, record(i, 4, intPtr(5))) // 4 + 1 = 5 → match
		default:
			cat.records = append(cat.records, record(i, 4, intPtr(2)))
		}
	}

	q, err := listing.ParseQuery(listing.RawQuery{Status: "match"})
	require.NoError(t, err)

	out, err := newUseCase(cat).AdminList(context.Background(), shop, q)
	require.NoError(t, err)

	assert.Len(t, out.Items, 3, "solo las filas con match de la página")
	assert.Equal(t, reconciliation.Summary{Match: 3}, out.Summary)
	assert.Equal(t, 25, out.TotalCandidates, "el total no considera el filtro de estado")
	assert.True(t, cat.lastPage.WithLevels)
}

func TestAdminList_FiltroDeUbicacion(t *testing.T) {
	cat := &fakeCatalog{records: []reconciliation.VariantRecord{record(1, 4, intPtr(5))}}

	all, err := newUseCase(cat).AdminList(context.Background(), shop, dto.ListingQuery{Page: 1, PageSize: 25})
	require.NoError(t, err)
	assert.Equal(t, reconciliation.StatusMatch, all.Items[0].Status)

	onlyLoc1, err := newUseCase(cat).AdminList(context.Background(), shop, dto.ListingQuery{Page: 1, PageSize: 25, LocationID: "loc-1"})
	require.NoError(t, err)
	assert.Equal(t, 4, onlyLoc1.Items[0].Inventory)
	assert.Equal(t, reconciliation.StatusMismatch, onlyLoc1.Items[0].Status)
}

func TestAdminList_PasaFiltrosDeServidorYOpciones(t *testing.T) {
	cat := &fakeCatalog{records: []reconciliation.VariantRecord{record(1, 1, nil)}}
	q := dto.ListingQuery{Page: 2, PageSize: 10, Title: "Camiseta", ProductType: "Ropa"}

	out, err := newUseCase(cat).AdminList(context.Background(), shop, q)
	require.NoError(t, err)

	assert.Equal(t, repository.VariantFilter{Shop: shop, Title: "Camiseta", ProductType: "Ropa"}, cat.lastFilter)
	assert.Equal(t, 10, cat.lastPage.Offset)
	assert.Empty(t, out.Items)
	assert.Equal(t, []string{"Camiseta", "Gorra"}, out.Options.Titles, "títulos únicos y sin vacíos")
	assert.Equal(t, "Ubicación desconocida", out.Options.Locations[1].Name)
	assert.True(t, out.Page.HasPrevious)
	assert.False(t, out.Page.HasNext)
}

func TestStaffList_UltimoConteoYResumen(t *testing.T) {
	rec := record(1, 3, nil)
	rec.Counts = []entity.PhysicalCount{
		{Counted: 1, CreatedAt: now},
		{Counted: 8, CreatedAt: now.Add(time.Minute)},
	}
	cat := &fakeCatalog{records: []reconciliation.VariantRecord{rec, record(2, 3, nil)}}

	out, err := newUseCase(cat).StaffList(context.Background(), shop, dto.ListingQuery{Page: 1, PageSize: 25})
	require.NoError(t, err)

	require.Len(t, out.Items, 2)
	require.NotNil(t, out.Items[0].LatestCount)
	assert.Equal(t, 8, *out.Items[0].LatestCount)
	assert.Nil(t, out.Items[1].LatestCount)
	assert.Equal(t, "—", out.Items[0].VariantTitle)
	assert.Equal(t, dto.StaffSummary{Total: 2, WithCount: 1}, out.Summary)
	assert.Equal(t, 2, out.TotalVariants)
	assert.False(t, cat.lastPage.WithLevels, "la vista de staff no pide niveles")
}

func TestOptions_UsaCache(t *testing.T) {
	cat := &fakeCatalog{}
	cache := &memCache{data: map[string]*dto.FilterOptions{}}
	uc := listing.NewUseCase(cat, cache, nil, zerolog.Nop())

	_, err := uc.Options(context.Background(), shop)
	require.NoError(t, err)
	_, err = uc.Options(context.Background(), shop)
	require.NoError(t, err)

	assert.Equal(t, 1, cat.optionsCalls, "la segunda lectura sale de la caché")

	require.NoError(t, cache.Invalidate(context.Background(), shop))
	_, err = uc.Options(context.Background(), shop)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.optionsCalls)
}

func TestAdminList_PropagaErrorDePersistencia(t *testing.T) {
	cat := &fakeCatalog{listErr: errors.New("conexión perdida")}
	_, err := newUseCase(cat).AdminList(context.Background(), shop, dto.ListingQuery{Page: 1, PageSize: 25})
	assert.EqualError(t, err, "conexión perdida")
}
