package listing

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stock-count-api/internal/application/dto"
	"github.com/jhoicas/stock-count-api/internal/application/ports"
	"github.com/jhoicas/stock-count-api/internal/domain/reconciliation"
	"github.com/jhoicas/stock-count-api/internal/domain/repository"
)

// Límites de los desplegables de filtros.
const (
	MaxStaffTitles   = 200
	MaxTitleOptions  = 300
	MaxTypeOptions   = 300
	MaxLocationOpts  = 200
	unknownLocation  = "Ubicación desconocida"
	emptyVariantName = "—"
)

// UseCase arma las vistas de staff y admin: consulta una página del catálogo,
// concilia en memoria y aplica el filtro de estado sobre la página.
type UseCase struct {
	catalog repository.CatalogRepository
	cache   ports.OptionsCache
	metrics ports.MetricsRecorder
	log     zerolog.Logger
}

// NewUseCase construye el caso de uso. cache puede ser nil (sin caché).
func NewUseCase(catalog repository.CatalogRepository, cache ports.OptionsCache, metrics ports.MetricsRecorder, log zerolog.Logger) *UseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &UseCase{catalog: catalog, cache: cache, metrics: metrics, log: log}
}

// StaffList devuelve la página de variantes con su último conteo guardado (sin inventario).
func (uc *UseCase) StaffList(ctx context.Context, shop string, q dto.ListingQuery) (*dto.StaffListResponse, error) {
	filter := repository.VariantFilter{Shop: shop, Title: q.Title}

	total, err := uc.catalog.CountVariants(ctx, filter)
	if err != nil {
		return nil, err
	}
	records, err := uc.catalog.ListVariantPage(ctx, filter, repository.VariantPage{
		Limit:  q.PageSize,
		Offset: q.Offset(),
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.StaffItem, 0, len(records))
	summary := dto.StaffSummary{}
	for _, rec := range records {
		item := dto.StaffItem{
			VariantID:    rec.VariantID,
			ProductTitle: rec.ProductTitle,
			VariantTitle: displayVariantTitle(rec.VariantTitle),
		}
		if latest := reconciliation.LatestCount(rec.Counts); latest != nil {
			counted := latest.Counted
			item.LatestCount = &counted
			summary.WithCount++
		}
		items = append(items, item)
	}
	summary.Total = len(items)

	opts, err := uc.Options(ctx, shop)
	if err != nil {
		return nil, err
	}
	titles := opts.Titles
	if len(titles) > MaxStaffTitles {
		titles = titles[:MaxStaffTitles]
	}

	return &dto.StaffListResponse{
		Items:         items,
		TotalVariants: total,
		Page:          dto.NewPageResponse(q.Page, q.PageSize, total),
		Summary:       summary,
		Titles:        titles,
	}, nil
}

// AdminList concilia la página contra el inventario (opcionalmente de una ubicación).
// El total de candidatos no considera el filtro de estado, que se aplica después de traer la página.
func (uc *UseCase) AdminList(ctx context.Context, shop string, q dto.ListingQuery) (*dto.AdminListResponse, error) {
	rows, total, err := uc.reconciledPage(ctx, shop, q)
	if err != nil {
		return nil, err
	}
	summary := reconciliation.Summarize(rows)
	uc.metrics.RowsReconciled(summary.Match, summary.Mismatch, summary.NoCount)

	opts, err := uc.Options(ctx, shop)
	if err != nil {
		return nil, err
	}

	return &dto.AdminListResponse{
		Items:           rows,
		TotalCandidates: total,
		Page:            dto.NewPageResponse(q.Page, q.PageSize, total),
		Summary:         summary,
		Options:         *opts,
	}, nil
}

// ExportRows devuelve las filas que muestra la vista admin para la misma query (sin opciones de filtros).
func (uc *UseCase) ExportRows(ctx context.Context, shop string, q dto.ListingQuery) ([]reconciliation.Row, error) {
	rows, _, err := uc.reconciledPage(ctx, shop, q)
	return rows, err
}

func (uc *UseCase) reconciledPage(ctx context.Context, shop string, q dto.ListingQuery) ([]reconciliation.Row, int, error) {
	filter := repository.VariantFilter{Shop: shop, Title: q.Title, ProductType: q.ProductType}

	total, err := uc.catalog.CountVariants(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	records, err := uc.catalog.ListVariantPage(ctx, filter, repository.VariantPage{
		Limit:      q.PageSize,
		Offset:     q.Offset(),
		WithLevels: true,
	})
	if err != nil {
		return nil, 0, err
	}
	for i := range records {
		records[i].VariantTitle = displayVariantTitle(records[i].VariantTitle)
	}

	rows := reconciliation.Reconcile(records, q.LocationID)
	return reconciliation.FilterByStatus(rows, q.Status), total, nil
}

// Options carga títulos, tipos de producto y ubicaciones de la tienda.
// Las tres consultas corren en paralelo; el resultado se cachea por tienda si hay caché.
func (uc *UseCase) Options(ctx context.Context, shop string) (*dto.FilterOptions, error) {
	if uc.cache != nil {
		cached, ok, err := uc.cache.Get(ctx, shop)
		if err != nil {
			uc.log.Warn().Err(err).Str("shop", shop).Msg("lectura de caché de opciones")
		} else if ok {
			return cached, nil
		}
	}

	var (
		titles []string
		types  []string
		locs   []dto.LocationOption
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		titles, err = uc.catalog.ListTitles(gctx, shop, MaxTitleOptions)
		return err
	})
	g.Go(func() error {
		var err error
		types, err = uc.catalog.ListProductTypes(gctx, shop, MaxTypeOptions)
		return err
	})
	g.Go(func() error {
		list, err := uc.catalog.ListLocations(gctx, shop, MaxLocationOpts)
		if err != nil {
			return err
		}
		locs = make([]dto.LocationOption, 0, len(list))
		for _, l := range list {
			name := l.Name
			if name == "" {
				name = unknownLocation
			}
			locs = append(locs, dto.LocationOption{ID: l.ID, Name: name})
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	opts := &dto.FilterOptions{
		Titles:       dedupe(titles),
		ProductTypes: dedupe(types),
		Locations:    locs,
	}
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, shop, opts); err != nil {
			uc.log.Warn().Err(err).Str("shop", shop).Msg("escritura de caché de opciones")
		}
	}
	return opts, nil
}

func displayVariantTitle(title string) string {
	if title == "" {
		return emptyVariantName
	}
	return title
}

// dedupe conserva el orden de llegada y descarta vacíos.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
