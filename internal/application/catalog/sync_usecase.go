package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-count-api/internal/application/dto"
	"github.com/jhoicas/stock-count-api/internal/application/ports"
	"github.com/jhoicas/stock-count-api/internal/domain"
	"github.com/jhoicas/stock-count-api/internal/domain/entity"
	"github.com/jhoicas/stock-count-api/internal/domain/repository"
)

// maxPages corta la paginación si la plataforma devolviera cursores en bucle.
const maxPages = 2000

// SyncUseCase trae el catálogo completo de la plataforma y lo persiste en una transacción.
// Los conteos físicos no se tocan; los niveles de inventario se reemplazan por el snapshot nuevo.
type SyncUseCase struct {
	tx       TxRunner
	sessions repository.SessionRepository
	source   ports.CatalogSource
	cache    ports.OptionsCache
	events   ports.EventPublisher
	metrics  ports.MetricsRecorder
	log      zerolog.Logger
	now      func() time.Time
}

// NewSyncUseCase construye el caso de uso. cache, events y metrics pueden ser nil.
func NewSyncUseCase(
	tx TxRunner,
	sessions repository.SessionRepository,
	source ports.CatalogSource,
	cache ports.OptionsCache,
	events ports.EventPublisher,
	metrics ports.MetricsRecorder,
	log zerolog.Logger,
) *SyncUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &SyncUseCase{
		tx:       tx,
		sessions: sessions,
		source:   source,
		cache:    cache,
		events:   events,
		metrics:  metrics,
		log:      log,
		now:      time.Now,
	}
}

// Sync sincroniza el catálogo de la tienda usando su sesión offline.
func (uc *SyncUseCase) Sync(ctx context.Context, shop string) (out *dto.SyncResponse, err error) {
	start := uc.now()
	defer func() {
		uc.metrics.SyncFinished(shop, uc.now().Sub(start), err)
	}()

	session, err := uc.sessions.FindOffline(ctx, shop)
	if err != nil {
		return nil, err
	}
	if session == nil || session.AccessToken == "" {
		return nil, domain.ErrNoSession
	}

	products, err := uc.fetchAll(ctx, shop, session.AccessToken)
	if err != nil {
		return nil, err
	}

	variants := 0
	ids := make([]string, 0, len(products))
	for i := range products {
		products[i].Shop = shop
		for j := range products[i].Variants {
			products[i].Variants[j].Shop = shop
			products[i].Variants[j].ProductID = products[i].ID
		}
		variants += len(products[i].Variants)
		ids = append(ids, products[i].ID)
	}

	var removed int64
	err = uc.tx.RunCatalog(ctx, func(catalog repository.CatalogRepository) error {
		for i := range products {
			if err := catalog.UpsertProduct(ctx, &products[i]); err != nil {
				return err
			}
		}
		var err error
		removed, err = catalog.DeleteProductsNotIn(ctx, shop, ids)
		return err
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, shop); err != nil {
			uc.log.Warn().Err(err).Str("shop", shop).Msg("invalidar caché de opciones")
		}
	}
	uc.publish(ctx, shop, len(products), variants, removed)
	uc.log.Info().
		Str("shop", shop).
		Int("products", len(products)).
		Int("variants", variants).
		Int64("removed", removed).
		Dur("elapsed", uc.now().Sub(start)).
		Msg("catálogo sincronizado")

	return &dto.SyncResponse{
		ActionResponse: dto.ActionResponse{OK: true, Message: fmt.Sprintf("Se sincronizaron %d productos", len(products))},
		Products:       len(products),
		Variants:       variants,
		Removed:        removed,
	}, nil
}

// fetchAll recorre todas las páginas antes de abrir la transacción para no retenerla durante llamadas HTTP.
func (uc *SyncUseCase) fetchAll(ctx context.Context, shop, accessToken string) ([]entity.Product, error) {
	var (
		all    []entity.Product
		cursor string
	)
	for page := 0; page < maxPages; page++ {
		res, err := uc.source.FetchProducts(ctx, shop, accessToken, cursor)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrPlatform, err)
		}
		all = append(all, res.Products...)
		if res.NextCursor == "" {
			return all, nil
		}
		cursor = res.NextCursor
	}
	return nil, fmt.Errorf("%w: se superó el máximo de %d páginas", domain.ErrPlatform, maxPages)
}

func (uc *SyncUseCase) publish(ctx context.Context, shop string, products, variants int, removed int64) {
	if uc.events == nil {
		return
	}
	err := uc.events.Publish(ctx, ports.Event{
		ID:         uuid.NewString(),
		Type:       ports.EventCatalogSynced,
		Shop:       shop,
		OccurredAt: uc.now().UTC(),
		Payload:    map[string]any{"products": products, "variants": variants, "removed": removed},
	})
	if err != nil {
		uc.log.Error().Err(err).Str("shop", shop).Msg("publicar evento de sincronización")
	}
}
