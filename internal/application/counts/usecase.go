package counts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-count-api/internal/application/dto"
	"github.com/jhoicas/stock-count-api/internal/application/ports"
	"github.com/jhoicas/stock-count-api/internal/domain"
	"github.com/jhoicas/stock-count-api/internal/domain/entity"
	"github.com/jhoicas/stock-count-api/internal/domain/repository"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// UseCase registra conteos físicos (log de solo inserción) y los borra en bloque.
// No hay control de concurrencia entre envíos simultáneos: gana el de created_at más reciente.
type UseCase struct {
	counts   repository.CountRepository
	catalog  repository.CatalogRepository
	events   ports.EventPublisher
	metrics  ports.MetricsRecorder
	validate *validator.Validate
	log      zerolog.Logger
	now      func() time.Time
}

// NewUseCase construye el caso de uso. events y metrics pueden ser nil.
func NewUseCase(
	counts repository.CountRepository,
	catalog repository.CatalogRepository,
	events ports.EventPublisher,
	metrics ports.MetricsRecorder,
	log zerolog.Logger,
) *UseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &UseCase{
		counts:   counts,
		catalog:  catalog,
		events:   events,
		metrics:  metrics,
		validate: validator.New(),
		log:      log,
		now:      time.Now,
	}
}

// Add valida y agrega un conteo para una variante de la tienda.
func (uc *UseCase) Add(ctx context.Context, shop, userID string, in dto.AddCountRequest) (*dto.ActionResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, verrs[0].Field())
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	exists, err := uc.catalog.VariantExists(ctx, shop, in.VariantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	count := &entity.PhysicalCount{
		ID:        uuid.NewString(),
		VariantID: in.VariantID,
		Shop:      shop,
		Counted:   *in.Counted,
		UserID:    userID,
		CreatedAt: uc.now().UTC(),
	}
	if err := uc.counts.Add(ctx, count); err != nil {
		return nil, err
	}

	uc.metrics.CountRecorded(shop)
	uc.publish(ctx, ports.Event{
		Type: ports.EventCountRecorded,
		Shop: shop,
		Payload: map[string]any{
			"countId":   count.ID,
			"variantId": count.VariantID,
			"counted":   count.Counted,
			"userId":    count.UserID,
		},
	})
	uc.log.Info().Str("shop", shop).Str("variant_id", in.VariantID).Int("counted", count.Counted).Msg("conteo registrado")

	return &dto.ActionResponse{OK: true, Message: "Conteo guardado"}, nil
}

// ClearAll elimina todos los conteos de la tienda. Los niveles de inventario no se tocan.
func (uc *UseCase) ClearAll(ctx context.Context, shop string) (*dto.ClearCountsResponse, error) {
	removed, err := uc.counts.ClearByShop(ctx, shop)
	if err != nil {
		return nil, err
	}

	uc.metrics.CountsCleared(shop, removed)
	uc.publish(ctx, ports.Event{
		Type:    ports.EventCountsCleared,
		Shop:    shop,
		Payload: map[string]any{"removed": removed},
	})
	uc.log.Warn().Str("shop", shop).Int64("removed", removed).Msg("conteos eliminados")

	return &dto.ClearCountsResponse{
		ActionResponse: dto.ActionResponse{OK: true, Message: fmt.Sprintf("Se eliminaron %d conteos", removed)},
		Removed:        removed,
	}, nil
}

// History devuelve los conteos más recientes de una variante (limit acotado a [1, 100]).
func (uc *UseCase) History(ctx context.Context, shop, variantID string, limit int) ([]dto.CountHistoryItem, error) {
	if variantID == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	list, err := uc.counts.ListByVariant(ctx, shop, variantID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CountHistoryItem, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CountHistoryItem{ID: c.ID, Counted: c.Counted, UserID: c.UserID, CreatedAt: c.CreatedAt})
	}
	return out, nil
}

func (uc *UseCase) publish(ctx context.Context, ev ports.Event) {
	if uc.events == nil {
		return
	}
	ev.ID = uuid.NewString()
	ev.OccurredAt = uc.now().UTC()
	if err := uc.events.Publish(ctx, ev); err != nil {
		uc.log.Error().Err(err).Str("event", ev.Type).Str("shop", ev.Shop).Msg("publicar evento")
	}
}
