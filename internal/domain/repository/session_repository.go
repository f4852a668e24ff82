package repository

import (
	"context"

	"github.com/jhoicas/stock-count-api/internal/domain/entity"
)

// SessionRepository almacena las sesiones de la app por tienda.
type SessionRepository interface {
	Store(ctx context.Context, session *entity.Session) error
	// FindOffline devuelve nil, nil si la tienda no tiene sesión offline.
	FindOffline(ctx context.Context, shop string) (*entity.Session, error)
	DeleteByShop(ctx context.Context, shop string) error
}
