package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-count-api/internal/domain/entity"
	"github.com/jhoicas/stock-count-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo sesiones de la app por tienda.
type SessionRepo struct {
	q Querier
}

// NewSessionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// Store inserta o reemplaza la sesión por ID.
func (r *SessionRepo) Store(ctx context.Context, s *entity.Session) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sessions (id, shop, access_token, scope, is_online, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, COALESCE($8, now()))
		ON CONFLICT (id) DO UPDATE
		SET access_token = EXCLUDED.access_token, scope = EXCLUDED.scope,
		    is_online = EXCLUDED.is_online, user_id = EXCLUDED.user_id, expires_at = EXCLUDED.expires_at`,
		s.ID, s.Shop, s.AccessToken, s.Scope, s.IsOnline, s.UserID, s.ExpiresAt, nullTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// FindOffline devuelve la sesión offline de la tienda, o nil si no existe.
func (r *SessionRepo) FindOffline(ctx context.Context, shop string) (*entity.Session, error) {
	var (
		s      entity.Session
		userID *string
	)
	err := r.q.QueryRow(ctx, `
		SELECT id, shop, access_token, COALESCE(scope, ''), is_online, user_id, expires_at, created_at
		FROM sessions WHERE id = $1`, entity.OfflineSessionID(shop),
	).Scan(&s.ID, &s.Shop, &s.AccessToken, &s.Scope, &s.IsOnline, &userID, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find offline session: %w", err)
	}
	if userID != nil {
		s.UserID = *userID
	}
	return &s, nil
}

// DeleteByShop elimina todas las sesiones de la tienda (desinstalación).
func (r *SessionRepo) DeleteByShop(ctx context.Context, shop string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sessions WHERE shop = $1`, shop); err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}
	return nil
}
