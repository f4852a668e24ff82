package entity

import "time"

// Session sesión de la app para una tienda.
// La sesión offline guarda el access token usado por la sincronización de catálogo.
type Session struct {
	ID          string
	Shop        string
	AccessToken string
	Scope       string
	IsOnline    bool
	UserID      string
	ExpiresAt   *time.Time // nil = sin vencimiento (offline)
	CreatedAt   time.Time
}

// OfflineSessionID identificador estable de la sesión offline de una tienda.
func OfflineSessionID(shop string) string {
	return "offline_" + shop
}
