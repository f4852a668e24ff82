package dto

import "time"

// AddCountRequest body de POST /app/counts/add (form o JSON).
type AddCountRequest struct {
	VariantID string `json:"variantId" form:"variantId" validate:"required,max=255"`
	Counted   *int   `json:"counted" form:"counted" validate:"required,min=0,max=100000000"`
}

// ClearCountsResponse resultado de borrar todos los conteos de la tienda.
type ClearCountsResponse struct {
	ActionResponse
	Removed int64 `json:"removed"`
}

// CountHistoryItem conteo histórico de una variante.
type CountHistoryItem struct {
	ID        string    `json:"id"`
	Counted   int       `json:"counted"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
