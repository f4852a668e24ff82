package dto

import "math"

// Límites de paginación de los listados.
const (
	DefaultPageSize = 25
	MinPageSize     = 5
	MaxPageSize     = 100
	// MaxPage mantiene (Page-1)*PageSize dentro de int32.
	MaxPage         = math.MaxInt32 / MaxPageSize
)

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	Total       int  `json:"total"`
	HasPrevious bool `json:"hasPrevious"`
	HasNext     bool `json:"hasNext"`
}

// NewPageResponse calcula hasPrevious/hasNext a partir del total de la consulta en servidor.
func NewPageResponse(page, pageSize, total int) PageResponse {
	return PageResponse{
		Page:        page,
		PageSize:    pageSize,
		Total:       total,
		HasPrevious: page > 1,
		HasNext:     total > page*pageSize,
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ActionResponse respuesta de las acciones en segundo plano; ok dispara el toast y el re-fetch en el cliente.
type ActionResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
