package dto

import "github.com/jhoicas/stock-count-api/internal/domain/reconciliation"

// ListingQuery parámetros normalizados de los listados (staff y admin).
type ListingQuery struct {
	Page        int
	PageSize    int
	Title       string
	ProductType string
	Status      reconciliation.Status
	LocationID  string
}

// Offset devuelve el desplazamiento de la página.
func (q ListingQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// StaffItem fila de la vista de staff: sin inventario, solo el último conteo guardado.
type StaffItem struct {
	VariantID    string `json:"variantId"`
	ProductTitle string `json:"productTitle"`
	VariantTitle string `json:"variantTitle"`
	LatestCount  *int   `json:"latestCount"`
}

// StaffSummary resumen de la página actual.
type StaffSummary struct {
	Total     int `json:"total"`
	WithCount int `json:"withCount"`
}

// StaffListResponse salida de GET /app/counts.
type StaffListResponse struct {
	Items         []StaffItem  `json:"items"`
	TotalVariants int          `json:"totalVariants"`
	Page          PageResponse `json:"page"`
	Summary       StaffSummary `json:"summary"`
	Titles        []string     `json:"titles"`
}

// LocationOption opción del filtro de ubicación.
type LocationOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FilterOptions datos de los desplegables de filtros.
type FilterOptions struct {
	Titles       []string         `json:"titles"`
	ProductTypes []string         `json:"productTypes"`
	Locations    []LocationOption `json:"locations"`
}

// AdminListResponse salida de GET /app/admin.
// TotalCandidates refleja solo los filtros de servidor (título/tipo), no el de estado.
type AdminListResponse struct {
	Items           []reconciliation.Row   `json:"items"`
	TotalCandidates int                    `json:"totalCandidates"`
	Page            PageResponse           `json:"page"`
	Summary         reconciliation.Summary `json:"summary"`
	Options         FilterOptions          `json:"options"`
}
