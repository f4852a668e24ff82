package listing

import (
	"strconv"
	"strings"

	"github.com/jhoicas/stock-count-api/internal/application/dto"
	"github.com/jhoicas/stock-count-api/internal/domain/reconciliation"
)

// RawQuery valores tal como llegan en la query string.
type RawQuery struct {
	Page        string
	PageSize    string
	Title       string
	ProductType string
	Status      string
	LocationID  string
}

// ParseQuery normaliza la paginación y valida el filtro de estado.
// page < 1 o no numérico = 1 y se acota a dto.MaxPage; pageSize se acota a [5, 100] y por defecto es 25.
func ParseQuery(raw RawQuery) (dto.ListingQuery, error) {
	status, err := reconciliation.ParseStatus(strings.TrimSpace(raw.Status))
	if err != nil {
		return dto.ListingQuery{}, err
	}

	page := parseIntOr(raw.Page, 1)
	if page < 1 {
		page = 1
	}
	if page > dto.MaxPage {
		page = dto.MaxPage
	}
	pageSize := parseIntOr(raw.PageSize, dto.DefaultPageSize)
	if pageSize < dto.MinPageSize {
		pageSize = dto.MinPageSize
	}
	if pageSize > dto.MaxPageSize {
		pageSize = dto.MaxPageSize
	}

	return dto.ListingQuery{
		Page:        page,
		PageSize:    pageSize,
		Title:       raw.Title,
		ProductType: raw.ProductType,
		Status:      status,
		LocationID:  strings.TrimSpace(raw.LocationID),
	}, nil
}

func parseIntOr(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
