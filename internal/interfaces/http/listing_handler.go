package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-count-api/internal/application/listing"
	"github.com/jhoicas/stock-count-api/internal/application/ports"
	"github.com/jhoicas/stock-count-api/internal/infrastructure/export"
)

// StaffCacheControl caché privada corta de la vista de staff (navegación atrás/adelante).
const StaffCacheControl = "private, max-age=5, stale-while-revalidate=30"

// ListingHandler vistas de staff y admin más las exportaciones.
type ListingHandler struct {
	uc    *listing.UseCase
	sheet ports.CountSheetGenerator
	now   func() time.Time
}

// NewListingHandler construye el handler. sheet puede ser nil (sin exportación PDF).
func NewListingHandler(uc *listing.UseCase, sheet ports.CountSheetGenerator) *ListingHandler {
	return &ListingHandler{uc: uc, sheet: sheet, now: time.Now}
}

func rawQuery(c *fiber.Ctx) listing.RawQuery {
	return listing.RawQuery{
		Page:        c.Query("page"),
		PageSize:    c.Query("pageSize"),
		Title:       c.Query("title"),
		ProductType: c.Query("productType"),
		Status:      c.Query("status"),
		LocationID:  c.Query("locationId"),
	}
}

// Staff godoc
// @Summary      Listado de staff (último conteo por variante)
// @Tags         counts
// @Security     Bearer
// @Produce      json
// @Param        page      query  int     false  "Página (1..)"
// @Param        pageSize  query  int     false  "Tamaño de página (5..100, default 25)"
// @Param        title     query  string  false  "Título exacto del producto"
// @Success      200  {object}  dto.StaffListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /app/counts [get]
func (h *ListingHandler) Staff(c *fiber.Ctx) error {
	q, err := listing.ParseQuery(rawQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.StaffList(c.UserContext(), GetShop(c), q)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderCacheControl, StaffCacheControl)
	return c.JSON(out)
}

// Admin godoc
// @Summary      Listado admin conciliado (inventario vs último conteo)
// @Description  El filtro status se aplica después de traer la página: puede devolver menos filas que pageSize.
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        page         query  int     false  "Página (1..)"
// @Param        pageSize     query  int     false  "Tamaño de página (5..100, default 25)"
// @Param        title        query  string  false  "Título exacto del producto"
// @Param        productType  query  string  false  "Tipo de producto"
// @Param        status       query  string  false  "match | mismatch | no-count"
// @Param        locationId   query  string  false  "GID de la ubicación"
// @Success      200  {object}  dto.AdminListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /app/admin [get]
func (h *ListingHandler) Admin(c *fiber.Ctx) error {
	q, err := listing.ParseQuery(rawQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.AdminList(c.UserContext(), GetShop(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar la página actual del listado admin a CSV
// @Tags         admin
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /app/admin/export.csv [get]
func (h *ListingHandler) ExportCSV(c *fiber.Ctx) error {
	q, err := listing.ParseQuery(rawQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	rows, err := h.uc.ExportRows(c.UserContext(), GetShop(c), q)
	if err != nil {
		return respondError(c, err)
	}
	body, err := export.EncodeCSV(rows)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Attachment(export.Filename(h.now(), "csv"))
	return c.Send(body)
}

// ExportPDF godoc
// @Summary      Hoja de conteo imprimible de la página actual
// @Tags         admin
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /app/admin/export.pdf [get]
func (h *ListingHandler) ExportPDF(c *fiber.Ctx) error {
	if h.sheet == nil {
		return fiber.ErrNotFound
	}
	q, err := listing.ParseQuery(rawQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	shop := GetShop(c)
	rows, err := h.uc.ExportRows(c.UserContext(), shop, q)
	if err != nil {
		return respondError(c, err)
	}
	doc, err := h.sheet.CountSheetPDF(c.UserContext(), shop, rows)
	if err != nil {
		return respondError(c, err)
	}
	c.Attachment(export.Filename(h.now(), "pdf"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(doc)
}
