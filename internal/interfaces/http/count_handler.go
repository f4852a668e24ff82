package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-count-api/internal/application/counts"
	"github.com/jhoicas/stock-count-api/internal/application/dto"
)

// CountHandler acciones sobre conteos físicos.
type CountHandler struct {
	uc *counts.UseCase
}

func NewCountHandler(uc *counts.UseCase) *CountHandler {
	return &CountHandler{uc: uc}
}

// Add godoc
// @Summary      Guardar un conteo físico
// @Tags         counts
// @Security     Bearer
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.AddCountRequest  true  "Variante y cantidad contada"
// @Success      201  {object}  dto.ActionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /app/counts/add [post]
func (h *CountHandler) Add(c *fiber.Ctx) error {
	var in dto.AddCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Add(c.UserContext(), GetShop(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Clear godoc
// @Summary      Borrar todos los conteos de la tienda
// @Tags         counts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ClearCountsResponse
// @Router       /app/counts/clear [post]
func (h *CountHandler) Clear(c *fiber.Ctx) error {
	out, err := h.uc.ClearAll(c.UserContext(), GetShop(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de conteos de una variante
// @Tags         counts
// @Security     Bearer
// @Produce      json
// @Param        variantId  path   string  true   "GID de la variante (URL-encoded)"
// @Param        limit      query  int     false  "Máximo de conteos (default 20, máx 100)"
// @Success      200  {array}   dto.CountHistoryItem
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /app/counts/{variantId}/history [get]
func (h *CountHandler) History(c *fiber.Ctx) error {
	variantID, err := url.PathUnescape(c.Params("variantId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "variantId inválido"})
	}
	out, err := h.uc.History(c.UserContext(), GetShop(c), variantID, c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
