package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-count-api/internal/application/catalog"
)

// SyncHandler dispara la sincronización del catálogo de la tienda.
type SyncHandler struct {
	uc *catalog.SyncUseCase
}

func NewSyncHandler(uc *catalog.SyncUseCase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

// Products godoc
// @Summary      Sincronizar productos, variantes e inventario desde la plataforma
// @Tags         sync
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SyncResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /app/sync/products [post]
func (h *SyncHandler) Products(c *fiber.Ctx) error {
	out, err := h.uc.Sync(c.UserContext(), GetShop(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
