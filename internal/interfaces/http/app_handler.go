package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-count-api/internal/application/dto"
)

// AppHandler layout de la app embebida.
type AppHandler struct {
	apiKey string
}

func NewAppHandler(apiKey string) *AppHandler {
	return &AppHandler{apiKey: apiKey}
}

// Shell godoc
// @Summary      Datos del layout (API key y navegación)
// @Tags         app
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AppShellResponse
// @Router       /app [get]
func (h *AppHandler) Shell(c *fiber.Ctx) error {
	return c.JSON(dto.AppShellResponse{
		APIKey: h.apiKey,
		Shop:   GetShop(c),
		Nav: []dto.NavLink{
			{Label: "Home", To: "/app", Rel: "home"},
			{Label: "Logs", To: "/app/additional"},
			{Label: "Admin", To: "/app/admin"},
		},
	})
}
