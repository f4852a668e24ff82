package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-count-api/internal/application/auth"
	"github.com/jhoicas/stock-count-api/internal/application/dto"
	"github.com/jhoicas/stock-count-api/internal/domain"
)

// AuthHandler rutas públicas: raíz y login.
type AuthHandler struct {
	uc    *auth.UseCase
	authn sessionAuthenticator
}

// NewAuthHandler construye el handler. authn suele ser el mismo uc.
func NewAuthHandler(uc *auth.UseCase, authn sessionAuthenticator) *AuthHandler {
	return &AuthHandler{uc: uc, authn: authn}
}

// Root godoc
// @Summary      Entrada de la app
// @Description  Con session token válido redirige a /app; si no, a /auth/login. HEAD responde 200 vacío.
// @Tags         auth
// @Success      302
// @Router       / [get]
func (h *AuthHandler) Root(c *fiber.Ctx) error {
	token, _ := sessionToken(c)
	if token != "" {
		if _, err := h.authn.Authenticate(c.UserContext(), token); err == nil {
			target := "/app"
			if q := string(c.Request().URI().QueryString()); q != "" {
				target += "?" + q
			}
			return c.Redirect(target, fiber.StatusFound)
		}
	}
	return redirectToLogin(c)
}

// Login godoc
// @Summary      Login por dominio de tienda
// @Description  GET sin shop muestra el formulario vacío. Con shop válido redirige al admin de la tienda.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        shop  query  string  false  "Dominio de la tienda (ej. demo.myshopify.com)"
// @Success      200  {object}  dto.LoginResponse
// @Success      302
// @Failure      400  {object}  dto.LoginResponse
// @Router       /auth/login [get]
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	shop := c.Query("shop")
	if c.Method() == fiber.MethodPost {
		if v := c.FormValue("shop"); v != "" {
			shop = v
		}
	} else if shop == "" {
		return c.JSON(dto.LoginResponse{Errors: dto.LoginErrors{}})
	}

	target, err := h.uc.Login(shop)
	if err != nil {
		status := fiber.StatusOK
		if errors.Is(err, domain.ErrInvalidShop) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(dto.LoginResponse{Errors: auth.LoginErrorMessage(err)})
	}
	return c.Redirect(target, fiber.StatusFound)
}
