package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-count-api/internal/application/auth"
	"github.com/jhoicas/stock-count-api/internal/application/dto"
	"github.com/jhoicas/stock-count-api/internal/domain"
)

// Locals keys para tienda y usuario en Fiber.
const (
	LocalShop   = "shop"
	LocalUserID = "user_id"
)

// HeaderRetryInvalidSession indica al admin embebido que pida un session token nuevo y reintente.
const HeaderRetryInvalidSession = "X-Shopify-Retry-Invalid-Session-Request"

// LoginPath ruta del formulario de login.
const LoginPath = "/auth/login"

// sessionAuthenticator es el contrato mínimo del gate; lo implementa *auth.UseCase.
type sessionAuthenticator interface {
	Authenticate(ctx context.Context, sessionToken string) (*auth.Identity, error)
}

// sessionToken extrae el token del header Authorization (fetch) o del query id_token (documento).
// bearer indica si vino por header.
func sessionToken(c *fiber.Ctx) (token string, bearer bool) {
	if h := c.Get(fiber.HeaderAuthorization); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1]), true
		}
		return "", true
	}
	return c.Query("id_token"), false
}

// SessionGate valida el session token y carga tienda y usuario en c.Locals.
//
// Comportamiento:
//   - Peticiones de documento (sin Authorization) → 302 a /auth/login conservando el query.
//   - Peticiones fetch con Bearer inválido → 401 con HeaderRetryInvalidSession.
//   - Fallo de infraestructura (BD) → 500.
func SessionGate(authn sessionAuthenticator, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, bearer := sessionToken(c)
		id, err := authn.Authenticate(c.UserContext(), token)
		if err != nil {
			if !errors.Is(err, domain.ErrUnauthorized) && !errors.Is(err, domain.ErrNoSession) {
				log.Error().Err(err).Str("path", c.Path()).Msg("validar sesión")
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo validar la sesión"})
			}
			if bearer {
				c.Set(HeaderRetryInvalidSession, "1")
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_SESSION", Message: "session token inválido o expirado"})
			}
			return redirectToLogin(c)
		}
		c.Locals(LocalShop, id.Shop)
		c.Locals(LocalUserID, id.UserID)
		return c.Next()
	}
}

func redirectToLogin(c *fiber.Ctx) error {
	target := LoginPath
	if q := string(c.Request().URI().QueryString()); q != "" {
		target += "?" + q
	}
	return c.Redirect(target, fiber.StatusFound)
}

// GetShop devuelve la tienda del contexto (después de SessionGate).
func GetShop(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalShop).(string)
	return s
}

// GetUserID devuelve el usuario del staff del contexto (después de SessionGate).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}
