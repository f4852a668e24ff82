package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-count-api/internal/application/dto"
	"github.com/jhoicas/stock-count-api/internal/application/ports"
	"github.com/jhoicas/stock-count-api/internal/domain"
	"github.com/jhoicas/stock-count-api/internal/domain/entity"
	"github.com/jhoicas/stock-count-api/internal/domain/repository"
	"github.com/jhoicas/stock-count-api/pkg/jwt"
)

// Códigos de error del formulario de login.
const (
	LoginErrMissingShop = "MissingShop"
	LoginErrInvalidShop = "InvalidShop"
)

// Config datos de la app registrados en la plataforma.
type Config struct {
	APIKey      string
	APISecret   string
	ShopSuffix  string // ej. "myshopify.com"
	AdminScheme string // "https" salvo en tests
}

// Identity tienda y usuario autenticados a partir del session token.
type Identity struct {
	Shop    string
	UserID  string
	Session *entity.Session
}

// UseCase login y validación de session tokens de la app embebida.
type UseCase struct {
	cfg       Config
	sessions  repository.SessionRepository
	exchanger ports.TokenExchanger
	log       zerolog.Logger
	shopRe    *regexp.Regexp
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(cfg Config, sessions repository.SessionRepository, exchanger ports.TokenExchanger, log zerolog.Logger) *UseCase {
	if cfg.ShopSuffix == "" {
		cfg.ShopSuffix = "myshopify.com"
	}
	if cfg.AdminScheme == "" {
		cfg.AdminScheme = "https"
	}
	re := regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*\.` + regexp.QuoteMeta(cfg.ShopSuffix) + `$`)
	return &UseCase{cfg: cfg, sessions: sessions, exchanger: exchanger, log: log, shopRe: re}
}

// SanitizeShop normaliza el dominio ingresado ("demo", "demo.myshopify.com",
// "https://demo.myshopify.com/admin", "admin.shopify.com/store/demo").
// Devuelve "" si no es un dominio de tienda válido.
func (uc *UseCase) SanitizeShop(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return ""
	}
	host := u.Hostname()
	if host == "admin.shopify.com" {
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) < 2 || parts[0] != "store" || parts[1] == "" {
			return ""
		}
		host = parts[1]
	}
	if !strings.Contains(host, ".") {
		host += "." + uc.cfg.ShopSuffix
	}
	if !uc.shopRe.MatchString(host) {
		return ""
	}
	return host
}

// Uninstall borra las sesiones guardadas de la tienda. Sin sesión offline la sincronización
// responde ErrNoSession hasta que la app se vuelva a abrir desde el admin.
func (uc *UseCase) Uninstall(ctx context.Context, raw string) error {
	shop := uc.SanitizeShop(raw)
	if shop == "" {
		return domain.ErrInvalidShop
	}
	if err := uc.sessions.DeleteByShop(ctx, shop); err != nil {
		return fmt.Errorf("borrar sesiones: %w", err)
	}
	uc.log.Info().Str("shop", shop).Msg("sesiones de la tienda eliminadas")
	return nil
}

// Login valida el dominio recibido y devuelve la URL del admin donde se instala/abre la app.
func (uc *UseCase) Login(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", domain.ErrMissingShop
	}
	shop := uc.SanitizeShop(raw)
	if shop == "" {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidShop, raw)
	}
	return fmt.Sprintf("%s://%s/admin/apps/%s", uc.cfg.AdminScheme, shop, url.PathEscape(uc.cfg.APIKey)), nil
}

// LoginErrorMessage traduce el error de Login a mensajes por campo del formulario.
func LoginErrorMessage(err error) dto.LoginErrors {
	switch {
	case err == nil:
		return dto.LoginErrors{}
	case errors.Is(err, domain.ErrMissingShop):
		return dto.LoginErrors{Shop: "Please enter your shop domain to log in"}
	case errors.Is(err, domain.ErrInvalidShop):
		return dto.LoginErrors{Shop: "Please enter a valid shop domain to log in"}
	}
	return dto.LoginErrors{}
}

// Authenticate valida el session token y garantiza una sesión offline para la tienda.
// Si no existe, intercambia el token por un access token offline y lo persiste.
func (uc *UseCase) Authenticate(ctx context.Context, sessionToken string) (*Identity, error) {
	if sessionToken == "" {
		return nil, domain.ErrUnauthorized
	}
	claims, err := jwt.Parse(uc.cfg.APISecret, uc.cfg.APIKey, sessionToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	shop := uc.SanitizeShop(claims.Shop())
	if shop == "" {
		return nil, fmt.Errorf("%w: tienda inválida en dest", domain.ErrUnauthorized)
	}

	session, err := uc.sessions.FindOffline(ctx, shop)
	if err != nil {
		return nil, err
	}
	if session == nil {
		if uc.exchanger == nil {
			return nil, domain.ErrNoSession
		}
		session, err = uc.exchanger.ExchangeSessionToken(ctx, shop, sessionToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
		}
		session.ID = entity.OfflineSessionID(shop)
		session.Shop = shop
		session.IsOnline = false
		if err := uc.sessions.Store(ctx, session); err != nil {
			return nil, err
		}
		uc.log.Info().Str("shop", shop).Msg("sesión offline creada por intercambio de token")
	}

	return &Identity{Shop: shop, UserID: claims.Subject, Session: session}, nil
}
