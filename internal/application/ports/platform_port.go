package ports

import (
	"context"

	"github.com/jhoicas/stock-count-api/internal/domain/entity"
)

// CatalogPage una página del catálogo devuelta por la Admin API de la plataforma.
// NextCursor vacío = última página.
type CatalogPage struct {
	Products   []entity.Product
	NextCursor string
}

// CatalogSource define el puerto de salida para leer productos, variantes y niveles de inventario
// desde la plataforma de la tienda. La implementación concreta respeta el rate limit de la API.
type CatalogSource interface {
	FetchProducts(ctx context.Context, shop, accessToken, cursor string) (*CatalogPage, error)
}

// TokenExchanger intercambia un session token del admin embebido por un access token offline.
// El handshake OAuth completo lo resuelve la plataforma; aquí solo se consume el resultado.
type TokenExchanger interface {
	ExchangeSessionToken(ctx context.Context, shop, sessionToken string) (*entity.Session, error)
}
