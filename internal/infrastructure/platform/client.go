// Package platform es el adaptador HTTP hacia la Admin API de la plataforma de la tienda:
// lectura paginada del catálogo (GraphQL) e intercambio de session tokens por access tokens.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/jhoicas/stock-count-api/internal/application/ports"
	"github.com/jhoicas/stock-count-api/internal/domain/entity"
)

var (
	_ ports.CatalogSource  = (*Client)(nil)
	_ ports.TokenExchanger = (*Client)(nil)
)

const (
	defaultAPIVersion = "2025-01"
	maxResponseBytes  = 8 << 20

	grantTokenExchange  = "urn:ietf:params:oauth:grant-type:token-exchange"
	subjectTokenIDToken = "urn:ietf:params:oauth:token-type:id_token"
	offlineAccessToken  = "urn:shopify:params:oauth:token-type:offline-access-token"
)

// Config credenciales y límites del cliente.
type Config struct {
	APIKey     string
	APISecret  string
	APIVersion string
	RateLimit  float64 // peticiones/segundo por proceso
	Timeout    time.Duration
	// BaseURL reemplaza https://{shop} (tests con httptest).
	BaseURL string
}

// Client adaptador de la Admin API. Seguro para uso concurrente.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	log        zerolog.Logger
}

// NewClient construye el cliente con rate limit de tipo token bucket.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	if cfg.APIVersion == "" {
		cfg.APIVersion = defaultAPIVersion
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 2
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
		log:        log,
	}
}

func (c *Client) shopURL(shop string) string {
	if c.cfg.BaseURL != "" {
		return strings.TrimRight(c.cfg.BaseURL, "/")
	}
	return "https://" + shop
}

// ── Catálogo (GraphQL) ────────────────────────────────────────────────────────

// Tamaños de página: products × variants × levels debe quedar bajo el tope de costo (1000 puntos) por query.
const (
	productsPerPage  = 5
	variantsPerPage  = 10
	levelsPerPage    = 5
	variantsFollowUp = 50
	levelsFollowUp   = 100
	// maxFollowUps por conexión; al alcanzarlo la conexión se marca parcial.
	maxFollowUps     = 200
)

const catalogFragments = `
fragment LevelFields on InventoryLevel {
  updatedAt
  location { id name }
  quantities(names: ["available"]) { name quantity }
}
fragment VariantFields on ProductVariant {
  id
  title
  sku
  price
  updatedAt
  inventoryItem {
    inventoryLevels(first: $levels) {
      pageInfo { hasNextPage endCursor }
      nodes { ...LevelFields }
    }
  }
}`

const productsQuery = `query Products($first: Int!, $after: String, $variants: Int!, $levels: Int!) {
  products(first: $first, after: $after) {
    pageInfo { hasNextPage endCursor }
    nodes {
      id
      title
      productType
      updatedAt
      variants(first: $variants) {
        pageInfo { hasNextPage endCursor }
        nodes { ...VariantFields }
      }
    }
  }
}` + catalogFragments

const variantsQuery = `query ProductVariants($id: ID!, $first: Int!, $after: String, $levels: Int!) {
  product(id: $id) {
    variants(first: $first, after: $after) {
      pageInfo { hasNextPage endCursor }
      nodes { ...VariantFields }
    }
  }
}` + catalogFragments

const levelsQuery = `query VariantLevels($id: ID!, $first: Int!, $after: String) {
  productVariant(id: $id) {
    inventoryItem {
      inventoryLevels(first: $first, after: $after) {
        pageInfo { hasNextPage endCursor }
        nodes { ...LevelFields }
      }
    }
  }
}
fragment LevelFields on InventoryLevel {
  updatedAt
  location { id name }
  quantities(names: ["available"]) { name quantity }
}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

type pageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type productsData struct {
	Products struct {
		PageInfo pageInfo      `json:"pageInfo"`
		Nodes    []productNode `json:"nodes"`
	} `json:"products"`
}

type productNode struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	ProductType string            `json:"productType"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	Variants    variantConnection `json:"variants"`
}

type variantConnection struct {
	PageInfo pageInfo      `json:"pageInfo"`
	Nodes    []variantNode `json:"nodes"`
}

type variantNode struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	SKU           string          `json:"sku"`
	Price         decimal.Decimal `json:"price"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	InventoryItem *inventoryItem  `json:"inventoryItem"`
}

type inventoryItem struct {
	InventoryLevels levelConnection `json:"inventoryLevels"`
}

type levelConnection struct {
	PageInfo pageInfo    `json:"pageInfo"`
	Nodes    []levelNode `json:"nodes"`
}

type levelNode struct {
	UpdatedAt time.Time `json:"updatedAt"`
	Location  struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"location"`
	Quantities []struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
	} `json:"quantities"`
}

// FetchProducts trae una página de productos con todas sus variantes y niveles de inventario.
// Las conexiones anidadas con más páginas se completan con queries adicionales; si no se
// pueden leer completas, el producto o la variante queda marcado como parcial.
func (c *Client) FetchProducts(ctx context.Context, shop, accessToken, cursor string) (*ports.CatalogPage, error) {
	vars := map[string]any{"first": productsPerPage, "variants": variantsPerPage, "levels": levelsPerPage}
	if cursor != "" {
		vars["after"] = cursor
	}
	var data productsData
	if err := c.graphQL(ctx, shop, accessToken, productsQuery, vars, &data); err != nil {
		return nil, err
	}

	page := &ports.CatalogPage{Products: make([]entity.Product, 0, len(data.Products.Nodes))}
	for _, n := range data.Products.Nodes {
		p, err := c.completeProduct(ctx, shop, accessToken, n)
		if err != nil {
			return nil, err
		}
		page.Products = append(page.Products, p)
	}
	if data.Products.PageInfo.HasNextPage {
		page.NextCursor = data.Products.PageInfo.EndCursor
	}
	return page, nil
}

func (c *Client) completeProduct(ctx context.Context, shop, accessToken string, n productNode) (entity.Product, error) {
	p := entity.Product{
		ID:          n.ID,
		Shop:        shop,
		Title:       n.Title,
		ProductType: n.ProductType,
		UpdatedAt:   n.UpdatedAt,
	}
	nodes, partial, err := c.restOfVariants(ctx, shop, accessToken, n.ID, n.Variants)
	if err != nil {
		return p, err
	}
	p.VariantsPartial = partial

	p.Variants = make([]entity.Variant, 0, len(nodes))
	for _, vn := range nodes {
		v := entity.Variant{
			ID:        vn.ID,
			ProductID: n.ID,
			Shop:      shop,
			Title:     vn.Title,
			SKU:       vn.SKU,
			Price:     vn.Price,
			UpdatedAt: vn.UpdatedAt,
		}
		if vn.InventoryItem != nil {
			levels, partial, err := c.restOfLevels(ctx, shop, accessToken, vn.ID, vn.InventoryItem.InventoryLevels)
			if err != nil {
				return p, err
			}
			v.LevelsPartial = partial
			for _, ln := range levels {
				v.Levels = append(v.Levels, toLevel(vn.ID, ln))
			}
		}
		p.Variants = append(p.Variants, v)
	}
	return p, nil
}

// restOfVariants sigue la conexión de variantes desde la primera página ya recibida.
func (c *Client) restOfVariants(ctx context.Context, shop, accessToken, productID string, conn variantConnection) ([]variantNode, bool, error) {
	nodes := conn.Nodes
	info := conn.PageInfo
	for calls := 0; info.HasNextPage; calls++ {
		if calls == maxFollowUps {
			c.log.Warn().Str("shop", shop).Str("product_id", productID).Int("variants", len(nodes)).
				Msg("variantes incompletas: se alcanzó el máximo de páginas")
			return nodes, true, nil
		}
		var data struct {
			Product *struct {
				Variants variantConnection `json:"variants"`
			} `json:"product"`
		}
		vars := map[string]any{"id": productID, "first": variantsFollowUp, "after": info.EndCursor, "levels": levelsPerPage}
		if err := c.graphQL(ctx, shop, accessToken, variantsQuery, vars, &data); err != nil {
			return nil, false, err
		}
		if data.Product == nil {
			c.log.Warn().Str("shop", shop).Str("product_id", productID).Msg("producto ausente al paginar variantes")
			return nodes, true, nil
		}
		nodes = append(nodes, data.Product.Variants.Nodes...)
		info = data.Product.Variants.PageInfo
	}
	return nodes, false, nil
}

// restOfLevels igual que restOfVariants para los niveles de inventario de una variante.
func (c *Client) restOfLevels(ctx context.Context, shop, accessToken, variantID string, conn levelConnection) ([]levelNode, bool, error) {
	nodes := conn.Nodes
	info := conn.PageInfo
	for calls := 0; info.HasNextPage; calls++ {
		if calls == maxFollowUps {
			c.log.Warn().Str("shop", shop).Str("variant_id", variantID).Int("levels", len(nodes)).
				Msg("niveles incompletos: se alcanzó el máximo de páginas")
			return nodes, true, nil
		}
		var data struct {
			ProductVariant *struct {
				InventoryItem *inventoryItem `json:"inventoryItem"`
			} `json:"productVariant"`
		}
		vars := map[string]any{"id": variantID, "first": levelsFollowUp, "after": info.EndCursor}
		if err := c.graphQL(ctx, shop, accessToken, levelsQuery, vars, &data); err != nil {
			return nil, false, err
		}
		if data.ProductVariant == nil || data.ProductVariant.InventoryItem == nil {
			c.log.Warn().Str("shop", shop).Str("variant_id", variantID).Msg("variante ausente al paginar niveles")
			return nodes, true, nil
		}
		next := data.ProductVariant.InventoryItem.InventoryLevels
		nodes = append(nodes, next.Nodes...)
		info = next.PageInfo
	}
	return nodes, false, nil
}

func toLevel(variantID string, ln levelNode) entity.InventoryLevel {
	lvl := entity.InventoryLevel{
		VariantID:    variantID,
		LocationID:   ln.Location.ID,
		LocationName: ln.Location.Name,
		UpdatedAt:    ln.UpdatedAt,
	}
	for _, q := range ln.Quantities {
		if q.Name == "available" {
			lvl.Available = q.Quantity
		}
	}
	return lvl
}

// graphQL ejecuta una query contra la Admin API y deserializa data en out.
func (c *Client) graphQL(ctx context.Context, shop, accessToken, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("platform: serializar query: %w", err)
	}

	endpoint := fmt.Sprintf("%s/admin/api/%s/graphql.json", c.shopURL(shop), c.cfg.APIVersion)
	raw, err := c.do(ctx, http.MethodPost, endpoint, "application/json", bytes.NewReader(body), func(r *http.Request) {
		r.Header.Set("X-Shopify-Access-Token", accessToken)
	})
	if err != nil {
		return err
	}

	var res graphQLResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return fmt.Errorf("platform: deserializar respuesta: %w", err)
	}
	if len(res.Errors) > 0 {
		return fmt.Errorf("platform: graphql: %s", res.Errors[0].Message)
	}
	if len(res.Data) == 0 || string(res.Data) == "null" {
		return fmt.Errorf("platform: respuesta graphql sin data")
	}
	if err := json.Unmarshal(res.Data, out); err != nil {
		return fmt.Errorf("platform: deserializar data: %w", err)
	}
	return nil
}

// ── Token exchange ────────────────────────────────────────────────────────────

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	Scope       string `json:"scope"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ExchangeSessionToken intercambia el session token por un access token offline de la tienda.
func (c *Client) ExchangeSessionToken(ctx context.Context, shop, sessionToken string) (*entity.Session, error) {
	form := url.Values{
		"client_id":            {c.cfg.APIKey},
		"client_secret":        {c.cfg.APISecret},
		"grant_type":           {grantTokenExchange},
		"subject_token":        {sessionToken},
		"subject_token_type":   {subjectTokenIDToken},
		"requested_token_type": {offlineAccessToken},
	}
	endpoint := c.shopURL(shop) + "/admin/oauth/access_token"
	raw, err := c.do(ctx, http.MethodPost, endpoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), nil)
	if err != nil {
		return nil, err
	}

	var tok tokenResponse
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("platform: deserializar token: %w", err)
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("platform: respuesta sin access_token")
	}

	s := &entity.Session{
		ID:          entity.OfflineSessionID(shop),
		Shop:        shop,
		AccessToken: tok.AccessToken,
		Scope:       tok.Scope,
		CreatedAt:   time.Now().UTC(),
	}
	if tok.ExpiresIn > 0 {
		exp := s.CreatedAt.Add(time.Duration(tok.ExpiresIn) * time.Second)
		s.ExpiresAt = &exp
	}
	return s, nil
}

// do aplica el rate limit, ejecuta la petición y devuelve el cuerpo si el status es 2xx.
func (c *Client) do(ctx context.Context, method, endpoint, contentType string, body io.Reader, decorate func(*http.Request)) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("platform: rate limit: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("platform: crear request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if decorate != nil {
		decorate(req)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("platform: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("platform: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("platform: leer respuesta: %w", err)
	}
	c.log.Debug().
		Str("method", method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("admin api")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := raw
		if len(snippet) > 512 {
			snippet = snippet[:512]
		}
		return nil, fmt.Errorf("platform: HTTP %d: %s", resp.StatusCode, string(snippet))
	}
	return raw, nil
}
