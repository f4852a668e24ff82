// Package cache implementa la caché de opciones de filtros por tienda (Redis o memoria).
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-count-api/internal/application/dto"
	"github.com/jhoicas/stock-count-api/internal/application/ports"
)

var _ ports.OptionsCache = (*RedisOptionsCache)(nil)

const (
	keyPrefix  = "stockcount:options:"
	defaultTTL = 10 * time.Minute
)

func optionsKey(shop string) string { return keyPrefix + shop }

// RedisOptionsCache guarda las opciones serializadas en JSON con TTL.
type RedisOptionsCache struct {
	client redis.Cmdable
	ttl    time.Duration
	log    zerolog.Logger
}

// NewRedisClient abre el cliente y verifica la conexión.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}
	return client, nil
}

// NewRedisOptionsCache usa un cliente existente; el llamador es dueño del cliente.
func NewRedisOptionsCache(client redis.Cmdable, ttl time.Duration, log zerolog.Logger) *RedisOptionsCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisOptionsCache{client: client, ttl: ttl, log: log}
}

// Get devuelve (nil, false, nil) si la clave no existe.
func (c *RedisOptionsCache) Get(ctx context.Context, shop string) (*dto.FilterOptions, bool, error) {
	raw, err := c.client.Get(ctx, optionsKey(shop)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var opts dto.FilterOptions
	if err := json.Unmarshal(raw, &opts); err != nil {
		// Entrada corrupta: se trata como miss y se reescribe en el próximo Set.
		c.log.Warn().Err(err).Str("shop", shop).Msg("opciones en caché ilegibles")
		return nil, false, nil
	}
	return &opts, true, nil
}

func (c *RedisOptionsCache) Set(ctx context.Context, shop string, opts *dto.FilterOptions) error {
	raw, err := json.Marshal(opts)
	if err != nil {
		return fmt.Errorf("serializar opciones: %w", err)
	}
	if err := c.client.Set(ctx, optionsKey(shop), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *RedisOptionsCache) Invalidate(ctx context.Context, shop string) error {
	if err := c.client.Del(ctx, optionsKey(shop)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
