package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/config"
)

// Client encapsula a conexão Redis.
// Usado para a blacklist de tokens (logout) e para o cache de contagens do
// dashboard; a aplicação degrada sem Redis (rdb == nil nos consumidores).
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient conecta ao Redis e executa um Ping de verificação
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("falha ao conectar ao Redis: %w", err)
	}

	logger.Info("Redis conectado", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── Blacklist de tokens ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken registra o JWT ID na blacklist com TTL igual à validade restante
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // token já expirado, nada a fazer
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted verifica se o JWT ID está na blacklist
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── Cache do dashboard ──

const cachePrefix = "dashboard:"

// GetCached retorna o JSON em cache para a chave, ou ("", nil) em cache miss
func (c *Client) GetCached(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, cachePrefix+key).Result()
	if err == goredis.Nil {
		return "", nil
	}
	return val, err
}

// SetCached armazena o JSON no cache com o TTL informado
func (c *Client) SetCached(ctx context.Context, key, payload string, ttl time.Duration) error {
	return c.rdb.Set(ctx, cachePrefix+key, payload, ttl).Err()
}

// InvalidateCached remove uma entrada do cache (usado após mutações)
func (c *Client) InvalidateCached(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, cachePrefix+key).Err()
}

// Close encerra a conexão
func (c *Client) Close() error {
	return c.rdb.Close()
}
