package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"faithai-profile/internal/domain"
)

// PopulationCache guarda los parametros poblacionales medidos tras una recalibracion.
// Get devuelve nil, nil cuando no hay parametros guardados.
type PopulationCache interface {
	Get(ctx context.Context) (*domain.PopulationParams, error)
	Set(ctx context.Context, params domain.PopulationParams) error
	Clear(ctx context.Context) error
}

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

const populationParamsKey = "population:params"

type redisPopulationCache struct {
	client redisKV
	ttl    time.Duration
	key    string
}

// NewRedisPopulationCache usa ttl<=0 como "sin expiracion".
func NewRedisPopulationCache(client *redis.Client, ttl time.Duration) PopulationCache {
	if client == nil {
		return nil
	}
	return newRedisPopulationCache(client, ttl)
}

func newRedisPopulationCache(client redisKV, ttl time.Duration) *redisPopulationCache {
	if ttl < 0 {
		ttl = 0
	}
	return &redisPopulationCache{client: client, ttl: ttl, key: populationParamsKey}
}

func (c *redisPopulationCache) Get(ctx context.Context) (*domain.PopulationParams, error) {
	data, err := c.client.Get(ctx, c.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var params domain.PopulationParams
	if err := json.Unmarshal([]byte(data), &params); err != nil {
		return nil, err
	}
	return &params, nil
}

func (c *redisPopulationCache) Set(ctx context.Context, params domain.PopulationParams) error {
	data, err := json.Marshal(params)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, data, c.ttl).Err()
}

func (c *redisPopulationCache) Clear(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}

type memoryPopulationCache struct {
	mu      sync.Mutex
	params  *domain.PopulationParams
	expires time.Time
	ttl     time.Duration
}

// NewMemoryPopulationCache es el respaldo en proceso cuando no hay Redis configurado.
func NewMemoryPopulationCache(ttl time.Duration) PopulationCache {
	return &memoryPopulationCache{ttl: ttl}
}

func (c *memoryPopulationCache) Get(_ context.Context) (*domain.PopulationParams, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.params == nil {
		return nil, nil
	}
	if c.ttl > 0 && time.Now().UTC().After(c.expires) {
		c.params = nil
		return nil, nil
	}
	cp := copyParams(*c.params)
	return &cp, nil
}

func (c *memoryPopulationCache) Set(_ context.Context, params domain.PopulationParams) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := copyParams(params)
	c.params = &cp
	c.expires = time.Now().UTC().Add(c.ttl)
	return nil
}

func (c *memoryPopulationCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.params = nil
	return nil
}

func copyParams(p domain.PopulationParams) domain.PopulationParams {
	dims := make(map[domain.Dimension]domain.NormalParams, len(p.Dimensions))
	for k, v := range p.Dimensions {
		dims[k] = v
	}
	p.Dimensions = dims
	return p
}
