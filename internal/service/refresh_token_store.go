package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	refreshGrantPrefix     = "analytics:refresh:"
	defaultRefreshGrantTTL = 7 * 24 * time.Hour
	redisOpTimeout         = 500 * time.Millisecond
)

// RefreshGrant es lo que se concedio al emitir un refresh token: el principal y su vencimiento.
type RefreshGrant struct {
	Subject   string    `json:"sub"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"exp"`
}

// Matches indica si el token presentado corresponde al principal concedido.
func (g RefreshGrant) Matches(claims Claims) bool {
	return g.Subject == claims.Subject && g.Role == claims.Role
}

// RefreshTokenStore guarda las concesiones de refresh indexadas por jti.
// Lookup devuelve nil sin error cuando el jti no existe o ya vencio.
type RefreshTokenStore interface {
	Grant(jti string, p Principal, ttl time.Duration) error
	Lookup(jti string) (*RefreshGrant, error)
	Revoke(jti string) error
}

func newGrant(p Principal, ttl time.Duration, now time.Time) RefreshGrant {
	if ttl <= 0 {
		ttl = defaultRefreshGrantTTL
	}
	return RefreshGrant{Subject: p.Subject, Role: p.Role, ExpiresAt: now.Add(ttl)}
}

type memoryRefreshTokenStore struct {
	mu     sync.Mutex
	grants map[string]RefreshGrant
	now    func() time.Time
}

func NewMemoryRefreshTokenStore() RefreshTokenStore {
	return &memoryRefreshTokenStore{
		grants: make(map[string]RefreshGrant),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *memoryRefreshTokenStore) Grant(jti string, p Principal, ttl time.Duration) error {
	jti = strings.TrimSpace(jti)
	if jti == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grants[jti] = newGrant(p, ttl, s.now())
	return nil
}

func (s *memoryRefreshTokenStore) Lookup(jti string) (*RefreshGrant, error) {
	jti = strings.TrimSpace(jti)
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.grants[jti]
	if !ok {
		return nil, nil
	}
	if !s.now().Before(g.ExpiresAt) {
		delete(s.grants, jti)
		return nil, nil
	}
	return &g, nil
}

func (s *memoryRefreshTokenStore) Revoke(jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.grants, strings.TrimSpace(jti))
	return nil
}

type redisGrantKV interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// redisRefreshTokenStore guarda la concesion en JSON; el TTL de Redis hace de vencimiento.
type redisRefreshTokenStore struct {
	client redisGrantKV
	now    func() time.Time
}

func NewRedisRefreshTokenStore(client *redis.Client) RefreshTokenStore {
	if client == nil {
		return nil
	}
	return newRedisRefreshTokenStore(client)
}

func newRedisRefreshTokenStore(client redisGrantKV) *redisRefreshTokenStore {
	return &redisRefreshTokenStore{
		client: client,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *redisRefreshTokenStore) Grant(jti string, p Principal, ttl time.Duration) error {
	jti = strings.TrimSpace(jti)
	if jti == "" {
		return nil
	}
	now := s.now()
	g := newGrant(p, ttl, now)
	payload, err := json.Marshal(g)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	return s.client.Set(ctx, refreshGrantPrefix+jti, payload, g.ExpiresAt.Sub(now)).Err()
}

func (s *redisRefreshTokenStore) Lookup(jti string) (*RefreshGrant, error) {
	jti = strings.TrimSpace(jti)
	if jti == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	raw, err := s.client.Get(ctx, refreshGrantPrefix+jti).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var g RefreshGrant
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *redisRefreshTokenStore) Revoke(jti string) error {
	jti = strings.TrimSpace(jti)
	if jti == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	return s.client.Del(ctx, refreshGrantPrefix+jti).Err()
}
