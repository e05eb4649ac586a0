package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// fakeGrantKV guarda los valores en un mapa y registra el ultimo TTL pedido.
type fakeGrantKV struct {
	values  map[string][]byte
	lastTTL time.Duration
	failAll error
}

func newFakeGrantKV() *fakeGrantKV {
	return &fakeGrantKV{values: map[string][]byte{}}
}

func (f *fakeGrantKV) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	if f.failAll != nil {
		cmd.SetErr(f.failAll)
		return cmd
	}
	f.values[key] = value.([]byte)
	f.lastTTL = expiration
	cmd.SetVal("OK")
	return cmd
}

func (f *fakeGrantKV) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if f.failAll != nil {
		cmd.SetErr(f.failAll)
		return cmd
	}
	v, ok := f.values[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(string(v))
	return cmd
}

func (f *fakeGrantKV) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	if f.failAll != nil {
		cmd.SetErr(f.failAll)
		return cmd
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	cmd.SetVal(n)
	return cmd
}

func TestRefreshTokenStores_GrantLookupRevoke(t *testing.T) {
	stores := map[string]RefreshTokenStore{
		"memory": NewMemoryRefreshTokenStore(),
		"redis":  newRedisRefreshTokenStore(newFakeGrantKV()),
	}
	admin := Principal{Subject: "admin", Role: RoleAdmin}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			if g, err := store.Lookup("missing"); err != nil || g != nil {
				t.Fatalf("expected nil grant for unknown jti, got %+v,%v", g, err)
			}
			if err := store.Grant(" j1 ", admin, time.Hour); err != nil {
				t.Fatalf("grant: %v", err)
			}
			g, err := store.Lookup("j1")
			if err != nil || g == nil {
				t.Fatalf("expected grant, got %+v,%v", g, err)
			}
			if g.Subject != "admin" || g.Role != RoleAdmin || g.ExpiresAt.IsZero() {
				t.Fatalf("unexpected grant %+v", g)
			}
			if err := store.Revoke("j1"); err != nil {
				t.Fatalf("revoke: %v", err)
			}
			if g, _ := store.Lookup("j1"); g != nil {
				t.Fatalf("revoked grant still visible: %+v", g)
			}
			if err := store.Grant("", admin, time.Hour); err != nil {
				t.Fatalf("empty jti must be ignored, got %v", err)
			}
		})
	}
}

func TestMemoryRefreshTokenStore_ExpiresGrant(t *testing.T) {
	store := NewMemoryRefreshTokenStore().(*memoryRefreshTokenStore)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	if err := store.Grant("j1", Principal{Subject: "analyst", Role: RoleAnalyst}, time.Minute); err != nil {
		t.Fatalf("grant: %v", err)
	}
	now = now.Add(time.Minute)
	if g, _ := store.Lookup("j1"); g != nil {
		t.Fatalf("expected expired grant, got %+v", g)
	}
	if len(store.grants) != 0 {
		t.Fatalf("expired grant must be dropped")
	}
}

func TestRedisRefreshTokenStore_PayloadAndTTL(t *testing.T) {
	kv := newFakeGrantKV()
	store := newRedisRefreshTokenStore(kv)

	if err := store.Grant("j1", Principal{Subject: "analyst", Role: RoleAnalyst}, 0); err != nil {
		t.Fatalf("grant: %v", err)
	}
	if kv.lastTTL != defaultRefreshGrantTTL {
		t.Fatalf("expected default ttl, got %v", kv.lastTTL)
	}
	var stored RefreshGrant
	if err := json.Unmarshal(kv.values[refreshGrantPrefix+"j1"], &stored); err != nil {
		t.Fatalf("payload is not json: %v", err)
	}
	if stored.Role != RoleAnalyst || stored.Subject != "analyst" {
		t.Fatalf("unexpected payload %+v", stored)
	}

	kv.values[refreshGrantPrefix+"broken"] = []byte("{")
	if _, err := store.Lookup("broken"); err == nil {
		t.Fatalf("expected decode error for corrupt grant")
	}
}

func TestRedisRefreshTokenStore_PropagatesErrors(t *testing.T) {
	kv := newFakeGrantKV()
	kv.failAll = errors.New("redis down")
	store := newRedisRefreshTokenStore(kv)

	if err := store.Grant("j1", Principal{Subject: "admin", Role: RoleAdmin}, time.Hour); err == nil {
		t.Fatalf("expected grant error")
	}
	if _, err := store.Lookup("j1"); err == nil {
		t.Fatalf("expected lookup error")
	}
	if err := store.Revoke("j1"); err == nil {
		t.Fatalf("expected revoke error")
	}
	if NewRedisRefreshTokenStore(nil) != nil {
		t.Fatalf("nil client must yield nil store")
	}
}

func TestRefreshGrant_Matches(t *testing.T) {
	g := RefreshGrant{Subject: "admin", Role: RoleAdmin}
	tests := []struct {
		name   string
		claims Claims
		want   bool
	}{
		{"same principal", claimsFor("admin", RoleAdmin), true},
		{"role changed", claimsFor("admin", RoleAnalyst), false},
		{"subject changed", claimsFor("analyst", RoleAdmin), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Matches(tt.claims); got != tt.want {
				t.Fatalf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}

func claimsFor(subject, role string) Claims {
	c := Claims{Role: role}
	c.Subject = subject
	return c
}
