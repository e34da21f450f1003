package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taskcord/store-bot/pkg/models"
)

// memCache is an in-memory Cache for testing.
type memCache struct {
	data    map[string]string
	failGet bool
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]string)}
}

func (m *memCache) Get(ctx context.Context, key string) (string, bool, error) {
	if m.failGet {
		return "", false, errors.New("cache unavailable")
	}
	val, ok := m.data[key]
	return val, ok, nil
}

func (m *memCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *memCache) Del(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memCache) Keys(ctx context.Context, pattern string) ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys, nil
}

type staticSource struct {
	configs []models.StoreConfig
	err     error
}

func (s *staticSource) GetAllConfigs(ctx context.Context) ([]models.StoreConfig, error) {
	return s.configs, s.err
}

func TestSetAndGetConfig(t *testing.T) {
	ctx := context.Background()
	mem := newMemCache()
	sc := NewStoreConfigCache(mem, &staticSource{})

	cfg := models.StoreConfig{GuildID: "guild1", BotAdminRoleID: "role1", Currency: "USD"}
	if err := sc.SetConfig(ctx, cfg); err != nil {
		t.Fatalf("SetConfig() error = %v", err)
	}

	got := sc.GetConfig(ctx, "guild1")
	if got.BotAdminRoleID != "role1" {
		t.Errorf("GetConfig().BotAdminRoleID = %v, want %v", got.BotAdminRoleID, "role1")
	}
	if got.Currency != "USD" {
		t.Errorf("GetConfig().Currency = %v, want %v", got.Currency, "USD")
	}
}

func TestGetConfigMissing(t *testing.T) {
	ctx := context.Background()
	sc := NewStoreConfigCache(newMemCache(), &staticSource{})

	got := sc.GetConfig(ctx, "unknown")
	if got.GuildID != "unknown" {
		t.Errorf("GetConfig().GuildID = %v, want %v", got.GuildID, "unknown")
	}
	if got.BotAdminRoleID != "" {
		t.Errorf("GetConfig().BotAdminRoleID = %v, want empty", got.BotAdminRoleID)
	}
}

func TestGetConfigMalformed(t *testing.T) {
	ctx := context.Background()
	mem := newMemCache()
	mem.data[storeConfigKey("guild1")] = "{not json"
	sc := NewStoreConfigCache(mem, &staticSource{})

	got := sc.GetConfig(ctx, "guild1")
	if got.BotAdminRoleID != "" || got.Currency != "" {
		t.Errorf("GetConfig() with malformed entry = %+v, want zero-value config", got)
	}
}

func TestGetConfigCacheError(t *testing.T) {
	ctx := context.Background()
	mem := newMemCache()
	mem.failGet = true
	sc := NewStoreConfigCache(mem, &staticSource{})

	got := sc.GetConfig(ctx, "guild1")
	if got.GuildID != "guild1" {
		t.Errorf("GetConfig().GuildID = %v, want %v", got.GuildID, "guild1")
	}
}

func TestLoadAll(t *testing.T) {
	ctx := context.Background()
	mem := newMemCache()
	source := &staticSource{configs: []models.StoreConfig{
		{GuildID: "g1", Currency: "USD"},
		{GuildID: "g2", Currency: "EUR"},
	}}
	sc := NewStoreConfigCache(mem, source)

	if err := sc.LoadAll(ctx); err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}

	if got := sc.GetConfig(ctx, "g1").Currency; got != "USD" {
		t.Errorf("GetConfig(g1).Currency = %v, want %v", got, "USD")
	}
	if got := sc.GetConfig(ctx, "g2").Currency; got != "EUR" {
		t.Errorf("GetConfig(g2).Currency = %v, want %v", got, "EUR")
	}
}

func TestLoadAllSourceError(t *testing.T) {
	ctx := context.Background()
	sc := NewStoreConfigCache(newMemCache(), &staticSource{err: errors.New("db down")})

	if err := sc.LoadAll(ctx); err == nil {
		t.Error("LoadAll() error = nil, want error")
	}
}

func TestGuildIDFromKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"storeConfigs:12345", "12345"},
		{"premium:12345", ""},
		{"storeConfigs:", ""},
	}

	for _, tt := range tests {
		if got := GuildIDFromKey(tt.key); got != tt.want {
			t.Errorf("GuildIDFromKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
