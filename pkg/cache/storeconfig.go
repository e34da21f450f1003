package cache

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/taskcord/store-bot/pkg/logger"
	"github.com/taskcord/store-bot/pkg/models"
)

const storeConfigKeyPrefix = "storeConfigs:"

// StoreConfigSource loads store configurations from the backing database.
// Implemented by the store config service in pkg/database.
type StoreConfigSource interface {
	GetAllConfigs(ctx context.Context) ([]models.StoreConfig, error)
}

// StoreConfigCache keeps per-guild store configuration in Redis so
// command handlers can read admin-role and currency settings without a
// database round trip. Entries are stored without expiry and rewritten
// on every config change.
type StoreConfigCache struct {
	cache  Cache
	source StoreConfigSource
}

// NewStoreConfigCache creates a cache backed by the given key-value
// store and database source.
func NewStoreConfigCache(cache Cache, source StoreConfigSource) *StoreConfigCache {
	return &StoreConfigCache{cache: cache, source: source}
}

func storeConfigKey(guildID string) string {
	return storeConfigKeyPrefix + guildID
}

// LoadAll reads every store configuration from the database and writes
// them into the cache. Called once at startup.
func (s *StoreConfigCache) LoadAll(ctx context.Context) error {
	configs, err := s.source.GetAllConfigs(ctx)
	if err != nil {
		return fmt.Errorf("loading store configs: %w", err)
	}

	for _, cfg := range configs {
		if err := s.SetConfig(ctx, cfg); err != nil {
			logger.Error(fmt.Sprintf("Failed to cache store config for guild %s: %v", cfg.GuildID, err), "Cache")
		}
	}

	logger.Success(fmt.Sprintf("Loaded %d store configs into cache", len(configs)), "Cache")
	return nil
}

// GetConfig returns the cached configuration for a guild. A missing or
// malformed entry yields a zero-value config for that guild so callers
// always have usable defaults.
func (s *StoreConfigCache) GetConfig(ctx context.Context, guildID string) models.StoreConfig {
	fallback := models.StoreConfig{GuildID: guildID}

	raw, found, err := s.cache.Get(ctx, storeConfigKey(guildID))
	if err != nil {
		logger.Warn(fmt.Sprintf("Store config cache read failed for guild %s: %v", guildID, err), "Cache")
		return fallback
	}
	if !found {
		return fallback
	}

	var cfg models.StoreConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		logger.Warn(fmt.Sprintf("Malformed store config cache entry for guild %s: %v", guildID, err), "Cache")
		return fallback
	}
	cfg.GuildID = guildID
	return cfg
}

// SetConfig writes a guild's configuration into the cache, replacing
// any previous entry. Entries do not expire.
func (s *StoreConfigCache) SetConfig(ctx context.Context, cfg models.StoreConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding store config: %w", err)
	}
	return s.cache.Set(ctx, storeConfigKey(cfg.GuildID), string(data), 0)
}

// DeleteConfig removes a guild's configuration from the cache.
func (s *StoreConfigCache) DeleteConfig(ctx context.Context, guildID string) error {
	return s.cache.Del(ctx, storeConfigKey(guildID))
}

// GuildIDFromKey extracts the guild ID from a cache key, returning ""
// for keys outside the store config namespace.
func GuildIDFromKey(key string) string {
	if !strings.HasPrefix(key, storeConfigKeyPrefix) {
		return ""
	}
	return strings.TrimPrefix(key, storeConfigKeyPrefix)
}
