package database

import (
	"context"
	"errors"

	"github.com/taskcord/store-bot/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

var ErrStoreConfigManagerNotInitialized = errors.New("store config data manager not initialized")

func getStoreConfigManager() (*DataManager[models.StoreConfig], error) {
	if GlobalStoreConfigDM == nil {
		return nil, ErrStoreConfigManagerNotInitialized
	}
	return GlobalStoreConfigDM, nil
}

// GetStoreConfig returns a guild's store configuration, or nil when the
// guild has never configured a store.
func GetStoreConfig(guildID string) (*models.StoreConfig, error) {
	dm, err := getStoreConfigManager()
	if err != nil {
		return nil, err
	}
	return dm.Get(bson.M{"guildId": guildID})
}

// UpsertStoreConfig creates or replaces a guild's store configuration.
func UpsertStoreConfig(cfg models.StoreConfig) (*models.StoreConfig, error) {
	dm, err := getStoreConfigManager()
	if err != nil {
		return nil, err
	}
	return dm.Set(bson.M{"guildId": cfg.GuildID}, cfg)
}

// DeleteStoreConfig removes a guild's store configuration.
func DeleteStoreConfig(guildID string) error {
	dm, err := getStoreConfigManager()
	if err != nil {
		return err
	}
	return dm.Delete(bson.M{"guildId": guildID})
}

// StoreConfigProvider adapts the store config service to the cache
// loader interface in pkg/cache.
type StoreConfigProvider struct{}

// GetAllConfigs returns every guild's store configuration.
func (StoreConfigProvider) GetAllConfigs(ctx context.Context) ([]models.StoreConfig, error) {
	dm, err := getStoreConfigManager()
	if err != nil {
		return nil, err
	}

	docs, err := dm.GetAll(bson.M{})
	if err != nil {
		return nil, err
	}

	configs := make([]models.StoreConfig, 0, len(docs))
	for _, doc := range docs {
		configs = append(configs, *doc)
	}
	return configs, nil
}
