// Package store provides the store-configuration commands.
package store

import (
	"github.com/taskcord/store-bot/pkg/discord"
)

// RegisterStoreCommands registers all store configuration commands
func RegisterStoreCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createConfigStoreCommand())
	client.CommandHandler.RegisterCommand(createViewStoreConfigCommand())
	client.CommandHandler.RegisterCommand(createCreateStoreCommand())
}
