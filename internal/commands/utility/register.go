// Package utility provides the general-purpose commands.
package utility

import (
	"github.com/taskcord/store-bot/pkg/discord"
)

// RegisterUtilityCommands registers the general-purpose commands
func RegisterUtilityCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createPingCommand())
	client.CommandHandler.RegisterCommand(createUptimeCommand())
	client.CommandHandler.RegisterCommand(createServerInfoCommand())
	client.CommandHandler.RegisterCommand(createPremiumCommand())
	client.CommandHandler.RegisterCommand(createSalesStatsCommand())
	client.CommandHandler.RegisterCommand(createHealthCheckCommand())
}
