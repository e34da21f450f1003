// Package admin provides the operator-only and dashboard commands.
package admin

import (
	"github.com/taskcord/store-bot/pkg/discord"
)

// RegisterAdminCommands registers the operator and dashboard commands
func RegisterAdminCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createExtendTrialCommand())
	client.CommandHandler.RegisterCommand(createRevokePremiumCommand())
	client.CommandHandler.RegisterCommand(createGrantPremiumCommand())
	client.CommandHandler.RegisterCommand(createDashboardCommand())
}
