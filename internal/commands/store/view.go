// Package store - /view-store-config command
package store

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
)

// createViewStoreConfigCommand creates the /view-store-config command
func createViewStoreConfigCommand() *discord.Command {
	return discord.NewCommand(
		"view-store-config",
		"Show this server's store settings",
		"store",
		viewStoreConfigHandler,
	).RequiresBotAdmin()
}

// viewStoreConfigHandler handles the /view-store-config command
func viewStoreConfigHandler(ctx *discord.CommandContext) error {
	cfg := ctx.Client.StoreConfigs.GetConfig(context.Background(), ctx.Interaction.GuildID)

	adminRole := "Not set (server admins only)"
	if cfg.BotAdminRoleID != "" {
		adminRole = "<@&" + cfg.BotAdminRoleID + ">"
	}
	currency := cfg.Currency
	if currency == "" {
		currency = "$ (default)"
	}

	embed := embeds.Info("⚙️ Store Configuration", "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Admin Role", Value: adminRole, Inline: true},
		{Name: "Currency", Value: currency, Inline: true},
	}
	return ctx.ReplyEphemeralEmbed(embed)
}
