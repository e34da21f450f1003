// Package store - /config-store command
package store

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
	"github.com/taskcord/store-bot/pkg/models"
)

// createConfigStoreCommand creates the /config-store command
func createConfigStoreCommand() *discord.Command {
	return discord.NewCommand(
		"config-store",
		"Configure this server's store settings",
		"store",
		configStoreHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "admin-role",
			Description: "Role allowed to manage the store",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "currency",
			Description: "Currency symbol shown on prices",
			Required:    false,
		},
	).InGuildOnly().
		WithUserPermissions(discordgo.PermissionAdministrator)
}

// configStoreHandler persists the settings and refreshes the cached copy
func configStoreHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID
	role := ctx.GetRoleOption("admin-role")
	currency := ctx.GetStringOption("currency")

	if role == nil && currency == "" {
		return ctx.ReplyEphemeral("ℹ️ Provide an admin role or a currency to change.")
	}

	current, err := database.GetStoreConfig(guildID)
	if err != nil {
		return err
	}

	cfg := models.StoreConfig{GuildID: guildID}
	if current != nil {
		cfg = *current
	}
	if role != nil {
		cfg.BotAdminRoleID = role.ID
	}
	if currency != "" {
		cfg.Currency = currency
	}

	saved, err := database.UpsertStoreConfig(cfg)
	if err != nil {
		return err
	}
	if err := ctx.Client.StoreConfigs.SetConfig(context.Background(), *saved); err != nil {
		return err
	}

	desc := ""
	if saved.BotAdminRoleID != "" {
		desc += fmt.Sprintf("Admin role: <@&%s>\n", saved.BotAdminRoleID)
	}
	if saved.Currency != "" {
		desc += "Currency: " + saved.Currency + "\n"
	}
	return ctx.ReplyEmbed(embeds.Success("Store Configured", desc))
}
