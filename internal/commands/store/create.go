// Package store - /create-store command
package store

import (
	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
)

// createCreateStoreCommand creates the /create-store command
func createCreateStoreCommand() *discord.Command {
	return discord.NewCommand(
		"create-store",
		"Set up a store for this server",
		"store",
		createStoreHandler,
	).InGuildOnly().
		WithUserPermissions(discordgo.PermissionAdministrator)
}

// createStoreHandler opens the store setup modal
func createStoreHandler(ctx *discord.CommandContext) error {
	existing, err := database.GetStoreConfig(ctx.Interaction.GuildID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ctx.ReplyEphemeral("ℹ️ This server already has a store. Use /config-store to change its settings.")
	}

	return ctx.ReplyModal("createStoreModal", "Create Store", []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    "currency",
				Label:       "Currency symbol",
				Style:       discordgo.TextInputShort,
				Required:    true,
				MaxLength:   5,
				Placeholder: "$",
			},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    "adminrole",
				Label:       "Bot admin role ID (optional)",
				Style:       discordgo.TextInputShort,
				Required:    false,
				MaxLength:   25,
				Placeholder: "Right-click a role and Copy ID",
			},
		}},
	})
}
