// Package handlers - store creation modal
package handlers

import (
	"context"

	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
	"github.com/taskcord/store-bot/pkg/models"
)

// handleCreateStoreModal persists the initial store configuration
func handleCreateStoreModal(ctx *discord.CommandContext, customID string) error {
	cfg := models.StoreConfig{
		GuildID:        ctx.Interaction.GuildID,
		Currency:       ctx.ModalValue("currency"),
		BotAdminRoleID: ctx.ModalValue("adminrole"),
	}

	saved, err := database.UpsertStoreConfig(cfg)
	if err != nil {
		return err
	}
	if err := ctx.Client.StoreConfigs.SetConfig(context.Background(), *saved); err != nil {
		return err
	}

	desc := "Your store is ready. Add products with /add-product and payment methods with /add-payment-method."
	return ctx.ReplyEmbed(embeds.Success("🏪 Store Created", desc))
}
