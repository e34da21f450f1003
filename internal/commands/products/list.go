// Package products - /list-products command
package products

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
)

// createListProductsCommand creates the /list-products command
func createListProductsCommand() *discord.Command {
	return discord.NewCommand(
		"list-products",
		"List all products in this server's store",
		"products",
		listProductsHandler,
	).InGuildOnly()
}

// listProductsHandler handles the /list-products command
func listProductsHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID

	products, err := database.GetProductsByGuild(guildID)
	if err != nil {
		return err
	}

	if len(products) == 0 {
		return ctx.ReplyEphemeral("🛒 This store has no products yet.")
	}

	cfg := ctx.Client.StoreConfigs.GetConfig(context.Background(), guildID)
	currency := cfg.Currency
	if currency == "" {
		currency = "$"
	}

	var sb strings.Builder
	for _, p := range products {
		status := "✅"
		if !p.IsAvailable {
			status = "⛔"
		}
		sb.WriteString(fmt.Sprintf("%s **%s** — %s%.2f\n", status, p.Name, currency, p.Price))
	}

	embed := embeds.Info("🛒 Store Products", sb.String())
	return ctx.ReplyEmbed(embed)
}
