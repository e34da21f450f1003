// Package products - /product-details command
package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
)

// createProductDetailsCommand creates the /product-details command
func createProductDetailsCommand() *discord.Command {
	return discord.NewCommand(
		"product-details",
		"Show the full details of a product",
		"products",
		productDetailsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "product",
			Description:  "Product to inspect",
			Required:     true,
			Autocomplete: true,
		},
	).InGuildOnly().
		WithAutoComplete(productAutocomplete)
}

// productDetailsHandler handles the /product-details command
func productDetailsHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID
	productID := ctx.GetStringOption("product")

	product, err := database.GetProduct(guildID, productID)
	if err != nil {
		if errors.Is(err, database.ErrProductNotFound) || errors.Is(err, database.ErrInvalidProductID) {
			return ctx.ReplyEphemeral("❌ That product could not be found.")
		}
		return err
	}

	cfg := ctx.Client.StoreConfigs.GetConfig(context.Background(), guildID)
	currency := cfg.Currency
	if currency == "" {
		currency = "$"
	}

	availability := "Available"
	if !product.IsAvailable {
		availability = "Unavailable"
	}

	embed := embeds.Info("📦 "+product.Name, product.Description)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Price", Value: fmt.Sprintf("%s%.2f", currency, product.Price), Inline: true},
		{Name: "Status", Value: availability, Inline: true},
		{Name: "Added", Value: product.CreatedAt.Format("2006-01-02"), Inline: true},
	}
	return ctx.ReplyEmbed(embed)
}
