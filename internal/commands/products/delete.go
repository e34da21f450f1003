// Package products - /delete-product command
package products

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
)

// createDeleteProductCommand creates the /delete-product command
func createDeleteProductCommand() *discord.Command {
	return discord.NewCommand(
		"delete-product",
		"Remove a product from the store catalog",
		"products",
		deleteProductHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "product",
			Description:  "Product to delete",
			Required:     true,
			Autocomplete: true,
		},
	).RequiresBotAdmin().RequiresPremium().
		WithAutoComplete(productAutocomplete)
}

// deleteProductHandler handles the /delete-product command
func deleteProductHandler(ctx *discord.CommandContext) error {
	productID := ctx.GetStringOption("product")

	product, err := database.GetProduct(ctx.Interaction.GuildID, productID)
	if err != nil {
		if errors.Is(err, database.ErrProductNotFound) || errors.Is(err, database.ErrInvalidProductID) {
			return ctx.ReplyEphemeral("❌ That product could not be found.")
		}
		return err
	}

	if err := database.DeleteProduct(ctx.Interaction.GuildID, productID); err != nil {
		return err
	}

	return ctx.ReplyEmbed(embeds.Success("Product Deleted",
		fmt.Sprintf("**%s** has been removed from the catalog.", product.Name)))
}
