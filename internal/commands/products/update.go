// Package products - /update-product command
package products

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
)

// createUpdateProductCommand creates the /update-product command
func createUpdateProductCommand() *discord.Command {
	return discord.NewCommand(
		"update-product",
		"Update an existing product",
		"products",
		updateProductHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "product",
			Description:  "Product to update",
			Required:     true,
			Autocomplete: true,
		},
	).RequiresBotAdmin().RequiresPremium().
		WithAutoComplete(productAutocomplete)
}

// updateProductHandler opens the update modal prefilled with the
// product's current values
func updateProductHandler(ctx *discord.CommandContext) error {
	productID := ctx.GetStringOption("product")

	product, err := database.GetProduct(ctx.Interaction.GuildID, productID)
	if err != nil {
		if errors.Is(err, database.ErrProductNotFound) || errors.Is(err, database.ErrInvalidProductID) {
			return ctx.ReplyEphemeral("❌ That product could not be found.")
		}
		return err
	}

	availability := "yes"
	if !product.IsAvailable {
		availability = "no"
	}

	return ctx.ReplyModal("updateProductModal_"+product.ID.Hex(), "Update Product", []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:  "name",
				Label:     "Product name",
				Style:     discordgo.TextInputShort,
				Required:  true,
				MaxLength: 100,
				Value:     product.Name,
			},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:  "description",
				Label:     "Description",
				Style:     discordgo.TextInputParagraph,
				Required:  true,
				MaxLength: 1000,
				Value:     product.Description,
			},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:  "price",
				Label:     "Price",
				Style:     discordgo.TextInputShort,
				Required:  true,
				MaxLength: 12,
				Value:     fmt.Sprintf("%.2f", product.Price),
			},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    "available",
				Label:       "Available (yes/no)",
				Style:       discordgo.TextInputShort,
				Required:    true,
				MaxLength:   3,
				Value:       availability,
				Placeholder: "yes or no",
			},
		}},
	})
}
