// Package products - /add-product command
package products

import (
	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/discord"
)

// createAddProductCommand creates the /add-product command
func createAddProductCommand() *discord.Command {
	return discord.NewCommand(
		"add-product",
		"Add a product to the store catalog",
		"products",
		addProductHandler,
	).RequiresBotAdmin().RequiresPremium()
}

// addProductHandler opens the add-product modal
func addProductHandler(ctx *discord.CommandContext) error {
	return ctx.ReplyModal("addProductModal", "Add Product", []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    "name",
				Label:       "Product name",
				Style:       discordgo.TextInputShort,
				Required:    true,
				MaxLength:   100,
				Placeholder: "e.g. Nitro Boost 1 Month",
			},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:  "description",
				Label:     "Description",
				Style:     discordgo.TextInputParagraph,
				Required:  true,
				MaxLength: 1000,
			},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    "price",
				Label:       "Price",
				Style:       discordgo.TextInputShort,
				Required:    true,
				MaxLength:   12,
				Placeholder: "9.99",
			},
		}},
	})
}
