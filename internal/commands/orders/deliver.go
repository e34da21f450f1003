// Package orders - /deliver-product command
package orders

import (
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/models"
)

// createDeliverProductCommand creates the /deliver-product command
func createDeliverProductCommand() *discord.Command {
	return discord.NewCommand(
		"deliver-product",
		"Deliver a paid order to its customer",
		"orders",
		deliverProductHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "order",
			Description:  "Order to deliver",
			Required:     true,
			Autocomplete: true,
		},
	).RequiresBotAdmin().RequiresPremium().
		WithAutoComplete(orderAutocomplete)
}

// deliverProductHandler opens the delivery modal for a confirmed order
func deliverProductHandler(ctx *discord.CommandContext) error {
	order, err := database.GetOrder(ctx.Interaction.GuildID, ctx.GetStringOption("order"))
	if err != nil {
		if errors.Is(err, database.ErrOrderNotFound) || errors.Is(err, database.ErrInvalidOrderID) {
			return ctx.ReplyEphemeral("❌ That order could not be found.")
		}
		return err
	}
	if order.ConfirmationStatus != models.ConfirmationConfirmed {
		return ctx.ReplyEphemeral("❌ Confirm the order before delivering it.")
	}
	if order.DeliveryStatus == models.DeliveryDelivered {
		return ctx.ReplyEphemeral("ℹ️ That order was already delivered.")
	}

	return ctx.ReplyModal("deliveryProduct_"+order.ID.Hex(), "Deliver "+order.ProductName, []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    "content",
				Label:       "Delivery content",
				Style:       discordgo.TextInputParagraph,
				Required:    true,
				MaxLength:   2000,
				Placeholder: "License key, download link, account details...",
			},
		}},
	})
}
