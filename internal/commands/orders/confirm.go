// Package orders - /confirm-order command
package orders

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
	"github.com/taskcord/store-bot/pkg/models"
)

// createConfirmOrderCommand creates the /confirm-order command
func createConfirmOrderCommand() *discord.Command {
	return discord.NewCommand(
		"confirm-order",
		"Confirm an order's payment",
		"orders",
		confirmOrderHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "order",
			Description:  "Order to confirm",
			Required:     true,
			Autocomplete: true,
		},
	).RequiresBotAdmin().RequiresPremium().
		WithAutoComplete(orderAutocomplete)
}

// confirmOrderHandler marks the order's payment complete and confirms it
func confirmOrderHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID
	orderID := ctx.GetStringOption("order")

	order, err := database.GetOrder(guildID, orderID)
	if err != nil {
		if errors.Is(err, database.ErrOrderNotFound) || errors.Is(err, database.ErrInvalidOrderID) {
			return ctx.ReplyEphemeral("❌ That order could not be found.")
		}
		return err
	}
	if order.ConfirmationStatus == models.ConfirmationCancelled {
		return ctx.ReplyEphemeral("❌ That order was cancelled and cannot be confirmed.")
	}
	if order.ConfirmationStatus == models.ConfirmationConfirmed {
		return ctx.ReplyEphemeral("ℹ️ That order is already confirmed.")
	}

	updated, err := database.UpdateOrder(guildID, orderID, models.OrderUpdate{
		PaymentStatus:      models.PaymentCompleted,
		ConfirmationStatus: models.ConfirmationConfirmed,
	})
	if err != nil {
		return err
	}

	embed := embeds.Success("Order Confirmed",
		fmt.Sprintf("Order `%s` for **%s** is confirmed and paid.", updated.ID.Hex(), updated.ProductName))
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Status", Value: statusLine(updated)},
	}
	return ctx.ReplyEmbed(embed)
}
