// Package orders - /cancel-order command
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

// createCancelOrderCommand creates the /cancel-order command
func createCancelOrderCommand() *discord.Command {
	return discord.NewCommand(
		"cancel-order",
		"Cancel an order",
		"orders",
		cancelOrderHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "order",
			Description:  "Order to cancel",
			Required:     true,
			Autocomplete: true,
		},
	).RequiresBotAdmin().RequiresPremium().
		WithAutoComplete(orderAutocomplete)
}

// cancelOrderHandler cancels the order's confirmation and delivery
func cancelOrderHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID
	orderID := ctx.GetStringOption("order")

	order, err := database.GetOrder(guildID, orderID)
	if err != nil {
		if errors.Is(err, database.ErrOrderNotFound) || errors.Is(err, database.ErrInvalidOrderID) {
			return ctx.ReplyEphemeral("❌ That order could not be found.")
		}
		return err
	}
	if order.DeliveryStatus == models.DeliveryDelivered {
		return ctx.ReplyEphemeral("❌ That order was already delivered and cannot be cancelled.")
	}
	if order.ConfirmationStatus == models.ConfirmationCancelled {
		return ctx.ReplyEphemeral("ℹ️ That order is already cancelled.")
	}

	update := models.OrderUpdate{
		ConfirmationStatus: models.ConfirmationCancelled,
		DeliveryStatus:     models.DeliveryCancelled,
	}
	if order.PaymentStatus == models.PaymentCompleted {
		update.PaymentStatus = models.PaymentRefunded
	} else {
		update.PaymentStatus = models.PaymentFailed
	}

	updated, err := database.UpdateOrder(guildID, orderID, update)
	if err != nil {
		return err
	}

	embed := embeds.Success("Order Cancelled",
		fmt.Sprintf("Order `%s` for **%s** has been cancelled.", updated.ID.Hex(), updated.ProductName))
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Status", Value: statusLine(updated)},
	}
	return ctx.ReplyEmbed(embed)
}
