// Package orders - /order-details command
package orders

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
)

// createOrderDetailsCommand creates the /order-details command
func createOrderDetailsCommand() *discord.Command {
	return discord.NewCommand(
		"order-details",
		"Show the full details of an order",
		"orders",
		orderDetailsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "order",
			Description:  "Order to inspect",
			Required:     true,
			Autocomplete: true,
		},
	).RequiresBotAdmin().RequiresPremium().
		WithAutoComplete(orderAutocomplete)
}

// orderDetailsHandler handles the /order-details command
func orderDetailsHandler(ctx *discord.CommandContext) error {
	orderID := ctx.GetStringOption("order")

	order, err := database.GetOrder(ctx.Interaction.GuildID, orderID)
	if err != nil {
		if errors.Is(err, database.ErrOrderNotFound) || errors.Is(err, database.ErrInvalidOrderID) {
			return ctx.ReplyEphemeral("❌ That order could not be found.")
		}
		return err
	}

	embed := embeds.Info("📦 Order "+order.ID.Hex(), "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Product", Value: order.ProductName, Inline: true},
		{Name: "Customer", Value: fmt.Sprintf("<@%s>", order.CustomerID), Inline: true},
		{Name: "Amount", Value: fmt.Sprintf("%.2f", order.PaymentAmount), Inline: true},
		{Name: "Payment Method", Value: order.PaymentMethod, Inline: true},
		{Name: "Payment", Value: string(order.PaymentStatus), Inline: true},
		{Name: "Confirmation", Value: string(order.ConfirmationStatus), Inline: true},
		{Name: "Delivery", Value: string(order.DeliveryStatus), Inline: true},
		{Name: "Created", Value: order.CreatedAt.Format("2006-01-02 15:04"), Inline: true},
	}
	if order.DeliveryInfo != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Delivery Info", Value: order.DeliveryInfo,
		})
	}
	return ctx.ReplyEphemeralEmbed(embed)
}
