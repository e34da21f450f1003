// Package orders - /create-order command
package orders

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
)

// createCreateOrderCommand creates the /create-order command
func createCreateOrderCommand() *discord.Command {
	return discord.NewCommand(
		"create-order",
		"Create an order for a customer",
		"orders",
		createOrderHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "product",
			Description:  "Product being purchased",
			Required:     true,
			Autocomplete: true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "customer",
			Description: "Member placing the order",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "payment-method",
			Description:  "How the customer will pay",
			Required:     true,
			Autocomplete: true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionNumber,
			Name:        "amount",
			Description: "Amount to be paid (defaults to the product price)",
			Required:    false,
		},
	).RequiresBotAdmin().RequiresPremium().
		WithAutoComplete(createOrderAutocomplete)
}

// createOrderAutocomplete dispatches to the right helper for whichever
// option is focused
func createOrderAutocomplete(ctx *discord.CommandContext) {
	focused := ctx.FocusedOption()
	if focused == nil {
		ctx.RespondChoices(nil)
		return
	}
	switch focused.Name {
	case "product":
		orderProductAutocomplete(ctx)
	case "payment-method":
		orderPaymentMethodAutocomplete(ctx)
	default:
		ctx.RespondChoices(nil)
	}
}

// createOrderHandler handles the /create-order command
func createOrderHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID
	productID := ctx.GetStringOption("product")
	customer := ctx.GetUserOption("customer")
	paymentMethod := ctx.GetStringOption("payment-method")
	amount := ctx.GetNumberOption("amount")

	if customer == nil {
		return ctx.ReplyEphemeral("❌ A customer is required.")
	}

	product, err := database.GetProduct(guildID, productID)
	if err != nil {
		if errors.Is(err, database.ErrProductNotFound) || errors.Is(err, database.ErrInvalidProductID) {
			return ctx.ReplyEphemeral("❌ That product could not be found.")
		}
		return err
	}
	if !product.IsAvailable {
		return ctx.ReplyEphemeral(fmt.Sprintf("⛔ **%s** is not available right now.", product.Name))
	}

	if amount <= 0 {
		amount = product.Price
	}

	order, err := database.CreateOrder(guildID, customer.ID, product, paymentMethod, amount)
	if err != nil {
		return err
	}

	embed := embeds.Success("Order Created",
		fmt.Sprintf("Order `%s` created for <@%s>.", order.ID.Hex(), customer.ID))
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Product", Value: order.ProductName, Inline: true},
		{Name: "Amount", Value: fmt.Sprintf("%.2f", order.PaymentAmount), Inline: true},
		{Name: "Payment Method", Value: order.PaymentMethod, Inline: true},
		{Name: "Status", Value: statusLine(order)},
	}
	return ctx.ReplyEmbed(embed)
}
