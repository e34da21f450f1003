// Package orders provides the order-management commands.
package orders

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/models"
)

// RegisterOrderCommands registers all order commands
func RegisterOrderCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createCreateOrderCommand())
	client.CommandHandler.RegisterCommand(createConfirmOrderCommand())
	client.CommandHandler.RegisterCommand(createCancelOrderCommand())
	client.CommandHandler.RegisterCommand(createListOrdersCommand())
	client.CommandHandler.RegisterCommand(createOrderDetailsCommand())
	client.CommandHandler.RegisterCommand(createMyOrderCommand())
	client.CommandHandler.RegisterCommand(createDeliverProductCommand())
}

// orderAutocomplete answers order autocomplete, label =
// "<product> by <customer> (<payment status>)", value = order hex ID.
func orderAutocomplete(ctx *discord.CommandContext) {
	focused := ctx.FocusedOption()
	text := ""
	if focused != nil {
		text, _ = focused.Value.(string)
	}

	list, err := database.GetOrdersByGuild(ctx.Interaction.GuildID)
	if err != nil {
		ctx.RespondChoices(nil)
		return
	}

	needle := strings.ToLower(text)
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(list))
	for _, o := range list {
		label := fmt.Sprintf("%s (%s)", o.ProductName, o.PaymentStatus)
		if needle != "" && !strings.Contains(strings.ToLower(label), needle) &&
			!strings.Contains(o.ID.Hex(), needle) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  label,
			Value: o.ID.Hex(),
		})
	}
	ctx.RespondChoices(choices)
}

// orderProductAutocomplete answers product autocomplete for order
// creation, value = product hex ID.
func orderProductAutocomplete(ctx *discord.CommandContext) {
	focused := ctx.FocusedOption()
	text := ""
	if focused != nil {
		text, _ = focused.Value.(string)
	}

	products, err := database.SearchProducts(ctx.Interaction.GuildID, text)
	if err != nil {
		ctx.RespondChoices(nil)
		return
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(products))
	for _, p := range products {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  p.Name,
			Value: p.ID.Hex(),
		})
	}
	ctx.RespondChoices(choices)
}

// orderPaymentMethodAutocomplete answers payment-method autocomplete for
// order creation, value = the method name (orders store the name, not
// the ID, so history survives method deletion).
func orderPaymentMethodAutocomplete(ctx *discord.CommandContext) {
	focused := ctx.FocusedOption()
	text := ""
	if focused != nil {
		text, _ = focused.Value.(string)
	}

	methods, err := database.GetPaymentMethodsByGuild(ctx.Interaction.GuildID)
	if err != nil {
		ctx.RespondChoices(nil)
		return
	}

	needle := strings.ToLower(text)
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(methods))
	for _, m := range methods {
		if needle != "" && !strings.Contains(strings.ToLower(m.Name), needle) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  m.Name,
			Value: m.Name,
		})
	}
	ctx.RespondChoices(choices)
}

// statusLine renders an order's three status axes on one line.
func statusLine(o *models.Order) string {
	return fmt.Sprintf("payment: %s | confirmation: %s | delivery: %s",
		o.PaymentStatus, o.ConfirmationStatus, o.DeliveryStatus)
}
