// Package payments provides the payment-method commands.
package payments

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
)

// RegisterPaymentCommands registers all payment-method commands
func RegisterPaymentCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createAddPaymentMethodCommand())
	client.CommandHandler.RegisterCommand(createUpdatePaymentMethodCommand())
	client.CommandHandler.RegisterCommand(createDeletePaymentMethodCommand())
	client.CommandHandler.RegisterCommand(createListPaymentMethodsCommand())
	client.CommandHandler.RegisterCommand(createPaymentMethodDetailsCommand())
}

// paymentMethodAutocomplete answers method-name autocomplete, value =
// method hex ID.
func paymentMethodAutocomplete(ctx *discord.CommandContext) {
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
			Value: m.ID.Hex(),
		})
	}
	ctx.RespondChoices(choices)
}
