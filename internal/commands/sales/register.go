// Package sales provides the customer-facing purchase commands.
package sales

import (
	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
)

// RegisterSalesCommands registers the customer-facing sales commands
func RegisterSalesCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createBuyCommand())
}

// availableProductAutocomplete answers product autocomplete, restricted
// to products customers can actually buy.
func availableProductAutocomplete(ctx *discord.CommandContext) {
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
		if !p.IsAvailable {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  p.Name,
			Value: p.ID.Hex(),
		})
	}
	ctx.RespondChoices(choices)
}
