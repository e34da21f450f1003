// Package products provides the product catalog commands.
// Each command is in its own file for better organization.
package products

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
)

// RegisterProductCommands registers all product commands
func RegisterProductCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createAddProductCommand())
	client.CommandHandler.RegisterCommand(createUpdateProductCommand())
	client.CommandHandler.RegisterCommand(createDeleteProductCommand())
	client.CommandHandler.RegisterCommand(createListProductsCommand())
	client.CommandHandler.RegisterCommand(createProductDetailsCommand())
}

// productAutocomplete answers product-name autocomplete with the
// guild's matching products, value = product hex ID.
func productAutocomplete(ctx *discord.CommandContext) {
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
		name := p.Name
		if !p.IsAvailable {
			name = fmt.Sprintf("%s (unavailable)", p.Name)
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: p.ID.Hex(),
		})
	}
	ctx.RespondChoices(choices)
}
