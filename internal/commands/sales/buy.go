// Package sales - /buy command
package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
)

// createBuyCommand creates the /buy command
func createBuyCommand() *discord.Command {
	return discord.NewCommand(
		"buy",
		"Buy a product from this store",
		"sales",
		buyHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "product",
			Description:  "Product to buy",
			Required:     true,
			Autocomplete: true,
		},
	).InGuildOnly().
		WithAutoComplete(availableProductAutocomplete)
}

// buyHandler shows the product with one payment button per configured
// method; pressing a button creates the order
func buyHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID
	productID := ctx.GetStringOption("product")

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

	methods, err := database.GetPaymentMethodsByGuild(guildID)
	if err != nil {
		return err
	}
	if len(methods) == 0 {
		return ctx.ReplyEphemeral("❌ This store has no payment methods configured yet.")
	}

	cfg := ctx.Client.StoreConfigs.GetConfig(context.Background(), guildID)
	currency := cfg.Currency
	if currency == "" {
		currency = "$"
	}

	embed := embeds.Info("🛒 "+product.Name, product.Description)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Price", Value: fmt.Sprintf("%s%.2f", currency, product.Price), Inline: true},
	}

	buttons := make([]discordgo.MessageComponent, 0, len(methods))
	for _, m := range methods {
		btn := discordgo.Button{
			Label:    m.Name,
			Style:    discordgo.PrimaryButton,
			CustomID: "paymentMethod_" + m.ID.Hex() + "_" + product.ID.Hex(),
		}
		if m.Emoji != "" {
			btn.Emoji = &discordgo.ComponentEmoji{Name: m.Emoji}
		}
		buttons = append(buttons, btn)
	}

	return ctx.Session.InteractionRespond(ctx.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: buttons},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}
