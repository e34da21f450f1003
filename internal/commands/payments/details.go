// Package payments - /payment-method-details command
package payments

import (
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
)

// createPaymentMethodDetailsCommand creates the /payment-method-details command
func createPaymentMethodDetailsCommand() *discord.Command {
	return discord.NewCommand(
		"payment-method-details",
		"Show the full details of a payment method",
		"payments",
		paymentMethodDetailsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "method",
			Description:  "Payment method to inspect",
			Required:     true,
			Autocomplete: true,
		},
	).RequiresBotAdmin().RequiresPremium().
		WithAutoComplete(paymentMethodAutocomplete)
}

// paymentMethodDetailsHandler handles the /payment-method-details command
func paymentMethodDetailsHandler(ctx *discord.CommandContext) error {
	methodID := ctx.GetStringOption("method")

	method, err := database.GetPaymentMethod(ctx.Interaction.GuildID, methodID)
	if err != nil {
		if errors.Is(err, database.ErrPaymentMethodNotFound) || errors.Is(err, database.ErrInvalidPaymentMethodID) {
			return ctx.ReplyEphemeral("❌ That payment method could not be found.")
		}
		return err
	}

	title := method.Name
	if method.Emoji != "" {
		title = method.Emoji + " " + title
	}

	embed := embeds.Info("💳 "+title, "")
	if method.PhoneNumber != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Phone Number", Value: method.PhoneNumber, Inline: true,
		})
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name: "Added", Value: method.CreatedAt.Format("2006-01-02"), Inline: true,
	})
	if method.QRCodeImage != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: method.QRCodeImage}
	}

	return ctx.ReplyEphemeralEmbed(embed)
}
