// Package payments - /add-payment-method command
package payments

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
)

// createAddPaymentMethodCommand creates the /add-payment-method command
func createAddPaymentMethodCommand() *discord.Command {
	return discord.NewCommand(
		"add-payment-method",
		"Add a payment method to the store",
		"payments",
		addPaymentMethodHandler,
	).RequiresBotAdmin().RequiresPremium()
}

// addPaymentMethodHandler opens the add-payment-method modal,
// enforcing the per-guild cap up front
func addPaymentMethodHandler(ctx *discord.CommandContext) error {
	methods, err := database.GetPaymentMethodsByGuild(ctx.Interaction.GuildID)
	if err != nil {
		return err
	}
	if len(methods) >= database.MaxPaymentMethods {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ This store already has the maximum of %d payment methods.", database.MaxPaymentMethods))
	}

	return ctx.ReplyModal("addPaymentMethodModal", "Add Payment Method", paymentMethodModalInputs("", "", "", ""))
}

// paymentMethodModalInputs builds the shared add/update modal rows.
func paymentMethodModalInputs(name, emoji, phone, qr string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    "name",
				Label:       "Method name",
				Style:       discordgo.TextInputShort,
				Required:    true,
				MaxLength:   50,
				Value:       name,
				Placeholder: "e.g. PromptPay",
			},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    "emoji",
				Label:       "Emoji (optional)",
				Style:       discordgo.TextInputShort,
				Required:    false,
				MaxLength:   10,
				Value:       emoji,
				Placeholder: "💳",
			},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:  "phone",
				Label:     "Phone number (optional)",
				Style:     discordgo.TextInputShort,
				Required:  false,
				MaxLength: 30,
				Value:     phone,
			},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    "qr",
				Label:       "QR code image URL (optional)",
				Style:       discordgo.TextInputShort,
				Required:    false,
				MaxLength:   300,
				Value:       qr,
				Placeholder: "https://...",
			},
		}},
	}
}
