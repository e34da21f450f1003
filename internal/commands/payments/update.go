// Package payments - /update-payment-method command
package payments

import (
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
)

// createUpdatePaymentMethodCommand creates the /update-payment-method command
func createUpdatePaymentMethodCommand() *discord.Command {
	return discord.NewCommand(
		"update-payment-method",
		"Update a payment method",
		"payments",
		updatePaymentMethodHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "method",
			Description:  "Payment method to update",
			Required:     true,
			Autocomplete: true,
		},
	).RequiresBotAdmin().RequiresPremium().
		WithAutoComplete(paymentMethodAutocomplete)
}

// updatePaymentMethodHandler opens the update modal prefilled with the
// method's current values
func updatePaymentMethodHandler(ctx *discord.CommandContext) error {
	methodID := ctx.GetStringOption("method")

	method, err := database.GetPaymentMethod(ctx.Interaction.GuildID, methodID)
	if err != nil {
		if errors.Is(err, database.ErrPaymentMethodNotFound) || errors.Is(err, database.ErrInvalidPaymentMethodID) {
			return ctx.ReplyEphemeral("❌ That payment method could not be found.")
		}
		return err
	}

	return ctx.ReplyModal("updatePaymentMethodModal_"+method.ID.Hex(), "Update Payment Method",
		paymentMethodModalInputs(method.Name, method.Emoji, method.PhoneNumber, method.QRCodeImage))
}
