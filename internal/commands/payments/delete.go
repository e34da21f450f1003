// Package payments - /delete-payment-method command
package payments

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
)

// createDeletePaymentMethodCommand creates the /delete-payment-method command
func createDeletePaymentMethodCommand() *discord.Command {
	return discord.NewCommand(
		"delete-payment-method",
		"Remove a payment method from the store",
		"payments",
		deletePaymentMethodHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "method",
			Description:  "Payment method to delete",
			Required:     true,
			Autocomplete: true,
		},
	).RequiresBotAdmin().RequiresPremium().
		WithAutoComplete(paymentMethodAutocomplete)
}

// deletePaymentMethodHandler handles the /delete-payment-method command
func deletePaymentMethodHandler(ctx *discord.CommandContext) error {
	methodID := ctx.GetStringOption("method")

	method, err := database.GetPaymentMethod(ctx.Interaction.GuildID, methodID)
	if err != nil {
		if errors.Is(err, database.ErrPaymentMethodNotFound) || errors.Is(err, database.ErrInvalidPaymentMethodID) {
			return ctx.ReplyEphemeral("❌ That payment method could not be found.")
		}
		return err
	}

	if err := database.DeletePaymentMethod(ctx.Interaction.GuildID, methodID); err != nil {
		return err
	}

	return ctx.ReplyEmbed(embeds.Success("Payment Method Deleted",
		fmt.Sprintf("**%s** has been removed from the store.", method.Name)))
}
