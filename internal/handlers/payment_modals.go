// Package handlers - payment-method modal submissions
package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
	"go.mongodb.org/mongo-driver/bson"
)

// handleAddPaymentMethodModal creates a payment method from the
// add-payment-method modal
func handleAddPaymentMethodModal(ctx *discord.CommandContext, customID string) error {
	name := ctx.ModalValue("name")
	emoji := ctx.ModalValue("emoji")
	phone := ctx.ModalValue("phone")
	qr := ctx.ModalValue("qr")

	method, err := database.CreatePaymentMethod(ctx.Interaction.GuildID, name, emoji, phone, qr)
	if err != nil {
		if errors.Is(err, database.ErrPaymentMethodLimit) {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ This store already has the maximum of %d payment methods.", database.MaxPaymentMethods))
		}
		return err
	}

	return ctx.ReplyEmbed(embeds.Success("Payment Method Added",
		fmt.Sprintf("**%s** is now accepted by this store.", method.Name)))
}

// handleUpdatePaymentMethodModal applies the update modal to the method
// encoded in the custom ID
func handleUpdatePaymentMethodModal(ctx *discord.CommandContext, customID string) error {
	methodID := strings.TrimPrefix(customID, "updatePaymentMethodModal_")

	updates := bson.M{
		"name":        ctx.ModalValue("name"),
		"emoji":       ctx.ModalValue("emoji"),
		"phoneNumber": ctx.ModalValue("phone"),
		"qrCodeImage": ctx.ModalValue("qr"),
	}

	method, err := database.UpdatePaymentMethod(ctx.Interaction.GuildID, methodID, updates)
	if err != nil {
		if errors.Is(err, database.ErrPaymentMethodNotFound) || errors.Is(err, database.ErrInvalidPaymentMethodID) {
			return ctx.ReplyEphemeral("❌ That payment method could not be found.")
		}
		return err
	}

	return ctx.ReplyEmbed(embeds.Success("Payment Method Updated",
		fmt.Sprintf("**%s** has been updated.", method.Name)))
}
