// Package handlers - purchase flow buttons
package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
)

// handlePaymentMethodButton creates an order for the pressing member and
// shows the payment instructions. Custom ID layout:
// paymentMethod_<methodID>_<productID>
func handlePaymentMethodButton(ctx *discord.CommandContext, customID string) error {
	parts := strings.Split(strings.TrimPrefix(customID, "paymentMethod_"), "_")
	if len(parts) != 2 {
		return fmt.Errorf("malformed payment button id %q", customID)
	}
	methodID, productID := parts[0], parts[1]
	guildID := ctx.Interaction.GuildID

	user := ctx.User()
	if user == nil {
		return ctx.ReplyEphemeral("❌ Could not identify you.")
	}

	product, err := database.GetProduct(guildID, productID)
	if err != nil {
		if errors.Is(err, database.ErrProductNotFound) || errors.Is(err, database.ErrInvalidProductID) {
			return ctx.ReplyEphemeral("❌ That product is no longer available.")
		}
		return err
	}
	if !product.IsAvailable {
		return ctx.ReplyEphemeral(fmt.Sprintf("⛔ **%s** is not available right now.", product.Name))
	}

	method, err := database.GetPaymentMethod(guildID, methodID)
	if err != nil {
		if errors.Is(err, database.ErrPaymentMethodNotFound) || errors.Is(err, database.ErrInvalidPaymentMethodID) {
			return ctx.ReplyEphemeral("❌ That payment method is no longer available.")
		}
		return err
	}

	order, err := database.CreateOrder(guildID, user.ID, product, method.Name, product.Price)
	if err != nil {
		return err
	}

	embed := embeds.Info("🧾 Order "+order.ID.Hex(),
		fmt.Sprintf("Pay **%.2f** for **%s** using **%s**, then wait for staff to confirm your payment.",
			order.PaymentAmount, order.ProductName, method.Name))
	if method.PhoneNumber != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Phone Number", Value: method.PhoneNumber, Inline: true,
		})
	}
	if method.QRCodeImage != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: method.QRCodeImage}
	}

	var components []discordgo.MessageComponent
	if method.PhoneNumber != "" {
		components = append(components, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Show phone number",
				Style:    discordgo.SecondaryButton,
				CustomID: "copyPhoneNumber_" + method.ID.Hex(),
			},
		}})
	}

	return ctx.Session.InteractionRespond(ctx.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

// handleCopyPhoneNumberButton replies with the raw phone number so
// mobile users can long-press to copy it
func handleCopyPhoneNumberButton(ctx *discord.CommandContext, customID string) error {
	methodID := strings.TrimPrefix(customID, "copyPhoneNumber_")

	method, err := database.GetPaymentMethod(ctx.Interaction.GuildID, methodID)
	if err != nil {
		if errors.Is(err, database.ErrPaymentMethodNotFound) || errors.Is(err, database.ErrInvalidPaymentMethodID) {
			return ctx.ReplyEphemeral("❌ That payment method is no longer available.")
		}
		return err
	}
	if method.PhoneNumber == "" {
		return ctx.ReplyEphemeral("❌ This payment method has no phone number.")
	}

	return ctx.ReplyEphemeral(method.PhoneNumber)
}
