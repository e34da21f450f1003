// Package handlers - order delivery modal
package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
	"github.com/taskcord/store-bot/pkg/logger"
	"github.com/taskcord/store-bot/pkg/models"
)

// handleDeliveryModal marks the order delivered and DMs the content to
// the customer. Delivery is recorded even when the DM fails so staff can
// resend it manually.
func handleDeliveryModal(ctx *discord.CommandContext, customID string) error {
	orderID := strings.TrimPrefix(customID, "deliveryProduct_")
	content := ctx.ModalValue("content")

	order, err := database.GetOrder(ctx.Interaction.GuildID, orderID)
	if err != nil {
		if errors.Is(err, database.ErrOrderNotFound) || errors.Is(err, database.ErrInvalidOrderID) {
			return ctx.ReplyEphemeral("❌ That order could not be found.")
		}
		return err
	}

	updated, err := database.UpdateOrder(ctx.Interaction.GuildID, orderID, models.OrderUpdate{
		DeliveryStatus: models.DeliveryDelivered,
		DeliveryInfo:   content,
	})
	if err != nil {
		return err
	}

	delivered := true
	if channel, err := ctx.Session.UserChannelCreate(order.CustomerID); err != nil {
		delivered = false
	} else {
		dm := &discordgo.MessageSend{
			Embeds: []*discordgo.MessageEmbed{embeds.Success(
				"📬 Your order has arrived",
				fmt.Sprintf("**%s**\n\n%s", updated.ProductName, content),
			)},
		}
		if _, err := ctx.Session.ChannelMessageSendComplex(channel.ID, dm); err != nil {
			delivered = false
		}
	}

	if !delivered {
		logger.Warn("Could not DM delivery for order "+updated.ID.Hex(), "Handlers")
		return ctx.ReplyEphemeralEmbed(embeds.Info("Order Delivered",
			fmt.Sprintf("Order `%s` is marked delivered, but <@%s> could not be messaged. Send the content to them manually.",
				updated.ID.Hex(), order.CustomerID)))
	}

	return ctx.ReplyEmbed(embeds.Success("Order Delivered",
		fmt.Sprintf("Order `%s` delivered to <@%s>.", updated.ID.Hex(), order.CustomerID)))
}
