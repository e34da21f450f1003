// Package orders - /list-orders command
package orders

import (
	"fmt"
	"strings"

	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
	"github.com/taskcord/store-bot/pkg/models"
)

// listOrdersPageSize bounds the embed so it stays under Discord's
// description limit.
const listOrdersPageSize = 15

// createListOrdersCommand creates the /list-orders command
func createListOrdersCommand() *discord.Command {
	return discord.NewCommand(
		"list-orders",
		"List this store's orders",
		"orders",
		listOrdersHandler,
	).RequiresBotAdmin().RequiresPremium()
}

// listOrdersHandler handles the /list-orders command
func listOrdersHandler(ctx *discord.CommandContext) error {
	list, err := database.GetOrdersByGuild(ctx.Interaction.GuildID)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		return ctx.ReplyEphemeral("📭 This store has no orders yet.")
	}

	var sb strings.Builder
	shown := 0
	for _, o := range list {
		if shown >= listOrdersPageSize {
			sb.WriteString(fmt.Sprintf("…and %d more\n", len(list)-shown))
			break
		}
		sb.WriteString(fmt.Sprintf("%s `%s` **%s** by <@%s> — %s\n",
			orderIcon(o), o.ID.Hex(), o.ProductName, o.CustomerID, o.PaymentStatus))
		shown++
	}

	return ctx.ReplyEphemeralEmbed(embeds.Info("📦 Orders", sb.String()))
}

func orderIcon(o *models.Order) string {
	switch {
	case o.ConfirmationStatus == models.ConfirmationCancelled:
		return "❌"
	case o.DeliveryStatus == models.DeliveryDelivered:
		return "📬"
	case o.PaymentStatus == models.PaymentCompleted:
		return "✅"
	default:
		return "⏳"
	}
}
