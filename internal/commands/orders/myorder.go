// Package orders - /my-order command
package orders

import (
	"fmt"
	"strings"

	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
)

// createMyOrderCommand creates the /my-order command
func createMyOrderCommand() *discord.Command {
	return discord.NewCommand(
		"my-order",
		"Show your orders in this store",
		"orders",
		myOrderHandler,
	).InGuildOnly()
}

// myOrderHandler lists the calling member's own orders
func myOrderHandler(ctx *discord.CommandContext) error {
	user := ctx.User()
	if user == nil {
		return ctx.ReplyEphemeral("❌ Could not identify you.")
	}

	list, err := database.GetOrdersByCustomer(ctx.Interaction.GuildID, user.ID)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		return ctx.ReplyEphemeral("📭 You have no orders in this store.")
	}

	var sb strings.Builder
	for _, o := range list {
		sb.WriteString(fmt.Sprintf("%s **%s** — %.2f\n    %s\n",
			orderIcon(o), o.ProductName, o.PaymentAmount, statusLine(o)))
	}

	return ctx.ReplyEphemeralEmbed(embeds.Info("🧾 Your Orders", sb.String()))
}
