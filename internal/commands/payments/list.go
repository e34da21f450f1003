// Package payments - /list-payment-methods command
package payments

import (
	"fmt"
	"strings"

	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
)

// createListPaymentMethodsCommand creates the /list-payment-methods command
func createListPaymentMethodsCommand() *discord.Command {
	return discord.NewCommand(
		"list-payment-methods",
		"List this store's payment methods",
		"payments",
		listPaymentMethodsHandler,
	).InGuildOnly()
}

// listPaymentMethodsHandler handles the /list-payment-methods command
func listPaymentMethodsHandler(ctx *discord.CommandContext) error {
	methods, err := database.GetPaymentMethodsByGuild(ctx.Interaction.GuildID)
	if err != nil {
		return err
	}

	if len(methods) == 0 {
		return ctx.ReplyEphemeral("💳 This store has no payment methods yet.")
	}

	var sb strings.Builder
	for _, m := range methods {
		label := m.Name
		if m.Emoji != "" {
			label = m.Emoji + " " + label
		}
		sb.WriteString("• **" + label + "**\n")
	}
	sb.WriteString(fmt.Sprintf("\n%d of %d slots used", len(methods), database.MaxPaymentMethods))

	return ctx.ReplyEmbed(embeds.Info("💳 Payment Methods", sb.String()))
}
