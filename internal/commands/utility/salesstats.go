// Package utility - /sales-stats command
package utility

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
)

// createSalesStatsCommand creates the /sales-stats command
func createSalesStatsCommand() *discord.Command {
	return discord.NewCommand(
		"sales-stats",
		"Show this store's sales totals",
		"utility",
		salesStatsHandler,
	).RequiresBotAdmin()
}

// salesStatsHandler handles the /sales-stats command
func salesStatsHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID

	stats, err := database.GetSalesStats(guildID)
	if err != nil {
		return err
	}

	cfg := ctx.Client.StoreConfigs.GetConfig(context.Background(), guildID)
	currency := cfg.Currency
	if currency == "" {
		currency = "$"
	}

	embed := embeds.Info("📈 Sales Stats", "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Total Orders", Value: fmt.Sprintf("%d", stats.TotalOrders), Inline: true},
		{Name: "Completed", Value: fmt.Sprintf("%d", stats.CompletedOrders), Inline: true},
		{Name: "Pending", Value: fmt.Sprintf("%d", stats.PendingOrders), Inline: true},
		{Name: "Revenue", Value: fmt.Sprintf("%s%.2f", currency, stats.Revenue), Inline: true},
	}
	return ctx.ReplyEphemeralEmbed(embed)
}
