// Package utility - /premium command
package utility

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
)

// createPremiumCommand creates the /premium command
func createPremiumCommand() *discord.Command {
	return discord.NewCommand(
		"premium",
		"Show this server's premium status",
		"utility",
		premiumStatusHandler,
	).InGuildOnly()
}

// premiumStatusHandler shows the guild's premium record, creating the
// starter trial on first use
func premiumStatusHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID

	info, err := ctx.Client.Premium.EnsureRecord(context.Background(), guildID)
	if err != nil {
		return err
	}

	now := time.Now()
	var embed *discordgo.MessageEmbed
	switch {
	case info.IsPremium && info.PremiumExpiryDate != nil && info.PremiumExpiryDate.After(now):
		embed = embeds.Info("⭐ Premium Active",
			"This server has premium access until **"+info.PremiumExpiryDate.Format("2006-01-02 15:04 MST")+"**.")
		embed.Color = embeds.ColorPremium
	case info.IsTrial && info.TrialEndDate != nil && info.TrialEndDate.After(now):
		embed = embeds.Info("🎁 Trial Active",
			"This server's free trial runs until **"+info.TrialEndDate.Format("2006-01-02 15:04 MST")+"**.")
	case info.HasUsedTrial:
		embed = embeds.Info("💤 No Active Subscription",
			"This server's premium or trial access has ended. Purchase premium to keep using the store features.")
	default:
		embed = embeds.Info("💤 No Active Subscription",
			"This server has no premium access yet.")
	}

	return ctx.ReplyEmbed(embed)
}
