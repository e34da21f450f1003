// Package events - guild join/leave handlers
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/logger"
)

// RegisterGuildEvents registers the guild join/leave event handlers
func RegisterGuildEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(func(s *discordgo.Session, g *discordgo.GuildCreate) {
		onGuildCreate(client, g)
	})
	client.Session.AddHandler(func(s *discordgo.Session, g *discordgo.GuildDelete) {
		onGuildDelete(client, g)
	})
}

// onGuildCreate ensures the new guild has a premium record so its
// starter trial begins at join time
func onGuildCreate(client *discord.ExtendedClient, g *discordgo.GuildCreate) {
	logger.Info(fmt.Sprintf("📥 Joined guild: %s (%s)", g.Name, g.ID), "Guild")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	info, err := client.Premium.EnsureRecord(ctx, g.ID)
	if err != nil {
		logger.Error(fmt.Sprintf("Could not ensure premium record for %s: %v", g.ID, err), "Guild")
		return
	}
	if info.IsTrial && info.TrialEndDate != nil {
		logger.Info(fmt.Sprintf("Guild %s trial runs until %s", g.ID, info.TrialEndDate.Format(time.RFC3339)), "Guild")
	}
}

// onGuildDelete logs the departure. The premium record is kept so the
// trial does not reset if the guild re-adds the bot.
func onGuildDelete(client *discord.ExtendedClient, g *discordgo.GuildDelete) {
	if g.Unavailable {
		logger.Warn(fmt.Sprintf("Guild unavailable: %s", g.ID), "Guild")
		return
	}
	logger.Info(fmt.Sprintf("📤 Left guild: %s", g.ID), "Guild")
}
