// Package admin - /extend-trial command
package admin

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
)

// createExtendTrialCommand creates the /extend-trial command
func createExtendTrialCommand() *discord.Command {
	return discord.NewCommand(
		"extend-trial",
		"Extend a guild's trial period",
		"admin",
		extendTrialHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "guild-id",
			Description: "Guild whose trial to extend",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "days",
			Description: "Days to add",
			Required:    true,
			MinValue:    float64Ptr(1),
			MaxValue:    365,
		},
	).AsDevAdmin()
}

func float64Ptr(v float64) *float64 { return &v }

// extendTrialHandler handles the /extend-trial command
func extendTrialHandler(ctx *discord.CommandContext) error {
	guildID := ctx.GetStringOption("guild-id")
	days := int(ctx.GetIntOption("days"))

	info, err := ctx.Client.Premium.ExtendTrial(context.Background(), guildID, days)
	if err != nil {
		return err
	}

	end := "unset"
	if info.TrialEndDate != nil {
		end = info.TrialEndDate.Format("2006-01-02 15:04 MST")
	}
	return ctx.ReplyEphemeralEmbed(embeds.Success("Trial Extended",
		fmt.Sprintf("Guild `%s` trial extended by %d days.\nTrial now ends: **%s**", guildID, days, end)))
}
