// Package admin - /revoke-premium and /grant-premium commands
package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
)

// createRevokePremiumCommand creates the /revoke-premium command
func createRevokePremiumCommand() *discord.Command {
	return discord.NewCommand(
		"revoke-premium",
		"Revoke a guild's premium and trial access",
		"admin",
		revokePremiumHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "guild-id",
			Description: "Guild to revoke",
			Required:    true,
		},
	).AsDevAdmin()
}

// revokePremiumHandler handles the /revoke-premium command
func revokePremiumHandler(ctx *discord.CommandContext) error {
	guildID := ctx.GetStringOption("guild-id")

	if _, err := ctx.Client.Premium.RevokePremium(context.Background(), guildID); err != nil {
		return err
	}

	return ctx.ReplyEphemeralEmbed(embeds.Success("Premium Revoked",
		fmt.Sprintf("Guild `%s` no longer has premium or trial access.", guildID)))
}

// createGrantPremiumCommand creates the /grant-premium command
func createGrantPremiumCommand() *discord.Command {
	return discord.NewCommand(
		"grant-premium",
		"Grant a guild premium access for a number of days",
		"admin",
		grantPremiumHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "guild-id",
			Description: "Guild to grant premium to",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "days",
			Description: "Days of premium access",
			Required:    true,
			MinValue:    float64Ptr(1),
			MaxValue:    3650,
		},
	).AsDevAdmin()
}

// grantPremiumHandler handles the /grant-premium command
func grantPremiumHandler(ctx *discord.CommandContext) error {
	guildID := ctx.GetStringOption("guild-id")
	days := int(ctx.GetIntOption("days"))

	until := time.Now().AddDate(0, 0, days)
	info, err := ctx.Client.Premium.GrantPremium(context.Background(), guildID, until)
	if err != nil {
		return err
	}

	expiry := "unset"
	if info.PremiumExpiryDate != nil {
		expiry = info.PremiumExpiryDate.Format("2006-01-02 15:04 MST")
	}
	return ctx.ReplyEphemeralEmbed(embeds.Success("Premium Granted",
		fmt.Sprintf("Guild `%s` has premium until **%s**.", guildID, expiry)))
}
