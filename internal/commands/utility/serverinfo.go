// Package utility - /server-info command
package utility

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/errors"
)

// createServerInfoCommand creates the /server-info command
func createServerInfoCommand() *discord.Command {
	return discord.NewCommand(
		"server-info",
		"Show information about this server's store",
		"utility",
		serverInfoHandler,
	).InGuildOnly()
}

// serverInfoHandler handles the /server-info command
func serverInfoHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		guild := ctx.Guild()
		if guild == nil {
			ctx.ReplyEphemeral("❌ Could not load this server's information.")
			return
		}

		productCount := 0
		if products, err := database.GetProductsByGuild(guild.ID); err == nil {
			productCount = len(products)
		}
		methodCount := 0
		if methods, err := database.GetPaymentMethodsByGuild(guild.ID); err == nil {
			methodCount = len(methods)
		}

		embed := &discordgo.MessageEmbed{
			Title: "🏠 " + guild.Name,
			Color: 0x5865F2,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "👥 Members", Value: fmt.Sprintf("%d", guild.MemberCount), Inline: true},
				{Name: "🛒 Products", Value: fmt.Sprintf("%d", productCount), Inline: true},
				{Name: "💳 Payment Methods", Value: fmt.Sprintf("%d", methodCount), Inline: true},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}
		if guild.Icon != "" {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: guild.IconURL("")}
		}

		ctx.ReplyEmbed(embed)
	}()
	return nil
}
