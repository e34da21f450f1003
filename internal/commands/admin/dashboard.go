// Package admin - /dashboard command
package admin

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/taskcord/store-bot/pkg/config"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/embeds"
)

// dashboardTokenTTL bounds how long a dashboard link stays valid.
const dashboardTokenTTL = time.Hour

// createDashboardCommand creates the /dashboard command
func createDashboardCommand() *discord.Command {
	return discord.NewCommand(
		"dashboard",
		"Get a sign-in link for the store dashboard",
		"admin",
		dashboardHandler,
	).RequiresBotAdmin().RequiresPremium()
}

// dashboardHandler mints a short-lived signed link for the web dashboard
func dashboardHandler(ctx *discord.CommandContext) error {
	cfg := config.Get()
	if cfg.JWTSecret == "" || cfg.DashboardURL == "" {
		return ctx.ReplyEphemeral("❌ The dashboard is not configured on this deployment.")
	}

	user := ctx.User()
	if user == nil {
		return ctx.ReplyEphemeral("❌ Could not identify you.")
	}

	now := time.Now()
	sessionID := uuid.NewString()
	claims := jwt.MapClaims{
		"jti":   sessionID,
		"sub":   user.ID,
		"guild": ctx.Interaction.GuildID,
		"iat":   now.Unix(),
		"exp":   now.Add(dashboardTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return err
	}

	// The web API checks the session key before trusting the token, so a
	// link dies as soon as the key expires or is deleted.
	sessionKey := "dashboardSession:" + sessionID
	if err := ctx.Client.KV.Set(context.Background(), sessionKey, ctx.Interaction.GuildID, dashboardTokenTTL); err != nil {
		return err
	}

	link := cfg.DashboardURL + "/login?token=" + token
	embed := embeds.Info("🖥️ Store Dashboard",
		"[Click here to open your dashboard]("+link+")\n\nThe link is valid for one hour and only works for you.")
	return ctx.ReplyEphemeralEmbed(embed)
}
