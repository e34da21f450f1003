// Package utility - /health-check command
package utility

import (
	"context"
	"fmt"
	"time"

	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/errors"
)

// createHealthCheckCommand creates the /health-check command
func createHealthCheckCommand() *discord.Command {
	return discord.NewCommand(
		"health-check",
		"Show the health of the bot's backing services",
		"utility",
		healthCheckHandler,
	).AsDevAdmin()
}

// healthCheckHandler probes Mongo and Redis and reports both
func healthCheckHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		probeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		dbState := "🟢 Online"
		if latency, err := database.Get().Ping(); err != nil {
			dbState = "🔴 " + err.Error()
		} else {
			dbState = fmt.Sprintf("🟢 Online (%dms)", latency.Milliseconds())
		}

		cacheState := "🟢 Online"
		if _, _, err := ctx.Client.KV.Get(probeCtx, "healthcheck"); err != nil {
			cacheState = "🔴 " + err.Error()
		}

		ctx.ReplyEphemeral(fmt.Sprintf(
			"🩺 **Health Check**\n"+
				"• Bot: 🟢 Online\n"+
				"• Database: %s\n"+
				"• Cache: %s\n"+
				"• Servers: %d",
			dbState,
			cacheState,
			ctx.Client.GuildCount(),
		))
	}()
	return nil
}
