// Package utility - /uptime command
package utility

import (
	"fmt"
	"strings"
	"time"

	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/errors"
)

// createUptimeCommand creates the /uptime command
func createUptimeCommand() *discord.Command {
	return discord.NewCommand(
		"uptime",
		"Show how long the bot has been running",
		"utility",
		uptimeHandler,
	)
}

// uptimeHandler handles the /uptime command
func uptimeHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		uptime := time.Since(ctx.Client.StartTime)
		ctx.Reply("⏱ Uptime: " + formatDuration(uptime))
	}()
	return nil
}

// formatDuration formats a time.Duration into a human-readable string
func formatDuration(dur time.Duration) string {
	days := int(dur.Hours() / 24)
	hours := int(dur.Hours()) % 24
	minutes := int(dur.Minutes()) % 60
	seconds := int(dur.Seconds()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d days", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hours", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minutes", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d seconds", seconds))
	}

	return strings.Join(parts, ", ")
}
