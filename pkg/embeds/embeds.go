// Package embeds provides shared embed constructors used across
// commands and handlers.
package embeds

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	ColorSuccess = 0x00FF00
	ColorError   = 0xFF0000
	ColorInfo    = 0x0000FF
	ColorPremium = 0xFFD700
)

const footerText = "Taskcord Store Bot"

// Success builds a green confirmation embed.
func Success(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       ColorSuccess,
		Footer:      &discordgo.MessageEmbedFooter{Text: footerText},
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

// Error builds a red error embed.
func Error(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       ColorError,
		Footer:      &discordgo.MessageEmbedFooter{Text: footerText},
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

// Info builds a neutral informational embed.
func Info(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       ColorInfo,
		Footer:      &discordgo.MessageEmbedFooter{Text: footerText},
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

// RetryLater is shown when a transient failure prevents a command from
// completing. No internal detail is exposed.
func RetryLater() *discordgo.MessageEmbed {
	return Error("Something went wrong", "We couldn't complete that right now. Please try again in a moment.")
}

// PremiumUpgrade is shown when a gated command is denied for lack of
// premium or trial access.
func PremiumUpgrade() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "⭐ Premium Required",
		Description: "This feature requires an active premium subscription or trial.\n\n" +
			"Use `/premium` to check your server's status, or upgrade to unlock the full storefront.",
		Color:     ColorPremium,
		Footer:    &discordgo.MessageEmbedFooter{Text: footerText},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
