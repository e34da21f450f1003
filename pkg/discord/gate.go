package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/embeds"
	"github.com/taskcord/store-bot/pkg/logger"
)

// CheckGates runs the command's access checks in order: guild scope,
// operator allowlist, store-admin role, then premium. The first failed
// check replies to the user and returns an error so the command never
// runs.
func (c *ExtendedClient) CheckGates(ctx *CommandContext, cmd *Command) error {
	guildID := ctx.Interaction.GuildID
	userID := ctx.User().ID

	if (cmd.GuildOnly || cmd.BotAdmin || cmd.Premium) && guildID == "" {
		ctx.ReplyEphemeral("This command can only be used in a server.")
		return fmt.Errorf("command %s used outside a guild", cmd.Name)
	}

	if cmd.DevAdmin && !c.IsDevAdmin(userID) {
		ctx.ReplyEphemeralEmbed(embeds.Error("🚫 Access Denied", "This command is restricted to the bot operators."))
		logger.Warn(fmt.Sprintf("User %s attempted dev command %s", userID, cmd.Name), "Gate")
		return fmt.Errorf("user %s is not a dev admin", userID)
	}

	if cmd.BotAdmin && !c.IsBotAdmin(ctx) {
		ctx.ReplyEphemeralEmbed(embeds.Error("🚫 Access Denied", "You need the store admin role to use this command."))
		return fmt.Errorf("user %s is not a store admin in guild %s", userID, guildID)
	}

	if cmd.Premium {
		checkCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		allowed, err := c.Premium.HasAccess(checkCtx, guildID)
		if err != nil {
			// Unable to determine access: fail closed.
			logger.Error(fmt.Sprintf("Premium check failed for guild %s: %v", guildID, err), "Gate")
			ctx.ReplyEphemeralEmbed(embeds.RetryLater())
			return fmt.Errorf("premium check failed for guild %s: %w", guildID, err)
		}
		if !allowed {
			ctx.ReplyEphemeralEmbed(embeds.PremiumUpgrade())
			return fmt.Errorf("guild %s has no premium access", guildID)
		}
	}

	return nil
}

// IsDevAdmin reports whether the user is on the operator allowlist.
func (c *ExtendedClient) IsDevAdmin(userID string) bool {
	for _, id := range c.DevAdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// IsBotAdmin reports whether the invoking member may administer the
// guild's store: the configured admin role, the server owner, or any
// member with Administrator.
func (c *ExtendedClient) IsBotAdmin(ctx *CommandContext) bool {
	member := ctx.Member()
	if member == nil {
		return false
	}

	guild := ctx.Guild()
	if guild != nil && guild.OwnerID == ctx.User().ID {
		return true
	}

	if member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}

	cfgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg := c.StoreConfigs.GetConfig(cfgCtx, ctx.Interaction.GuildID)
	if cfg.BotAdminRoleID == "" {
		return false
	}
	for _, roleID := range member.Roles {
		if roleID == cfg.BotAdminRoleID {
			return true
		}
	}
	return false
}
