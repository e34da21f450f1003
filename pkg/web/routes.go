// Package web provides API routes for the web server.
package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server) {
	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/premium/:guildId", premiumStatusHandler)
	}
}

// statusHandler returns the bot and database status
func statusHandler(c *gin.Context) {
	db := database.Get()
	client := discord.Get()

	dbStatus, dbOnline := db.GetStatus()

	botOnline := false
	if client != nil {
		botOnline = client.IsReady()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"database": gin.H{
			"status":   dbStatus,
			"isOnline": dbOnline,
		},
		"bot": gin.H{
			"isOnline": botOnline,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Taskcord Store Bot is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "The bot is not available right now.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}

// premiumStatusHandler reports whether a guild currently has access
func premiumStatusHandler(c *gin.Context) {
	client := discord.Get()
	if client == nil || client.Premium == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Premium service unavailable",
		})
		return
	}

	guildID := c.Param("guildId")

	hasAccess, err := client.Premium.HasAccess(c.Request.Context(), guildID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Unable to determine access",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"guildId":   guildID,
		"hasAccess": hasAccess,
		"checkedAt": time.Now().Format(time.RFC3339),
	})
}
