// Package main is the entry point for the Taskcord store bot.
// It initializes all systems and starts the Discord bot.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taskcord/store-bot/internal/commands"
	"github.com/taskcord/store-bot/internal/events"
	"github.com/taskcord/store-bot/internal/handlers"
	"github.com/taskcord/store-bot/pkg/cache"
	"github.com/taskcord/store-bot/pkg/config"
	"github.com/taskcord/store-bot/pkg/database"
	"github.com/taskcord/store-bot/pkg/discord"
	"github.com/taskcord/store-bot/pkg/errors"
	"github.com/taskcord/store-bot/pkg/logger"
	"github.com/taskcord/store-bot/pkg/premium"
	"github.com/taskcord/store-bot/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Starting Taskcord store bot...", "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			if err := discordClient.Stop(); err != nil {
				return
			}
		}
	})

	// Initialize database
	db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
	if err != nil {
		logger.Error(fmt.Sprintf("Error connecting to database: %v", err), "Main")
		// Continue without database - it will attempt to reconnect
	}
	defer func() {
		if db != nil {
			if err := db.Disconnect(); err != nil {
				return
			}
		}
	}()

	// Initialize global DataManagers
	if db != nil {
		database.InitGlobalDataManagers(db)
	}

	// Initialize Redis
	startupCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	kv, err := cache.NewRedisCache(startupCtx, cfg.RedisURL)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error connecting to Redis: %v", err), "Main")
		os.Exit(1)
	}
	defer kv.Close()

	// Warm the store-config cache
	storeConfigs := cache.NewStoreConfigCache(kv, database.StoreConfigProvider{})
	if err := storeConfigs.LoadAll(startupCtx); err != nil {
		logger.Warn(fmt.Sprintf("Error warming store-config cache: %v", err), "Main")
	}

	// Premium service with periodic refresh of expiring subscriptions
	premiumSvc := premium.NewService(database.NewPremiumStore(db), kv, premium.Options{
		CacheTTL:     cfg.PremiumCacheTTL,
		ExpiryBuffer: cfg.PremiumExpiryBuffer,
		SafetyMargin: cfg.PremiumSafetyMargin,
		TrialDays:    cfg.TrialDays,
	})
	premiumSvc.StartAutoRefresh(cfg.PremiumRefreshEvery)
	defer premiumSvc.StopAutoRefresh()

	// Initialize web server
	webServer := web.Init(cfg.LogsWebhook)
	web.SetupAPIRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken, discord.Dependencies{
		Premium:      premiumSvc,
		StoreConfigs: storeConfigs,
		KV:           kv,
		DevAdminIDs:  cfg.DevAdminIDs,
	})
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Register commands, interaction handlers and events
	commands.RegisterAll(discordClient)
	handlers.RegisterHandlers(discordClient)
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		if err := discordClient.Stop(); err != nil {
			return
		}
	}(discordClient)

	logger.Success("Taskcord store bot started!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Shutting down Taskcord store bot...", "Main")
}
