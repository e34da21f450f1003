// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category.
package commands

import (
	"github.com/taskcord/store-bot/internal/commands/admin"
	"github.com/taskcord/store-bot/internal/commands/orders"
	"github.com/taskcord/store-bot/internal/commands/payments"
	"github.com/taskcord/store-bot/internal/commands/products"
	"github.com/taskcord/store-bot/internal/commands/sales"
	"github.com/taskcord/store-bot/internal/commands/store"
	"github.com/taskcord/store-bot/internal/commands/utility"
	"github.com/taskcord/store-bot/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// Store setup and configuration
	store.RegisterStoreCommands(client)

	// Product catalog management
	products.RegisterProductCommands(client)

	// Payment methods
	payments.RegisterPaymentCommands(client)

	// Order lifecycle
	orders.RegisterOrderCommands(client)

	// Customer-facing purchases
	sales.RegisterSalesCommands(client)

	// Operator and dashboard commands
	admin.RegisterAdminCommands(client)

	// General-purpose commands
	utility.RegisterUtilityCommands(client)
}
