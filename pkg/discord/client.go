// Package discord provides the Discord bot client and related structures.
// It wraps discordgo with additional functionality for command and event handling.
package discord

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/taskcord/store-bot/pkg/cache"
	"github.com/taskcord/store-bot/pkg/config"
	"github.com/taskcord/store-bot/pkg/logger"
	"github.com/taskcord/store-bot/pkg/premium"
)

// DiscordGoLogger wraps the custom logger to implement discordgo.Logger interface
// Note: discordgo.Logger is a function, not an interface
func init() {
	discordgo.Logger = func(msgL int, caller int, format string, a ...interface{}) {
		logger.Info(fmt.Sprintf(format, a...), "DiscordGo")
	}
}

// ModalHandlerFunc handles a modal submit interaction
type ModalHandlerFunc func(ctx *CommandContext, customID string) error

// ComponentHandlerFunc handles a button or select-menu interaction
type ComponentHandlerFunc func(ctx *CommandContext, customID string) error

// Dependencies are the services the client hands to commands and
// handlers.
type Dependencies struct {
	Premium      *premium.Service
	StoreConfigs *cache.StoreConfigCache
	KV           cache.Cache
	DevAdminIDs  []string
}

// ExtendedClient wraps discordgo.Session with additional functionality
type ExtendedClient struct {
	Session        *discordgo.Session
	Commands       *CommandCollection
	CommandHandler *CommandHandler
	EventHandler   *EventHandler
	Premium        *premium.Service
	StoreConfigs   *cache.StoreConfigCache
	KV             cache.Cache
	DevAdminIDs    []string
	StartTime      time.Time

	modalHandlers     map[string]ModalHandlerFunc
	componentHandlers map[string]ComponentHandlerFunc
	mu                sync.RWMutex
	isReady           bool
}

// CommandCollection holds registered commands
type CommandCollection struct {
	commands map[string]*Command
	mu       sync.RWMutex
}

// NewCommandCollection creates a new CommandCollection
func NewCommandCollection() *CommandCollection {
	return &CommandCollection{
		commands: make(map[string]*Command),
	}
}

// Set adds or updates a command
func (cc *CommandCollection) Set(name string, cmd *Command) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.commands[name] = cmd
}

// Get retrieves a command by name
func (cc *CommandCollection) Get(name string) (*Command, bool) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	cmd, ok := cc.commands[name]
	return cmd, ok
}

// Size returns the number of commands
func (cc *CommandCollection) Size() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.commands)
}

// All returns all commands
func (cc *CommandCollection) All() map[string]*Command {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	result := make(map[string]*Command)
	for k, v := range cc.commands {
		result[k] = v
	}
	return result
}

var (
	client *ExtendedClient
	once   sync.Once
)

// Init initializes the global Discord client
func Init(token string, deps Dependencies) (*ExtendedClient, error) {
	var err error
	once.Do(func() {
		client, err = NewClient(token, deps)
	})
	return client, err
}

// Get returns the global Discord client
func Get() *ExtendedClient {
	return client
}

// NewClient creates a new ExtendedClient
func NewClient(token string, deps Dependencies) (*ExtendedClient, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	// Set intents
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages

	// Configure session
	session.SyncEvents = false
	session.StateEnabled = true
	session.LogLevel = discordgo.LogWarning

	c := &ExtendedClient{
		Session:           session,
		Commands:          NewCommandCollection(),
		Premium:           deps.Premium,
		StoreConfigs:      deps.StoreConfigs,
		KV:                deps.KV,
		DevAdminIDs:       deps.DevAdminIDs,
		modalHandlers:     make(map[string]ModalHandlerFunc),
		componentHandlers: make(map[string]ComponentHandlerFunc),
		isReady:           false,
	}

	// Initialize handlers
	c.CommandHandler = NewCommandHandler(c)
	c.EventHandler = NewEventHandler(c)

	return c, nil
}

// RegisterModalHandler routes modal submits whose custom ID equals the
// prefix, or starts with prefix + "_", to the given handler.
func (c *ExtendedClient) RegisterModalHandler(prefix string, handler ModalHandlerFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modalHandlers[prefix] = handler
}

// RegisterComponentHandler routes button and select-menu interactions by
// custom ID prefix, same matching rules as modals.
func (c *ExtendedClient) RegisterComponentHandler(prefix string, handler ComponentHandlerFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.componentHandlers[prefix] = handler
}

// Start initializes and starts the bot
func (c *ExtendedClient) Start() error {
	// Load commands
	if err := c.CommandHandler.LoadCommands(); err != nil {
		logger.Error("Failed to load commands: "+err.Error(), "Client")
		return err
	}

	// Load events
	if err := c.EventHandler.LoadEvents(); err != nil {
		logger.Error("Failed to load events: "+err.Error(), "Client")
		return err
	}

	// Add ready handler
	c.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		c.mu.Lock()
		c.isReady = true
		c.mu.Unlock()

		logger.Success("Bot connected as: "+r.User.Username, "Client")

		// Register commands with Discord
		c.CommandHandler.RegisterCommands()
	})

	// Add interaction handler
	c.Session.AddHandler(c.handleInteraction)

	// Set start time
	c.StartTime = time.Now()

	// Open connection
	err := c.Session.Open()
	if err != nil {
		return err
	}
	return nil
}

// commandNameFor builds the full command name including subcommands.
func commandNameFor(data discordgo.ApplicationCommandInteractionData) string {
	commandName := data.Name
	if len(data.Options) > 0 {
		opt := data.Options[0]
		if opt.Type == discordgo.ApplicationCommandOptionSubCommandGroup {
			if len(opt.Options) > 0 {
				commandName = data.Name + "." + opt.Name + "." + opt.Options[0].Name
			}
		} else if opt.Type == discordgo.ApplicationCommandOptionSubCommand {
			commandName = data.Name + "." + opt.Name
		}
	}
	return commandName
}

// handleInteraction handles incoming Discord interactions
func (c *ExtendedClient) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := &CommandContext{
		Session:     s,
		Interaction: i,
		Client:      c,
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommandAutocomplete:
		commandName := commandNameFor(i.ApplicationCommandData())
		cmd, ok := c.Commands.Get(commandName)
		if !ok || cmd.AutoComplete == nil {
			return
		}
		cmd.AutoComplete(ctx)

	case discordgo.InteractionApplicationCommand:
		commandName := commandNameFor(i.ApplicationCommandData())
		cmd, ok := c.Commands.Get(commandName)
		if !ok {
			logger.Warn("Command not found: "+commandName, "Client")
			return
		}

		if err := c.CheckGates(ctx, cmd); err != nil {
			return
		}

		if err := cmd.Run(ctx); err != nil {
			logger.Error("Error executing command "+commandName+": "+err.Error(), "Client")
		}

	case discordgo.InteractionModalSubmit:
		customID := i.ModalSubmitData().CustomID
		handler, ok := c.lookupModalHandler(customID)
		if !ok {
			logger.Warn("No modal handler for: "+customID, "Client")
			return
		}
		if err := handler(ctx, customID); err != nil {
			logger.Error("Error handling modal "+customID+": "+err.Error(), "Client")
		}

	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		handler, ok := c.lookupComponentHandler(customID)
		if !ok {
			logger.Warn("No component handler for: "+customID, "Client")
			return
		}
		if err := handler(ctx, customID); err != nil {
			logger.Error("Error handling component "+customID+": "+err.Error(), "Client")
		}
	}
}

func (c *ExtendedClient) lookupModalHandler(customID string) (ModalHandlerFunc, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for prefix, handler := range c.modalHandlers {
		if customID == prefix || strings.HasPrefix(customID, prefix+"_") {
			return handler, true
		}
	}
	return nil, false
}

func (c *ExtendedClient) lookupComponentHandler(customID string) (ComponentHandlerFunc, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for prefix, handler := range c.componentHandlers {
		if customID == prefix || strings.HasPrefix(customID, prefix+"_") {
			return handler, true
		}
	}
	return nil, false
}

// Stop stops the bot and closes the session
func (c *ExtendedClient) Stop() error {
	c.mu.Lock()
	c.isReady = false
	c.mu.Unlock()

	if c.Session != nil {
		return c.Session.Close()
	}
	return nil
}

// IsReady returns true if the bot is ready
func (c *ExtendedClient) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isReady
}

// GuildCount returns the number of guilds the bot is in
func (c *ExtendedClient) GuildCount() int {
	if c.Session == nil || c.Session.State == nil {
		return 0
	}
	c.Session.State.RLock()
	defer c.Session.State.RUnlock()
	return len(c.Session.State.Guilds)
}

// GetConfig returns the bot configuration
func (c *ExtendedClient) GetConfig() *config.Config {
	return config.Get()
}
