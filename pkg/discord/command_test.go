package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestCommandCreation verifies that commands can be created with the builder pattern
func TestCommandCreation(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("test", "Test command", "test", handler)

	if cmd == nil {
		t.Fatal("NewCommand returned nil")
	}

	if cmd.Name != "test" {
		t.Errorf("Name = %v, want %v", cmd.Name, "test")
	}

	if cmd.Description != "Test command" {
		t.Errorf("Description = %v, want %v", cmd.Description, "Test command")
	}

	if cmd.Category != "test" {
		t.Errorf("Category = %v, want %v", cmd.Category, "test")
	}

	if cmd.Run == nil {
		t.Error("Run function is nil")
	}
}

// TestCommandWithOptions verifies the WithOptions builder method
func TestCommandWithOptions(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "test-option",
		Description: "Test option",
		Required:    true,
	}

	cmd := NewCommand("test", "Test command", "test", handler).
		WithOptions(option)

	if cmd.Options == nil {
		t.Fatal("Options is nil")
	}

	if len(cmd.Options) != 1 {
		t.Fatalf("Options length = %v, want %v", len(cmd.Options), 1)
	}

	if cmd.Options[0].Name != "test-option" {
		t.Errorf("Option name = %v, want %v", cmd.Options[0].Name, "test-option")
	}
}

// TestGatingBuilders verifies the access-gate builder methods
func TestGatingBuilders(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("test", "Test command", "test", handler).
		RequiresBotAdmin().
		RequiresPremium()

	if !cmd.BotAdmin {
		t.Error("BotAdmin should be true after RequiresBotAdmin()")
	}
	if !cmd.Premium {
		t.Error("Premium should be true after RequiresPremium()")
	}
	if !cmd.GuildOnly {
		t.Error("GuildOnly should be implied by admin/premium gates")
	}

	dev := NewCommand("dev", "Dev command", "admin", handler).AsDevAdmin()
	if !dev.DevAdmin {
		t.Error("DevAdmin should be true after AsDevAdmin()")
	}
}

// TestToApplicationCommand verifies conversion to Discord application command
func TestToApplicationCommand(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "test-option",
		Description: "Test option",
		Required:    true,
	}

	cmd := NewCommand("test", "Test command", "test", handler).
		WithOptions(option)

	appCmd := cmd.ToApplicationCommand()

	if appCmd == nil {
		t.Fatal("ToApplicationCommand returned nil")
	}

	if appCmd.Name != "test" {
		t.Errorf("ApplicationCommand Name = %v, want %v", appCmd.Name, "test")
	}

	if len(appCmd.Options) != 1 {
		t.Fatalf("ApplicationCommand Options length = %v, want %v", len(appCmd.Options), 1)
	}

	if appCmd.DefaultMemberPermissions != nil {
		t.Error("DefaultMemberPermissions should be nil when no user permissions are set")
	}

	gated := NewCommand("admin-only", "Admin", "test", handler).
		WithUserPermissions(discordgo.PermissionAdministrator).
		ToApplicationCommand()
	if gated.DefaultMemberPermissions == nil || *gated.DefaultMemberPermissions != discordgo.PermissionAdministrator {
		t.Error("DefaultMemberPermissions should carry the user permissions")
	}
}

// TestCommandCollection verifies command storage and lookup
func TestCommandCollection(t *testing.T) {
	cc := NewCommandCollection()

	handler := func(ctx *CommandContext) error {
		return nil
	}
	cmd := NewCommand("ping", "Ping", "utility", handler)

	cc.Set(cmd.Name, cmd)

	got, ok := cc.Get("ping")
	if !ok {
		t.Fatal("Get(ping) not found")
	}
	if got.Name != "ping" {
		t.Errorf("Name = %v, want %v", got.Name, "ping")
	}
	if cc.Size() != 1 {
		t.Errorf("Size() = %v, want %v", cc.Size(), 1)
	}

	if _, ok := cc.Get("missing"); ok {
		t.Error("Get(missing) found, want not found")
	}
}

// TestIsDevAdmin verifies the operator allowlist check
func TestIsDevAdmin(t *testing.T) {
	c := &ExtendedClient{DevAdminIDs: []string{"111", "222"}}

	if !c.IsDevAdmin("111") {
		t.Error("IsDevAdmin(111) = false, want true")
	}
	if c.IsDevAdmin("333") {
		t.Error("IsDevAdmin(333) = true, want false")
	}
}
