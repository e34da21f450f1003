package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	os.Setenv("botToken", "test-token")
	os.Setenv("PORT", "3001")
	os.Setenv("enviroment", "test")
	defer func() {
		os.Unsetenv("botToken")
		os.Unsetenv("PORT")
		os.Unsetenv("enviroment")
	}()

	resetForTesting()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if config.BotToken != "test-token" {
		t.Errorf("BotToken = %v, want %v", config.BotToken, "test-token")
	}

	if config.Port != "3001" {
		t.Errorf("Port = %v, want %v", config.Port, "3001")
	}

	if config.Environment != "test" {
		t.Errorf("Environment = %v, want %v", config.Environment, "test")
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if got := getEnv("TEST_VAR", "default"); got != "test-value" {
		t.Errorf("getEnv() = %v, want %v", got, "test-value")
	}

	if got := getEnv("NON_EXISTENT_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %v, want %v", got, "default")
	}
}

func TestPremiumDefaults(t *testing.T) {
	os.Unsetenv("premiumCacheTtl")
	os.Unsetenv("premiumRefreshInterval")
	os.Unsetenv("premiumExpiryBuffer")
	os.Unsetenv("premiumSafetyMargin")
	os.Unsetenv("trialDays")

	resetForTesting()
	config, _ := Load()

	if config.PremiumCacheTTL != time.Hour {
		t.Errorf("PremiumCacheTTL default = %v, want %v", config.PremiumCacheTTL, time.Hour)
	}

	if config.PremiumExpiryBuffer != 3*time.Minute {
		t.Errorf("PremiumExpiryBuffer default = %v, want %v", config.PremiumExpiryBuffer, 3*time.Minute)
	}

	if config.PremiumSafetyMargin != 180*time.Second {
		t.Errorf("PremiumSafetyMargin default = %v, want %v", config.PremiumSafetyMargin, 180*time.Second)
	}

	if config.TrialDays != 7 {
		t.Errorf("TrialDays default = %v, want %v", config.TrialDays, 7)
	}
}

func TestDevAdminIDs(t *testing.T) {
	os.Setenv("devAdminIds", "111, 222,333,")
	defer os.Unsetenv("devAdminIds")

	resetForTesting()
	config, _ := Load()

	want := []string{"111", "222", "333"}
	if len(config.DevAdminIDs) != len(want) {
		t.Fatalf("DevAdminIDs length = %v, want %v", len(config.DevAdminIDs), len(want))
	}
	for i, id := range want {
		if config.DevAdminIDs[i] != id {
			t.Errorf("DevAdminIDs[%d] = %v, want %v", i, config.DevAdminIDs[i], id)
		}
	}
}

func TestIsProd(t *testing.T) {
	resetForTesting()
	os.Setenv("enviroment", "prod")
	config, _ := Load()

	if !config.IsProd() {
		t.Error("IsProd() should return true when environment is 'prod'")
	}

	resetForTesting()
	os.Setenv("enviroment", "dev")
	config, _ = Load()

	if config.IsProd() {
		t.Error("IsProd() should return false when environment is not 'prod'")
	}

	os.Unsetenv("enviroment")
}

func TestDefaultValues(t *testing.T) {
	os.Unsetenv("botToken")
	os.Unsetenv("devGuildId")
	os.Unsetenv("mongodbUrl")
	os.Unsetenv("dbName")
	os.Unsetenv("redisUrl")
	os.Unsetenv("PORT")
	os.Unsetenv("enviroment")

	resetForTesting()
	config, _ := Load()

	if config.MongoDBURL != "mongodb://localhost:27017" {
		t.Errorf("MongoDBURL default = %v, want %v", config.MongoDBURL, "mongodb://localhost:27017")
	}

	if config.DBName != "taskcord" {
		t.Errorf("DBName default = %v, want %v", config.DBName, "taskcord")
	}

	if config.RedisURL != "redis://localhost:6379" {
		t.Errorf("RedisURL default = %v, want %v", config.RedisURL, "redis://localhost:6379")
	}

	if config.Port != "3000" {
		t.Errorf("Port default = %v, want %v", config.Port, "3000")
	}

	if config.Environment != "dev" {
		t.Errorf("Environment default = %v, want %v", config.Environment, "dev")
	}
}
