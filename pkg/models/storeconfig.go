package models

// StoreConfig holds the per-guild store settings. The bot-admin role gates
// store management commands and the currency is displayed on every price.
type StoreConfig struct {
	GuildID        string `bson:"guildId" json:"guildId"`
	BotAdminRoleID string `bson:"botAdminRoleId" json:"botAdminRoleId"`
	Currency       string `bson:"currency" json:"currency"`
}
