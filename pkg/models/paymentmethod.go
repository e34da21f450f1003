package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentMethod is a way customers can pay a guild's store (mobile banking
// number, QR code, etc.). Guilds are capped at a small fixed number of them.
type PaymentMethod struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Emoji       string             `bson:"emoji,omitempty" json:"emoji,omitempty"`
	PhoneNumber string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	QRCodeImage string             `bson:"qrCodeImage,omitempty" json:"qrCodeImage,omitempty"`
	GuildID     string             `bson:"guildId" json:"guildId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
