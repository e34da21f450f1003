package database

import (
	"errors"
	"time"

	"github.com/taskcord/store-bot/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxPaymentMethods is the per-guild cap on configured payment methods.
const MaxPaymentMethods = 5

var (
	ErrPaymentMethodManagerNotInitialized = errors.New("payment method data manager not initialized")
	ErrPaymentMethodNotFound              = errors.New("payment method not found")
	ErrPaymentMethodLimit                 = errors.New("payment method limit reached")
	ErrInvalidPaymentMethodID             = errors.New("invalid payment method id")
)

func getPaymentMethodManager() (*DataManager[models.PaymentMethod], error) {
	if GlobalPaymentMethodDM == nil {
		return nil, ErrPaymentMethodManagerNotInitialized
	}
	return GlobalPaymentMethodDM, nil
}

// CreatePaymentMethod adds a payment method to a guild, enforcing the
// per-guild cap.
func CreatePaymentMethod(guildID, name, emoji, phoneNumber, qrCodeImage string) (*models.PaymentMethod, error) {
	dm, err := getPaymentMethodManager()
	if err != nil {
		return nil, err
	}

	count, err := dm.Count(bson.M{"guildId": guildID})
	if err != nil {
		return nil, err
	}
	if count >= MaxPaymentMethods {
		return nil, ErrPaymentMethodLimit
	}

	now := time.Now()
	method := models.PaymentMethod{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Emoji:       emoji,
		PhoneNumber: phoneNumber,
		QRCodeImage: qrCodeImage,
		GuildID:     guildID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return dm.Set(bson.M{"_id": method.ID}, method)
}

// GetPaymentMethod retrieves a payment method by its hex ID within a guild.
func GetPaymentMethod(guildID, methodID string) (*models.PaymentMethod, error) {
	dm, err := getPaymentMethodManager()
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(methodID)
	if err != nil {
		return nil, ErrInvalidPaymentMethodID
	}

	method, err := dm.Get(bson.M{"_id": oid, "guildId": guildID})
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, ErrPaymentMethodNotFound
	}
	return method, nil
}

// GetPaymentMethodsByGuild returns all payment methods of a guild.
func GetPaymentMethodsByGuild(guildID string) ([]*models.PaymentMethod, error) {
	dm, err := getPaymentMethodManager()
	if err != nil {
		return nil, err
	}
	return dm.GetAll(bson.M{"guildId": guildID})
}

// UpdatePaymentMethod applies a partial update to a payment method and
// bumps its updatedAt timestamp.
func UpdatePaymentMethod(guildID, methodID string, updates bson.M) (*models.PaymentMethod, error) {
	dm, err := getPaymentMethodManager()
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(methodID)
	if err != nil {
		return nil, ErrInvalidPaymentMethodID
	}

	query := bson.M{"_id": oid, "guildId": guildID}
	existing, err := dm.Get(query)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPaymentMethodNotFound
	}

	updates["updatedAt"] = time.Now()

	return dm.Set(query, updates)
}

// DeletePaymentMethod removes a payment method from a guild.
func DeletePaymentMethod(guildID, methodID string) error {
	dm, err := getPaymentMethodManager()
	if err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(methodID)
	if err != nil {
		return ErrInvalidPaymentMethodID
	}

	return dm.Delete(bson.M{"_id": oid, "guildId": guildID})
}
