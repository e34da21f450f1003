package database

import (
	"errors"
	"strings"
	"time"

	"github.com/taskcord/store-bot/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrProductManagerNotInitialized = errors.New("product data manager not initialized")
	ErrProductNotFound              = errors.New("product not found")
	ErrProductExists                = errors.New("a product with that name already exists")
	ErrInvalidProductID             = errors.New("invalid product id")
)

func getProductManager() (*DataManager[models.Product], error) {
	if GlobalProductDM == nil {
		return nil, ErrProductManagerNotInitialized
	}
	return GlobalProductDM, nil
}

// CreateProduct inserts a new product for a guild. Product names are
// unique per guild.
func CreateProduct(guildID, name, description string, price float64) (*models.Product, error) {
	dm, err := getProductManager()
	if err != nil {
		return nil, err
	}

	existing, err := dm.Get(bson.M{"guildId": guildID, "name": name})
	if err == nil && existing != nil {
		return nil, ErrProductExists
	}

	now := time.Now()
	product := models.Product{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: description,
		Price:       price,
		IsAvailable: true,
		GuildID:     guildID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return dm.Set(bson.M{"_id": product.ID}, product)
}

// GetProduct retrieves a product by its hex ID within a guild.
func GetProduct(guildID, productID string) (*models.Product, error) {
	dm, err := getProductManager()
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, ErrInvalidProductID
	}

	product, err := dm.Get(bson.M{"_id": oid, "guildId": guildID})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// GetProductsByGuild returns all products belonging to a guild.
func GetProductsByGuild(guildID string) ([]*models.Product, error) {
	dm, err := getProductManager()
	if err != nil {
		return nil, err
	}
	return dm.GetAll(bson.M{"guildId": guildID})
}

// SearchProducts returns the guild's products whose name contains the
// given text, case-insensitively. Used by autocomplete.
func SearchProducts(guildID, text string) ([]*models.Product, error) {
	products, err := GetProductsByGuild(guildID)
	if err != nil {
		return nil, err
	}

	if text == "" {
		return products, nil
	}

	needle := strings.ToLower(text)
	matches := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// UpdateProduct applies a partial update to a product and bumps its
// updatedAt timestamp.
func UpdateProduct(guildID, productID string, updates bson.M) (*models.Product, error) {
	dm, err := getProductManager()
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, ErrInvalidProductID
	}

	query := bson.M{"_id": oid, "guildId": guildID}
	existing, err := dm.Get(query)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	updates["updatedAt"] = time.Now()

	return dm.Set(query, updates)
}

// DeleteProduct removes a product from a guild's catalog.
func DeleteProduct(guildID, productID string) error {
	dm, err := getProductManager()
	if err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return ErrInvalidProductID
	}

	return dm.Delete(bson.M{"_id": oid, "guildId": guildID})
}
