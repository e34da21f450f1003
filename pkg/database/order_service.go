package database

import (
	"errors"
	"time"

	"github.com/taskcord/store-bot/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrOrderManagerNotInitialized = errors.New("order data manager not initialized")
	ErrOrderNotFound              = errors.New("order not found")
	ErrInvalidOrderID             = errors.New("invalid order id")
)

func getOrderManager() (*DataManager[models.Order], error) {
	if GlobalOrderDM == nil {
		return nil, ErrOrderManagerNotInitialized
	}
	return GlobalOrderDM, nil
}

// CreateOrder inserts a new order. Product name and price are copied
// onto the order so later catalog edits do not rewrite history.
func CreateOrder(guildID, customerID string, product *models.Product, paymentMethod string, paymentAmount float64) (*models.Order, error) {
	dm, err := getOrderManager()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := models.Order{
		ID:                 primitive.NewObjectID(),
		ProductName:        product.Name,
		Price:              product.Price,
		PaymentMethod:      paymentMethod,
		CustomerID:         customerID,
		GuildID:            guildID,
		PaymentAmount:      paymentAmount,
		PaymentStatus:      models.PaymentPending,
		ConfirmationStatus: models.ConfirmationPending,
		DeliveryStatus:     models.DeliveryPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	return dm.Set(bson.M{"_id": order.ID}, order)
}

// GetOrder retrieves an order by its hex ID within a guild.
func GetOrder(guildID, orderID string) (*models.Order, error) {
	dm, err := getOrderManager()
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, ErrInvalidOrderID
	}

	order, err := dm.Get(bson.M{"_id": oid, "guildId": guildID})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetOrdersByGuild returns all orders placed in a guild.
func GetOrdersByGuild(guildID string) ([]*models.Order, error) {
	dm, err := getOrderManager()
	if err != nil {
		return nil, err
	}
	return dm.GetAll(bson.M{"guildId": guildID})
}

// GetOrdersByCustomer returns a user's orders within a guild.
func GetOrdersByCustomer(guildID, customerID string) ([]*models.Order, error) {
	dm, err := getOrderManager()
	if err != nil {
		return nil, err
	}
	return dm.GetAll(bson.M{"guildId": guildID, "customerId": customerID})
}

// UpdateOrder applies a partial update to an order and bumps its
// updatedAt timestamp.
func UpdateOrder(guildID, orderID string, update models.OrderUpdate) (*models.Order, error) {
	dm, err := getOrderManager()
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, ErrInvalidOrderID
	}

	query := bson.M{"_id": oid, "guildId": guildID}
	existing, err := dm.Get(query)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrOrderNotFound
	}

	fields := bson.M{"updatedAt": time.Now()}
	if update.PaymentMethod != "" {
		fields["paymentMethod"] = update.PaymentMethod
	}
	if update.PaymentStatus != "" {
		fields["paymentStatus"] = update.PaymentStatus
	}
	if update.ConfirmationStatus != "" {
		fields["confirmationStatus"] = update.ConfirmationStatus
	}
	if update.DeliveryStatus != "" {
		fields["deliveryStatus"] = update.DeliveryStatus
	}
	if update.DeliveryInfo != "" {
		fields["deliveryInfo"] = update.DeliveryInfo
	}

	return dm.Set(query, fields)
}

// SalesStats summarizes order totals for a guild.
type SalesStats struct {
	TotalOrders     int
	CompletedOrders int
	PendingOrders   int
	Revenue         float64
}

// GetSalesStats aggregates order totals for a guild. Revenue counts
// only orders whose payment completed.
func GetSalesStats(guildID string) (*SalesStats, error) {
	orders, err := GetOrdersByGuild(guildID)
	if err != nil {
		return nil, err
	}

	stats := &SalesStats{TotalOrders: len(orders)}
	for _, o := range orders {
		switch o.PaymentStatus {
		case models.PaymentCompleted:
			stats.CompletedOrders++
			stats.Revenue += o.Price
		case models.PaymentPending:
			stats.PendingOrders++
		}
	}
	return stats, nil
}
