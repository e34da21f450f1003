package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus tracks whether an order has been paid for
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// ConfirmationStatus tracks whether staff have confirmed an order
type ConfirmationStatus string

const (
	ConfirmationPending   ConfirmationStatus = "pending"
	ConfirmationConfirmed ConfirmationStatus = "confirmed"
	ConfirmationCancelled ConfirmationStatus = "cancelled"
)

// DeliveryStatus tracks the fulfilment state of an order
type DeliveryStatus string

const (
	DeliveryPending    DeliveryStatus = "pending"
	DeliveryProcessing DeliveryStatus = "processing"
	DeliveryDelivered  DeliveryStatus = "delivered"
	DeliveryCancelled  DeliveryStatus = "cancelled"
)

// Order is a customer's purchase of a store product. The product name and
// price are denormalized at order time so later product edits don't rewrite
// order history.
type Order struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductName        string             `bson:"productName" json:"productName"`
	Price              float64            `bson:"price" json:"price"`
	PaymentMethod      string             `bson:"paymentMethod" json:"paymentMethod"`
	CustomerID         string             `bson:"customerId" json:"customerId"`
	GuildID            string             `bson:"guildId" json:"guildId"`
	PaymentAmount      float64            `bson:"paymentAmount" json:"paymentAmount"`
	PaymentStatus      PaymentStatus      `bson:"paymentStatus" json:"paymentStatus"`
	ConfirmationStatus ConfirmationStatus `bson:"confirmationStatus" json:"confirmationStatus"`
	DeliveryStatus     DeliveryStatus     `bson:"deliveryStatus" json:"deliveryStatus"`
	DeliveryInfo       string             `bson:"deliveryInfo,omitempty" json:"deliveryInfo,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OrderUpdate describes a partial mutation of an Order document
type OrderUpdate struct {
	PaymentMethod      string             `bson:"paymentMethod,omitempty"`
	PaymentStatus      PaymentStatus      `bson:"paymentStatus,omitempty"`
	ConfirmationStatus ConfirmationStatus `bson:"confirmationStatus,omitempty"`
	DeliveryStatus     DeliveryStatus     `bson:"deliveryStatus,omitempty"`
	DeliveryInfo       string             `bson:"deliveryInfo,omitempty"`
}
