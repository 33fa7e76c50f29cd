package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
)

// OrderItem documents the expected shape of one order line. Submitted items
// are stored as-is without being checked against it.
type OrderItem struct {
	ProductID string `bson:"product_id" json:"product_id"`
	Quantity  int    `bson:"quantity" json:"quantity"`
	Size      string `bson:"size,omitempty" json:"size,omitempty"`
	Color     string `bson:"color,omitempty" json:"color,omitempty"`
}

type Order struct {
	Id              bson.ObjectID    `bson:"_id,omitempty" json:"id,omitempty"`
	Items           []map[string]any `bson:"items" json:"items"`
	CustomerName    string           `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string           `bson:"customer_email" json:"customer_email"`
	CustomerAddress string           `bson:"customer_address" json:"customer_address"`
	Note            string           `bson:"note,omitempty" json:"note,omitempty"`
	Status          OrderStatus      `bson:"status" json:"status"`
	CreatedAt       time.Time        `bson:"createdAt" json:"createdAt"`
}
