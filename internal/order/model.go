package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/food-orders/internal/restaurant"
	"github.com/MikeMC777/food-orders/internal/user"
)

type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "outfordelivery"
	StatusDelivered      Status = "delivered"
)

type DeliveryDetails struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
}

// CartItem is the client's view of one cart line. Only MenuID and Quantity
// are trusted at checkout; the rest is kept as a snapshot.
type CartItem struct {
	MenuID   string          `json:"menuId" binding:"required" example:"8f14e45f-ceea-4e67-a6e0-64e1b1a0c6a1"`
	Name     string          `json:"name" example:"Pilau"`
	Image    string          `json:"image" example:"https://cdn.example.com/pilau.png"`
	Price    decimal.Decimal `json:"price" swaggertype:"string" example:"12.50"`
	Quantity int             `json:"quantity" binding:"required,gte=1" example:"2"`
}

type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user"`
	RestaurantID    string          `json:"restaurant"`
	DeliveryDetails DeliveryDetails `json:"deliveryDetails"`
	CartItems       []CartItem      `json:"cartItems"`
	Status          Status          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// NewPending builds an unsaved order in status pending. The cart items are
// copied so the order does not share the caller's slice.
func NewPending(userID, restaurantID string, details DeliveryDetails, items []CartItem) *Order {
	return &Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		RestaurantID:    restaurantID,
		DeliveryDetails: details,
		CartItems:       append([]CartItem(nil), items...),
		Status:          StatusPending,
	}
}

// Populated is an order with its user and restaurant resolved.
type Populated struct {
	ID              string                `json:"id"`
	User            user.User             `json:"user"`
	Restaurant      restaurant.Restaurant `json:"restaurant"`
	DeliveryDetails DeliveryDetails       `json:"deliveryDetails"`
	CartItems       []CartItem            `json:"cartItems"`
	Status          Status                `json:"status"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}
