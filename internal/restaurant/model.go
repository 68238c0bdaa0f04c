package restaurant

import (
	"time"

	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID           string     `json:"id"`
	Name         string     `json:"restaurantName"`
	City         string     `json:"city"`
	Country      string     `json:"country"`
	DeliveryTime int        `json:"deliveryTime"` // minutes
	Cuisines     []string   `json:"cuisines"`
	ImageURL     string     `json:"imageUrl"`
	Menus        []MenuItem `json:"menus,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Major currency units; NUMERIC in Postgres, Decimal128 in Mongo.
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}
