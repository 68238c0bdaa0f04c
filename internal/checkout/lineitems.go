package checkout

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/food-orders/internal/order"
	"github.com/MikeMC777/food-orders/internal/restaurant"
)

// Currency is charged for every line item. Amounts are sent in minor units
// (price × 100), which does not hold for zero-decimal currencies.
const Currency = "TZS"

var minorUnits = decimal.NewFromInt(100)

type LineItem struct {
	Currency   string
	Name       string
	Images     []string
	UnitAmount int64
	Quantity   int64
}

// BuildLineItems maps each cart entry, in order, to a line item priced from
// the restaurant's menu. Only MenuID and Quantity are read from the cart.
// A cart entry with an unknown menu item fails the whole mapping.
func BuildLineItems(items []order.CartItem, menus []restaurant.MenuItem) ([]LineItem, error) {
	byID := make(map[string]restaurant.MenuItem, len(menus))
	for _, m := range menus {
		byID[m.ID] = m
	}

	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		m, ok := byID[it.MenuID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMenuItemNotFound, it.MenuID)
		}
		var images []string
		if m.Image != "" {
			images = []string{m.Image}
		}
		out = append(out, LineItem{
			Currency:   Currency,
			Name:       m.Name,
			Images:     images,
			UnitAmount: m.Price.Mul(minorUnits).Round(0).IntPart(),
			Quantity:   int64(it.Quantity),
		})
	}
	return out, nil
}

// maxMetadataValue is the longest metadata value Stripe accepts.
const maxMetadataValue = 500

// imagesMetadata encodes the distinct images of the cart's menu items, in
// cart order, as a JSON array of at most maxMetadataValue bytes. Images that
// would overflow the limit are left out.
func imagesMetadata(items []LineItem) (string, error) {
	seen := make(map[string]bool)
	out := []string{}
	for _, li := range items {
		for _, img := range li.Images {
			if seen[img] {
				continue
			}
			seen[img] = true
			next := append(out, img)
			b, err := json.Marshal(next)
			if err != nil {
				return "", err
			}
			if len(b) > maxMetadataValue {
				continue
			}
			out = next
		}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
