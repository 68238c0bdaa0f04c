package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/food-orders/internal/order"
	"github.com/MikeMC777/food-orders/internal/restaurant"
)

var menu = []restaurant.MenuItem{
	{ID: "m1", Name: "Pilau", Price: decimal.RequireFromString("12.5"), Image: "https://img/pilau.png"},
	{ID: "m2", Name: "Chai", Price: decimal.RequireFromString("1"), Image: "https://img/chai.png"},
	{ID: "m3", Name: "Mandazi", Price: decimal.RequireFromString("0.35")},
}

func TestBuildLineItems_PreservesCartOrder(t *testing.T) {
	got, err := BuildLineItems([]order.CartItem{
		{MenuID: "m2", Quantity: 1},
		{MenuID: "m1", Quantity: 2},
		{MenuID: "m3", Quantity: 4},
	}, menu)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Chai", got[0].Name)
	assert.Equal(t, "Pilau", got[1].Name)
	assert.Equal(t, "Mandazi", got[2].Name)
	for _, li := range got {
		assert.Equal(t, "TZS", li.Currency)
	}
}

func TestBuildLineItems_MinorUnits(t *testing.T) {
	got, err := BuildLineItems([]order.CartItem{
		{MenuID: "m1", Quantity: 3},
		{MenuID: "m3", Quantity: 1},
	}, menu)
	require.NoError(t, err)
	assert.Equal(t, int64(1250), got[0].UnitAmount)
	assert.Equal(t, int64(3), got[0].Quantity)
	assert.Equal(t, int64(35), got[1].UnitAmount)
}

func TestBuildLineItems_UnknownMenuItem(t *testing.T) {
	got, err := BuildLineItems([]order.CartItem{
		{MenuID: "m1", Quantity: 1},
		{MenuID: "nope", Quantity: 1},
	}, menu)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMenuItemNotFound))
	assert.Nil(t, got)
}

func TestBuildLineItems_RepeatedMenuIDNotMerged(t *testing.T) {
	got, err := BuildLineItems([]order.CartItem{
		{MenuID: "m1", Quantity: 1},
		{MenuID: "m1", Quantity: 3},
	}, menu)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].Quantity)
	assert.Equal(t, int64(3), got[1].Quantity)
}

func TestBuildLineItems_IgnoresClientDisplayData(t *testing.T) {
	got, err := BuildLineItems([]order.CartItem{{
		MenuID:   "m1",
		Name:     "Free lunch",
		Image:    "https://evil/img.png",
		Price:    decimal.RequireFromString("0.01"),
		Quantity: 1,
	}}, menu)
	require.NoError(t, err)
	assert.Equal(t, "Pilau", got[0].Name)
	assert.Equal(t, []string{"https://img/pilau.png"}, got[0].Images)
	assert.Equal(t, int64(1250), got[0].UnitAmount)
}

func TestBuildLineItems_NoImage(t *testing.T) {
	got, err := BuildLineItems([]order.CartItem{{MenuID: "m3", Quantity: 1}}, menu)
	require.NoError(t, err)
	assert.Empty(t, got[0].Images)
}

func TestBuildLineItems_EmptyCart(t *testing.T) {
	got, err := BuildLineItems(nil, menu)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestImagesMetadata_DistinctInCartOrder(t *testing.T) {
	items, err := BuildLineItems([]order.CartItem{
		{MenuID: "m2", Quantity: 1},
		{MenuID: "m1", Quantity: 1},
		{MenuID: "m2", Quantity: 3},
		{MenuID: "m3", Quantity: 1},
	}, menu)
	require.NoError(t, err)

	got, err := imagesMetadata(items)
	require.NoError(t, err)
	assert.JSONEq(t, `["https://img/chai.png","https://img/pilau.png"]`, got)
}

func TestImagesMetadata_StaysWithinStripeLimit(t *testing.T) {
	var items []LineItem
	for i := 0; i < 8; i++ {
		img := fmt.Sprintf("https://cdn.example.com/restaurants/mama-pilau/menus/%02d/large-photo-of-the-dish-%02d.jpg", i, i)
		items = append(items, LineItem{Images: []string{img}}, LineItem{Images: []string{img}})
	}

	got, err := imagesMetadata(items)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(got), 500)

	var images []string
	require.NoError(t, json.Unmarshal([]byte(got), &images))
	require.NotEmpty(t, images)
	assert.Less(t, len(images), 8)
	assert.Equal(t, items[0].Images[0], images[0])
	seen := map[string]bool{}
	for _, img := range images {
		assert.False(t, seen[img], "duplicate %s", img)
		seen[img] = true
	}
}

func TestImagesMetadata_Empty(t *testing.T) {
	got, err := imagesMetadata(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}
