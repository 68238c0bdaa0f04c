// File: internal/checkout/service.go
// Package checkout lists a user's orders and opens hosted payment sessions
// for carts priced from the restaurant menu.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/stripe/stripe-go/v82"

	"github.com/MikeMC777/food-orders/internal/order"
	"github.com/MikeMC777/food-orders/internal/restaurant"
)

var (
	PaymentMethods   = []string{"card"}
	AllowedCountries = []string{"GB", "US", "CA"}
)

// SessionInput is everything the payment provider needs to open a hosted
// one-time payment session.
type SessionInput struct {
	LineItems        []LineItem
	PaymentMethods   []string
	AllowedCountries []string
	SuccessURL       string
	CancelURL        string
	Metadata         map[string]string
}

type PaymentProvider interface {
	CreateSession(ctx context.Context, in SessionInput) (*stripe.CheckoutSession, error)
}

type Service struct {
	orders      order.Repository
	restaurants restaurant.Repository
	payments    PaymentProvider
	frontendURL string
}

func NewService(orders order.Repository, restaurants restaurant.Repository, payments PaymentProvider, frontendURL string) *Service {
	return &Service{
		orders:      orders,
		restaurants: restaurants,
		payments:    payments,
		frontendURL: frontendURL,
	}
}

// ListOrders returns the user's orders with user and restaurant resolved.
// No orders is an empty, non-nil slice.
func (s *Service) ListOrders(ctx context.Context, userID string) ([]order.Populated, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	out, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders of %s: %w", userID, err)
	}
	if out == nil {
		out = []order.Populated{}
	}
	return out, nil
}

// CreateCheckoutSession opens a hosted payment session for the cart and
// records a pending order once the session has a redirect URL. Nothing is
// persisted when any earlier step fails.
func (s *Service) CreateCheckoutSession(ctx context.Context, userID string, req order.CheckoutSessionRequest) (*stripe.CheckoutSession, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	rest, err := s.restaurants.GetWithMenus(ctx, req.RestaurantID)
	if errors.Is(err, restaurant.ErrNotFound) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load restaurant %s: %w", req.RestaurantID, err)
	}

	o := order.NewPending(userID, rest.ID, req.DeliveryDetails, req.CartItems)

	items, err := BuildLineItems(req.CartItems, rest.Menus)
	if err != nil {
		return nil, err
	}
	images, err := imagesMetadata(items)
	if err != nil {
		return nil, fmt.Errorf("encode images: %w", err)
	}

	sess, err := s.payments.CreateSession(ctx, SessionInput{
		LineItems:        items,
		PaymentMethods:   PaymentMethods,
		AllowedCountries: AllowedCountries,
		SuccessURL:       s.frontendURL + "/order/status",
		CancelURL:        s.frontendURL + "/cart",
		Metadata: map[string]string{
			"orderId": o.ID,
			"images":  images,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create payment session: %w", err)
	}
	if sess == nil || sess.URL == "" {
		return nil, ErrSessionURLMissing
	}

	// The provider session already exists; a failed save leaves it orphaned.
	if err := s.orders.Create(ctx, o); err != nil {
		log.Printf("[checkout] orphaned session %s order=%s: %v", sess.ID, o.ID, err)
		return nil, fmt.Errorf("save order %s: %w", o.ID, err)
	}
	log.Printf("[checkout] order=%s user=%s session=%s items=%d", o.ID, userID, sess.ID, len(items))
	return sess, nil
}
