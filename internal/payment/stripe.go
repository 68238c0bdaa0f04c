package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"github.com/MikeMC777/food-orders/internal/checkout"
)

// StripeProvider opens Stripe hosted checkout sessions through a single
// client configured at startup.
type StripeProvider struct {
	sessions session.Client
}

func NewStripeProvider(key string) *StripeProvider {
	return NewStripeProviderWithBackend(key, stripe.GetBackend(stripe.APIBackend))
}

// NewStripeProviderWithBackend is used to point the client at a fake API.
func NewStripeProviderWithBackend(key string, backend stripe.Backend) *StripeProvider {
	return &StripeProvider{sessions: session.Client{B: backend, Key: key}}
}

func (p *StripeProvider) CreateSession(ctx context.Context, in checkout.SessionInput) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice(in.PaymentMethods),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(in.AllowedCountries),
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
	}
	for _, li := range in.LineItems {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(li.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:   stripe.String(li.Name),
					Images: stripe.StringSlice(li.Images),
				},
				UnitAmount: stripe.Int64(li.UnitAmount),
			},
			Quantity: stripe.Int64(li.Quantity),
		})
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	sess, err := p.sessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session: %w", err)
	}
	return sess, nil
}
