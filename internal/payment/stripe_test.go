package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"

	"github.com/MikeMC777/food-orders/internal/checkout"
)

func newTestProvider(t *testing.T, h http.HandlerFunc) *StripeProvider {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return NewStripeProviderWithBackend("sk_test_123", backend)
}

func sessionInput() checkout.SessionInput {
	return checkout.SessionInput{
		LineItems: []checkout.LineItem{
			{Currency: "TZS", Name: "Pilau", Images: []string{"https://img/pilau.png"}, UnitAmount: 1250, Quantity: 2},
			{Currency: "TZS", Name: "Chai", UnitAmount: 100, Quantity: 1},
		},
		PaymentMethods:   []string{"card"},
		AllowedCountries: []string{"GB", "US", "CA"},
		SuccessURL:       "http://localhost:5173/order/status",
		CancelURL:        "http://localhost:5173/cart",
		Metadata:         map[string]string{"orderId": "o1", "images": `["https://img/pilau.png"]`},
	}
}

func TestStripeProvider_CreateSession(t *testing.T) {
	var form url.Values
	var auth, path, method string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		method, path, auth = r.Method, r.URL.Path, r.Header.Get("Authorization")
		_ = r.ParseForm()
		form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_test_1","object":"checkout.session","mode":"payment","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`))
	})

	sess, err := p.CreateSession(context.Background(), sessionInput())
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", sess.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", sess.URL)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/v1/checkout/sessions", path)
	assert.Equal(t, "Bearer sk_test_123", auth)
	assert.Equal(t, "payment", form.Get("mode"))
	assert.Equal(t, "card", form.Get("payment_method_types[0]"))
	assert.Equal(t, "GB", form.Get("shipping_address_collection[allowed_countries][0]"))
	assert.Equal(t, "CA", form.Get("shipping_address_collection[allowed_countries][2]"))
	assert.Equal(t, "http://localhost:5173/order/status", form.Get("success_url"))
	assert.Equal(t, "http://localhost:5173/cart", form.Get("cancel_url"))
	assert.Equal(t, "TZS", form.Get("line_items[0][price_data][currency]"))
	assert.Equal(t, "Pilau", form.Get("line_items[0][price_data][product_data][name]"))
	assert.Equal(t, "https://img/pilau.png", form.Get("line_items[0][price_data][product_data][images][0]"))
	assert.Equal(t, "1250", form.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "2", form.Get("line_items[0][quantity]"))
	assert.Equal(t, "100", form.Get("line_items[1][price_data][unit_amount]"))
	assert.Equal(t, "o1", form.Get("metadata[orderId]"))
	assert.Equal(t, `["https://img/pilau.png"]`, form.Get("metadata[images]"))
}

func TestStripeProvider_APIError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Invalid currency: tzs"}}`))
	})

	sess, err := p.CreateSession(context.Background(), sessionInput())
	require.Error(t, err)
	assert.Nil(t, sess)

	var serr *stripe.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusBadRequest, serr.HTTPStatusCode)
}
