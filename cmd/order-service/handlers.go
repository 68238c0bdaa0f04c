package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"

	"github.com/MikeMC777/food-orders/internal/checkout"
	"github.com/MikeMC777/food-orders/internal/httpx"
	"github.com/MikeMC777/food-orders/internal/order"
)

// sessionResponse wraps the hosted checkout session returned to the client.
type sessionResponse struct {
	Session *stripe.CheckoutSession `json:"session" swaggertype:"object"`
}

// getOrdersHandler godoc
// @Summary      List my orders
// @Description  Orders of the authenticated user, newest first, with user and restaurant resolved.
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} order.ListResponse
// @Failure      401 {object} httpx.ErrorResponse
// @Failure      500 {object} httpx.ErrorResponse
// @Router       /order [get]
func getOrdersHandler(svc *checkout.Service, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		orders, err := svc.ListOrders(ctx, httpx.UserID(c))
		if err != nil {
			fail(c, "[orders]", err)
			return
		}
		c.JSON(http.StatusOK, order.ListResponse{Success: true, Orders: orders})
	}
}

// createCheckoutSessionHandler godoc
// @Summary      Create checkout session
// @Description  Prices the cart from the restaurant menu, opens a Stripe hosted checkout session and records a pending order.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload body order.CheckoutSessionRequest true "Cart, delivery details and restaurant"
// @Success      200 {object} sessionResponse
// @Failure      400 {object} httpx.ErrorResponse
// @Failure      401 {object} httpx.ErrorResponse
// @Failure      404 {object} httpx.ErrorResponse
// @Failure      500 {object} httpx.ErrorResponse
// @Router       /order/checkout/create-checkout-session [post]
func createCheckoutSessionHandler(svc *checkout.Service, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CheckoutSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			rid, _ := c.Get("rid")
			log.Printf("[checkout] rid=%v invalid body: %v", rid, err)
			httpx.Fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		sess, err := svc.CreateCheckoutSession(ctx, httpx.UserID(c), req)
		if err != nil {
			fail(c, "[checkout]", err)
			return
		}
		c.JSON(http.StatusOK, sessionResponse{Session: sess})
	}
}

// fail maps use-case errors to their HTTP outcome. Anything unknown is
// logged and reported as a generic 500.
func fail(c *gin.Context, tag string, err error) {
	switch {
	case errors.Is(err, checkout.ErrUnauthenticated):
		httpx.Fail(c, http.StatusUnauthorized, "User not authenticated")
	case errors.Is(err, checkout.ErrRestaurantNotFound):
		httpx.Fail(c, http.StatusNotFound, "Restaurant not found.")
	case errors.Is(err, checkout.ErrMenuItemNotFound):
		httpx.Fail(c, http.StatusBadRequest, "Menu item not found.")
	case errors.Is(err, checkout.ErrSessionURLMissing):
		httpx.Fail(c, http.StatusBadRequest, "Error while creating session")
	default:
		rid, _ := c.Get("rid")
		log.Printf("%s rid=%v error: %v", tag, rid, err)
		httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
