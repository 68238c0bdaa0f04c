package order

// CheckoutSessionRequest payload for creating a hosted payment session.
// swagger:model CheckoutSessionRequest
type CheckoutSessionRequest struct {
	CartItems       []CartItem      `json:"cartItems" binding:"required,min=1,dive"`
	DeliveryDetails DeliveryDetails `json:"deliveryDetails"`
	RestaurantID    string          `json:"restaurantId" binding:"required" example:"2b7e1516-28ae-4d2a-a6d2-abf7158809cf"`
}

// ListResponse is the body of the order listing.
// swagger:model OrderListResponse
type ListResponse struct {
	Success bool        `json:"success" example:"true"`
	Orders  []Populated `json:"orders"`
}
