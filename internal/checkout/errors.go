package checkout

import "errors"

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrSessionURLMissing  = errors.New("payment session has no redirect url")
	ErrUnauthenticated    = errors.New("user not authenticated")
)
