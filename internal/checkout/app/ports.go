package app

import (
	"context"

	cartdomain "github.com/uaifood/client-go/internal/cart/domain"
)

// CartSource is what checkout needs from the cart store: an isolated
// snapshot to build the order from, and a clear on confirmed success.
type CartSource interface {
	Snapshot() cartdomain.State
	Clear(ctx context.Context) error
}

// OrderLine is one {item, quantity} pair of the submitted order.
type OrderLine struct {
	ItemID   string
	Quantity int64
}

// OrderPlacer submits the order to the backend and returns its ID.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, addressID string, paymentMethod string, lines []OrderLine) (string, error)
}

// SessionInfo gates checkout on login state.
type SessionInfo interface {
	IsAuthenticated() bool
}
