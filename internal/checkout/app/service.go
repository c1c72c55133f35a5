package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/uaifood/client-go/internal/checkout/domain"
)

var (
	ErrNoAddress        = errors.New("checkout: delivery address not selected")
	ErrNoPayment        = errors.New("checkout: payment method not selected")
	ErrEmptyCart        = errors.New("checkout: cart is empty")
	ErrNotAuthenticated = errors.New("checkout: not signed in")

	// ErrStaleSession means the order was accepted by the backend but the
	// session went anonymous while the request was in flight; the local
	// cart is left untouched.
	ErrStaleSession = errors.New("checkout: session changed during submission")
)

// Service converts a cart snapshot plus address and payment selections into
// a single order-creation request.
type Service struct {
	cart    CartSource
	placer  OrderPlacer
	session SessionInfo
	log     *slog.Logger
}

func NewService(cart CartSource, placer OrderPlacer, session SessionInfo, log *slog.Logger) *Service {
	return &Service{
		cart:    cart,
		placer:  placer,
		session: session,
		log:     log,
	}
}

// Submit validates locally, submits the snapshot, and clears the cart on
// confirmed success. Local validation failures reject before any network
// call; a failed submission leaves the cart untouched and is not retried.
func (s *Service) Submit(ctx context.Context, addressID string, payment domain.PaymentMethod) (string, error) {
	if addressID == "" {
		return "", ErrNoAddress
	}
	if !payment.Valid() {
		return "", ErrNoPayment
	}
	if !s.session.IsAuthenticated() {
		return "", ErrNotAuthenticated
	}

	// The snapshot fixes the request payload here; mutating the cart while
	// the request is in flight cannot change what was sent.
	snapshot := s.cart.Snapshot()
	if len(snapshot.Items) == 0 {
		return "", ErrEmptyCart
	}

	lines := make([]OrderLine, len(snapshot.Items))
	for i, it := range snapshot.Items {
		lines[i] = OrderLine{ItemID: it.ID, Quantity: it.Quantity}
	}

	orderID, err := s.placer.PlaceOrder(ctx, addressID, string(payment), lines)
	if err != nil {
		return "", err
	}

	// The backend owns the order now, but a response landing against a
	// logged-out session must not clear state on behalf of nobody.
	if !s.session.IsAuthenticated() {
		s.log.Warn("discarding checkout result for stale session",
			slog.String("order_id", orderID))
		return "", ErrStaleSession
	}

	if err := s.cart.Clear(ctx); err != nil {
		// The order exists server-side; a failed local clear is not a
		// failed checkout.
		s.log.Error("cart clear after checkout failed", slog.Any("err", err))
	}

	return orderID, nil
}
