package adapter

import (
	"context"

	"github.com/uaifood/client-go/internal/api"
	checkoutapp "github.com/uaifood/client-go/internal/checkout/app"
)

// APIOrderPlacer satisfies the checkout OrderPlacer port over the backend
// client.
type APIOrderPlacer struct {
	client *api.Client
}

func NewAPIOrderPlacer(client *api.Client) *APIOrderPlacer {
	return &APIOrderPlacer{client: client}
}

func (p *APIOrderPlacer) PlaceOrder(ctx context.Context, addressID, paymentMethod string, lines []checkoutapp.OrderLine) (string, error) {
	items := make([]api.OrderDraftItem, len(lines))
	for i, l := range lines {
		items[i] = api.OrderDraftItem{ItemID: l.ItemID, Quantity: l.Quantity}
	}

	order, err := p.client.PlaceOrder(ctx, api.OrderDraft{
		AddressID:     addressID,
		PaymentMethod: paymentMethod,
		Items:         items,
	})
	if err != nil {
		return "", err
	}
	return order.ID, nil
}
