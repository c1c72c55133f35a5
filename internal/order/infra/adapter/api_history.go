package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/uaifood/client-go/internal/api"
	"github.com/uaifood/client-go/internal/order/domain"
)

// APIHistory satisfies the order History port over the backend client.
type APIHistory struct {
	client *api.Client
}

func NewAPIHistory(client *api.Client) *APIHistory {
	return &APIHistory{client: client}
}

func (a *APIHistory) ListMine(ctx context.Context) ([]domain.Order, error) {
	orders, err := a.client.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Order, len(orders))
	for i, o := range orders {
		mapped, err := mapOrder(o)
		if err != nil {
			return nil, err
		}
		out[i] = mapped
	}
	return out, nil
}

func (a *APIHistory) Get(ctx context.Context, id string) (domain.Order, error) {
	order, err := a.client.GetOrder(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return mapOrder(order)
}

func (a *APIHistory) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	return a.client.UpdateOrderStatus(ctx, id, string(status))
}

func mapOrder(o api.Order) (domain.Order, error) {
	createdAt, err := time.Parse(time.RFC3339, o.CreatedAt)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order %s: bad createdAt %q: %w", o.ID, o.CreatedAt, err)
	}

	lines := make([]domain.OrderLine, len(o.OrderItems))
	for i, oi := range o.OrderItems {
		price, err := decimal.NewFromString(oi.UnitPrice)
		if err != nil {
			return domain.Order{}, fmt.Errorf("order %s: bad unit price %q: %w", o.ID, oi.UnitPrice, err)
		}
		lines[i] = domain.OrderLine{
			ItemID:      oi.Item.ID,
			Description: oi.Item.Description,
			Quantity:    oi.Quantity,
			UnitPrice:   price,
		}
	}

	return domain.Order{
		ID:            o.ID,
		Status:        domain.Status(o.Status),
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     createdAt,
		Lines:         lines,
	}, nil
}
