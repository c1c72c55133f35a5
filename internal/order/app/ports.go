package app

import (
	"context"

	"github.com/uaifood/client-go/internal/order/domain"
)

// History reads and administers orders through the backend.
type History interface {
	ListMine(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
}
