package app

import (
	"context"
	"errors"

	"github.com/uaifood/client-go/internal/order/domain"
)

var (
	ErrMissingID     = errors.New("order: id is required")
	ErrInvalidStatus = errors.New("order: unknown status")
)

type Service struct {
	history History
}

func NewService(history History) *Service {
	return &Service{history: history}
}

func (s *Service) ListMine(ctx context.Context) ([]domain.Order, error) {
	return s.history.ListMine(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Order, error) {
	if id == "" {
		return domain.Order{}, ErrMissingID
	}
	return s.history.Get(ctx, id)
}

// UpdateStatus is the administrative transition. Unknown statuses are
// rejected before any network call.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	if id == "" {
		return ErrMissingID
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}
	return s.history.UpdateStatus(ctx, id, status)
}
