package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/uaifood/client-go/internal/cart/domain"
	"github.com/uaifood/client-go/pkg/localstore"
)

// StorageKey is where the serialized cart lives, kept identical to the
// hosted client so both read the same snapshot.
const StorageKey = "@UaiFood:cart"

// Store holds the canonical in-memory cart and its durable mirror. Every
// mutation runs apply-then-persist under one lock, so the snapshot on disk
// is reconciled before the next mutation is accepted.
type Store struct {
	mu      sync.Mutex
	state   domain.State
	storage Storage
	log     *slog.Logger
}

// NewStore rehydrates the last persisted snapshot. A missing or corrupt
// snapshot is logged and replaced by an empty cart; initialization never
// fails.
func NewStore(ctx context.Context, storage Storage, log *slog.Logger) *Store {
	s := &Store{storage: storage, log: log}
	s.state = s.rehydrate(ctx)
	return s
}

func (s *Store) rehydrate(ctx context.Context) domain.State {
	raw, err := s.storage.Get(ctx, StorageKey)
	if errors.Is(err, localstore.ErrNotFound) {
		return domain.State{}
	}
	if err != nil {
		s.log.Warn("cart snapshot unreadable, starting empty", slog.Any("err", err))
		return domain.State{}
	}

	var st domain.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		s.log.Warn("cart snapshot corrupt, starting empty", slog.Any("err", err))
		return domain.State{}
	}
	return st
}

func (s *Store) AddItem(ctx context.Context, item domain.LineItem) error {
	return s.dispatch(ctx, domain.AddItem{Item: item})
}

func (s *Store) RemoveItem(ctx context.Context, id string) error {
	return s.dispatch(ctx, domain.RemoveItem{ID: id})
}

func (s *Store) SetQuantity(ctx context.Context, id string, quantity int64) error {
	return s.dispatch(ctx, domain.SetQuantity{ID: id, Quantity: quantity})
}

func (s *Store) Clear(ctx context.Context) error {
	return s.dispatch(ctx, domain.Clear{})
}

func (s *Store) dispatch(ctx context.Context, cmd domain.Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = domain.Apply(s.state, cmd)

	raw, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("serialize cart: %w", err)
	}
	if err := s.storage.Set(ctx, StorageKey, string(raw)); err != nil {
		s.log.Error("cart persist failed", slog.Any("err", err))
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

// Snapshot returns a deep copy of the current state. Submitting a checkout
// works off such a copy, so later mutations cannot alter an in-flight order.
func (s *Store) Snapshot() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Store) TotalItems() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TotalItems()
}

func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TotalPrice()
}
