package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func line(id string, price string, qty int64) LineItem {
	return LineItem{
		ID:          id,
		Description: "item " + id,
		UnitPrice:   decimal.RequireFromString(price),
		Quantity:    qty,
	}
}

func TestApplyAddItem(t *testing.T) {
	t.Run("append preserves insertion order", func(t *testing.T) {
		s := Apply(State{}, AddItem{Item: line("a", "10", 1)})
		s = Apply(s, AddItem{Item: line("b", "5", 1)})

		if len(s.Items) != 2 || s.Items[0].ID != "a" || s.Items[1].ID != "b" {
			t.Fatalf("unexpected items: %+v", s.Items)
		}
	})

	t.Run("same id merges quantities", func(t *testing.T) {
		s := Apply(State{}, AddItem{Item: line("x", "10", 2)})
		s = Apply(s, AddItem{Item: line("x", "10", 3)})

		if len(s.Items) != 1 {
			t.Fatalf("expected one line, got %d", len(s.Items))
		}
		if s.Items[0].Quantity != 5 {
			t.Fatalf("expected quantity 5, got %d", s.Items[0].Quantity)
		}
	})

	t.Run("merge keeps original position", func(t *testing.T) {
		s := Apply(State{}, AddItem{Item: line("a", "1", 1)})
		s = Apply(s, AddItem{Item: line("b", "1", 1)})
		s = Apply(s, AddItem{Item: line("a", "1", 1)})

		if s.Items[0].ID != "a" || s.Items[0].Quantity != 2 {
			t.Fatalf("unexpected first line: %+v", s.Items[0])
		}
	})
}

func TestApplyRemoveItem(t *testing.T) {
	base := Apply(State{}, AddItem{Item: line("a", "1", 1)})
	base = Apply(base, AddItem{Item: line("b", "1", 1)})

	t.Run("removes matching line", func(t *testing.T) {
		s := Apply(base, RemoveItem{ID: "a"})
		if len(s.Items) != 1 || s.Items[0].ID != "b" {
			t.Fatalf("unexpected items: %+v", s.Items)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := Apply(base, RemoveItem{ID: "a"})
		twice := Apply(once, RemoveItem{ID: "a"})
		if len(twice.Items) != len(once.Items) {
			t.Fatalf("second remove changed state: %+v vs %+v", once.Items, twice.Items)
		}
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		s := Apply(base, RemoveItem{ID: "zzz"})
		if len(s.Items) != 2 {
			t.Fatalf("unexpected items: %+v", s.Items)
		}
	})
}

func TestApplySetQuantity(t *testing.T) {
	base := Apply(State{}, AddItem{Item: line("x", "1", 3)})

	t.Run("replaces quantity", func(t *testing.T) {
		s := Apply(base, SetQuantity{ID: "x", Quantity: 7})
		if s.Items[0].Quantity != 7 {
			t.Fatalf("expected 7, got %d", s.Items[0].Quantity)
		}
	})

	t.Run("zero removes the line", func(t *testing.T) {
		s := Apply(base, SetQuantity{ID: "x", Quantity: 0})
		if len(s.Items) != 0 {
			t.Fatalf("expected empty cart, got %+v", s.Items)
		}
	})

	t.Run("negative removes the line", func(t *testing.T) {
		s := Apply(base, SetQuantity{ID: "x", Quantity: -5})
		if len(s.Items) != 0 {
			t.Fatalf("expected empty cart, got %+v", s.Items)
		}
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		s := Apply(base, SetQuantity{ID: "zzz", Quantity: 9})
		if len(s.Items) != 1 || s.Items[0].Quantity != 3 {
			t.Fatalf("unexpected items: %+v", s.Items)
		}
	})
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	base := Apply(State{}, AddItem{Item: line("x", "1", 1)})

	_ = Apply(base, AddItem{Item: line("x", "1", 9)})
	_ = Apply(base, SetQuantity{ID: "x", Quantity: 9})
	_ = Apply(base, Clear{})

	if base.Items[0].Quantity != 1 {
		t.Fatalf("input state was mutated: %+v", base.Items)
	}
}

func TestTotals(t *testing.T) {
	s := Apply(State{}, AddItem{Item: line("a", "10", 2)})
	s = Apply(s, AddItem{Item: line("b", "5", 3)})

	if got := s.TotalItems(); got != 5 {
		t.Fatalf("TotalItems = %d, want 5", got)
	}
	if got := s.TotalPrice(); !got.Equal(decimal.RequireFromString("35")) {
		t.Fatalf("TotalPrice = %s, want 35", got)
	}
}

func TestCloneIsolation(t *testing.T) {
	s := Apply(State{}, AddItem{Item: line("a", "1", 1)})
	c := s.Clone()
	c.Items[0].Quantity = 99

	if s.Items[0].Quantity != 1 {
		t.Fatalf("clone mutation leaked into source: %+v", s.Items)
	}
}
