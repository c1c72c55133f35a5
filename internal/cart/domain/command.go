package domain

// Command is one of the tagged cart operations consumed by Apply.
type Command interface {
	isCommand()
}

// AddItem appends the item, or merges the quantity into an existing line
// with the same ID. Callers are expected to supply a quantity of at least 1.
type AddItem struct {
	Item LineItem
}

// RemoveItem deletes the line with the given ID. Absent IDs are a no-op.
type RemoveItem struct {
	ID string
}

// SetQuantity replaces the quantity of the matching line. A quantity of
// zero or less removes the line instead.
type SetQuantity struct {
	ID       string
	Quantity int64
}

// Clear empties the cart.
type Clear struct{}

// Replace substitutes the whole state, used when rehydrating from storage.
type Replace struct {
	State State
}

func (AddItem) isCommand()     {}
func (RemoveItem) isCommand()  {}
func (SetQuantity) isCommand() {}
func (Clear) isCommand()       {}
func (Replace) isCommand()     {}

// Apply is the pure cart transition. The input state is never mutated;
// line order is preserved across every operation.
func Apply(s State, cmd Command) State {
	switch c := cmd.(type) {
	case AddItem:
		if _, ok := s.Find(c.Item.ID); ok {
			next := s.Clone()
			for i := range next.Items {
				if next.Items[i].ID == c.Item.ID {
					next.Items[i].Quantity += c.Item.Quantity
					break
				}
			}
			return next
		}
		next := s.Clone()
		next.Items = append(next.Items, c.Item)
		return next

	case RemoveItem:
		next := State{}
		for _, it := range s.Items {
			if it.ID != c.ID {
				next.Items = append(next.Items, it)
			}
		}
		return next

	case SetQuantity:
		if c.Quantity <= 0 {
			return Apply(s, RemoveItem{ID: c.ID})
		}
		next := s.Clone()
		for i := range next.Items {
			if next.Items[i].ID == c.ID {
				next.Items[i].Quantity = c.Quantity
				break
			}
		}
		return next

	case Clear:
		return State{}

	case Replace:
		return c.State.Clone()

	default:
		return s
	}
}
