package domain

import "github.com/shopspring/decimal"

// LineItem is a single product entry in the cart.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int64           `json:"quantity"`
}

// State is the ordered cart contents. At most one line item exists per
// product ID; merging on repeated adds is handled by Apply.
type State struct {
	Items []LineItem `json:"items"`
}

// TotalItems is the sum of quantities across all lines.
func (s State) TotalItems() int64 {
	var total int64
	for _, it := range s.Items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity across all lines.
func (s State) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}

// Find returns the line with the given ID, if any.
func (s State) Find(id string) (LineItem, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return LineItem{}, false
}

// Clone returns a deep copy; mutating the copy never affects the source.
func (s State) Clone() State {
	if s.Items == nil {
		return State{}
	}
	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)
	return State{Items: items}
}
