package domain

import "github.com/shopspring/decimal"

type Category struct {
	ID          string
	Description string
}

type Item struct {
	ID          string
	Description string
	CategoryID  string
	UnitPrice   decimal.Decimal
}

// MenuSection is one category with its items, in menu display order.
type MenuSection struct {
	Category Category
	Items    []Item
}
