package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusPreparing  Status = "PREPARING"
	StatusDelivering Status = "DELIVERING"
	StatusDone       Status = "DONE"
	StatusCancelled  Status = "CANCELLED"
)

// Statuses lists the lifecycle states in progression order.
var Statuses = []Status{
	StatusPending,
	StatusPreparing,
	StatusDelivering,
	StatusDone,
	StatusCancelled,
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusDelivering, StatusDone, StatusCancelled:
		return true
	}
	return false
}

type OrderLine struct {
	ItemID      string
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

type Order struct {
	ID            string
	Status        Status
	PaymentMethod string
	CreatedAt     time.Time
	Lines         []OrderLine
}

func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)))
	}
	return total
}
