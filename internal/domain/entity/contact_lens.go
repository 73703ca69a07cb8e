package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContactLens a stocked contact lens product (box).
type ContactLens struct {
	ID        string
	Brand     string
	Type      string // daily, monthly, toric, colored...
	Power     string
	Color     string
	Price     decimal.Decimal
	Qty       int
	CreatedAt time.Time
	UpdatedAt time.Time
}
