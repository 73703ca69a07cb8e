package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frame is a stocked eyeglass frame. Qty is decremented when a glasses
// invoice that sells the frame is finalized.
type Frame struct {
	ID        string
	Brand     string
	Model     string
	Color     string
	Size      string
	Price     decimal.Decimal
	Qty       int
	CreatedAt time.Time
	UpdatedAt time.Time
}
