// Package pricing derives invoice totals from a draft's selections.
// Pure domain service: no side effects, no I/O.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Moein-9/optica-api/internal/domain/entity"
)

// ComponentSum adds up the selected components for the draft's invoice type.
//
//	glasses:     lens + coating + thickness + frame (frame skipped => 0);
//	             a combined-price override supersedes the three lens prices
//	contacts:    Σ price × qty over the selected lens lines
//	exam/repair: the service price
//
// Unset prices are decimal zero values, so a partially filled draft still sums.
func ComponentSum(d *entity.InvoiceDraft) decimal.Decimal {
	switch d.InvoiceType {
	case entity.InvoiceTypeGlasses:
		framePrice := decimal.Zero
		if !d.SkipFrame {
			framePrice = d.Frame.Price
		}
		if d.CombinedLensPrice != nil {
			return d.CombinedLensPrice.Add(framePrice)
		}
		return d.LensPrice.Add(d.CoatingPrice).Add(d.ThicknessPrice).Add(framePrice)
	case entity.InvoiceTypeContacts:
		sum := decimal.Zero
		for _, item := range d.ContactItems {
			sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Qty))))
		}
		return sum
	default: // exam, repair
		return d.ServicePrice
	}
}

// Total is max(0, componentSum - discount). Negative discounts are not
// validated here; the workflow rejects them before they reach the calculator.
func Total(d *entity.InvoiceDraft) decimal.Decimal {
	total := ComponentSum(d).Sub(d.Discount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// Remaining is max(0, total - deposit). Never negative: an overpaying deposit
// leaves a zero balance, not a credit.
func Remaining(d *entity.InvoiceDraft) decimal.Decimal {
	remaining := Total(d).Sub(d.Deposit)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// Recalculate refreshes the draft's derived money fields in place.
func Recalculate(d *entity.InvoiceDraft) {
	d.Total = Total(d)
	d.Remaining = Remaining(d)
}

// PayInFull sets the deposit to the current total and recomputes, leaving the
// remaining balance at exactly zero. Idempotent.
func PayInFull(d *entity.InvoiceDraft) {
	d.Deposit = Total(d)
	Recalculate(d)
}
