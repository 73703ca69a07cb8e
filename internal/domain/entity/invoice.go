package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted at the register.
const (
	PaymentMethodCash       = "Cash"
	PaymentMethodVisa       = "Visa"
	PaymentMethodMasterCard = "MasterCard"
	PaymentMethodKNET       = "KNET"
)

// IsCardMethod reports whether the method requires a card approval number.
func IsCardMethod(method string) bool {
	switch method {
	case PaymentMethodVisa, PaymentMethodMasterCard, PaymentMethodKNET:
		return true
	}
	return false
}

// NewInvoiceNumber generates the customer-facing invoice number.
func NewInvoiceNumber(t time.Time) string {
	return fmt.Sprintf("INV%d", t.UnixMilli())
}

// NewWorkOrderNumber generates the lab-facing work order number.
func NewWorkOrderNumber(t time.Time) string {
	return fmt.Sprintf("WO%d", t.UnixMilli())
}

// Payment one entry in an invoice's append-only payment history.
type Payment struct {
	ID         string
	InvoiceID  string
	Amount     decimal.Decimal
	Method     string
	AuthNumber string
	Date       time.Time
}

// EditEntry one entry in an invoice's append-only edit trail.
type EditEntry struct {
	ID        string
	InvoiceID string
	Notes     string
	EditedAt  time.Time
}

// ContactLensLine a persisted contact lens line on a finalized invoice.
type ContactLensLine struct {
	ID            string
	InvoiceID     string
	ContactLensID string
	Brand         string
	Type          string
	Power         string
	Color         string
	Price         decimal.Decimal
	Qty           int
}

// Invoice is a finalized invoice/work order. Created once, atomically, by the
// workflow's save step; afterwards only the payment history and edit trail
// grow. Header money fields are recomputed from the histories, the histories
// themselves are never rewritten.
type Invoice struct {
	InvoiceID   string // INV<millis>
	WorkOrderID string // WO<millis>
	InvoiceType InvoiceType

	PatientID    string
	PatientName  string
	PatientPhone string
	Rx           *GlassesRx
	ContactRx    *ContactLensRx

	SkipLens          bool
	SkipFrame         bool
	FrameID           string
	FrameBrand        string
	FrameModel        string
	FrameColor        string
	FrameSize         string
	FramePrice        decimal.Decimal
	LensType          string
	LensPrice         decimal.Decimal
	Coating           string
	CoatingPrice      decimal.Decimal
	Thickness         string
	ThicknessPrice    decimal.Decimal
	CombinedLensPrice *decimal.Decimal

	ContactItems []ContactLensLine

	ServiceID    string
	ServiceName  string
	ServicePrice decimal.Decimal
	Description  string

	Discount  decimal.Decimal
	Deposit   decimal.Decimal
	Total     decimal.Decimal
	Remaining decimal.Decimal

	PaymentMethod string
	AuthNumber    string

	CreatedAt time.Time
	CreatedBy string // staff user id

	Payments []Payment
	Edits    []EditEntry
}

// IsPaid reports whether nothing remains on the balance.
func (i *Invoice) IsPaid() bool {
	return i.Remaining.LessThanOrEqual(decimal.Zero)
}
