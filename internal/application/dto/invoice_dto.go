package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentResponse one entry of an invoice's payment history.
type PaymentResponse struct {
	ID         string          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	AuthNumber string          `json:"auth_number,omitempty"`
	Date       time.Time       `json:"date"`
}

// EditResponse one entry of an invoice's edit trail.
type EditResponse struct {
	ID       string    `json:"id"`
	Notes    string    `json:"notes"`
	EditedAt time.Time `json:"edited_at"`
}

// AddPaymentRequest body for POST /api/invoices/:id/payments.
type AddPaymentRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	AuthNumber string          `json:"auth_number,omitempty"`
}

// AddEditRequest body for POST /api/invoices/:id/edits.
type AddEditRequest struct {
	Notes string `json:"notes"`
}

// InvoiceResponse a finalized invoice with its histories.
type InvoiceResponse struct {
	InvoiceID   string `json:"invoice_id"`
	WorkOrderID string `json:"work_order_id"`
	InvoiceType string `json:"invoice_type"`

	PatientID    string            `json:"patient_id,omitempty"`
	PatientName  string            `json:"patient_name,omitempty"`
	PatientPhone string            `json:"patient_phone,omitempty"`
	Rx           *GlassesRxDTO     `json:"rx,omitempty"`
	ContactRx    *ContactLensRxDTO `json:"contact_rx,omitempty"`

	SkipLens          bool             `json:"skip_lens,omitempty"`
	SkipFrame         bool             `json:"skip_frame,omitempty"`
	FrameBrand        string           `json:"frame_brand,omitempty"`
	FrameModel        string           `json:"frame_model,omitempty"`
	FrameColor        string           `json:"frame_color,omitempty"`
	FrameSize         string           `json:"frame_size,omitempty"`
	FramePrice        decimal.Decimal  `json:"frame_price"`
	LensType          string           `json:"lens_type,omitempty"`
	LensPrice         decimal.Decimal  `json:"lens_price"`
	Coating           string           `json:"coating,omitempty"`
	CoatingPrice      decimal.Decimal  `json:"coating_price"`
	Thickness         string           `json:"thickness,omitempty"`
	ThicknessPrice    decimal.Decimal  `json:"thickness_price"`
	CombinedLensPrice *decimal.Decimal `json:"combined_lens_price,omitempty"`

	ContactItems []ContactItemView `json:"contact_items,omitempty"`

	ServiceName  string          `json:"service_name,omitempty"`
	ServicePrice decimal.Decimal `json:"service_price"`
	Description  string          `json:"description,omitempty"`

	Discount      decimal.Decimal `json:"discount"`
	Deposit       decimal.Decimal `json:"deposit"`
	Total         decimal.Decimal `json:"total"`
	Remaining     decimal.Decimal `json:"remaining"`
	IsPaid        bool            `json:"is_paid"`
	PaymentMethod string          `json:"payment_method,omitempty"`

	CreatedAt time.Time         `json:"created_at"`
	Payments  []PaymentResponse `json:"payments,omitempty"`
	Edits     []EditResponse    `json:"edits,omitempty"`
}
