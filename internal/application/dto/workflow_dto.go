package dto

import "github.com/shopspring/decimal"

// StartSessionRequest body for POST /api/workflow/sessions.
type StartSessionRequest struct {
	InvoiceType string `json:"invoice_type"` // glasses | contacts | exam | repair
}

// SetPatientRequest patient step. Either PatientID references a patient file,
// or Skip is true and Name/Phone are optional free text.
type SetPatientRequest struct {
	PatientID string `json:"patient_id,omitempty"`
	Skip      bool   `json:"skip,omitempty"`
	Name      string `json:"name,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// GlassesSelectionRequest products step for a glasses draft. Component ids
// reference the lens catalog; the bundled-price lookup runs on the exact
// {lens type, coating, thickness} triple.
type GlassesSelectionRequest struct {
	SkipLens       bool   `json:"skip_lens,omitempty"`
	SkipFrame      bool   `json:"skip_frame,omitempty"`
	LensTypeID     string `json:"lens_type_id,omitempty"`
	CoatingID      string `json:"coating_id,omitempty"`
	ThicknessID    string `json:"thickness_id,omitempty"`
	FrameID        string `json:"frame_id,omitempty"` // in-stock frame
	FrameBrand     string `json:"frame_brand,omitempty"`
	FrameModel     string `json:"frame_model,omitempty"`
	FrameColor     string `json:"frame_color,omitempty"`
	FrameSize      string `json:"frame_size,omitempty"`
	FramePriceText string `json:"frame_price,omitempty"` // custom frame price, decimal string
}

// ContactItemRequest one contact lens line.
type ContactItemRequest struct {
	ContactLensID string `json:"contact_lens_id"`
	Qty           int    `json:"qty"`
}

// ContactsSelectionRequest products step for a contacts draft.
type ContactsSelectionRequest struct {
	Items []ContactItemRequest `json:"items"`
}

// ServiceSelectionRequest products step for exam/repair drafts. For exams the
// service resolves from the catalog; repairs carry a free-text description
// and a price.
type ServiceSelectionRequest struct {
	ServiceID   string          `json:"service_id,omitempty"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

// SetPaymentRequest payment step.
type SetPaymentRequest struct {
	Discount   decimal.Decimal `json:"discount"`
	Deposit    decimal.Decimal `json:"deposit"`
	Method     string          `json:"method"`
	AuthNumber string          `json:"auth_number,omitempty"`
}

// ContactItemView a contact lens line in the session view.
type ContactItemView struct {
	ContactLensID string          `json:"contact_lens_id,omitempty"`
	Brand         string          `json:"brand"`
	Type          string          `json:"type,omitempty"`
	Power         string          `json:"power,omitempty"`
	Color         string          `json:"color,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Qty           int             `json:"qty"`
}

// SessionResponse the full workflow session: current step plus the draft, so
// the client can re-render any previous step without losing state.
type SessionResponse struct {
	SessionID   string `json:"session_id"`
	Step        string `json:"step"`
	InvoiceType string `json:"invoice_type"`

	PatientID    string `json:"patient_id,omitempty"`
	PatientName  string `json:"patient_name,omitempty"`
	PatientPhone string `json:"patient_phone,omitempty"`
	SkipPatient  bool   `json:"skip_patient,omitempty"`

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
	PaymentMethod string          `json:"payment_method,omitempty"`
}

// SaveInvoiceResponse result of the summary step's save action.
type SaveInvoiceResponse struct {
	InvoiceID   string          `json:"invoice_id"`
	WorkOrderID string          `json:"work_order_id"`
	Total       decimal.Decimal `json:"total"`
	Remaining   decimal.Decimal `json:"remaining"`
	IsPaid      bool            `json:"is_paid"`
}
