package entity

import "github.com/shopspring/decimal"

// InvoiceType selects the workflow branch and which component prices count.
type InvoiceType string

const (
	InvoiceTypeGlasses  InvoiceType = "glasses"
	InvoiceTypeContacts InvoiceType = "contacts"
	InvoiceTypeExam     InvoiceType = "exam"
	InvoiceTypeRepair   InvoiceType = "repair"
)

// Valid reports whether t is one of the four known invoice types.
func (t InvoiceType) Valid() bool {
	switch t {
	case InvoiceTypeGlasses, InvoiceTypeContacts, InvoiceTypeExam, InvoiceTypeRepair:
		return true
	}
	return false
}

// WorkflowStep is a position in the linear invoice workflow.
type WorkflowStep string

const (
	StepPatient  WorkflowStep = "patient"
	StepProducts WorkflowStep = "products"
	StepPayment  WorkflowStep = "payment"
	StepSummary  WorkflowStep = "summary"
)

// FrameSelection the frame chosen for a glasses draft. FrameID is set when
// the frame comes from stock; a custom (customer-owned or special-order)
// frame leaves it empty.
type FrameSelection struct {
	FrameID string
	Brand   string
	Model   string
	Color   string
	Size    string
	Price   decimal.Decimal
}

// ContactLensSelection one contact lens line on a contacts draft.
type ContactLensSelection struct {
	ContactLensID string
	Brand         string
	Type          string
	Power         string
	Color         string
	Price         decimal.Decimal
	Qty           int
}

// InvoiceDraft is the mutable state of one invoice workflow session. It is
// single-owner: exactly one session mutates it, so no locking discipline is
// needed beyond the session store's own.
type InvoiceDraft struct {
	InvoiceType InvoiceType

	// Patient step. SkipPatient allows a walk-in sale with optional free-text
	// name/phone instead of a patient file.
	PatientID    string
	PatientName  string
	PatientPhone string
	SkipPatient  bool
	Rx           *GlassesRx
	ContactRx    *ContactLensRx

	// Glasses fields. SkipLens and SkipFrame are independent: frame-only and
	// lens-only sales are both valid.
	SkipLens       bool
	SkipFrame      bool
	Frame          FrameSelection
	LensType       string
	LensPrice      decimal.Decimal
	Coating        string
	CoatingPrice   decimal.Decimal
	Thickness      string
	ThicknessPrice decimal.Decimal
	// CombinedLensPrice supersedes the three lens component prices when a
	// matching pricing-combination row exists. Nil means no override.
	CombinedLensPrice *decimal.Decimal

	// Contacts fields.
	ContactItems []ContactLensSelection

	// Exam/repair fields.
	ServiceID    string
	ServiceName  string
	ServicePrice decimal.Decimal
	Description  string

	// Shared money fields. Total and Remaining are derived by the pricing
	// calculator, never entered directly.
	Discount  decimal.Decimal
	Deposit   decimal.Decimal
	Total     decimal.Decimal
	Remaining decimal.Decimal

	PaymentMethod string
	AuthNumber    string
}

// ClearGlassesFields resets every glasses-only component so its prices cannot
// leak into another invoice type's total.
func (d *InvoiceDraft) ClearGlassesFields() {
	d.SkipLens = false
	d.SkipFrame = false
	d.Frame = FrameSelection{}
	d.LensType = ""
	d.LensPrice = decimal.Zero
	d.Coating = ""
	d.CoatingPrice = decimal.Zero
	d.Thickness = ""
	d.ThicknessPrice = decimal.Zero
	d.CombinedLensPrice = nil
}

// ClearContactFields drops all contact lens lines.
func (d *InvoiceDraft) ClearContactFields() {
	d.ContactItems = nil
}

// ClearServiceFields resets the exam/repair selection.
func (d *InvoiceDraft) ClearServiceFields() {
	d.ServiceID = ""
	d.ServiceName = ""
	d.ServicePrice = decimal.Zero
	d.Description = ""
}
