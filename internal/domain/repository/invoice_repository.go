package repository

import "github.com/Moein-9/optica-api/internal/domain/entity"

// InvoiceRepository persistence port for finalized invoices.
//
// Create writes the header, contact lens lines and the initial deposit
// payment; it runs inside the workflow's finalize transaction. AddPayment and
// AddEdit append to their histories and update the header's derived money
// fields; history rows are never rewritten.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(invoiceID string) (*entity.Invoice, error)
	ListByPatient(patientID string) ([]*entity.Invoice, error)
	// List returns headers ordered by creation, newest first. unpaidOnly
	// filters to invoices with a positive remaining balance.
	List(limit, offset int, unpaidOnly bool) ([]*entity.Invoice, error)
	AddPayment(payment *entity.Payment) error
	AddEdit(edit *entity.EditEntry) error
}
