// Package receipts renders finalized invoices into their printable formats:
// an 80mm thermal receipt, an A4 PDF and a small work order label for the
// lens envelope.
package receipts

import (
	"github.com/Moein-9/optica-api/internal/domain"
	"github.com/Moein-9/optica-api/internal/domain/entity"
	"github.com/Moein-9/optica-api/internal/domain/repository"
)

// StoreInfo identity printed on every document.
type StoreInfo struct {
	Name       string
	NameArabic string
	Phone      string
	Address    string
	Currency   string // ISO code, e.g. "KWD"
}

// PDFRenderer renders A4 documents.
type PDFRenderer interface {
	RenderInvoice(invoice *entity.Invoice, store StoreInfo, lang string) ([]byte, error)
}

// ThermalRenderer renders ESC/POS byte streams for the register's 80mm
// printer.
type ThermalRenderer interface {
	RenderReceipt(invoice *entity.Invoice, store StoreInfo, lang string) ([]byte, error)
	RenderLabel(invoice *entity.Invoice, store StoreInfo) ([]byte, error)
}

// ReceiptUseCase loads an invoice and hands it to the right renderer.
type ReceiptUseCase struct {
	invoiceRepo repository.InvoiceRepository
	pdf         PDFRenderer
	thermal     ThermalRenderer
	store       StoreInfo
}

// NewReceiptUseCase builds the use case.
func NewReceiptUseCase(
	invoiceRepo repository.InvoiceRepository,
	pdf PDFRenderer,
	thermal ThermalRenderer,
	store StoreInfo,
) *ReceiptUseCase {
	return &ReceiptUseCase{invoiceRepo: invoiceRepo, pdf: pdf, thermal: thermal, store: store}
}

// InvoicePDF renders the A4 document for an invoice.
func (uc *ReceiptUseCase) InvoicePDF(invoiceID, lang string) ([]byte, error) {
	inv, err := uc.load(invoiceID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.RenderInvoice(inv, uc.store, lang)
}

// ThermalReceipt renders the 80mm customer receipt as ESC/POS bytes.
func (uc *ReceiptUseCase) ThermalReceipt(invoiceID, lang string) ([]byte, error) {
	inv, err := uc.load(invoiceID)
	if err != nil {
		return nil, err
	}
	return uc.thermal.RenderReceipt(inv, uc.store, lang)
}

// Label renders the work order label that travels with the lens envelope.
func (uc *ReceiptUseCase) Label(invoiceID string) ([]byte, error) {
	inv, err := uc.load(invoiceID)
	if err != nil {
		return nil, err
	}
	return uc.thermal.RenderLabel(inv, uc.store)
}

func (uc *ReceiptUseCase) load(invoiceID string) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}
