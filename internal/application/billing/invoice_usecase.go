package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/Moein-9/optica-api/internal/application/dto"
	"github.com/Moein-9/optica-api/internal/domain"
	"github.com/Moein-9/optica-api/internal/domain/entity"
	"github.com/Moein-9/optica-api/internal/domain/repository"
)

// InvoiceUseCase reads finalized invoices and appends to their payment and
// edit histories. It never rewrites a finalized record.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo}
}

// Get returns a finalized invoice with both histories.
func (uc *InvoiceUseCase) Get(invoiceID string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(inv), nil
}

// List returns invoice headers, newest first.
func (uc *InvoiceUseCase) List(limit, offset int, unpaidOnly bool) ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.List(limit, offset, unpaidOnly)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// ListByPatient returns a patient's transaction history.
func (uc *InvoiceUseCase) ListByPatient(patientID string) ([]*dto.InvoiceResponse, error) {
	if patientID == "" {
		return nil, domain.ErrInvalidInput
	}
	invoices, err := uc.invoiceRepo.ListByPatient(patientID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// AddPayment records a payment against the remaining balance. The payment
// history is append-only; the header's deposit/remaining are recomputed from
// the history by the repository.
func (uc *InvoiceUseCase) AddPayment(invoiceID string, in dto.AddPaymentRequest) (*dto.InvoiceResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Method == "" {
		return nil, domain.ErrPaymentMethodEmpty
	}
	if entity.IsCardMethod(in.Method) && in.AuthNumber == "" {
		return nil, domain.ErrAuthNumberRequired
	}
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.IsPaid() {
		return nil, domain.ErrConflict
	}
	payment := &entity.Payment{
		ID:         uuid.New().String(),
		InvoiceID:  invoiceID,
		Amount:     in.Amount,
		Method:     in.Method,
		AuthNumber: in.AuthNumber,
		Date:       time.Now(),
	}
	if err := uc.invoiceRepo.AddPayment(payment); err != nil {
		return nil, err
	}
	return uc.Get(invoiceID)
}

// AddEdit appends a note to the invoice's edit trail.
func (uc *InvoiceUseCase) AddEdit(invoiceID string, in dto.AddEditRequest) (*dto.InvoiceResponse, error) {
	if in.Notes == "" {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	edit := &entity.EditEntry{
		ID:        uuid.New().String(),
		InvoiceID: invoiceID,
		Notes:     in.Notes,
		EditedAt:  time.Now(),
	}
	if err := uc.invoiceRepo.AddEdit(edit); err != nil {
		return nil, err
	}
	return uc.Get(invoiceID)
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		InvoiceID:   inv.InvoiceID,
		WorkOrderID: inv.WorkOrderID,
		InvoiceType: string(inv.InvoiceType),

		PatientID:    inv.PatientID,
		PatientName:  inv.PatientName,
		PatientPhone: inv.PatientPhone,
		Rx:           dto.NewGlassesRxDTO(inv.Rx),
		ContactRx:    dto.NewContactLensRxDTO(inv.ContactRx),

		SkipLens:          inv.SkipLens,
		SkipFrame:         inv.SkipFrame,
		FrameBrand:        inv.FrameBrand,
		FrameModel:        inv.FrameModel,
		FrameColor:        inv.FrameColor,
		FrameSize:         inv.FrameSize,
		FramePrice:        inv.FramePrice,
		LensType:          inv.LensType,
		LensPrice:         inv.LensPrice,
		Coating:           inv.Coating,
		CoatingPrice:      inv.CoatingPrice,
		Thickness:         inv.Thickness,
		ThicknessPrice:    inv.ThicknessPrice,
		CombinedLensPrice: inv.CombinedLensPrice,

		ServiceName:  inv.ServiceName,
		ServicePrice: inv.ServicePrice,
		Description:  inv.Description,

		Discount:      inv.Discount,
		Deposit:       inv.Deposit,
		Total:         inv.Total,
		Remaining:     inv.Remaining,
		IsPaid:        inv.IsPaid(),
		PaymentMethod: inv.PaymentMethod,

		CreatedAt: inv.CreatedAt,
	}
	for _, item := range inv.ContactItems {
		resp.ContactItems = append(resp.ContactItems, dto.ContactItemView{
			ContactLensID: item.ContactLensID,
			Brand:         item.Brand,
			Type:          item.Type,
			Power:         item.Power,
			Color:         item.Color,
			Price:         item.Price,
			Qty:           item.Qty,
		})
	}
	for _, p := range inv.Payments {
		resp.Payments = append(resp.Payments, dto.PaymentResponse{
			ID:         p.ID,
			Amount:     p.Amount,
			Method:     p.Method,
			AuthNumber: p.AuthNumber,
			Date:       p.Date,
		})
	}
	for _, e := range inv.Edits {
		resp.Edits = append(resp.Edits, dto.EditResponse{
			ID:       e.ID,
			Notes:    e.Notes,
			EditedAt: e.EditedAt,
		})
	}
	return resp
}
