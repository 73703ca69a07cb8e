package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Moein-9/optica-api/internal/application/dto"
	"github.com/Moein-9/optica-api/internal/domain"
	"github.com/Moein-9/optica-api/internal/domain/entity"
	"github.com/Moein-9/optica-api/internal/domain/repository"
)

// Save finalizes the draft: generates the invoice and work-order numbers and
// persists the record in one transaction, decrementing frame stock for
// in-stock frames. A FinalizedInvoice is created exactly once; the session is
// marked finalized so a double click cannot save twice.
func (uc *WorkflowUseCase) Save(ctx context.Context, sessionID, userID string) (*dto.SaveInvoiceResponse, error) {
	s, err := uc.loadOpen(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if s.Step != entity.StepSummary {
		return nil, domain.ErrStepOrder
	}
	// The payment step already enforced this; guard anyway so a Summary
	// session rebuilt from an old store version cannot save without a method.
	if s.Draft.PaymentMethod == "" {
		return nil, domain.ErrPaymentMethodEmpty
	}

	now := time.Now()
	inv := invoiceFromDraft(&s.Draft, now, userID)

	if s.Draft.Deposit.IsPositive() {
		inv.Payments = []entity.Payment{{
			ID:         uuid.New().String(),
			InvoiceID:  inv.InvoiceID,
			Amount:     s.Draft.Deposit,
			Method:     s.Draft.PaymentMethod,
			AuthNumber: s.Draft.AuthNumber,
			Date:       now,
		}}
	}

	err = uc.txRunner.RunInvoice(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		frameRepo repository.FrameRepository,
	) error {
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		// Selling an in-stock frame takes it out of inventory; a sold-out
		// frame rolls the whole save back.
		if inv.InvoiceType == entity.InvoiceTypeGlasses && !inv.SkipFrame && inv.FrameID != "" {
			if err := frameRepo.AdjustQty(inv.FrameID, -1); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Finalized = true
	s.InvoiceID = inv.InvoiceID
	if err := uc.put(ctx, s); err != nil {
		// The invoice is committed; a session write failure only risks a
		// duplicate-save attempt, which the store's unique invoice id rejects.
		return nil, err
	}

	return &dto.SaveInvoiceResponse{
		InvoiceID:   inv.InvoiceID,
		WorkOrderID: inv.WorkOrderID,
		Total:       inv.Total,
		Remaining:   inv.Remaining,
		IsPaid:      inv.IsPaid(),
	}, nil
}

// invoiceFromDraft snapshots the draft into an immutable invoice record.
func invoiceFromDraft(d *entity.InvoiceDraft, now time.Time, userID string) *entity.Invoice {
	inv := &entity.Invoice{
		InvoiceID:   entity.NewInvoiceNumber(now),
		WorkOrderID: entity.NewWorkOrderNumber(now),
		InvoiceType: d.InvoiceType,

		PatientID:    d.PatientID,
		PatientName:  d.PatientName,
		PatientPhone: d.PatientPhone,
		Rx:           d.Rx,
		ContactRx:    d.ContactRx,

		SkipLens:          d.SkipLens,
		SkipFrame:         d.SkipFrame,
		FrameID:           d.Frame.FrameID,
		FrameBrand:        d.Frame.Brand,
		FrameModel:        d.Frame.Model,
		FrameColor:        d.Frame.Color,
		FrameSize:         d.Frame.Size,
		FramePrice:        d.Frame.Price,
		LensType:          d.LensType,
		LensPrice:         d.LensPrice,
		Coating:           d.Coating,
		CoatingPrice:      d.CoatingPrice,
		Thickness:         d.Thickness,
		ThicknessPrice:    d.ThicknessPrice,
		CombinedLensPrice: d.CombinedLensPrice,

		ServiceID:    d.ServiceID,
		ServiceName:  d.ServiceName,
		ServicePrice: d.ServicePrice,
		Description:  d.Description,

		Discount:  d.Discount,
		Deposit:   d.Deposit,
		Total:     d.Total,
		Remaining: d.Remaining,

		PaymentMethod: d.PaymentMethod,
		AuthNumber:    d.AuthNumber,

		CreatedAt: now,
		CreatedBy: userID,
	}
	for _, item := range d.ContactItems {
		inv.ContactItems = append(inv.ContactItems, entity.ContactLensLine{
			ID:            uuid.New().String(),
			InvoiceID:     inv.InvoiceID,
			ContactLensID: item.ContactLensID,
			Brand:         item.Brand,
			Type:          item.Type,
			Power:         item.Power,
			Color:         item.Color,
			Price:         item.Price,
			Qty:           item.Qty,
		})
	}
	return inv
}
