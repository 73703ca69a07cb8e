package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Moein-9/optica-api/internal/application/dto"
	"github.com/Moein-9/optica-api/internal/domain"
	"github.com/Moein-9/optica-api/internal/domain/entity"
	"github.com/Moein-9/optica-api/internal/domain/pricing"
	"github.com/Moein-9/optica-api/internal/domain/repository"
)

// stepOrder gives each workflow step its position in the linear progression.
var stepOrder = map[entity.WorkflowStep]int{
	entity.StepPatient:  0,
	entity.StepProducts: 1,
	entity.StepPayment:  2,
	entity.StepSummary:  3,
}

// WorkflowUseCase drives the invoice workflow state machine:
// patient -> products -> payment -> summary, branching on invoice type.
//
// Every operation loads the session, validates, mutates a copy and writes it
// back. A validation failure returns a sentinel error and leaves the stored
// session untouched, so the user corrects and retries without losing state.
type WorkflowUseCase struct {
	sessions    SessionStore
	patientRepo repository.PatientRepository
	frameRepo   repository.FrameRepository
	lensRepo    repository.LensCatalogRepository
	contactRepo repository.ContactLensRepository
	serviceRepo repository.ServiceRepository
	txRunner    InvoiceTxRunner
}

// NewWorkflowUseCase builds the use case.
func NewWorkflowUseCase(
	sessions SessionStore,
	patientRepo repository.PatientRepository,
	frameRepo repository.FrameRepository,
	lensRepo repository.LensCatalogRepository,
	contactRepo repository.ContactLensRepository,
	serviceRepo repository.ServiceRepository,
	txRunner InvoiceTxRunner,
) *WorkflowUseCase {
	return &WorkflowUseCase{
		sessions:    sessions,
		patientRepo: patientRepo,
		frameRepo:   frameRepo,
		lensRepo:    lensRepo,
		contactRepo: contactRepo,
		serviceRepo: serviceRepo,
		txRunner:    txRunner,
	}
}

// Start opens a new session at the patient step.
func (uc *WorkflowUseCase) Start(ctx context.Context, invoiceType string) (*dto.SessionResponse, error) {
	it := entity.InvoiceType(invoiceType)
	if !it.Valid() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	s := &Session{
		ID:        uuid.New().String(),
		Step:      entity.StepPatient,
		Draft:     entity.InvoiceDraft{InvoiceType: it},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.sessions.Put(ctx, s); err != nil {
		return nil, err
	}
	return toSessionResponse(s), nil
}

// Get returns the session's full state. Backward navigation in the client is
// a pure re-render of this data; nothing is discarded.
func (uc *WorkflowUseCase) Get(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	s, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(s), nil
}

// SetPatient handles the patient step: a patient file reference, or skip with
// optional free-text name/phone. Selecting a patient snapshots the file's
// prescriptions into the draft.
func (uc *WorkflowUseCase) SetPatient(ctx context.Context, sessionID string, in dto.SetPatientRequest) (*dto.SessionResponse, error) {
	s, err := uc.loadOpen(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !in.Skip && in.PatientID == "" {
		return nil, domain.ErrPatientRequired
	}

	d := &s.Draft
	if in.Skip {
		d.SkipPatient = true
		d.PatientID = ""
		d.PatientName = in.Name
		d.PatientPhone = in.Phone
		d.Rx = nil
		d.ContactRx = nil
	} else {
		patient, err := uc.patientRepo.GetByID(in.PatientID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, domain.ErrNotFound
		}
		d.SkipPatient = false
		d.PatientID = patient.ID
		d.PatientName = patient.Name
		d.PatientPhone = patient.Phone
		d.Rx = patient.Rx
		d.ContactRx = patient.ContactRx
	}

	uc.advance(s, entity.StepProducts)
	if err := uc.put(ctx, s); err != nil {
		return nil, err
	}
	return toSessionResponse(s), nil
}

// SetGlasses handles the products step for a glasses draft. Minimum
// selection: a lens type unless lenses are skipped, and a frame with brand
// and model unless the frame is skipped. When all three lens component ids
// are chosen, a matching pricing combination overrides their prices.
func (uc *WorkflowUseCase) SetGlasses(ctx context.Context, sessionID string, in dto.GlassesSelectionRequest) (*dto.SessionResponse, error) {
	s, err := uc.loadOpen(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if s.Draft.InvoiceType != entity.InvoiceTypeGlasses {
		return nil, domain.ErrStepOrder
	}
	if stepOrder[s.Step] < stepOrder[entity.StepProducts] {
		return nil, domain.ErrStepOrder
	}
	if !in.SkipLens && in.LensTypeID == "" {
		return nil, domain.ErrLensRequired
	}

	// Build the selection on a scratch draft so a failed lookup leaves the
	// stored session untouched.
	d := s.Draft
	d.ClearGlassesFields()
	d.SkipLens = in.SkipLens
	d.SkipFrame = in.SkipFrame

	if !in.SkipLens {
		if err := uc.resolveLensSelection(&d, in); err != nil {
			return nil, err
		}
	}
	if !in.SkipFrame {
		if err := uc.resolveFrameSelection(&d, in); err != nil {
			return nil, err
		}
	}

	pricing.Recalculate(&d)
	s.Draft = d
	uc.advance(s, entity.StepPayment)
	if err := uc.put(ctx, s); err != nil {
		return nil, err
	}
	return toSessionResponse(s), nil
}

func (uc *WorkflowUseCase) resolveLensSelection(d *entity.InvoiceDraft, in dto.GlassesSelectionRequest) error {
	lensTypes, err := uc.lensRepo.ListLensTypes()
	if err != nil {
		return err
	}
	var lensType *entity.LensType
	for _, lt := range lensTypes {
		if lt.ID == in.LensTypeID {
			lensType = lt
			break
		}
	}
	if lensType == nil {
		return domain.ErrNotFound
	}
	d.LensType = lensType.Name
	d.LensPrice = lensType.Price

	if in.CoatingID != "" {
		coatings, err := uc.lensRepo.ListCoatingsByCategory(lensType.Category)
		if err != nil {
			return err
		}
		for _, c := range coatings {
			if c.ID == in.CoatingID {
				d.Coating = c.Name
				d.CoatingPrice = c.Price
				break
			}
		}
		if d.Coating == "" {
			return domain.ErrNotFound
		}
	}
	if in.ThicknessID != "" {
		thicknesses, err := uc.lensRepo.ListThicknessesByCategory(lensType.Category)
		if err != nil {
			return err
		}
		for _, th := range thicknesses {
			if th.ID == in.ThicknessID {
				d.Thickness = th.Name
				d.ThicknessPrice = th.Price
				break
			}
		}
		if d.Thickness == "" {
			return domain.ErrNotFound
		}
	}

	// Bundled price needs the exact triple; a partial selection never matches.
	if in.CoatingID != "" && in.ThicknessID != "" {
		combined, err := uc.lensRepo.GetCombinationPrice(in.LensTypeID, in.CoatingID, in.ThicknessID)
		if err != nil {
			return err
		}
		d.CombinedLensPrice = combined
	}
	return nil
}

func (uc *WorkflowUseCase) resolveFrameSelection(d *entity.InvoiceDraft, in dto.GlassesSelectionRequest) error {
	if in.FrameID != "" {
		frame, err := uc.frameRepo.GetByID(in.FrameID)
		if err != nil {
			return err
		}
		if frame == nil {
			return domain.ErrNotFound
		}
		d.Frame = entity.FrameSelection{
			FrameID: frame.ID,
			Brand:   frame.Brand,
			Model:   frame.Model,
			Color:   frame.Color,
			Size:    frame.Size,
			Price:   frame.Price,
		}
		return nil
	}
	if in.FrameBrand == "" || in.FrameModel == "" {
		return domain.ErrFrameIncomplete
	}
	price := decimal.Zero
	if in.FramePriceText != "" {
		p, err := decimal.NewFromString(in.FramePriceText)
		if err != nil || p.IsNegative() {
			return domain.ErrInvalidInput
		}
		price = p
	}
	d.Frame = entity.FrameSelection{
		Brand: in.FrameBrand,
		Model: in.FrameModel,
		Color: in.FrameColor,
		Size:  in.FrameSize,
		Price: price,
	}
	return nil
}

// SetContacts handles the products step for a contacts draft: at least one
// contact lens line, each resolved from stock with a positive quantity.
func (uc *WorkflowUseCase) SetContacts(ctx context.Context, sessionID string, in dto.ContactsSelectionRequest) (*dto.SessionResponse, error) {
	s, err := uc.loadOpen(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if s.Draft.InvoiceType != entity.InvoiceTypeContacts {
		return nil, domain.ErrStepOrder
	}
	if stepOrder[s.Step] < stepOrder[entity.StepProducts] {
		return nil, domain.ErrStepOrder
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrContactItemsMissing
	}

	items := make([]entity.ContactLensSelection, 0, len(in.Items))
	for _, item := range in.Items {
		if item.ContactLensID == "" || item.Qty <= 0 {
			return nil, domain.ErrInvalidInput
		}
		lens, err := uc.contactRepo.GetByID(item.ContactLensID)
		if err != nil {
			return nil, err
		}
		if lens == nil {
			return nil, domain.ErrNotFound
		}
		items = append(items, entity.ContactLensSelection{
			ContactLensID: lens.ID,
			Brand:         lens.Brand,
			Type:          lens.Type,
			Power:         lens.Power,
			Color:         lens.Color,
			Price:         lens.Price,
			Qty:           item.Qty,
		})
	}

	s.Draft.ContactItems = items
	pricing.Recalculate(&s.Draft)
	uc.advance(s, entity.StepPayment)
	if err := uc.put(ctx, s); err != nil {
		return nil, err
	}
	return toSessionResponse(s), nil
}

// SetService handles the products step for exam and repair drafts. Exams
// resolve the store's configured exam service; repairs take a free-text
// description with a non-negative price, or a repair service from the catalog.
func (uc *WorkflowUseCase) SetService(ctx context.Context, sessionID string, in dto.ServiceSelectionRequest) (*dto.SessionResponse, error) {
	s, err := uc.loadOpen(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if stepOrder[s.Step] < stepOrder[entity.StepProducts] {
		return nil, domain.ErrStepOrder
	}

	d := &s.Draft
	switch d.InvoiceType {
	case entity.InvoiceTypeExam:
		svc, err := uc.serviceRepo.GetExamService()
		if err != nil {
			return nil, err
		}
		if svc == nil {
			return nil, domain.ErrExamServiceMissing
		}
		d.ServiceID = svc.ID
		d.ServiceName = svc.Name
		d.ServicePrice = svc.Price
		d.Description = in.Description
	case entity.InvoiceTypeRepair:
		if in.ServiceID != "" {
			svc, err := uc.serviceRepo.GetByID(in.ServiceID)
			if err != nil {
				return nil, err
			}
			if svc == nil {
				return nil, domain.ErrNotFound
			}
			d.ServiceID = svc.ID
			d.ServiceName = svc.Name
			d.ServicePrice = svc.Price
			d.Description = in.Description
		} else {
			if in.Description == "" || in.Price.IsNegative() {
				return nil, domain.ErrRepairIncomplete
			}
			d.ServiceID = ""
			d.ServiceName = in.Description
			d.ServicePrice = in.Price
			d.Description = in.Description
		}
	default:
		return nil, domain.ErrStepOrder
	}

	pricing.Recalculate(d)
	uc.advance(s, entity.StepPayment)
	if err := uc.put(ctx, s); err != nil {
		return nil, err
	}
	return toSessionResponse(s), nil
}

// SetPayment handles the payment step: a payment method is mandatory and card
// methods additionally require an approval number. Discount and deposit must
// not be negative; that is validated here, not in the calculator.
func (uc *WorkflowUseCase) SetPayment(ctx context.Context, sessionID string, in dto.SetPaymentRequest) (*dto.SessionResponse, error) {
	s, err := uc.loadOpen(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if stepOrder[s.Step] < stepOrder[entity.StepPayment] {
		return nil, domain.ErrStepOrder
	}
	if in.Discount.IsNegative() || in.Deposit.IsNegative() {
		return nil, domain.ErrNegativeAmount
	}
	if in.Method == "" {
		return nil, domain.ErrPaymentMethodEmpty
	}
	if entity.IsCardMethod(in.Method) && in.AuthNumber == "" {
		return nil, domain.ErrAuthNumberRequired
	}

	d := &s.Draft
	d.Discount = in.Discount
	d.Deposit = in.Deposit
	d.PaymentMethod = in.Method
	d.AuthNumber = in.AuthNumber
	pricing.Recalculate(d)

	uc.advance(s, entity.StepSummary)
	if err := uc.put(ctx, s); err != nil {
		return nil, err
	}
	return toSessionResponse(s), nil
}

// PayInFull sets the deposit to the current total, leaving a zero balance.
// Idempotent; allowed from the payment step on.
func (uc *WorkflowUseCase) PayInFull(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	s, err := uc.loadOpen(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if stepOrder[s.Step] < stepOrder[entity.StepPayment] {
		return nil, domain.ErrStepOrder
	}
	pricing.PayInFull(&s.Draft)
	if err := uc.put(ctx, s); err != nil {
		return nil, err
	}
	return toSessionResponse(s), nil
}

// SwitchType changes the draft's invoice type and clears the previous type's
// component fields so stale prices cannot leak into the new total. The
// session drops back to the products step when it had already passed it.
func (uc *WorkflowUseCase) SwitchType(ctx context.Context, sessionID string, invoiceType string) (*dto.SessionResponse, error) {
	s, err := uc.loadOpen(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	it := entity.InvoiceType(invoiceType)
	if !it.Valid() {
		return nil, domain.ErrInvalidInput
	}
	d := &s.Draft
	if d.InvoiceType != it {
		switch d.InvoiceType {
		case entity.InvoiceTypeGlasses:
			d.ClearGlassesFields()
		case entity.InvoiceTypeContacts:
			d.ClearContactFields()
		default:
			d.ClearServiceFields()
		}
		d.InvoiceType = it
		pricing.Recalculate(d)
		if stepOrder[s.Step] > stepOrder[entity.StepProducts] {
			s.Step = entity.StepProducts
		}
	}
	if err := uc.put(ctx, s); err != nil {
		return nil, err
	}
	return toSessionResponse(s), nil
}

// Reset discards the draft and returns the session to the patient step with
// defaults, keeping only the invoice type.
func (uc *WorkflowUseCase) Reset(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	s, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	s.Draft = entity.InvoiceDraft{InvoiceType: s.Draft.InvoiceType}
	s.Step = entity.StepPatient
	s.Finalized = false
	s.InvoiceID = ""
	if err := uc.put(ctx, s); err != nil {
		return nil, err
	}
	return toSessionResponse(s), nil
}

// loadOpen fetches a session that has not been finalized yet.
func (uc *WorkflowUseCase) loadOpen(ctx context.Context, sessionID string) (*Session, error) {
	s, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if s.Finalized {
		return nil, domain.ErrSessionFinalized
	}
	return s, nil
}

// advance moves the session forward to step, never backward: re-submitting an
// earlier step after navigating back keeps the later progress.
func (uc *WorkflowUseCase) advance(s *Session, step entity.WorkflowStep) {
	if stepOrder[step] > stepOrder[s.Step] {
		s.Step = step
	}
}

func (uc *WorkflowUseCase) put(ctx context.Context, s *Session) error {
	s.UpdatedAt = time.Now()
	return uc.sessions.Put(ctx, s)
}
