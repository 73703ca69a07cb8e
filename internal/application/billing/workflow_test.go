package billing_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moein-9/optica-api/internal/application/billing"
	"github.com/Moein-9/optica-api/internal/application/dto"
	"github.com/Moein-9/optica-api/internal/domain"
	"github.com/Moein-9/optica-api/internal/domain/entity"
	"github.com/Moein-9/optica-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes for the workflow's ports
// ──────────────────────────────────────────────────────────────────────────────

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]billing.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]billing.Session{}}
}

func (s *fakeSessionStore) Put(_ context.Context, sess *billing.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *fakeSessionStore) Get(_ context.Context, id string) (*billing.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	copied := sess
	return &copied, nil
}

func (s *fakeSessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

type fakePatientRepo struct{ patients map[string]*entity.Patient }

func (r *fakePatientRepo) Create(p *entity.Patient) error { r.patients[p.ID] = p; return nil }
func (r *fakePatientRepo) GetByID(id string) (*entity.Patient, error) {
	return r.patients[id], nil
}
func (r *fakePatientRepo) Search(string, int) ([]*entity.Patient, error) { return nil, nil }
func (r *fakePatientRepo) Update(*entity.Patient) error                  { return nil }
func (r *fakePatientRepo) List(int, int) ([]*entity.Patient, error)      { return nil, nil }

type fakeFrameRepo struct {
	frames map[string]*entity.Frame
}

func (r *fakeFrameRepo) Create(f *entity.Frame) error               { r.frames[f.ID] = f; return nil }
func (r *fakeFrameRepo) GetByID(id string) (*entity.Frame, error)   { return r.frames[id], nil }
func (r *fakeFrameRepo) Search(string, int) ([]*entity.Frame, error) { return nil, nil }
func (r *fakeFrameRepo) Update(*entity.Frame) error                 { return nil }
func (r *fakeFrameRepo) List(int, int) ([]*entity.Frame, error)     { return nil, nil }
func (r *fakeFrameRepo) AdjustQty(id string, delta int) error {
	f, ok := r.frames[id]
	if !ok {
		return domain.ErrNotFound
	}
	if f.Qty+delta < 0 {
		return domain.ErrOutOfStock
	}
	f.Qty += delta
	return nil
}

type fakeLensCatalog struct {
	lensTypes   []*entity.LensType
	coatings    []*entity.LensCoating
	thicknesses []*entity.LensThickness
	combos      map[string]decimal.Decimal // key: lensTypeID|coatingID|thicknessID
}

func (r *fakeLensCatalog) ListLensTypes() ([]*entity.LensType, error) { return r.lensTypes, nil }
func (r *fakeLensCatalog) ListCoatingsByCategory(string) ([]*entity.LensCoating, error) {
	return r.coatings, nil
}
func (r *fakeLensCatalog) ListThicknessesByCategory(string) ([]*entity.LensThickness, error) {
	return r.thicknesses, nil
}
func (r *fakeLensCatalog) GetCombinationPrice(lensTypeID, coatingID, thicknessID string) (*decimal.Decimal, error) {
	if p, ok := r.combos[lensTypeID+"|"+coatingID+"|"+thicknessID]; ok {
		return &p, nil
	}
	return nil, nil
}

type fakeContactRepo struct{ lenses map[string]*entity.ContactLens }

func (r *fakeContactRepo) Create(l *entity.ContactLens) error             { r.lenses[l.ID] = l; return nil }
func (r *fakeContactRepo) GetByID(id string) (*entity.ContactLens, error) { return r.lenses[id], nil }
func (r *fakeContactRepo) Search(string, int) ([]*entity.ContactLens, error) {
	return nil, nil
}
func (r *fakeContactRepo) List(int, int) ([]*entity.ContactLens, error) { return nil, nil }

type fakeServiceRepo struct {
	services map[string]*entity.ServiceItem
	exam     *entity.ServiceItem
}

func (r *fakeServiceRepo) ListByCategory(string) ([]*entity.ServiceItem, error) { return nil, nil }
func (r *fakeServiceRepo) GetByID(id string) (*entity.ServiceItem, error)       { return r.services[id], nil }
func (r *fakeServiceRepo) GetExamService() (*entity.ServiceItem, error)         { return r.exam, nil }

// fakeInvoiceRepo records finalized invoices in memory.
type fakeInvoiceRepo struct {
	mu       sync.Mutex
	invoices map[string]*entity.Invoice
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.invoices[inv.InvoiceID]; exists {
		return domain.ErrDuplicate
	}
	r.invoices[inv.InvoiceID] = inv
	return nil
}
func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) { return r.invoices[id], nil }
func (r *fakeInvoiceRepo) ListByPatient(string) ([]*entity.Invoice, error) {
	return nil, nil
}
func (r *fakeInvoiceRepo) List(int, int, bool) ([]*entity.Invoice, error) { return nil, nil }
func (r *fakeInvoiceRepo) AddPayment(*entity.Payment) error               { return nil }
func (r *fakeInvoiceRepo) AddEdit(*entity.EditEntry) error                { return nil }

// fakeTxRunner hands both fakes to fn; an error from fn "rolls back" by
// restoring the frame quantities snapshot.
type fakeTxRunner struct {
	invoiceRepo *fakeInvoiceRepo
	frameRepo   *fakeFrameRepo
}

func (t *fakeTxRunner) RunInvoice(_ context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	frameRepo repository.FrameRepository,
) error) error {
	snapshot := map[string]int{}
	for id, f := range t.frameRepo.frames {
		snapshot[id] = f.Qty
	}
	if err := fn(t.invoiceRepo, t.frameRepo); err != nil {
		for id, qty := range snapshot {
			t.frameRepo.frames[id].Qty = qty
		}
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc       *billing.WorkflowUseCase
	sessions *fakeSessionStore
	invoices *fakeInvoiceRepo
	frames   *fakeFrameRepo
}

func kwd(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	sessions := newFakeSessionStore()
	patients := &fakePatientRepo{patients: map[string]*entity.Patient{
		"pat-1": {ID: "pat-1", Name: "Fatima Al-Sabah", Phone: "99887766",
			Rx: &entity.GlassesRx{OD: entity.EyeRx{Sphere: "-2.50", PD: "31"}}},
	}}
	frames := &fakeFrameRepo{frames: map[string]*entity.Frame{
		"frm-1": {ID: "frm-1", Brand: "Ray-Ban", Model: "RB5154", Color: "Black", Size: "49-21", Price: kwd("40.000"), Qty: 2},
	}}
	lenses := &fakeLensCatalog{
		lensTypes: []*entity.LensType{
			{ID: "lt-1", Name: "Single Vision", Category: entity.LensCategoryDistance, Price: kwd("25.000")},
		},
		coatings: []*entity.LensCoating{
			{ID: "co-1", Name: "Anti-Reflective", Category: entity.LensCategoryDistance, Price: kwd("8.000")},
		},
		thicknesses: []*entity.LensThickness{
			{ID: "th-1", Name: "1.56 Standard", Category: entity.LensCategoryDistance, Price: decimal.Zero},
		},
		combos: map[string]decimal.Decimal{},
	}
	contacts := &fakeContactRepo{lenses: map[string]*entity.ContactLens{
		"cl-1": {ID: "cl-1", Brand: "Acuvue", Type: "monthly", Price: kwd("12.500")},
		"cl-2": {ID: "cl-2", Brand: "Biofinity", Type: "monthly", Price: kwd("12.500")},
	}}
	services := &fakeServiceRepo{
		services: map[string]*entity.ServiceItem{},
		exam:     &entity.ServiceItem{ID: "svc-exam", Name: "Eye Exam", Category: entity.ServiceCategoryExam, Price: kwd("5.000")},
	}
	invoices := &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{}}
	tx := &fakeTxRunner{invoiceRepo: invoices, frameRepo: frames}

	uc := billing.NewWorkflowUseCase(sessions, patients, frames, lenses, contacts, services, tx)
	return &fixture{uc: uc, sessions: sessions, invoices: invoices, frames: frames}
}

// startGlasses walks a session to the products step.
func (f *fixture) startGlasses(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	resp, err := f.uc.Start(ctx, "glasses")
	require.NoError(t, err)
	_, err = f.uc.SetPatient(ctx, resp.SessionID, dto.SetPatientRequest{PatientID: "pat-1"})
	require.NoError(t, err)
	return resp.SessionID
}

// ──────────────────────────────────────────────────────────────────────────────
// Transitions
// ──────────────────────────────────────────────────────────────────────────────

func TestStart_UnknownTypeRejected(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Start(context.Background(), "warranty")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetPatient_RequiresSelectionOrSkip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp, err := f.uc.Start(ctx, "glasses")
	require.NoError(t, err)

	_, err = f.uc.SetPatient(ctx, resp.SessionID, dto.SetPatientRequest{})
	assert.ErrorIs(t, err, domain.ErrPatientRequired)

	// The failed transition left the session at the patient step.
	got, err := f.uc.Get(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.StepPatient), got.Step)
}

func TestSetPatient_SkipWithFreeText(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp, err := f.uc.Start(ctx, "repair")
	require.NoError(t, err)

	got, err := f.uc.SetPatient(ctx, resp.SessionID, dto.SetPatientRequest{Skip: true, Name: "Walk-in"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.StepProducts), got.Step)
	assert.Equal(t, "Walk-in", got.PatientName)
}

func TestSetPatient_SnapshotsPrescription(t *testing.T) {
	f := newFixture(t)
	id := f.startGlasses(t)

	sess, err := f.sessions.Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, sess.Draft.Rx)
	assert.Equal(t, "-2.50", sess.Draft.Rx.OD.Sphere)
}

func TestSetGlasses_LensRequiredUnlessSkipped(t *testing.T) {
	f := newFixture(t)
	id := f.startGlasses(t)
	ctx := context.Background()

	_, err := f.uc.SetGlasses(ctx, id, dto.GlassesSelectionRequest{SkipFrame: true})
	assert.ErrorIs(t, err, domain.ErrLensRequired)
}

func TestSetGlasses_FrameNeedsBrandAndModel(t *testing.T) {
	f := newFixture(t)
	id := f.startGlasses(t)
	ctx := context.Background()

	_, err := f.uc.SetGlasses(ctx, id, dto.GlassesSelectionRequest{
		LensTypeID: "lt-1",
		FrameBrand: "Ray-Ban", // model missing
	})
	assert.ErrorIs(t, err, domain.ErrFrameIncomplete)

	// Draft untouched: still at products with no lens recorded.
	got, err := f.uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(entity.StepProducts), got.Step)
	assert.Empty(t, got.LensType)
}

func TestSetGlasses_StockFrameAndComponents(t *testing.T) {
	f := newFixture(t)
	id := f.startGlasses(t)
	ctx := context.Background()

	got, err := f.uc.SetGlasses(ctx, id, dto.GlassesSelectionRequest{
		LensTypeID:  "lt-1",
		CoatingID:   "co-1",
		ThicknessID: "th-1",
		FrameID:     "frm-1",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.StepPayment), got.Step)
	assert.True(t, kwd("73.000").Equal(got.Total), "total = %s", got.Total)
	assert.Nil(t, got.CombinedLensPrice)
}

func TestSetGlasses_CombinationOverridesComponentPrices(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sessions := newFakeSessionStore()
	lenses := &fakeLensCatalog{
		lensTypes:   []*entity.LensType{{ID: "lt-1", Name: "Progressive", Category: entity.LensCategoryProgressive, Price: kwd("25.000")}},
		coatings:    []*entity.LensCoating{{ID: "co-1", Name: "Blue Light", Price: kwd("8.000")}},
		thicknesses: []*entity.LensThickness{{ID: "th-1", Name: "1.67 Thin", Price: kwd("12.000")}},
		combos:      map[string]decimal.Decimal{"lt-1|co-1|th-1": kwd("50.000")},
	}
	uc := billing.NewWorkflowUseCase(sessions,
		&fakePatientRepo{patients: map[string]*entity.Patient{}},
		f.frames, lenses,
		&fakeContactRepo{lenses: map[string]*entity.ContactLens{}},
		&fakeServiceRepo{}, &fakeTxRunner{invoiceRepo: f.invoices, frameRepo: f.frames})

	resp, err := uc.Start(ctx, "glasses")
	require.NoError(t, err)
	_, err = uc.SetPatient(ctx, resp.SessionID, dto.SetPatientRequest{Skip: true})
	require.NoError(t, err)

	got, err := uc.SetGlasses(ctx, resp.SessionID, dto.GlassesSelectionRequest{
		LensTypeID:  "lt-1",
		CoatingID:   "co-1",
		ThicknessID: "th-1",
		FrameID:     "frm-1",
	})
	require.NoError(t, err)
	require.NotNil(t, got.CombinedLensPrice)
	// 50.000 bundled + 40.000 frame, individual prices superseded.
	assert.True(t, kwd("90.000").Equal(got.Total), "total = %s", got.Total)
}

func TestSetContacts_RequiresAtLeastOneItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp, err := f.uc.Start(ctx, "contacts")
	require.NoError(t, err)
	_, err = f.uc.SetPatient(ctx, resp.SessionID, dto.SetPatientRequest{Skip: true})
	require.NoError(t, err)

	_, err = f.uc.SetContacts(ctx, resp.SessionID, dto.ContactsSelectionRequest{})
	assert.ErrorIs(t, err, domain.ErrContactItemsMissing)

	got, err := f.uc.Get(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.StepProducts), got.Step,
		"a contacts session must never reach payment with zero items")
}

func TestSetContacts_TotalsFromPriceTimesQty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp, err := f.uc.Start(ctx, "contacts")
	require.NoError(t, err)
	_, err = f.uc.SetPatient(ctx, resp.SessionID, dto.SetPatientRequest{Skip: true})
	require.NoError(t, err)

	got, err := f.uc.SetContacts(ctx, resp.SessionID, dto.ContactsSelectionRequest{
		Items: []dto.ContactItemRequest{
			{ContactLensID: "cl-1", Qty: 2},
			{ContactLensID: "cl-2", Qty: 2},
		},
	})
	require.NoError(t, err)
	assert.True(t, kwd("50.000").Equal(got.Total))

	pay, err := f.uc.SetPayment(ctx, resp.SessionID, dto.SetPaymentRequest{
		Discount: kwd("5.000"),
		Method:   entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.True(t, kwd("45.000").Equal(pay.Total))
	assert.True(t, kwd("45.000").Equal(pay.Remaining))
}

func TestSetService_ExamResolvesFromCatalog(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp, err := f.uc.Start(ctx, "exam")
	require.NoError(t, err)
	_, err = f.uc.SetPatient(ctx, resp.SessionID, dto.SetPatientRequest{PatientID: "pat-1"})
	require.NoError(t, err)

	got, err := f.uc.SetService(ctx, resp.SessionID, dto.ServiceSelectionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Eye Exam", got.ServiceName)
	assert.True(t, kwd("5.000").Equal(got.Total))
}

func TestSetService_ExamMissingFromCatalog(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sessions := newFakeSessionStore()
	uc := billing.NewWorkflowUseCase(sessions,
		&fakePatientRepo{patients: map[string]*entity.Patient{}},
		f.frames, &fakeLensCatalog{},
		&fakeContactRepo{lenses: map[string]*entity.ContactLens{}},
		&fakeServiceRepo{exam: nil}, // no exam service configured
		&fakeTxRunner{invoiceRepo: f.invoices, frameRepo: f.frames})

	resp, err := uc.Start(ctx, "exam")
	require.NoError(t, err)
	_, err = uc.SetPatient(ctx, resp.SessionID, dto.SetPatientRequest{Skip: true})
	require.NoError(t, err)

	_, err = uc.SetService(ctx, resp.SessionID, dto.ServiceSelectionRequest{})
	assert.ErrorIs(t, err, domain.ErrExamServiceMissing)
}

func TestSetService_RepairNeedsDescriptionAndPrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp, err := f.uc.Start(ctx, "repair")
	require.NoError(t, err)
	_, err = f.uc.SetPatient(ctx, resp.SessionID, dto.SetPatientRequest{Skip: true})
	require.NoError(t, err)

	_, err = f.uc.SetService(ctx, resp.SessionID, dto.ServiceSelectionRequest{})
	assert.ErrorIs(t, err, domain.ErrRepairIncomplete)

	got, err := f.uc.SetService(ctx, resp.SessionID, dto.ServiceSelectionRequest{
		Description: "Replace left hinge",
		Price:       kwd("3.500"),
	})
	require.NoError(t, err)
	assert.True(t, kwd("3.500").Equal(got.Total))
}

func TestSetPayment_MethodRequired(t *testing.T) {
	f := newFixture(t)
	id := f.startGlasses(t)
	ctx := context.Background()
	_, err := f.uc.SetGlasses(ctx, id, dto.GlassesSelectionRequest{LensTypeID: "lt-1", SkipFrame: true})
	require.NoError(t, err)

	_, err = f.uc.SetPayment(ctx, id, dto.SetPaymentRequest{})
	assert.ErrorIs(t, err, domain.ErrPaymentMethodEmpty)

	got, err := f.uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(entity.StepPayment), got.Step,
		"summary is unreachable with an empty payment method")
}

func TestSetPayment_CardNeedsApprovalNumber(t *testing.T) {
	f := newFixture(t)
	id := f.startGlasses(t)
	ctx := context.Background()
	_, err := f.uc.SetGlasses(ctx, id, dto.GlassesSelectionRequest{LensTypeID: "lt-1", SkipFrame: true})
	require.NoError(t, err)

	_, err = f.uc.SetPayment(ctx, id, dto.SetPaymentRequest{Method: entity.PaymentMethodKNET})
	assert.ErrorIs(t, err, domain.ErrAuthNumberRequired)

	got, err := f.uc.SetPayment(ctx, id, dto.SetPaymentRequest{Method: entity.PaymentMethodKNET, AuthNumber: "839201"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.StepSummary), got.Step)
}

func TestSetPayment_RejectsNegativeAmounts(t *testing.T) {
	f := newFixture(t)
	id := f.startGlasses(t)
	ctx := context.Background()
	_, err := f.uc.SetGlasses(ctx, id, dto.GlassesSelectionRequest{LensTypeID: "lt-1", SkipFrame: true})
	require.NoError(t, err)

	_, err = f.uc.SetPayment(ctx, id, dto.SetPaymentRequest{
		Method:   entity.PaymentMethodCash,
		Discount: kwd("-1.000"),
	})
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)
}

func TestPayInFull_Idempotent(t *testing.T) {
	f := newFixture(t)
	id := f.startGlasses(t)
	ctx := context.Background()
	_, err := f.uc.SetGlasses(ctx, id, dto.GlassesSelectionRequest{LensTypeID: "lt-1", FrameID: "frm-1"})
	require.NoError(t, err)
	_, err = f.uc.SetPayment(ctx, id, dto.SetPaymentRequest{Method: entity.PaymentMethodCash, Discount: kwd("5.000")})
	require.NoError(t, err)

	got, err := f.uc.PayInFull(ctx, id)
	require.NoError(t, err)
	assert.True(t, kwd("60.000").Equal(got.Deposit), "deposit = %s", got.Deposit)
	assert.True(t, got.Remaining.IsZero())

	again, err := f.uc.PayInFull(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Deposit.Equal(again.Deposit))
	assert.True(t, again.Remaining.IsZero())
}

func TestSwitchType_ClearsPreviousComponents(t *testing.T) {
	f := newFixture(t)
	id := f.startGlasses(t)
	ctx := context.Background()
	_, err := f.uc.SetGlasses(ctx, id, dto.GlassesSelectionRequest{LensTypeID: "lt-1", FrameID: "frm-1"})
	require.NoError(t, err)

	got, err := f.uc.SwitchType(ctx, id, "contacts")
	require.NoError(t, err)
	assert.Equal(t, string(entity.StepProducts), got.Step)
	assert.True(t, got.Total.IsZero(), "glasses prices must not leak: total = %s", got.Total)

	items, err := f.uc.SetContacts(ctx, id, dto.ContactsSelectionRequest{
		Items: []dto.ContactItemRequest{{ContactLensID: "cl-1", Qty: 1}},
	})
	require.NoError(t, err)
	assert.True(t, kwd("12.500").Equal(items.Total))
}

// ──────────────────────────────────────────────────────────────────────────────
// Save
// ──────────────────────────────────────────────────────────────────────────────

func TestSave_FinalizesOnceAndDecrementsFrameStock(t *testing.T) {
	f := newFixture(t)
	id := f.startGlasses(t)
	ctx := context.Background()
	_, err := f.uc.SetGlasses(ctx, id, dto.GlassesSelectionRequest{LensTypeID: "lt-1", FrameID: "frm-1"})
	require.NoError(t, err)
	_, err = f.uc.SetPayment(ctx, id, dto.SetPaymentRequest{
		Method:  entity.PaymentMethodCash,
		Deposit: kwd("30.000"),
	})
	require.NoError(t, err)

	saved, err := f.uc.Save(ctx, id, "user-1")
	require.NoError(t, err)
	assert.Contains(t, saved.InvoiceID, "INV")
	assert.Contains(t, saved.WorkOrderID, "WO")
	assert.True(t, kwd("65.000").Equal(saved.Total), "total = %s", saved.Total)
	assert.True(t, kwd("35.000").Equal(saved.Remaining), "remaining = %s", saved.Remaining)
	assert.False(t, saved.IsPaid)

	inv := f.invoices.invoices[saved.InvoiceID]
	require.NotNil(t, inv)
	require.Len(t, inv.Payments, 1, "the deposit becomes the first payment history entry")
	assert.True(t, kwd("30.000").Equal(inv.Payments[0].Amount))

	assert.Equal(t, 1, f.frames.frames["frm-1"].Qty, "selling the frame decrements stock")

	// The session is terminal: saving again must fail without a second write.
	_, err = f.uc.Save(ctx, id, "user-1")
	assert.ErrorIs(t, err, domain.ErrSessionFinalized)
	assert.Len(t, f.invoices.invoices, 1)
}

func TestSave_RequiresSummaryStep(t *testing.T) {
	f := newFixture(t)
	id := f.startGlasses(t)

	_, err := f.uc.Save(context.Background(), id, "user-1")
	assert.ErrorIs(t, err, domain.ErrStepOrder)
}

func TestSave_OutOfStockFrameRollsBack(t *testing.T) {
	f := newFixture(t)
	f.frames.frames["frm-1"].Qty = 0
	id := f.startGlasses(t)
	ctx := context.Background()
	_, err := f.uc.SetGlasses(ctx, id, dto.GlassesSelectionRequest{LensTypeID: "lt-1", FrameID: "frm-1"})
	require.NoError(t, err)
	_, err = f.uc.SetPayment(ctx, id, dto.SetPaymentRequest{Method: entity.PaymentMethodCash})
	require.NoError(t, err)

	_, err = f.uc.Save(ctx, id, "user-1")
	assert.ErrorIs(t, err, domain.ErrOutOfStock)

	// Nothing persisted; the draft survives so the cashier can fix the frame.
	assert.Empty(t, f.invoices.invoices)
	got, err := f.uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(entity.StepSummary), got.Step)
}

func TestReset_ReturnsToPatientWithDefaults(t *testing.T) {
	f := newFixture(t)
	id := f.startGlasses(t)
	ctx := context.Background()
	_, err := f.uc.SetGlasses(ctx, id, dto.GlassesSelectionRequest{LensTypeID: "lt-1", SkipFrame: true})
	require.NoError(t, err)

	got, err := f.uc.Reset(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(entity.StepPatient), got.Step)
	assert.Equal(t, "glasses", got.InvoiceType)
	assert.Empty(t, got.LensType)
	assert.True(t, got.Total.IsZero())
}
