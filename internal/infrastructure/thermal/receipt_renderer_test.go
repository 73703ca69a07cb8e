package thermal_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moein-9/optica-api/internal/application/receipts"
	"github.com/Moein-9/optica-api/internal/domain/entity"
	"github.com/Moein-9/optica-api/internal/infrastructure/thermal"
)

func kwd(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

var testStore = receipts.StoreInfo{
	Name:       "Moein Optical",
	NameArabic: "نظارات معين",
	Phone:      "22223333",
	Address:    "Salmiya, Block 2",
	Currency:   "KWD",
}

func glassesInvoice() *entity.Invoice {
	return &entity.Invoice{
		InvoiceID:     "INV1700000000000",
		WorkOrderID:   "WO1700000000000",
		InvoiceType:   entity.InvoiceTypeGlasses,
		PatientName:   "Fatima Al-Sabah",
		PatientPhone:  "99887766",
		FrameBrand:    "Ray-Ban",
		FrameModel:    "RB5154",
		FramePrice:    kwd("40.000"),
		LensType:      "Single Vision",
		LensPrice:     kwd("25.000"),
		Coating:       "Anti-Reflective",
		CoatingPrice:  kwd("8.000"),
		Discount:      kwd("5.000"),
		Deposit:       kwd("30.000"),
		Total:         kwd("68.000"),
		Remaining:     kwd("38.000"),
		PaymentMethod: entity.PaymentMethodCash,
		CreatedAt:     time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC),
	}
}

func TestRenderReceipt_Glasses(t *testing.T) {
	out, err := thermal.NewRenderer().RenderReceipt(glassesInvoice(), testStore, "en")
	require.NoError(t, err)
	s := string(out)

	assert.Contains(t, s, "Moein Optical")
	assert.Contains(t, s, "INV1700000000000")
	assert.Contains(t, s, "WO1700000000000")
	assert.Contains(t, s, "Fatima Al-Sabah")
	assert.Contains(t, s, "Single Vision")
	assert.Contains(t, s, "Anti-Reflective")
	assert.Contains(t, s, "Ray-Ban RB5154")
	assert.Contains(t, s, "68.000 KWD")
	assert.Contains(t, s, "38.000 KWD")
	// An unpaid invoice carries the collection reminder, not the paid stamp.
	assert.Contains(t, s, "keep this receipt")
	assert.NotContains(t, s, "PAID IN FULL")

	// Stream starts with initialize and ends with a full cut.
	assert.Equal(t, byte(0x1B), out[0])
	assert.Equal(t, byte('@'), out[1])
	assert.Equal(t, []byte{0x1D, 'V', 0x00}, out[len(out)-3:])
}

func TestRenderReceipt_PaidStamp(t *testing.T) {
	inv := glassesInvoice()
	inv.Deposit = inv.Total
	inv.Remaining = decimal.Zero

	out, err := thermal.NewRenderer().RenderReceipt(inv, testStore, "en")
	require.NoError(t, err)
	assert.Contains(t, string(out), "PAID IN FULL")
	assert.NotContains(t, string(out), "keep this receipt")
}

func TestRenderReceipt_ArabicUsesArabicStoreName(t *testing.T) {
	out, err := thermal.NewRenderer().RenderReceipt(glassesInvoice(), testStore, "ar")
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "نظارات معين")
	assert.Contains(t, s, "الإجمالي")
	assert.NotContains(t, s, "Balance Due")
}

func TestRenderReceipt_CombinedPackageHidesComponentPrices(t *testing.T) {
	inv := glassesInvoice()
	combined := kwd("50.000")
	inv.CombinedLensPrice = &combined
	inv.Total = kwd("85.000")

	out, err := thermal.NewRenderer().RenderReceipt(inv, testStore, "en")
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "Lens package: Single Vision")
	assert.Contains(t, s, "50.000 KWD")
	assert.NotContains(t, s, "25.000 KWD", "component lens price must not print when a package price applies")
}

func TestRenderReceipt_ContactItems(t *testing.T) {
	inv := &entity.Invoice{
		InvoiceID:   "INV1700000000001",
		WorkOrderID: "WO1700000000001",
		InvoiceType: entity.InvoiceTypeContacts,
		ContactItems: []entity.ContactLensLine{
			{Brand: "Acuvue", Power: "-2.50", Price: kwd("12.500"), Qty: 2},
		},
		Total:         kwd("25.000"),
		Deposit:       kwd("25.000"),
		Remaining:     decimal.Zero,
		PaymentMethod: entity.PaymentMethodKNET,
		AuthNumber:    "839201",
		CreatedAt:     time.Now(),
	}
	out, err := thermal.NewRenderer().RenderReceipt(inv, testStore, "en")
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "2x Acuvue -2.50")
	assert.Contains(t, s, "25.000 KWD")
	assert.Contains(t, s, "839201")
}

func TestRenderLabel_CarriesRxAndBarcode(t *testing.T) {
	inv := glassesInvoice()
	inv.Rx = &entity.GlassesRx{
		OD: entity.EyeRx{Sphere: "-2.50", Cylinder: "-0.75", Axis: "180"},
		OS: entity.EyeRx{Sphere: "-2.25"},
	}
	out, err := thermal.NewRenderer().RenderLabel(inv, testStore)
	require.NoError(t, err)
	s := string(out)

	assert.Contains(t, s, "WO1700000000000")
	assert.Contains(t, s, "Fatima Al-Sabah")
	assert.Contains(t, s, "OD -2.50 -0.75 x180")
	assert.Contains(t, s, "OS -2.25 - x-")
	// CODE39 barcode command present.
	assert.Contains(t, s, string([]byte{0x1D, 'k', 4}))
}
