package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moein-9/optica-api/internal/domain/entity"
	"github.com/Moein-9/optica-api/internal/domain/pricing"
)

func kwd(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Glasses without a combined override: lens 25.000 + coating 8.000 +
// thickness 0 + frame 40.000, discount 5.000, deposit 30.000
// => total 68.000, remaining 38.000.
func TestTotals_Glasses_ComponentPrices(t *testing.T) {
	d := &entity.InvoiceDraft{
		InvoiceType:    entity.InvoiceTypeGlasses,
		LensPrice:      kwd("25.000"),
		CoatingPrice:   kwd("8.000"),
		ThicknessPrice: decimal.Zero,
		Frame:          entity.FrameSelection{Brand: "Ray-Ban", Model: "RB5154", Price: kwd("40.000")},
		Discount:       kwd("5.000"),
		Deposit:        kwd("30.000"),
	}
	pricing.Recalculate(d)

	assert.True(t, kwd("68.000").Equal(d.Total), "total = %s", d.Total)
	assert.True(t, kwd("38.000").Equal(d.Remaining), "remaining = %s", d.Remaining)
}

// Combined override 50.000 supersedes the individual lens prices even when
// they are populated. Frame 40.000, deposit 90.000 => remaining exactly 0.
func TestTotals_Glasses_CombinedOverride(t *testing.T) {
	combined := kwd("50.000")
	d := &entity.InvoiceDraft{
		InvoiceType:       entity.InvoiceTypeGlasses,
		LensPrice:         kwd("25.000"),
		CoatingPrice:      kwd("8.000"),
		ThicknessPrice:    kwd("12.000"),
		CombinedLensPrice: &combined,
		Frame:             entity.FrameSelection{Brand: "Gucci", Model: "GG0010", Price: kwd("40.000")},
		Deposit:           kwd("90.000"),
	}
	pricing.Recalculate(d)

	assert.True(t, kwd("90.000").Equal(d.Total))
	assert.True(t, d.Remaining.IsZero(), "remaining = %s", d.Remaining)
}

func TestTotals_Glasses_SkipFrameExcludesFramePrice(t *testing.T) {
	d := &entity.InvoiceDraft{
		InvoiceType: entity.InvoiceTypeGlasses,
		LensPrice:   kwd("25.000"),
		SkipFrame:   true,
		Frame:       entity.FrameSelection{Price: kwd("40.000")}, // stale, must not count
	}
	pricing.Recalculate(d)

	assert.True(t, kwd("25.000").Equal(d.Total))
}

// Two lines at 12.500 x2 each, discount 5.000 => (25.000+25.000)-5.000 = 45.000.
func TestTotals_Contacts(t *testing.T) {
	d := &entity.InvoiceDraft{
		InvoiceType: entity.InvoiceTypeContacts,
		ContactItems: []entity.ContactLensSelection{
			{Brand: "Acuvue", Price: kwd("12.500"), Qty: 2},
			{Brand: "Biofinity", Price: kwd("12.500"), Qty: 2},
		},
		Discount: kwd("5.000"),
	}
	pricing.Recalculate(d)

	assert.True(t, kwd("45.000").Equal(d.Total))
	assert.True(t, kwd("45.000").Equal(d.Remaining))
}

func TestTotals_Repair_ServicePrice(t *testing.T) {
	d := &entity.InvoiceDraft{
		InvoiceType:  entity.InvoiceTypeRepair,
		ServiceName:  "Hinge repair",
		ServicePrice: kwd("3.500"),
		Deposit:      kwd("1.000"),
	}
	pricing.Recalculate(d)

	assert.True(t, kwd("3.500").Equal(d.Total))
	assert.True(t, kwd("2.500").Equal(d.Remaining))
}

// Discount larger than the component sum clamps the total at zero, and the
// remaining balance can never go negative.
func TestTotals_ClampedAtZero(t *testing.T) {
	d := &entity.InvoiceDraft{
		InvoiceType:  entity.InvoiceTypeExam,
		ServicePrice: kwd("5.000"),
		Discount:     kwd("10.000"),
		Deposit:      kwd("3.000"),
	}
	pricing.Recalculate(d)

	assert.True(t, d.Total.IsZero())
	assert.True(t, d.Remaining.IsZero())
}

func TestTotals_MissingPricesTreatedAsZero(t *testing.T) {
	d := &entity.InvoiceDraft{InvoiceType: entity.InvoiceTypeGlasses}
	pricing.Recalculate(d)

	assert.True(t, d.Total.IsZero())
	assert.True(t, d.Remaining.IsZero())
}

// PayInFull on a 68.000 draft sets deposit 68.000 and remaining 0; invoking
// it twice yields the same result.
func TestPayInFull_Idempotent(t *testing.T) {
	d := &entity.InvoiceDraft{
		InvoiceType:    entity.InvoiceTypeGlasses,
		LensPrice:      kwd("25.000"),
		CoatingPrice:   kwd("8.000"),
		Frame:          entity.FrameSelection{Price: kwd("40.000")},
		Discount:       kwd("5.000"),
	}
	pricing.PayInFull(d)
	require.True(t, kwd("68.000").Equal(d.Deposit), "deposit = %s", d.Deposit)
	require.True(t, d.Remaining.IsZero())

	pricing.PayInFull(d)
	assert.True(t, kwd("68.000").Equal(d.Deposit))
	assert.True(t, d.Remaining.IsZero())
}

// Switching the invoice type after populating glasses fields must not leak
// those component prices into a contacts total.
func TestTotals_NoLeakAcrossTypeSwitch(t *testing.T) {
	d := &entity.InvoiceDraft{
		InvoiceType:  entity.InvoiceTypeGlasses,
		LensPrice:    kwd("25.000"),
		CoatingPrice: kwd("8.000"),
		Frame:        entity.FrameSelection{Price: kwd("40.000")},
	}
	pricing.Recalculate(d)
	require.True(t, kwd("73.000").Equal(d.Total))

	d.InvoiceType = entity.InvoiceTypeContacts
	d.ClearGlassesFields()
	d.ContactItems = []entity.ContactLensSelection{{Price: kwd("12.500"), Qty: 1}}
	pricing.Recalculate(d)

	assert.True(t, kwd("12.500").Equal(d.Total), "total = %s", d.Total)
}
