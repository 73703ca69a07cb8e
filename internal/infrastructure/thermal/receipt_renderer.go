// Package thermal renders invoices as ESC/POS byte streams for the
// register's 80mm receipt printer and the small work order label printer.
package thermal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Moein-9/optica-api/internal/application/receipts"
	"github.com/Moein-9/optica-api/internal/domain/entity"
	"github.com/Moein-9/optica-api/internal/i18n"
	"github.com/Moein-9/optica-api/pkg/printer"
)

var _ receipts.ThermalRenderer = (*Renderer)(nil)

// Renderer implements receipts.ThermalRenderer on the ESC/POS builder.
type Renderer struct{}

// NewRenderer builds the renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// RenderReceipt renders the 80mm customer receipt.
func (r *Renderer) RenderReceipt(inv *entity.Invoice, store receipts.StoreInfo, lang string) ([]byte, error) {
	d := printer.NewDocument(printer.Width80mm)

	storeName := store.Name
	if lang == i18n.LangArabic && store.NameArabic != "" {
		storeName = store.NameArabic
	}
	d.SetAlign(printer.AlignCenter).
		SetFontSize(printer.FontDouble).SetBold(true).
		Text(storeName).
		SetFontSize(printer.FontNormal).SetBold(false)
	if store.Address != "" {
		d.Text(store.Address)
	}
	if store.Phone != "" {
		d.Text(i18n.T(lang, "phone") + ": " + store.Phone)
	}
	d.LineFeed()

	d.SetAlign(printer.AlignLeft).Separator('=')
	d.KeyValue(i18n.T(lang, "invoice"), inv.InvoiceID)
	d.KeyValue(i18n.T(lang, "work_order"), inv.WorkOrderID)
	d.KeyValue(i18n.T(lang, "date"), inv.CreatedAt.Format("02/01/2006 15:04"))

	patient := inv.PatientName
	if patient == "" {
		patient = i18n.T(lang, "walk_in")
	}
	d.KeyValue(i18n.T(lang, "patient"), patient)
	if inv.PatientPhone != "" {
		d.KeyValue(i18n.T(lang, "phone"), inv.PatientPhone)
	}
	d.Separator('-')

	writeItems(d, inv, store, lang)

	d.Separator('-')
	if inv.Discount.IsPositive() {
		d.KeyValue(i18n.T(lang, "discount"), "-"+money(inv.Discount, store.Currency))
	}
	d.SetBold(true).
		KeyValue(i18n.T(lang, "total"), money(inv.Total, store.Currency)).
		SetBold(false)
	d.KeyValue(i18n.T(lang, "deposit"), money(inv.Deposit, store.Currency))
	if inv.IsPaid() {
		d.SetAlign(printer.AlignCenter).SetBold(true).
			Text(i18n.T(lang, "paid_in_full")).
			SetBold(false).SetAlign(printer.AlignLeft)
	} else {
		d.SetBold(true).
			KeyValue(i18n.T(lang, "remaining"), money(inv.Remaining, store.Currency)).
			SetBold(false)
	}
	d.KeyValue(i18n.T(lang, "payment_method"), inv.PaymentMethod)
	if inv.AuthNumber != "" {
		d.KeyValue(i18n.T(lang, "auth_number"), inv.AuthNumber)
	}

	d.Separator('=')
	d.SetAlign(printer.AlignCenter).
		Text(i18n.T(lang, "thank_you"))
	if !inv.IsPaid() {
		d.Text(i18n.T(lang, "keep_receipt"))
	}
	d.FeedLines(2).Barcode(inv.WorkOrderID).FeedLines(3).Cut()

	return d.Bytes(), nil
}

// RenderLabel renders the work order label that travels with the lens
// envelope through the lab: work order id, patient, frame and lens, barcode.
func (r *Renderer) RenderLabel(inv *entity.Invoice, store receipts.StoreInfo) ([]byte, error) {
	d := printer.NewDocument(printer.Width80mm)

	d.SetAlign(printer.AlignCenter).
		SetBold(true).SetFontSize(printer.FontWide).
		Text(inv.WorkOrderID).
		SetFontSize(printer.FontNormal).SetBold(false)

	d.SetAlign(printer.AlignLeft).Separator('-')
	if inv.PatientName != "" {
		d.Text(inv.PatientName)
	}
	if inv.PatientPhone != "" {
		d.Text(inv.PatientPhone)
	}

	switch inv.InvoiceType {
	case entity.InvoiceTypeGlasses:
		if !inv.SkipFrame {
			d.TextF("%s %s %s", inv.FrameBrand, inv.FrameModel, inv.FrameColor)
		}
		if !inv.SkipLens {
			lens := inv.LensType
			if inv.Coating != "" {
				lens += " / " + inv.Coating
			}
			if inv.Thickness != "" {
				lens += " / " + inv.Thickness
			}
			d.Text(lens)
		}
		if inv.Rx != nil {
			d.TextF("OD %s %s x%s", orDash(inv.Rx.OD.Sphere), orDash(inv.Rx.OD.Cylinder), orDash(inv.Rx.OD.Axis))
			d.TextF("OS %s %s x%s", orDash(inv.Rx.OS.Sphere), orDash(inv.Rx.OS.Cylinder), orDash(inv.Rx.OS.Axis))
		}
	case entity.InvoiceTypeRepair:
		d.Text(inv.ServiceName)
		if inv.Description != "" && inv.Description != inv.ServiceName {
			d.Text(inv.Description)
		}
	default:
		d.Text(inv.ServiceName)
	}

	d.Separator('-')
	d.SetAlign(printer.AlignCenter).Barcode(inv.WorkOrderID).FeedLines(2).PartialCut()

	return d.Bytes(), nil
}

func writeItems(d *printer.Document, inv *entity.Invoice, store receipts.StoreInfo, lang string) {
	switch inv.InvoiceType {
	case entity.InvoiceTypeGlasses:
		if inv.CombinedLensPrice != nil {
			name := i18n.T(lang, "lens_package") + ": " + inv.LensType
			d.KeyValue(name, money(*inv.CombinedLensPrice, store.Currency))
			if inv.Coating != "" {
				d.Text("  + " + inv.Coating)
			}
			if inv.Thickness != "" {
				d.Text("  + " + inv.Thickness)
			}
		} else if !inv.SkipLens {
			d.KeyValue(i18n.T(lang, "lens")+": "+inv.LensType, money(inv.LensPrice, store.Currency))
			if inv.Coating != "" {
				d.KeyValue("  "+inv.Coating, money(inv.CoatingPrice, store.Currency))
			}
			if inv.Thickness != "" {
				d.KeyValue("  "+inv.Thickness, money(inv.ThicknessPrice, store.Currency))
			}
		}
		if !inv.SkipFrame {
			name := i18n.T(lang, "frame") + ": " + inv.FrameBrand + " " + inv.FrameModel
			d.KeyValue(name, money(inv.FramePrice, store.Currency))
		}
	case entity.InvoiceTypeContacts:
		d.SetBold(true).Text(i18n.T(lang, "contact_lenses")).SetBold(false)
		for _, item := range inv.ContactItems {
			name := item.Brand
			if item.Power != "" {
				name += " " + item.Power
			}
			lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Qty)))
			d.ItemLine(item.Qty, name, money(lineTotal, store.Currency))
		}
	default: // exam, repair
		d.KeyValue(i18n.T(lang, "service")+": "+inv.ServiceName, money(inv.ServicePrice, store.Currency))
		if inv.Description != "" && inv.Description != inv.ServiceName {
			d.Text("  " + inv.Description)
		}
	}
}

func money(d decimal.Decimal, currency string) string {
	return fmt.Sprintf("%s %s", d.StringFixed(3), currency)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
