// Package pdf renders the A4 invoice document with Maroto v2.
//
// Page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Store name + phone  │  Invoice # + Work Order #    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PATIENT: name + phone                                      │
//	│  PRESCRIPTION: OD/OS table (glasses or contacts)            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ITEMS: description | price (per invoice type)              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: discount / total / paid / balance due              │
//	│  FOOTER: work order barcode + thank-you line                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/barcode"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/Moein-9/optica-api/internal/application/receipts"
	"github.com/Moein-9/optica-api/internal/domain/entity"
	"github.com/Moein-9/optica-api/internal/i18n"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ receipts.PDFRenderer = (*InvoiceRenderer)(nil)

// InvoiceRenderer implements receipts.PDFRenderer with Maroto v2.
type InvoiceRenderer struct{}

// NewInvoiceRenderer builds the renderer.
func NewInvoiceRenderer() *InvoiceRenderer { return &InvoiceRenderer{} }

// RenderInvoice renders the A4 document and returns its bytes.
func (g *InvoiceRenderer) RenderInvoice(invoice *entity.Invoice, store receipts.StoreInfo, lang string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(invoice.InvoiceID, true).
		WithAuthor(store.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, store, lang))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(patientRow(invoice, lang))

	for _, r := range prescriptionRows(invoice, lang) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range itemRows(invoice, store, lang) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice, store, lang))

	m.AddRows(line.NewRow(3))
	for _, r := range footerRows(invoice, lang) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: store identity (left), invoice and work order numbers (right).
func headerRow(invoice *entity.Invoice, store receipts.StoreInfo, lang string) core.Row {
	storeName := store.Name
	if lang == i18n.LangArabic && store.NameArabic != "" {
		storeName = store.NameArabic
	}
	return row.New(20).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(store.Address, props.Text{Size: 8, Top: 9, Color: colorGray}),
			text.New(i18n.T(lang, "phone")+": "+store.Phone, props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(i18n.T(lang, "invoice")+"  "+invoice.InvoiceID, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New(i18n.T(lang, "work_order")+"  "+invoice.WorkOrderID, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New(i18n.T(lang, "date")+": "+invoice.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// patientRow: patient name and phone, or the walk-in label.
func patientRow(invoice *entity.Invoice, lang string) core.Row {
	name := invoice.PatientName
	if name == "" {
		name = i18n.T(lang, "walk_in")
	}
	contact := ""
	if invoice.PatientPhone != "" {
		contact = i18n.T(lang, "phone") + ": " + invoice.PatientPhone
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New(i18n.T(lang, "patient"), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(contact, props.Text{Size: 8, Top: 6, Align: align.Right, Color: colorGray}),
		),
	)
}

// prescriptionRows: OD/OS table. Glasses invoices print SPH/CYL/AXIS/ADD/PD,
// contacts print SPH/CYL/AXIS/BC/DIA. Exams and repairs carry no table.
func prescriptionRows(invoice *entity.Invoice, lang string) []core.Row {
	headerCell := func(label string) core.Col {
		return col.New(2).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorPrimary, Top: 1,
		}))
	}
	valueCell := func(v string) core.Col {
		if v == "" {
			v = "—"
		}
		return col.New(2).Add(text.New(v, props.Text{Size: 8, Align: align.Center, Top: 1}))
	}
	eyeCell := func(label string) core.Col {
		return col.New(2).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 1,
		}))
	}

	switch {
	case invoice.Rx != nil && invoice.InvoiceType == entity.InvoiceTypeGlasses:
		rx := invoice.Rx
		return []core.Row{
			row.New(6).Add(col.New(12).Add(text.New(i18n.T(lang, "prescription"), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}))),
			row.New(6).Add(
				headerCell(""),
				headerCell(i18n.T(lang, "sphere")),
				headerCell(i18n.T(lang, "cylinder")),
				headerCell(i18n.T(lang, "axis")),
				headerCell(i18n.T(lang, "add")),
				headerCell(i18n.T(lang, "pd")),
			),
			row.New(6).Add(
				eyeCell(i18n.T(lang, "right_eye")),
				valueCell(rx.OD.Sphere), valueCell(rx.OD.Cylinder), valueCell(rx.OD.Axis),
				valueCell(rx.OD.Add), valueCell(rx.OD.PD),
			),
			row.New(6).Add(
				eyeCell(i18n.T(lang, "left_eye")),
				valueCell(rx.OS.Sphere), valueCell(rx.OS.Cylinder), valueCell(rx.OS.Axis),
				valueCell(rx.OS.Add), valueCell(rx.OS.PD),
			),
		}
	case invoice.ContactRx != nil && invoice.InvoiceType == entity.InvoiceTypeContacts:
		rx := invoice.ContactRx
		return []core.Row{
			row.New(6).Add(col.New(12).Add(text.New(i18n.T(lang, "prescription"), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}))),
			row.New(6).Add(
				headerCell(""),
				headerCell(i18n.T(lang, "sphere")),
				headerCell(i18n.T(lang, "cylinder")),
				headerCell(i18n.T(lang, "axis")),
				headerCell(i18n.T(lang, "base_curve")),
				headerCell(i18n.T(lang, "diameter")),
			),
			row.New(6).Add(
				eyeCell(i18n.T(lang, "right_eye")),
				valueCell(rx.OD.Sphere), valueCell(rx.OD.Cylinder), valueCell(rx.OD.Axis),
				valueCell(rx.OD.BaseCurve), valueCell(rx.OD.Diameter),
			),
			row.New(6).Add(
				eyeCell(i18n.T(lang, "left_eye")),
				valueCell(rx.OS.Sphere), valueCell(rx.OS.Cylinder), valueCell(rx.OS.Axis),
				valueCell(rx.OS.BaseCurve), valueCell(rx.OS.Diameter),
			),
		}
	}
	return nil
}

// itemRows: one row per charged component, per invoice type.
func itemRows(invoice *entity.Invoice, store receipts.StoreInfo, lang string) []core.Row {
	itemRow := func(desc string, price decimal.Decimal) core.Row {
		return row.New(7).Add(
			col.New(9).Add(text.New(desc, props.Text{Size: 9, Top: 1, Left: 1})),
			col.New(3).Add(text.New(money(price, store.Currency), props.Text{
				Size: 9, Align: align.Right, Top: 1, Right: 1,
			})),
		)
	}

	var rows []core.Row
	switch invoice.InvoiceType {
	case entity.InvoiceTypeGlasses:
		if invoice.CombinedLensPrice != nil {
			desc := i18n.T(lang, "lens_package") + ": " + invoice.LensType
			if invoice.Coating != "" {
				desc += " + " + invoice.Coating
			}
			if invoice.Thickness != "" {
				desc += " + " + invoice.Thickness
			}
			rows = append(rows, itemRow(desc, *invoice.CombinedLensPrice))
		} else if !invoice.SkipLens {
			rows = append(rows, itemRow(i18n.T(lang, "lens")+": "+invoice.LensType, invoice.LensPrice))
			if invoice.Coating != "" {
				rows = append(rows, itemRow(i18n.T(lang, "coating")+": "+invoice.Coating, invoice.CoatingPrice))
			}
			if invoice.Thickness != "" {
				rows = append(rows, itemRow(i18n.T(lang, "thickness")+": "+invoice.Thickness, invoice.ThicknessPrice))
			}
		}
		if !invoice.SkipFrame {
			desc := i18n.T(lang, "frame") + ": " + invoice.FrameBrand + " " + invoice.FrameModel
			if invoice.FrameColor != "" {
				desc += " (" + invoice.FrameColor + ")"
			}
			rows = append(rows, itemRow(desc, invoice.FramePrice))
		}
	case entity.InvoiceTypeContacts:
		for _, item := range invoice.ContactItems {
			desc := item.Brand
			if item.Type != "" {
				desc += " " + item.Type
			}
			if item.Power != "" {
				desc += " " + item.Power
			}
			desc += fmt.Sprintf("  x%d", item.Qty)
			lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Qty)))
			rows = append(rows, itemRow(desc, lineTotal))
		}
	default: // exam, repair
		desc := i18n.T(lang, "service") + ": " + invoice.ServiceName
		rows = append(rows, itemRow(desc, invoice.ServicePrice))
		if invoice.Description != "" && invoice.Description != invoice.ServiceName {
			rows = append(rows, row.New(6).Add(col.New(12).Add(
				text.New(invoice.Description, props.Text{Size: 8, Top: 1, Left: 3, Color: colorGray}),
			)))
		}
	}
	return rows
}

// totalsRow: discount, total, paid and balance due, right aligned.
func totalsRow(invoice *entity.Invoice, store receipts.StoreInfo, lang string) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	balance := money(invoice.Remaining, store.Currency)
	if invoice.IsPaid() {
		balance = i18n.T(lang, "paid_in_full")
	}

	return row.New(28).Add(
		col.New(6),
		col.New(3).Add(
			label(i18n.T(lang, "discount")+":", 1),
			label(i18n.T(lang, "total")+":", 7),
			label(i18n.T(lang, "deposit")+":", 13),
			label(i18n.T(lang, "remaining")+":", 19),
		),
		col.New(3).Add(
			value(money(invoice.Discount, store.Currency), 1),
			value(money(invoice.Total, store.Currency), 7),
			value(money(invoice.Deposit, store.Currency), 13),
			value(balance, 19),
		),
	)
}

// footerRows: work order barcode for the lab plus the thank-you line.
func footerRows(invoice *entity.Invoice, lang string) []core.Row {
	return []core.Row{
		row.New(18).Add(
			col.New(4).Add(code.NewBar(invoice.WorkOrderID, props.Barcode{
				Type:    barcode.Code128,
				Percent: 90,
				Center:  true,
			})),
			col.New(8).Add(
				text.New(i18n.T(lang, "thank_you"), props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 4, Left: 3, Color: colorPrimary,
				}),
				text.New(i18n.T(lang, "keep_receipt"), props.Text{
					Size: 8, Top: 11, Left: 3, Color: colorGray,
				}),
			),
		),
	}
}

// money formats an amount with the store currency, 3 decimals (KWD fils).
func money(d decimal.Decimal, currency string) string {
	return d.StringFixed(3) + " " + currency
}
