package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Moein-9/optica-api/internal/domain"
	"github.com/Moein-9/optica-api/internal/domain/entity"
	"github.com/Moein-9/optica-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo InvoiceRepository implementation over PostgreSQL (usable with
// pool or tx).
//
// An invoice spans four tables: the header, the contact lens lines, the
// payment history and the edit trail. The header's deposit and remaining are
// derived from the payment history; AddPayment recomputes them in the same
// statement batch that appends the row.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the persistence adapter. Pass pool or tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `
	invoice_id, work_order_id, invoice_type,
	patient_id, patient_name, patient_phone, rx, contact_rx,
	skip_lens, skip_frame, frame_id, frame_brand, frame_model, frame_color, frame_size, frame_price,
	lens_type, lens_price, coating, coating_price, thickness, thickness_price, combined_lens_price,
	service_id, service_name, service_price, description,
	discount, deposit, total, remaining,
	payment_method, auth_number, created_at, created_by`

// Create persists the header, the contact lens lines and the initial deposit
// payment. Runs inside the finalize transaction; a failure on any row rolls
// back the whole invoice.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	rx, err := toJSONB(invoice.Rx)
	if err != nil {
		return err
	}
	contactRx, err := toJSONB(invoice.ContactRx)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
		        $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35)`
	_, err = r.q.Exec(context.Background(), query,
		invoice.InvoiceID, invoice.WorkOrderID, string(invoice.InvoiceType),
		nullIfEmpty(invoice.PatientID), nullIfEmpty(invoice.PatientName), nullIfEmpty(invoice.PatientPhone),
		rx, contactRx,
		invoice.SkipLens, invoice.SkipFrame,
		nullIfEmpty(invoice.FrameID), nullIfEmpty(invoice.FrameBrand), nullIfEmpty(invoice.FrameModel),
		nullIfEmpty(invoice.FrameColor), nullIfEmpty(invoice.FrameSize), invoice.FramePrice,
		nullIfEmpty(invoice.LensType), invoice.LensPrice,
		nullIfEmpty(invoice.Coating), invoice.CoatingPrice,
		nullIfEmpty(invoice.Thickness), invoice.ThicknessPrice,
		invoice.CombinedLensPrice,
		nullIfEmpty(invoice.ServiceID), nullIfEmpty(invoice.ServiceName), invoice.ServicePrice,
		nullIfEmpty(invoice.Description),
		invoice.Discount, invoice.Deposit, invoice.Total, invoice.Remaining,
		invoice.PaymentMethod, nullIfEmpty(invoice.AuthNumber),
		invoice.CreatedAt, nullIfEmpty(invoice.CreatedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}

	for i := range invoice.ContactItems {
		if err := r.insertContactItem(&invoice.ContactItems[i]); err != nil {
			return err
		}
	}
	for i := range invoice.Payments {
		if err := r.insertPayment(&invoice.Payments[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *InvoiceRepo) insertContactItem(item *entity.ContactLensLine) error {
	query := `
		INSERT INTO invoice_contact_items (id, invoice_id, contact_lens_id, brand, type, power, color, price, qty)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InvoiceID, nullIfEmpty(item.ContactLensID), item.Brand,
		nullIfEmpty(item.Type), nullIfEmpty(item.Power), nullIfEmpty(item.Color),
		item.Price, item.Qty,
	)
	if err != nil {
		return fmt.Errorf("insert invoice contact item: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) insertPayment(p *entity.Payment) error {
	query := `
		INSERT INTO invoice_payments (id, invoice_id, amount, method, auth_number, date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.InvoiceID, p.Amount, p.Method, nullIfEmpty(p.AuthNumber), p.Date,
	)
	if err != nil {
		return fmt.Errorf("insert invoice payment: %w", err)
	}
	return nil
}

// GetByID fetches a full invoice: header, contact lines and both histories.
func (r *InvoiceRepo) GetByID(invoiceID string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if err := r.loadChildren(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// ListByPatient returns a patient's invoices, newest first, with histories.
func (r *InvoiceRepo) ListByPatient(patientID string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE patient_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, patientID)
	if err != nil {
		return nil, fmt.Errorf("list invoices by patient: %w", err)
	}
	defer rows.Close()
	list, err := collectInvoices(rows)
	if err != nil {
		return nil, err
	}
	for _, inv := range list {
		if err := r.loadChildren(inv); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// List returns headers ordered by creation, newest first. unpaidOnly filters
// to invoices with a positive remaining balance. Children are not loaded;
// list views only show header fields.
func (r *InvoiceRepo) List(limit, offset int, unpaidOnly bool) ([]*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE NOT $3 OR remaining > 0
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset, unpaidOnly)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	return collectInvoices(rows)
}

// AddPayment appends a payment row and recomputes the header's deposit and
// remaining from the full payment history.
func (r *InvoiceRepo) AddPayment(payment *entity.Payment) error {
	if err := r.insertPayment(payment); err != nil {
		return err
	}
	query := `
		UPDATE invoices
		SET deposit   = p.paid,
		    remaining = GREATEST(total - p.paid, 0)
		FROM (SELECT COALESCE(SUM(amount), 0) AS paid FROM invoice_payments WHERE invoice_id = $1) p
		WHERE invoice_id = $1`
	cmd, err := r.q.Exec(context.Background(), query, payment.InvoiceID)
	if err != nil {
		return fmt.Errorf("recompute invoice balance: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddEdit appends a row to the edit trail.
func (r *InvoiceRepo) AddEdit(edit *entity.EditEntry) error {
	query := `
		INSERT INTO invoice_edits (id, invoice_id, notes, edited_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, edit.ID, edit.InvoiceID, edit.Notes, edit.EditedAt)
	if err != nil {
		return fmt.Errorf("insert invoice edit: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) loadChildren(inv *entity.Invoice) error {
	itemsQuery := `
		SELECT id, invoice_id, contact_lens_id, brand, type, power, color, price, qty
		FROM invoice_contact_items WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), itemsQuery, inv.InvoiceID)
	if err != nil {
		return fmt.Errorf("list invoice contact items: %w", err)
	}
	for rows.Next() {
		var item entity.ContactLensLine
		var contactLensID, itemType, power, color *string
		if err := rows.Scan(&item.ID, &item.InvoiceID, &contactLensID, &item.Brand,
			&itemType, &power, &color, &item.Price, &item.Qty); err != nil {
			rows.Close()
			return fmt.Errorf("scan invoice contact item: %w", err)
		}
		if contactLensID != nil {
			item.ContactLensID = *contactLensID
		}
		if itemType != nil {
			item.Type = *itemType
		}
		if power != nil {
			item.Power = *power
		}
		if color != nil {
			item.Color = *color
		}
		inv.ContactItems = append(inv.ContactItems, item)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	paymentsQuery := `
		SELECT id, invoice_id, amount, method, auth_number, date
		FROM invoice_payments WHERE invoice_id = $1 ORDER BY date, id`
	rows, err = r.q.Query(context.Background(), paymentsQuery, inv.InvoiceID)
	if err != nil {
		return fmt.Errorf("list invoice payments: %w", err)
	}
	for rows.Next() {
		var p entity.Payment
		var authNumber *string
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.Amount, &p.Method, &authNumber, &p.Date); err != nil {
			rows.Close()
			return fmt.Errorf("scan invoice payment: %w", err)
		}
		if authNumber != nil {
			p.AuthNumber = *authNumber
		}
		inv.Payments = append(inv.Payments, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	editsQuery := `
		SELECT id, invoice_id, notes, edited_at
		FROM invoice_edits WHERE invoice_id = $1 ORDER BY edited_at, id`
	rows, err = r.q.Query(context.Background(), editsQuery, inv.InvoiceID)
	if err != nil {
		return fmt.Errorf("list invoice edits: %w", err)
	}
	for rows.Next() {
		var e entity.EditEntry
		if err := rows.Scan(&e.ID, &e.InvoiceID, &e.Notes, &e.EditedAt); err != nil {
			rows.Close()
			return fmt.Errorf("scan invoice edit: %w", err)
		}
		inv.Edits = append(inv.Edits, e)
	}
	rows.Close()
	return rows.Err()
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var invoiceType string
	var patientID, patientName, patientPhone *string
	var rxRaw, contactRxRaw []byte
	var frameID, frameBrand, frameModel, frameColor, frameSize *string
	var lensType, coating, thickness *string
	var serviceID, serviceName, description *string
	var authNumber, createdBy *string

	err := row.Scan(
		&inv.InvoiceID, &inv.WorkOrderID, &invoiceType,
		&patientID, &patientName, &patientPhone, &rxRaw, &contactRxRaw,
		&inv.SkipLens, &inv.SkipFrame,
		&frameID, &frameBrand, &frameModel, &frameColor, &frameSize, &inv.FramePrice,
		&lensType, &inv.LensPrice, &coating, &inv.CoatingPrice, &thickness, &inv.ThicknessPrice,
		&inv.CombinedLensPrice,
		&serviceID, &serviceName, &inv.ServicePrice, &description,
		&inv.Discount, &inv.Deposit, &inv.Total, &inv.Remaining,
		&inv.PaymentMethod, &authNumber, &inv.CreatedAt, &createdBy,
	)
	if err != nil {
		return nil, err
	}

	inv.InvoiceType = entity.InvoiceType(invoiceType)
	deref := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	deref(&inv.PatientID, patientID)
	deref(&inv.PatientName, patientName)
	deref(&inv.PatientPhone, patientPhone)
	deref(&inv.FrameID, frameID)
	deref(&inv.FrameBrand, frameBrand)
	deref(&inv.FrameModel, frameModel)
	deref(&inv.FrameColor, frameColor)
	deref(&inv.FrameSize, frameSize)
	deref(&inv.LensType, lensType)
	deref(&inv.Coating, coating)
	deref(&inv.Thickness, thickness)
	deref(&inv.ServiceID, serviceID)
	deref(&inv.ServiceName, serviceName)
	deref(&inv.Description, description)
	deref(&inv.AuthNumber, authNumber)
	deref(&inv.CreatedBy, createdBy)

	if err := fromJSONB(rxRaw, &inv.Rx); err != nil {
		return nil, err
	}
	if err := fromJSONB(contactRxRaw, &inv.ContactRx); err != nil {
		return nil, err
	}
	return &inv, nil
}

func collectInvoices(rows pgx.Rows) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}
