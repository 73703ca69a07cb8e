package billing

import (
	"context"
	"time"

	"github.com/Moein-9/optica-api/internal/domain/entity"
	"github.com/Moein-9/optica-api/internal/domain/repository"
)

// Session is one invoice workflow in progress: the mutable draft plus its
// current step. Sessions are single-owner; the store serializes access.
type Session struct {
	ID        string              `json:"id"`
	Step      entity.WorkflowStep `json:"step"`
	Draft     entity.InvoiceDraft `json:"draft"`
	Finalized bool                `json:"finalized"`
	InvoiceID string              `json:"invoice_id,omitempty"` // set once Save succeeds
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// SessionStore holds workflow sessions between requests. Implementations are
// TTL-bounded: an abandoned draft expires, a finalized invoice never depends
// on the session surviving.
type SessionStore interface {
	Put(ctx context.Context, s *Session) error
	// Get returns domain.ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// InvoiceTxRunner executes fn with repositories bound to a single
// transaction. Finalizing an invoice and decrementing frame stock commit or
// roll back together.
type InvoiceTxRunner interface {
	RunInvoice(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		frameRepo repository.FrameRepository,
	) error) error
}
