package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moein-9/optica-api/internal/application/billing"
	"github.com/Moein-9/optica-api/internal/domain"
	"github.com/Moein-9/optica-api/internal/domain/entity"
	"github.com/Moein-9/optica-api/internal/infrastructure/session"
)

func TestMemoryStore_PutGetRoundTrip(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	ctx := context.Background()

	sess := &billing.Session{
		ID:   "sess-1",
		Step: entity.StepProducts,
		Draft: entity.InvoiceDraft{
			InvoiceType: entity.InvoiceTypeGlasses,
			PatientName: "Fatima Al-Sabah",
		},
	}
	require.NoError(t, store.Put(ctx, sess))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StepProducts, got.Step)
	assert.Equal(t, "Fatima Al-Sabah", got.Draft.PatientName)

	// Get hands out a copy; mutating it must not touch the stored session.
	got.Draft.PatientName = "changed"
	again, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "Fatima Al-Sabah", again.Draft.PatientName)
}

func TestMemoryStore_UnknownID(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := session.NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, &billing.Session{ID: "sess-1"}))

	time.Sleep(20 * time.Millisecond)

	_, err := store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, &billing.Session{ID: "sess-1"}))
	require.NoError(t, store.Delete(ctx, "sess-1"))

	_, err := store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, store.Delete(ctx, "sess-1"))
}
