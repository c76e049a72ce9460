package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/contracts-service/internal/model"
)

func TestMemoryStoreLatencyHonoursCancellation(t *testing.T) {
	s := NewMemoryStore(WithLatency(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ListCustomers(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStoreLatencyDelaysCalls(t *testing.T) {
	s := NewMemoryStore(WithLatency(20 * time.Millisecond))

	started := time.Now()
	_, err := s.ListContracts(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(started), 20*time.Millisecond)
}

func TestMemoryStoreUsesClockForCreatedAt(t *testing.T) {
	fixed := time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC)
	s := NewMemoryStore(WithClock(func() time.Time { return fixed }))

	created, err := s.CreateCustomer(context.Background(), model.Customer{Name: "ACME"})
	require.NoError(t, err)
	assert.Equal(t, fixed, created.CreatedAt)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	created, err := s.CreateNotification(ctx, model.Notification{
		Message:   "x",
		RelatedTo: &model.RelatedRef{Type: model.RelatedCustomer, ID: "1"},
	})
	require.NoError(t, err)
	created.RelatedTo.ID = "mutated"

	listed, err := s.ListNotifications(ctx)
	require.NoError(t, err)
	listed[0].Read = true
	listed[0].RelatedTo.ID = "mutated-again"

	again, err := s.ListNotifications(ctx)
	require.NoError(t, err)
	assert.False(t, again[0].Read)
	assert.Equal(t, "1", again[0].RelatedTo.ID)
}

func TestMemoryStoreDropsCustomerNameOnCreate(t *testing.T) {
	s := NewMemoryStore()
	c := sampleContract("1")
	c.CustomerName = "stale copy"

	created, err := s.CreateContract(context.Background(), c)
	require.NoError(t, err)
	assert.Empty(t, created.CustomerName)
}
