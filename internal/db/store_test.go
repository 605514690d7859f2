package db_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltline/backend/internal/db"
	"github.com/voltline/backend/internal/models"
	"github.com/voltline/backend/internal/store"
)

// newTestStore connects to the database named by TEST_DATABASE_URL and skips
// the test when the variable is unset, so the suite stays runnable without a
// local Postgres.
func newTestStore(t *testing.T) *db.Store {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := db.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	require.NoError(t, s.EnsureSchema(ctx))

	for _, table := range []string{"quotes", "technician_applications", "service_requests"} {
		_, err := s.Pool.Exec(ctx, "TRUNCATE "+table+" RESTART IDENTITY")
		require.NoError(t, err)
	}
	return s
}

func sampleRequest() models.ServiceRequest {
	return models.ServiceRequest{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "0801234567",
		Address:     "12 Solar St, Lagos",
		ServiceType: "solar",
		Description: "Need solar panels installed on roof.",
		Status:      "pending",
		CreatedAt:   time.Now().UTC(),
	}
}

func TestServiceRequestRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r := sampleRequest()
	require.NoError(t, s.CreateServiceRequest(ctx, &r))
	require.NotZero(t, r.ID)

	got, err := s.GetServiceRequest(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.FullName)
	assert.Equal(t, "pending", got.Status)

	updated, err := s.UpdateServiceRequestStatus(ctx, r.ID, "in_progress")
	require.NoError(t, err)
	assert.Equal(t, "in_progress", updated.Status)

	_, err = s.GetServiceRequest(ctx, r.ID+1000)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListServiceRequestsFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := sampleRequest()
	first.CustomerID = "cust-1"
	require.NoError(t, s.CreateServiceRequest(ctx, &first))

	second := sampleRequest()
	second.CustomerID = "cust-2"
	require.NoError(t, s.CreateServiceRequest(ctx, &second))
	_, err := s.UpdateServiceRequestStatus(ctx, second.ID, "completed")
	require.NoError(t, err)

	all, err := s.ListServiceRequests(ctx, store.RequestFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest first")

	byCustomer, err := s.ListServiceRequests(ctx, store.RequestFilter{CustomerID: "cust-1"})
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)
	assert.Equal(t, first.ID, byCustomer[0].ID)

	byStatus, err := s.ListServiceRequests(ctx, store.RequestFilter{Status: "completed"})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, second.ID, byStatus[0].ID)
}

func TestQuoteRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r := sampleRequest()
	require.NoError(t, s.CreateServiceRequest(ctx, &r))

	now := time.Now().UTC()
	q := models.Quote{
		RequestID:    r.ID,
		TechnicianID: "tech-1",
		Amount:       185000,
		Description:  "Full 5kVA inverter setup with installation.",
		ValidUntil:   now.AddDate(0, 0, 7),
		Status:       "pending",
		CreatedAt:    now,
	}
	require.NoError(t, s.CreateQuote(ctx, &q))

	updated, err := s.UpdateQuoteStatus(ctx, q.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, "accepted", updated.Status)

	quotes, err := s.ListQuotes(ctx, store.QuoteFilter{RequestID: r.ID})
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "tech-1", quotes[0].TechnicianID)
}
