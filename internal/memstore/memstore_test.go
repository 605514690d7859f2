package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltline/backend/internal/models"
	"github.com/voltline/backend/internal/store"
)

func newRequest(name string) *models.ServiceRequest {
	return &models.ServiceRequest{
		FullName:    name,
		Email:       "a@b.c",
		Phone:       "0801234567",
		Address:     "12 Solar St, Lagos",
		ServiceType: "solar",
		Description: "panels",
		Status:      "pending",
		CreatedAt:   time.Now().UTC(),
	}
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	s := New()
	ctx := context.Background()

	r1 := newRequest("one")
	r2 := newRequest("two")
	require.NoError(t, s.CreateServiceRequest(ctx, r1))
	require.NoError(t, s.CreateServiceRequest(ctx, r2))

	assert.Equal(t, int64(1), r1.ID)
	assert.Equal(t, int64(2), r2.ID)
}

func TestInstancesAreIsolated(t *testing.T) {
	ctx := context.Background()
	a, b := New(), New()
	require.NoError(t, a.CreateServiceRequest(ctx, newRequest("one")))

	items, err := b.ListServiceRequests(ctx, store.RequestFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()
	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, s.CreateServiceRequest(ctx, newRequest(name)))
	}

	items, err := s.ListServiceRequests(ctx, store.RequestFilter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "third", items[0].FullName)
	assert.Equal(t, "first", items[2].FullName)
}

func TestListFilters(t *testing.T) {
	s := New()
	ctx := context.Background()

	r1 := newRequest("one")
	r1.CustomerID = "cust-1"
	r2 := newRequest("two")
	r2.CustomerID = "cust-2"
	require.NoError(t, s.CreateServiceRequest(ctx, r1))
	require.NoError(t, s.CreateServiceRequest(ctx, r2))
	_, err := s.UpdateServiceRequestStatus(ctx, r2.ID, "in_progress")
	require.NoError(t, err)

	items, err := s.ListServiceRequests(ctx, store.RequestFilter{CustomerID: "cust-1"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "one", items[0].FullName)

	items, err = s.ListServiceRequests(ctx, store.RequestFilter{Status: "in_progress"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "two", items[0].FullName)

	items, err = s.ListServiceRequests(ctx, store.RequestFilter{CustomerID: "cust-1", Status: "in_progress"})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetAndUpdateMissing(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.GetServiceRequest(ctx, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.UpdateServiceRequestStatus(ctx, 42, "completed")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateStatusPersists(t *testing.T) {
	s := New()
	ctx := context.Background()
	r := newRequest("one")
	require.NoError(t, s.CreateServiceRequest(ctx, r))

	updated, err := s.UpdateServiceRequestStatus(ctx, r.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)

	got, err := s.GetServiceRequest(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
	assert.Equal(t, r.CreatedAt, got.CreatedAt)
}

func TestApplicationsRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()
	a := &models.TechnicianApplication{
		FullName:        "Tech One",
		Email:           "t@e.ch",
		Phone:           "0809999999",
		Specialization:  "electrical",
		YearsExperience: 4,
		CoverLetter:     "experienced",
		Status:          "pending",
		CreatedAt:       time.Now().UTC(),
	}
	require.NoError(t, s.CreateApplication(ctx, a))
	require.Equal(t, int64(1), a.ID)

	got, err := s.GetApplication(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tech One", got.FullName)

	updated, err := s.UpdateApplicationStatus(ctx, a.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, "accepted", updated.Status)

	_, err = s.GetApplication(ctx, 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestQuoteFilters(t *testing.T) {
	s := New()
	ctx := context.Background()

	mk := func(reqID int64, tech, status string) {
		q := &models.Quote{
			RequestID:    reqID,
			TechnicianID: tech,
			Amount:       100,
			Description:  "valid description",
			ValidUntil:   time.Now().UTC().AddDate(0, 0, 7),
			Status:       status,
			CreatedAt:    time.Now().UTC(),
		}
		require.NoError(t, s.CreateQuote(ctx, q))
	}
	mk(1, "tech-a", "pending")
	mk(1, "tech-b", "accepted")
	mk(2, "tech-a", "pending")

	items, err := s.ListQuotes(ctx, store.QuoteFilter{RequestID: 1})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = s.ListQuotes(ctx, store.QuoteFilter{TechnicianID: "tech-a", Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = s.ListQuotes(ctx, store.QuoteFilter{RequestID: 2, Status: "accepted"})
	require.NoError(t, err)
	assert.Empty(t, items)
}
