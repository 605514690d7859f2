// Package memstore is the in-memory storage adapter. Each instance owns its
// own state, so tests and mock deployments stay isolated from one another.
package memstore

import (
	"context"
	"sync"

	"github.com/voltline/backend/internal/models"
	"github.com/voltline/backend/internal/store"
)

type Store struct {
	mu sync.Mutex

	requests     []models.ServiceRequest
	applications []models.TechnicianApplication
	quotes       []models.Quote

	nextRequestID     int64
	nextApplicationID int64
	nextQuoteID       int64
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{}
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() {}

func (s *Store) CreateServiceRequest(_ context.Context, r *models.ServiceRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextRequestID++
	r.ID = s.nextRequestID
	s.requests = append(s.requests, *r)
	return nil
}

func (s *Store) ListServiceRequests(_ context.Context, f store.RequestFilter) ([]models.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ServiceRequest
	// newest first: creation order is append order, so walk backwards
	for i := len(s.requests) - 1; i >= 0; i-- {
		r := s.requests[i]
		if f.CustomerID != "" && r.CustomerID != f.CustomerID {
			continue
		}
		if f.TechnicianID != "" && r.TechnicianID != f.TechnicianID {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *Store) GetServiceRequest(_ context.Context, id int64) (models.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return models.ServiceRequest{}, store.ErrNotFound
}

func (s *Store) UpdateServiceRequestStatus(_ context.Context, id int64, status string) (models.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests[i].Status = status
			return s.requests[i], nil
		}
	}
	return models.ServiceRequest{}, store.ErrNotFound
}

func (s *Store) CreateApplication(_ context.Context, a *models.TechnicianApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextApplicationID++
	a.ID = s.nextApplicationID
	s.applications = append(s.applications, *a)
	return nil
}

func (s *Store) ListApplications(context.Context) ([]models.TechnicianApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.TechnicianApplication, 0, len(s.applications))
	for i := len(s.applications) - 1; i >= 0; i-- {
		out = append(out, s.applications[i])
	}
	return out, nil
}

func (s *Store) GetApplication(_ context.Context, id int64) (models.TechnicianApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.applications {
		if a.ID == id {
			return a, nil
		}
	}
	return models.TechnicianApplication{}, store.ErrNotFound
}

func (s *Store) UpdateApplicationStatus(_ context.Context, id int64, status string) (models.TechnicianApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.applications {
		if s.applications[i].ID == id {
			s.applications[i].Status = status
			return s.applications[i], nil
		}
	}
	return models.TechnicianApplication{}, store.ErrNotFound
}

func (s *Store) CreateQuote(_ context.Context, q *models.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextQuoteID++
	q.ID = s.nextQuoteID
	s.quotes = append(s.quotes, *q)
	return nil
}

func (s *Store) ListQuotes(_ context.Context, f store.QuoteFilter) ([]models.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Quote
	for i := len(s.quotes) - 1; i >= 0; i-- {
		q := s.quotes[i]
		if f.RequestID != 0 && q.RequestID != f.RequestID {
			continue
		}
		if f.TechnicianID != "" && q.TechnicianID != f.TechnicianID {
			continue
		}
		if f.Status != "" && q.Status != f.Status {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (s *Store) GetQuote(_ context.Context, id int64) (models.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return models.Quote{}, store.ErrNotFound
}

func (s *Store) UpdateQuoteStatus(_ context.Context, id int64, status string) (models.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.quotes {
		if s.quotes[i].ID == id {
			s.quotes[i].Status = status
			return s.quotes[i], nil
		}
	}
	return models.Quote{}, store.ErrNotFound
}
