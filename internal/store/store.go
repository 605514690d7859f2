// Package store defines the repository contract shared by the Postgres and
// in-memory adapters. Handlers depend on this interface only.
package store

import (
	"context"
	"errors"

	"github.com/voltline/backend/internal/models"
)

var ErrNotFound = errors.New("not found")

// RequestFilter narrows a service request listing. Empty fields match
// everything. Values are compared for equality, no referential checks.
type RequestFilter struct {
	CustomerID   string
	TechnicianID string
	Status       string
}

type QuoteFilter struct {
	RequestID    int64
	TechnicianID string
	Status       string
}

type Store interface {
	Ping(ctx context.Context) error
	Close()

	CreateServiceRequest(ctx context.Context, r *models.ServiceRequest) error
	ListServiceRequests(ctx context.Context, f RequestFilter) ([]models.ServiceRequest, error)
	GetServiceRequest(ctx context.Context, id int64) (models.ServiceRequest, error)
	UpdateServiceRequestStatus(ctx context.Context, id int64, status string) (models.ServiceRequest, error)

	CreateApplication(ctx context.Context, a *models.TechnicianApplication) error
	ListApplications(ctx context.Context) ([]models.TechnicianApplication, error)
	GetApplication(ctx context.Context, id int64) (models.TechnicianApplication, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status string) (models.TechnicianApplication, error)

	CreateQuote(ctx context.Context, q *models.Quote) error
	ListQuotes(ctx context.Context, f QuoteFilter) ([]models.Quote, error)
	GetQuote(ctx context.Context, id int64) (models.Quote, error)
	UpdateQuoteStatus(ctx context.Context, id int64, status string) (models.Quote, error)
}
