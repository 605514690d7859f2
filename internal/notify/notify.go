// Package notify delivers best-effort events about request intake and status
// changes. Delivery failures are the caller's to log; they never block or
// fail the originating operation.
package notify

import (
	"context"

	"github.com/voltline/backend/internal/models"
)

type Event struct {
	Kind      string `json:"kind"`
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	OldStatus string `json:"old_status,omitempty"`
}

type Notifier interface {
	RequestCreated(ctx context.Context, r models.ServiceRequest) error
	StatusChanged(ctx context.Context, ev Event) error
}
