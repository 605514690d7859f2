package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/voltline/backend/internal/models"
)

// LogNotifier writes events to the service log. Used when no webhook is
// configured.
type LogNotifier struct {
	Logger zerolog.Logger
}

func (n LogNotifier) RequestCreated(_ context.Context, r models.ServiceRequest) error {
	n.Logger.Info().
		Int64("request_id", r.ID).
		Str("service_type", r.ServiceType).
		Msg("service request created")
	return nil
}

func (n LogNotifier) StatusChanged(_ context.Context, ev Event) error {
	n.Logger.Info().
		Str("kind", ev.Kind).
		Int64("id", ev.ID).
		Str("old_status", ev.OldStatus).
		Str("status", ev.Status).
		Msg("status changed")
	return nil
}
