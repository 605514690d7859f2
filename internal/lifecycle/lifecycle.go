// Package lifecycle holds the status vocabulary for every resource kind and
// the guard applied before a status write. The transition graph is
// intentionally flat: any status in a resource's set may follow any other,
// including itself, so the guard is pure set membership.
package lifecycle

type Kind string

const (
	KindRequest     Kind = "request"
	KindApplication Kind = "application"
	KindQuote       Kind = "quote"
)

const StatusPending = "pending"

const (
	RequestInProgress = "in_progress"
	RequestCompleted  = "completed"
	RequestCancelled  = "cancelled"
)

const (
	ApplicationReviewing = "reviewing"
	ApplicationAccepted  = "accepted"
	ApplicationRejected  = "rejected"
)

const (
	QuoteAccepted = "accepted"
	QuoteRejected = "rejected"
)

var statusSets = map[Kind][]string{
	KindRequest:     {StatusPending, RequestInProgress, RequestCompleted, RequestCancelled},
	KindApplication: {StatusPending, ApplicationReviewing, ApplicationAccepted, ApplicationRejected},
	KindQuote:       {StatusPending, QuoteAccepted, QuoteRejected},
}

// Statuses returns the closed status set for a resource kind.
func Statuses(kind Kind) []string {
	return statusSets[kind]
}

// InitialStatus is the status every resource is created with.
func InitialStatus(Kind) string {
	return StatusPending
}

// ValidStatus reports whether status belongs to kind's status set.
func ValidStatus(kind Kind, status string) bool {
	for _, s := range statusSets[kind] {
		if s == status {
			return true
		}
	}
	return false
}

// CanTransition decides whether a stored status may be overwritten with next.
// The current value does not constrain the write.
func CanTransition(kind Kind, _, next string) bool {
	return ValidStatus(kind, next)
}

// QuoteActionStatus maps a quote review action to the resulting status.
func QuoteActionStatus(action string) (string, bool) {
	switch action {
	case "accept":
		return QuoteAccepted, true
	case "reject":
		return QuoteRejected, true
	default:
		return "", false
	}
}
