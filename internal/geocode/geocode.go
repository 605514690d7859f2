package geocode

import (
	"context"
	"errors"
	"strings"

	"github.com/voltline/backend/internal/models"
)

var ErrNotFound = errors.New("geocode not found")

type Geocoder interface {
	Geocode(ctx context.Context, query string) (lat float64, lon float64, err error)
}

// RequestQuery builds the lookup string for a service request's location.
func RequestQuery(r models.ServiceRequest) string {
	return strings.TrimSpace(r.Address)
}

// ShouldGeocode reports whether a request still needs coordinates.
func ShouldGeocode(r models.ServiceRequest) bool {
	return r.Lat == nil || r.Lon == nil
}
