package trips

import (
	"context"
	"time"

	"github.com/piresc/armada/internal/pkg/models"
)

// TripUC defines the trip history use case interface
type TripUC interface {
	// GetVehicleTrack returns the reduced track for map rendering together
	// with statistics computed over the full sample sequence. maxPoints <= 0
	// selects the configured default.
	GetVehicleTrack(ctx context.Context, vehicleKey string, from, to time.Time, maxPoints int) (*models.TrackResponse, error)

	// GetTripSummary returns aggregate statistics for the vehicle over the
	// time window without the point sequence
	GetTripSummary(ctx context.Context, vehicleKey string, from, to time.Time) (*models.TripSummary, error)

	// RecordPosition appends one position sample to the vehicle's track
	// history
	RecordPosition(ctx context.Context, update *models.PositionUpdate) error
}
