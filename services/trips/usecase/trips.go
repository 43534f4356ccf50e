package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/piresc/armada/internal/pkg/logger"
	"github.com/piresc/armada/internal/pkg/models"
	"github.com/piresc/armada/services/trips"
)

// TripUC implements the trips.TripUC interface. Track history lives in the
// repository; simplification and statistics are computed per request.
type TripUC struct {
	repo trips.TripRepo
	cfg  *models.Config
}

// NewTripUC creates a new trip history use case
func NewTripUC(repo trips.TripRepo, cfg *models.Config) *TripUC {
	return &TripUC{
		repo: repo,
		cfg:  cfg,
	}
}

func (uc *TripUC) maxTrackPoints() int {
	if uc.cfg.Trips.MaxTrackPoints > 0 {
		return uc.cfg.Trips.MaxTrackPoints
	}
	return 300
}

func (uc *TripUC) lowSpeedThreshold() float64 {
	if uc.cfg.Trips.LowSpeedThreshold > 0 {
		return uc.cfg.Trips.LowSpeedThreshold
	}
	return 5.0
}

// GetVehicleTrack returns the reduced track plus statistics for one vehicle
// over a time window. Statistics always come from the full sequence; only
// the returned points are reduced.
func (uc *TripUC) GetVehicleTrack(ctx context.Context, vehicleKey string, from, to time.Time, maxPoints int) (*models.TrackResponse, error) {
	full, err := uc.fetchTrack(ctx, vehicleKey, from, to)
	if err != nil {
		return nil, err
	}

	if maxPoints <= 0 {
		maxPoints = uc.maxTrackPoints()
	}

	summary := ComputeTripSummary(full, uc.lowSpeedThreshold())
	reduced := Simplify(full, maxPoints, TierAuto, uc.lowSpeedThreshold(), uc.cfg.Trips.CoarseInputSize)

	return &models.TrackResponse{
		VehicleKey: vehicleKey,
		From:       from,
		To:         to,
		Points:     reduced,
		TotalCount: len(full),
		Summary:    summary,
	}, nil
}

// GetTripSummary returns aggregate statistics without the point sequence.
func (uc *TripUC) GetTripSummary(ctx context.Context, vehicleKey string, from, to time.Time) (*models.TripSummary, error) {
	full, err := uc.fetchTrack(ctx, vehicleKey, from, to)
	if err != nil {
		return nil, err
	}

	summary := ComputeTripSummary(full, uc.lowSpeedThreshold())
	return &summary, nil
}

// RecordPosition appends one sample to the vehicle's track history.
// Invalid telemetry is skipped silently.
func (uc *TripUC) RecordPosition(ctx context.Context, update *models.PositionUpdate) error {
	if update == nil {
		return nil
	}
	sample := update.Sample
	if !sample.Valid() {
		logger.Debug("Skipping invalid position sample",
			logger.String("vehicle_key", sample.VehicleKey))
		return nil
	}

	if err := uc.repo.InsertPosition(ctx, sample); err != nil {
		return fmt.Errorf("failed to record position for vehicle %s: %w", sample.VehicleKey, err)
	}
	return nil
}

// fetchTrack loads the window, drops samples that cannot enter geometry
// operations, and guarantees ascending timestamp order for the downstream
// single-pass components.
func (uc *TripUC) fetchTrack(ctx context.Context, vehicleKey string, from, to time.Time) ([]models.PositionSample, error) {
	if vehicleKey == "" {
		return nil, fmt.Errorf("vehicle key is required")
	}
	if to.Before(from) {
		return nil, fmt.Errorf("invalid time range: %s is before %s", to.Format(time.RFC3339), from.Format(time.RFC3339))
	}

	raw, err := uc.repo.GetTrack(ctx, vehicleKey, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch track for vehicle %s: %w", vehicleKey, err)
	}

	valid := make([]models.PositionSample, 0, len(raw))
	for _, sample := range raw {
		if sample.Valid() {
			valid = append(valid, sample)
		}
	}
	if dropped := len(raw) - len(valid); dropped > 0 {
		logger.Debug("Dropped invalid samples from track",
			logger.String("vehicle_key", vehicleKey),
			logger.Int("dropped", dropped))
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Timestamp.Before(valid[j].Timestamp)
	})
	return valid, nil
}
