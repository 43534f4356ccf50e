package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/armada/internal/pkg/geo"
	"github.com/piresc/armada/internal/pkg/logger"
	"github.com/piresc/armada/internal/pkg/models"
	"github.com/piresc/armada/services/geofence"
)

// cooldownKey de-duplicates alerts per vehicle and transition direction.
type cooldownKey struct {
	vehicleKey string
	transition models.TransitionKind
}

// GeofenceUC implements the geofence.GeofenceUC interface. It owns the
// per-vehicle containment state and the alert de-duplication cooldown;
// both are in-memory only.
type GeofenceUC struct {
	repo geofence.GeofenceRepo
	gw   geofence.GeofenceGW
	cfg  *models.Config

	mu        sync.Mutex
	histories map[string]*models.VehicleHistory
	cooldowns map[cooldownKey]time.Time
}

// NewGeofenceUC creates a new geofence use case
func NewGeofenceUC(repo geofence.GeofenceRepo, gw geofence.GeofenceGW, cfg *models.Config) *GeofenceUC {
	return &GeofenceUC{
		repo:      repo,
		gw:        gw,
		cfg:       cfg,
		histories: make(map[string]*models.VehicleHistory),
		cooldowns: make(map[cooldownKey]time.Time),
	}
}

func (uc *GeofenceUC) cooldownWindow() time.Duration {
	minutes := uc.cfg.Geofence.CooldownMinutes
	if minutes <= 0 {
		minutes = 5
	}
	return time.Duration(minutes) * time.Minute
}

// ProcessPositionUpdate evaluates one position sample for a vehicle.
// Invalid telemetry is skipped silently; repository failures are returned
// to the caller since they affect freshness guarantees.
func (uc *GeofenceUC) ProcessPositionUpdate(ctx context.Context, update *models.PositionUpdate) error {
	if update == nil {
		return nil
	}
	sample := update.Sample

	if !sample.Valid() {
		logger.Debug("Skipping invalid position sample",
			logger.String("vehicle_key", sample.VehicleKey))
		return nil
	}

	// Record the latest position regardless of assignment; dashboard map
	// reads do not depend on geofencing.
	if err := uc.repo.StoreLatestPosition(ctx, sample); err != nil {
		logger.Warn("Failed to store latest position",
			logger.String("vehicle_key", sample.VehicleKey),
			logger.Err(err))
	}

	assignment, err := uc.repo.GetAssignment(ctx, sample.VehicleKey)
	if err != nil {
		return fmt.Errorf("failed to fetch assignment for vehicle %s: %w", sample.VehicleKey, err)
	}
	if assignment == nil || assignment.RegionID == "" {
		return nil
	}

	region, err := uc.repo.GetRegion(ctx, assignment.RegionID)
	if err != nil {
		return fmt.Errorf("failed to fetch region %s: %w", assignment.RegionID, err)
	}
	// An inactive or missing region means no assignment for detection
	// purposes. History is kept so re-activation resumes cleanly.
	if region == nil || !region.Active() {
		return nil
	}

	// Never trust geometry from the region source.
	if err := region.Validate(); err != nil {
		logger.Warn("Rejecting region with invalid geometry",
			logger.String("region_id", region.ID),
			logger.Err(err))
		return nil
	}

	uc.evaluate(ctx, sample, assignment, region)
	return nil
}

// ProcessBatch evaluates a batch of samples. Samples are stable-sorted by
// timestamp so per-vehicle evaluation order is non-decreasing.
func (uc *GeofenceUC) ProcessBatch(ctx context.Context, samples []models.PositionSample) error {
	sorted := make([]models.PositionSample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	for i := range sorted {
		update := &models.PositionUpdate{Sample: sorted[i], CreatedAt: models.Now()}
		if err := uc.ProcessPositionUpdate(ctx, update); err != nil {
			return err
		}
	}
	return nil
}

// GetVehicleState returns a copy of the vehicle's containment state.
func (uc *GeofenceUC) GetVehicleState(ctx context.Context, vehicleKey string) (*models.VehicleHistory, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	history, ok := uc.histories[vehicleKey]
	if !ok {
		return nil, nil
	}
	copied := *history
	return &copied, nil
}

// evaluate runs the containment state machine for one valid sample against
// one validated active region.
func (uc *GeofenceUC) evaluate(ctx context.Context, sample models.PositionSample, assignment *models.VehicleAssignment, region *models.GeofenceRegion) {
	isInsideNow := geo.Containment(geo.PointFromSample(sample), region)

	uc.mu.Lock()

	history, ok := uc.histories[sample.VehicleKey]
	if !ok {
		history = &models.VehicleHistory{
			VehicleKey: sample.VehicleKey,
			RegionID:   region.ID,
		}
		uc.histories[sample.VehicleKey] = history
	}

	// Drop late-arriving samples; they must not regress containment state.
	if history.Current != nil && sample.Timestamp.Before(history.Current.Timestamp) {
		uc.mu.Unlock()
		logger.Debug("Dropping out-of-order position sample",
			logger.String("vehicle_key", sample.VehicleKey),
			logger.Time("sample_ts", sample.Timestamp),
			logger.Time("last_ts", history.Current.Timestamp))
		return
	}

	// When the assignment changed since the last evaluation the stored
	// WasInside has no meaning against the new region. Re-seed it from the
	// containment check instead of assuming outside, so reassignment does
	// not fabricate an ENTER alert.
	reseeded := false
	if history.RegionID != region.ID && history.Current != nil {
		history.WasInside = isInsideNow
		history.RegionID = region.ID
		reseeded = true
	}

	wasInside := history.WasInside

	var alert *models.ViolationAlert
	if !reseeded {
		if transition, severity, ok := EvaluateTransition(region.Rule, wasInside, isInsideNow); ok {
			if uc.underCooldown(sample.VehicleKey, transition, sample.Timestamp) {
				logger.Debug("Suppressing alert within cooldown window",
					logger.String("vehicle_key", sample.VehicleKey),
					logger.String("transition", string(transition)))
			} else {
				alert = uc.buildAlert(sample, assignment, region, transition, severity)
				uc.cooldowns[cooldownKey{sample.VehicleKey, transition}] = sample.Timestamp
			}
		}
	}

	// The state update is unconditional; a suppressed or undeliverable
	// alert never leaves the detector behind.
	current := sample
	history.Previous = history.Current
	history.Current = &current
	history.WasInside = isInsideNow
	history.RegionID = region.ID
	history.LastEvaluated = models.Now()

	uc.mu.Unlock()

	if alert != nil {
		logger.Info("Geofence violation detected",
			logger.String("vehicle_key", alert.VehicleKey),
			logger.String("region_id", alert.RegionID),
			logger.String("transition", string(alert.Transition)),
			logger.Float64("lat", alert.Latitude),
			logger.Float64("lng", alert.Longitude))

		if err := uc.gw.PublishViolationAlert(ctx, alert); err != nil {
			logger.Error("Failed to publish violation alert",
				logger.String("vehicle_key", alert.VehicleKey),
				logger.String("region_id", alert.RegionID),
				logger.Err(err))
		}
	}
}

func (uc *GeofenceUC) underCooldown(vehicleKey string, transition models.TransitionKind, at time.Time) bool {
	last, ok := uc.cooldowns[cooldownKey{vehicleKey, transition}]
	if !ok {
		return false
	}
	return at.Sub(last) < uc.cooldownWindow()
}

func (uc *GeofenceUC) buildAlert(sample models.PositionSample, assignment *models.VehicleAssignment, region *models.GeofenceRegion, transition models.TransitionKind, severity models.AlertSeverity) *models.ViolationAlert {
	vehicleName := assignment.VehicleName
	if vehicleName == "" {
		vehicleName = sample.VehicleKey
	}

	point := geo.PointFromSample(sample)
	location := geo.LocationString(point, uc.cfg.Geofence.GeohashPrecision)

	var message string
	switch transition {
	case models.TransitionEnter:
		message = fmt.Sprintf("Vehicle %s entered %s region %s at %s", vehicleName, region.Rule, region.Name, location)
	default:
		message = fmt.Sprintf("Vehicle %s left %s region %s at %s", vehicleName, region.Rule, region.Name, location)
	}

	return &models.ViolationAlert{
		ID:          uuid.New().String(),
		VehicleKey:  sample.VehicleKey,
		VehicleName: vehicleName,
		RegionID:    region.ID,
		RegionName:  region.Name,
		Rule:        region.Rule,
		Transition:  transition,
		Severity:    severity,
		Message:     message,
		Location:    location,
		Latitude:    sample.Latitude,
		Longitude:   sample.Longitude,
		Timestamp:   sample.Timestamp,
	}
}
