package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/armada/internal/pkg/constants"
	"github.com/piresc/armada/internal/pkg/database"
	"github.com/piresc/armada/internal/pkg/models"
	"github.com/piresc/armada/services/geofence"
)

const (
	// LatestPositionTTL is how long the latest-position hash is kept.
	// Stale vehicles drop off the dashboard map after a day.
	LatestPositionTTL = 24 * time.Hour
)

type geofenceRepo struct {
	redisClient *database.RedisClient
}

// NewGeofenceRepository creates a new geofence repository backed by Redis.
// Regions and assignments are written by the fleet management application;
// this repository only reads them.
func NewGeofenceRepository(redisClient *database.RedisClient) geofence.GeofenceRepo {
	return &geofenceRepo{
		redisClient: redisClient,
	}
}

// GetAssignment returns the vehicle's region assignment, or nil when the
// vehicle has none.
func (r *geofenceRepo) GetAssignment(ctx context.Context, vehicleKey string) (*models.VehicleAssignment, error) {
	key := fmt.Sprintf(constants.KeyVehicleAssignment, vehicleKey)

	values, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment data: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}

	return &models.VehicleAssignment{
		VehicleKey:  vehicleKey,
		VehicleName: values[constants.FieldVehicleName],
		RegionID:    values[constants.FieldRegionID],
	}, nil
}

// GetRegion returns the region by id, or nil when it does not exist.
// Geometry is stored as a JSON document in the hash; callers re-validate
// it on every fetch.
func (r *geofenceRepo) GetRegion(ctx context.Context, regionID string) (*models.GeofenceRegion, error) {
	key := fmt.Sprintf(constants.KeyRegion, regionID)

	values, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get region data: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}

	region := &models.GeofenceRegion{
		ID:     regionID,
		Name:   values[constants.FieldName],
		Kind:   models.RegionKind(values[constants.FieldKind]),
		Rule:   models.RuleType(values[constants.FieldRule]),
		Status: models.RegionStatus(values[constants.FieldStatus]),
	}

	geometry := values[constants.FieldGeometry]
	switch region.Kind {
	case models.RegionCircle:
		var circle models.CircleGeometry
		if err := json.Unmarshal([]byte(geometry), &circle); err != nil {
			return nil, fmt.Errorf("invalid circle geometry for region %s: %w", regionID, err)
		}
		region.Circle = &circle
	case models.RegionPolygon:
		var polygon models.PolygonGeometry
		if err := json.Unmarshal([]byte(geometry), &polygon); err != nil {
			return nil, fmt.Errorf("invalid polygon geometry for region %s: %w", regionID, err)
		}
		region.Polygon = &polygon
	}

	return region, nil
}

// StoreLatestPosition records the vehicle's most recent position in a hash
// and in the shared geo set used by dashboard radius queries.
func (r *geofenceRepo) StoreLatestPosition(ctx context.Context, sample models.PositionSample) error {
	key := fmt.Sprintf(constants.KeyVehicleLocation, sample.VehicleKey)

	positionData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(sample.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(sample.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(sample.Timestamp.Unix(), 10),
	}
	if sample.HasSpeed() {
		positionData[constants.FieldSpeed] = strconv.FormatFloat(sample.SpeedValue(), 'f', -1, 64)
	}

	if err := r.redisClient.HMSet(ctx, key, positionData); err != nil {
		return fmt.Errorf("failed to store latest position: %w", err)
	}
	if err := r.redisClient.Expire(ctx, key, LatestPositionTTL); err != nil {
		return fmt.Errorf("failed to set latest position TTL: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyVehicleGeo, sample.Longitude, sample.Latitude, sample.VehicleKey); err != nil {
		return fmt.Errorf("failed to update vehicle geo set: %w", err)
	}

	return nil
}

// GetNearbyVehicles queries the shared geo set for vehicles within
// radiusMeters of the point. Results come back nearest first with the
// member's stored coordinates and distance.
func (r *geofenceRepo) GetNearbyVehicles(ctx context.Context, point models.GeoPoint, radiusMeters float64) ([]models.NearbyVehicle, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyVehicleGeo, point.Longitude, point.Latitude, radiusMeters, "m")
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby vehicles: %w", err)
	}

	vehicles := make([]models.NearbyVehicle, 0, len(locations))
	for _, loc := range locations {
		vehicles = append(vehicles, models.NearbyVehicle{
			VehicleKey:     loc.Name,
			Latitude:       loc.Latitude,
			Longitude:      loc.Longitude,
			DistanceMeters: loc.Dist,
		})
	}
	return vehicles, nil
}

// GetLatestPosition reads the vehicle's most recent position, or nil when
// none is stored.
func (r *geofenceRepo) GetLatestPosition(ctx context.Context, vehicleKey string) (*models.PositionSample, error) {
	key := fmt.Sprintf(constants.KeyVehicleLocation, vehicleKey)

	values, err := r.redisClient.HMGet(ctx, key,
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldTimestamp,
		constants.FieldSpeed,
	)
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest position: %w", err)
	}

	if len(values) < 3 || values[0] == "" || values[1] == "" || values[2] == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}
	ts, err := strconv.ParseInt(values[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	sample := &models.PositionSample{
		VehicleKey: vehicleKey,
		Latitude:   lat,
		Longitude:  lng,
		Timestamp:  time.Unix(ts, 0),
	}
	if len(values) > 3 && values[3] != "" {
		if speed, err := strconv.ParseFloat(values[3], 64); err == nil {
			sample.Speed = &speed
		}
	}

	return sample, nil
}
