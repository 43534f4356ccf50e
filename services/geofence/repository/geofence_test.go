package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/armada/internal/pkg/constants"
	"github.com/piresc/armada/internal/pkg/database"
	"github.com/piresc/armada/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func TestGetAssignment(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewGeofenceRepository(&database.RedisClient{
		Client: client,
	})

	ctx := context.Background()
	vehicleKey := "vehicle-123"

	// Seed the assignment hash the way the fleet management app writes it
	assignmentKey := fmt.Sprintf(constants.KeyVehicleAssignment, vehicleKey)
	mr.HSet(assignmentKey, constants.FieldVehicleName, "B 1234 XYZ")
	mr.HSet(assignmentKey, constants.FieldRegionID, "region-monas")

	assignment, err := repo.GetAssignment(ctx, vehicleKey)
	require.NoError(t, err)
	require.NotNil(t, assignment)
	assert.Equal(t, vehicleKey, assignment.VehicleKey)
	assert.Equal(t, "B 1234 XYZ", assignment.VehicleName)
	assert.Equal(t, "region-monas", assignment.RegionID)
}

func TestGetAssignment_NotFound(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewGeofenceRepository(&database.RedisClient{
		Client: client,
	})

	assignment, err := repo.GetAssignment(context.Background(), "vehicle-unknown")
	assert.NoError(t, err)
	assert.Nil(t, assignment)
}

func TestGetRegion_Circle(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewGeofenceRepository(&database.RedisClient{
		Client: client,
	})

	ctx := context.Background()
	regionID := "region-monas"

	circle := models.CircleGeometry{
		Center:       models.GeoPoint{Longitude: 106.8456, Latitude: -6.2088},
		RadiusMeters: 500,
	}
	geometry, err := json.Marshal(circle)
	require.NoError(t, err)

	regionKey := fmt.Sprintf(constants.KeyRegion, regionID)
	mr.HSet(regionKey, constants.FieldName, "Monas")
	mr.HSet(regionKey, constants.FieldKind, string(models.RegionCircle))
	mr.HSet(regionKey, constants.FieldRule, string(models.RuleForbidden))
	mr.HSet(regionKey, constants.FieldStatus, string(models.RegionActive))
	mr.HSet(regionKey, constants.FieldGeometry, string(geometry))

	region, err := repo.GetRegion(ctx, regionID)
	require.NoError(t, err)
	require.NotNil(t, region)
	assert.Equal(t, regionID, region.ID)
	assert.Equal(t, "Monas", region.Name)
	assert.Equal(t, models.RegionCircle, region.Kind)
	assert.Equal(t, models.RuleForbidden, region.Rule)
	assert.Equal(t, models.RegionActive, region.Status)
	require.NotNil(t, region.Circle)
	assert.Equal(t, circle.Center, region.Circle.Center)
	assert.Equal(t, circle.RadiusMeters, region.Circle.RadiusMeters)
	assert.Nil(t, region.Polygon)
}

func TestGetRegion_Polygon(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewGeofenceRepository(&database.RedisClient{
		Client: client,
	})

	ctx := context.Background()
	regionID := "region-senayan"

	polygon := models.PolygonGeometry{
		Ring: []models.GeoPoint{
			{Longitude: 106.79, Latitude: -6.22},
			{Longitude: 106.81, Latitude: -6.22},
			{Longitude: 106.81, Latitude: -6.20},
			{Longitude: 106.79, Latitude: -6.20},
		},
	}
	geometry, err := json.Marshal(polygon)
	require.NoError(t, err)

	regionKey := fmt.Sprintf(constants.KeyRegion, regionID)
	mr.HSet(regionKey, constants.FieldName, "Senayan")
	mr.HSet(regionKey, constants.FieldKind, string(models.RegionPolygon))
	mr.HSet(regionKey, constants.FieldRule, string(models.RuleStayIn))
	mr.HSet(regionKey, constants.FieldStatus, string(models.RegionActive))
	mr.HSet(regionKey, constants.FieldGeometry, string(geometry))

	region, err := repo.GetRegion(ctx, regionID)
	require.NoError(t, err)
	require.NotNil(t, region)
	assert.Equal(t, models.RegionPolygon, region.Kind)
	require.NotNil(t, region.Polygon)
	assert.Len(t, region.Polygon.Ring, 4)
	assert.Nil(t, region.Circle)
}

func TestGetRegion_NotFound(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewGeofenceRepository(&database.RedisClient{
		Client: client,
	})

	region, err := repo.GetRegion(context.Background(), "region-missing")
	assert.NoError(t, err)
	assert.Nil(t, region)
}

func TestGetRegion_InvalidGeometry(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewGeofenceRepository(&database.RedisClient{
		Client: client,
	})

	regionID := "region-broken"
	regionKey := fmt.Sprintf(constants.KeyRegion, regionID)
	mr.HSet(regionKey, constants.FieldKind, string(models.RegionCircle))
	mr.HSet(regionKey, constants.FieldGeometry, "{not json")

	region, err := repo.GetRegion(context.Background(), regionID)
	assert.Error(t, err)
	assert.Nil(t, region)
	assert.Contains(t, err.Error(), "invalid circle geometry")
}

func TestStoreLatestPosition(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewGeofenceRepository(&database.RedisClient{
		Client: client,
	})

	ctx := context.Background()
	speed := 42.5
	timestamp := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	sample := models.PositionSample{
		VehicleKey: "vehicle-123",
		Latitude:   -6.175392,
		Longitude:  106.827153,
		Speed:      &speed,
		Timestamp:  timestamp,
	}

	err := repo.StoreLatestPosition(ctx, sample)
	require.NoError(t, err)

	// Verify the hash was written with a TTL
	locationKey := fmt.Sprintf(constants.KeyVehicleLocation, sample.VehicleKey)
	assert.True(t, mr.Exists(locationKey))
	assert.Equal(t, "-6.175392", mr.HGet(locationKey, constants.FieldLatitude))
	assert.Equal(t, "106.827153", mr.HGet(locationKey, constants.FieldLongitude))
	assert.Equal(t, "42.5", mr.HGet(locationKey, constants.FieldSpeed))
	assert.Equal(t, fmt.Sprintf("%d", timestamp.Unix()), mr.HGet(locationKey, constants.FieldTimestamp))
	assert.Greater(t, mr.TTL(locationKey), time.Duration(0))

	// Verify the vehicle landed in the shared geo set
	assert.True(t, mr.Exists(constants.KeyVehicleGeo))
}

func TestStoreLatestPosition_NoSpeed(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewGeofenceRepository(&database.RedisClient{
		Client: client,
	})

	sample := models.PositionSample{
		VehicleKey: "vehicle-456",
		Latitude:   -6.2,
		Longitude:  106.8,
		Timestamp:  time.Now(),
	}

	err := repo.StoreLatestPosition(context.Background(), sample)
	require.NoError(t, err)

	locationKey := fmt.Sprintf(constants.KeyVehicleLocation, sample.VehicleKey)
	assert.True(t, mr.Exists(locationKey))
	assert.Empty(t, mr.HGet(locationKey, constants.FieldSpeed))
}

func TestGetLatestPosition(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewGeofenceRepository(&database.RedisClient{
		Client: client,
	})

	ctx := context.Background()
	speed := 33.0
	timestamp := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	stored := models.PositionSample{
		VehicleKey: "vehicle-123",
		Latitude:   -6.175392,
		Longitude:  106.827153,
		Speed:      &speed,
		Timestamp:  timestamp,
	}
	require.NoError(t, repo.StoreLatestPosition(ctx, stored))

	sample, err := repo.GetLatestPosition(ctx, stored.VehicleKey)
	require.NoError(t, err)
	require.NotNil(t, sample)
	assert.Equal(t, stored.VehicleKey, sample.VehicleKey)
	assert.InDelta(t, stored.Latitude, sample.Latitude, 1e-9)
	assert.InDelta(t, stored.Longitude, sample.Longitude, 1e-9)
	assert.Equal(t, timestamp.Unix(), sample.Timestamp.Unix())
	require.NotNil(t, sample.Speed)
	assert.Equal(t, speed, *sample.Speed)
}

func TestGetLatestPosition_NotFound(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewGeofenceRepository(&database.RedisClient{
		Client: client,
	})

	sample, err := repo.GetLatestPosition(context.Background(), "vehicle-unknown")
	assert.NoError(t, err)
	assert.Nil(t, sample)
}

func TestGetNearbyVehicles(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewGeofenceRepository(&database.RedisClient{
		Client: client,
	})

	ctx := context.Background()
	now := time.Now().UTC()

	// Two vehicles near Monas, one far away in Surabaya
	samples := []*models.PositionSample{
		{VehicleKey: "vehicle-near", Latitude: -6.1754, Longitude: 106.8272, Timestamp: now},
		{VehicleKey: "vehicle-close", Latitude: -6.1760, Longitude: 106.8280, Timestamp: now},
		{VehicleKey: "vehicle-far", Latitude: -7.2575, Longitude: 112.7521, Timestamp: now},
	}
	for _, sample := range samples {
		require.NoError(t, repo.StoreLatestPosition(ctx, *sample))
	}

	center := models.GeoPoint{Longitude: 106.8272, Latitude: -6.1754}
	vehicles, err := repo.GetNearbyVehicles(ctx, center, 500)
	require.NoError(t, err)
	require.Len(t, vehicles, 2)

	// Nearest first
	assert.Equal(t, "vehicle-near", vehicles[0].VehicleKey)
	assert.Equal(t, "vehicle-close", vehicles[1].VehicleKey)
	assert.InDelta(t, -6.1754, vehicles[0].Latitude, 0.001)
	assert.InDelta(t, 106.8272, vehicles[0].Longitude, 0.001)
	assert.Less(t, vehicles[0].DistanceMeters, vehicles[1].DistanceMeters)
}

func TestGetNearbyVehicles_Empty(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewGeofenceRepository(&database.RedisClient{
		Client: client,
	})

	center := models.GeoPoint{Longitude: 106.8272, Latitude: -6.1754}
	vehicles, err := repo.GetNearbyVehicles(context.Background(), center, 500)
	require.NoError(t, err)
	assert.Empty(t, vehicles)
}
