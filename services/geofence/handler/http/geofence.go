package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/armada/internal/pkg/logger"
	"github.com/piresc/armada/internal/pkg/models"
	"github.com/piresc/armada/internal/utils"
	"github.com/piresc/armada/services/geofence"
)

// defaultNearbyRadiusMeters bounds the nearby query when the caller does
// not pass radius_m.
const defaultNearbyRadiusMeters = 1000.0

// GeofenceHandler handles HTTP requests for geofence operations
type GeofenceHandler struct {
	geofenceUC geofence.GeofenceUC
	repo       geofence.GeofenceRepo
}

// NewGeofenceHandler creates a new geofence HTTP handler
func NewGeofenceHandler(geofenceUC geofence.GeofenceUC, repo geofence.GeofenceRepo) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: geofenceUC,
		repo:       repo,
	}
}

// EvaluatePositions accepts a batch of position samples from the polling
// layer and runs them through the violation detector.
func (h *GeofenceHandler) EvaluatePositions(c echo.Context) error {
	var req struct {
		Samples []models.PositionSample `json:"samples"`
	}

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind position batch", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.geofenceUC.ProcessBatch(c.Request().Context(), req.Samples); err != nil {
		logger.Error("Failed to process position batch", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to process positions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Positions evaluated", map[string]int{"received": len(req.Samples)})
}

// GetVehicleState returns the containment state for a vehicle
func (h *GeofenceHandler) GetVehicleState(c echo.Context) error {
	vehicleKey := c.Param("id")
	if vehicleKey == "" {
		return utils.BadRequestResponse(c, "vehicle id is required")
	}

	state, err := h.geofenceUC.GetVehicleState(c.Request().Context(), vehicleKey)
	if err != nil {
		logger.Error("Failed to get vehicle state",
			logger.String("vehicle_key", vehicleKey),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get vehicle state")
	}
	if state == nil {
		return utils.NotFoundResponse(c, "vehicle has no containment state")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle state", state)
}

// GetLatestPosition returns the vehicle's most recent known position
func (h *GeofenceHandler) GetLatestPosition(c echo.Context) error {
	vehicleKey := c.Param("id")
	if vehicleKey == "" {
		return utils.BadRequestResponse(c, "vehicle id is required")
	}

	sample, err := h.repo.GetLatestPosition(c.Request().Context(), vehicleKey)
	if err != nil {
		logger.Error("Failed to get latest position",
			logger.String("vehicle_key", vehicleKey),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get latest position")
	}
	if sample == nil {
		return utils.NotFoundResponse(c, "vehicle has no recorded position")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Latest position", sample)
}

// GetNearbyVehicles returns vehicles within a radius of a point, nearest
// first. Query params: lat, lng (required), radius_m (optional, default
// 1000).
func (h *GeofenceHandler) GetNearbyVehicles(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		return utils.BadRequestResponse(c, "lat must be a latitude in [-90, 90]")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil || lng < -180 || lng > 180 {
		return utils.BadRequestResponse(c, "lng must be a longitude in [-180, 180]")
	}

	radiusMeters := defaultNearbyRadiusMeters
	if raw := c.QueryParam("radius_m"); raw != "" {
		radiusMeters, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusMeters <= 0 {
			return utils.BadRequestResponse(c, "radius_m must be a positive number")
		}
	}

	point := models.GeoPoint{Longitude: lng, Latitude: lat}
	vehicles, err := h.repo.GetNearbyVehicles(c.Request().Context(), point, radiusMeters)
	if err != nil {
		logger.Error("Failed to query nearby vehicles",
			logger.Float64("lat", lat),
			logger.Float64("lng", lng),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to query nearby vehicles")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby vehicles", map[string]interface{}{
		"vehicles": vehicles,
		"count":    len(vehicles),
	})
}
