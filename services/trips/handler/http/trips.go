package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/armada/internal/pkg/logger"
	"github.com/piresc/armada/internal/pkg/models"
	"github.com/piresc/armada/internal/utils"
	"github.com/piresc/armada/services/trips"
)

// TripHandler handles HTTP requests for trip history operations
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
	}
}

// GetVehicleTrack returns the reduced track plus summary for a vehicle over
// a time window. Query params: from, to (RFC3339, required), max_points
// (optional, defaults to the configured cap).
func (h *TripHandler) GetVehicleTrack(c echo.Context) error {
	vehicleKey := c.Param("id")
	if vehicleKey == "" {
		return utils.BadRequestResponse(c, "vehicle id is required")
	}

	from, to, err := parseTimeRange(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	maxPoints := 0
	if raw := c.QueryParam("max_points"); raw != "" {
		maxPoints, err = strconv.Atoi(raw)
		if err != nil || maxPoints < 0 {
			return utils.BadRequestResponse(c, "max_points must be a non-negative integer")
		}
	}

	track, err := h.tripUC.GetVehicleTrack(c.Request().Context(), vehicleKey, from, to, maxPoints)
	if err != nil {
		logger.Error("Failed to get vehicle track",
			logger.String("vehicle_key", vehicleKey),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get vehicle track")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle track", track)
}

// GetTripSummary returns aggregate trip statistics without the point
// sequence
func (h *TripHandler) GetTripSummary(c echo.Context) error {
	vehicleKey := c.Param("id")
	if vehicleKey == "" {
		return utils.BadRequestResponse(c, "vehicle id is required")
	}

	from, to, err := parseTimeRange(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	summary, err := h.tripUC.GetTripSummary(c.Request().Context(), vehicleKey, from, to)
	if err != nil {
		logger.Error("Failed to get trip summary",
			logger.String("vehicle_key", vehicleKey),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get trip summary")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip summary", summary)
}

func parseTimeRange(c echo.Context) (time.Time, time.Time, error) {
	from, err := models.ParseTime(c.QueryParam("from"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("from must be an RFC3339 timestamp")
	}
	to, err := models.ParseTime(c.QueryParam("to"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("to must be an RFC3339 timestamp")
	}
	return from, to, nil
}
