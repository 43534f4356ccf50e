package handler

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/armada/internal/pkg/models"
	natspkg "github.com/piresc/armada/internal/pkg/nats"
	"github.com/piresc/armada/services/geofence/mocks"
	"github.com/stretchr/testify/assert"
)

func TestNATSHandler_Constructor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGeofenceUC(ctrl)
	natsClient := &natspkg.Client{}

	h := NewNATSHandler(mockUC, natsClient)

	assert.NotNil(t, h)
	assert.Equal(t, mockUC, h.geofenceUC)
	assert.Equal(t, natsClient, h.natsClient)
	assert.Empty(t, h.consumers)
}

func TestNATSHandler_handlePositionUpdate(t *testing.T) {
	tests := []struct {
		name        string
		eventData   []byte
		setupMock   func(*mocks.MockGeofenceUC)
		expectError bool
	}{
		{
			name: "valid position update reaches the detector",
			eventData: func() []byte {
				update := models.PositionUpdate{
					Sample: models.PositionSample{
						VehicleKey: "vehicle-1",
						Latitude:   -6.2088,
						Longitude:  106.8456,
						Timestamp:  time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
					},
					Source: "gps-tracker",
				}
				data, _ := json.Marshal(update)
				return data
			}(),
			setupMock: func(mockUC *mocks.MockGeofenceUC) {
				mockUC.EXPECT().
					ProcessPositionUpdate(gomock.Any(), gomock.Any()).
					Return(nil).
					Times(1)
			},
			expectError: false,
		},
		{
			name:      "malformed payload is dropped without error",
			eventData: []byte("{not json"),
			setupMock: func(mockUC *mocks.MockGeofenceUC) {
				// No expectations - malformed telemetry never reaches the detector
			},
			expectError: false,
		},
		{
			name: "detector failure propagates",
			eventData: func() []byte {
				update := models.PositionUpdate{
					Sample: models.PositionSample{
						VehicleKey: "vehicle-1",
						Latitude:   -6.2088,
						Longitude:  106.8456,
						Timestamp:  time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
					},
				}
				data, _ := json.Marshal(update)
				return data
			}(),
			setupMock: func(mockUC *mocks.MockGeofenceUC) {
				mockUC.EXPECT().
					ProcessPositionUpdate(gomock.Any(), gomock.Any()).
					Return(errors.New("assignment fetch failed")).
					Times(1)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockGeofenceUC(ctrl)
			tt.setupMock(mockUC)

			h := NewNATSHandler(mockUC, &natspkg.Client{})
			err := h.handlePositionUpdate(tt.eventData)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
