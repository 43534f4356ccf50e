package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/armada/internal/pkg/models"
	"github.com/piresc/armada/services/trips/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func TestGetTrack_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepo(db)

	from := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)
	t1 := from.Add(10 * time.Minute)
	t2 := from.Add(20 * time.Minute)

	rows := sqlmock.NewRows([]string{"vehicle_key", "latitude", "longitude", "speed", "recorded_at"}).
		AddRow("vehicle-123", -6.2088, 106.8456, 35.5, t1).
		AddRow("vehicle-123", -6.2100, 106.8460, nil, t2)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT vehicle_key, latitude, longitude, speed, recorded_at")).
		WithArgs("vehicle-123", from, to).
		WillReturnRows(rows)

	samples, err := repo.GetTrack(context.Background(), "vehicle-123", from, to)
	assert.NoError(t, err)
	require.Len(t, samples, 2)

	assert.Equal(t, "vehicle-123", samples[0].VehicleKey)
	assert.InDelta(t, -6.2088, samples[0].Latitude, 1e-9)
	require.NotNil(t, samples[0].Speed)
	assert.Equal(t, 35.5, *samples[0].Speed)
	assert.Equal(t, t1, samples[0].Timestamp)

	// NULL speed column comes back as a missing reading
	assert.Nil(t, samples[1].Speed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrack_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepo(db)

	from := time.Now().Add(-time.Hour)
	to := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT vehicle_key, latitude, longitude, speed, recorded_at")).
		WithArgs("vehicle-123", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"vehicle_key", "latitude", "longitude", "speed", "recorded_at"}))

	samples, err := repo.GetTrack(context.Background(), "vehicle-123", from, to)
	assert.NoError(t, err)
	assert.Empty(t, samples)
}

func TestGetTrack_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT vehicle_key, latitude, longitude, speed, recorded_at")).
		WillReturnError(assert.AnError)

	samples, err := repo.GetTrack(context.Background(), "vehicle-123", time.Now().Add(-time.Hour), time.Now())
	assert.Error(t, err)
	assert.Nil(t, samples)
	assert.Contains(t, err.Error(), "failed to query track")
}

func TestInsertPosition_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepo(db)

	speed := 42.0
	sample := models.PositionSample{
		VehicleKey: "vehicle-123",
		Latitude:   -6.2088,
		Longitude:  106.8456,
		Speed:      &speed,
		Timestamp:  time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vehicle_positions")).
		WithArgs(sample.VehicleKey, sample.Latitude, sample.Longitude, sqlmock.AnyArg(), sample.Timestamp).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.InsertPosition(context.Background(), sample)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertPosition_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepo(db)

	sample := models.PositionSample{
		VehicleKey: "vehicle-123",
		Latitude:   -6.2088,
		Longitude:  106.8456,
		Timestamp:  time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vehicle_positions")).
		WillReturnError(assert.AnError)

	err := repo.InsertPosition(context.Background(), sample)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert position")
}
