package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/armada/internal/pkg/models"
)

// trackRow maps one vehicle_positions row.
type trackRow struct {
	VehicleKey string          `db:"vehicle_key"`
	Latitude   float64         `db:"latitude"`
	Longitude  float64         `db:"longitude"`
	Speed      sql.NullFloat64 `db:"speed"`
	RecordedAt time.Time       `db:"recorded_at"`
}

// TripRepo implements the trips.TripRepo interface backed by Postgres.
type TripRepo struct {
	db *sqlx.DB
}

// NewTripRepo creates a new trip repository
func NewTripRepo(db *sqlx.DB) *TripRepo {
	return &TripRepo{db: db}
}

// GetTrack returns the vehicle's samples within [from, to] ordered by
// recorded timestamp ascending.
func (r *TripRepo) GetTrack(ctx context.Context, vehicleKey string, from, to time.Time) ([]models.PositionSample, error) {
	query := `
		SELECT vehicle_key, latitude, longitude, speed, recorded_at
		FROM vehicle_positions
		WHERE vehicle_key = $1 AND recorded_at BETWEEN $2 AND $3
		ORDER BY recorded_at ASC`

	var rows []trackRow
	if err := r.db.SelectContext(ctx, &rows, query, vehicleKey, from, to); err != nil {
		return nil, fmt.Errorf("failed to query track for vehicle %s: %w", vehicleKey, err)
	}

	samples := make([]models.PositionSample, 0, len(rows))
	for _, row := range rows {
		sample := models.PositionSample{
			VehicleKey: row.VehicleKey,
			Latitude:   row.Latitude,
			Longitude:  row.Longitude,
			Timestamp:  row.RecordedAt,
		}
		if row.Speed.Valid {
			speed := row.Speed.Float64
			sample.Speed = &speed
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

// InsertPosition appends one sample to the track history.
func (r *TripRepo) InsertPosition(ctx context.Context, sample models.PositionSample) error {
	query := `
		INSERT INTO vehicle_positions (vehicle_key, latitude, longitude, speed, recorded_at)
		VALUES ($1, $2, $3, $4, $5)`

	var speed sql.NullFloat64
	if sample.HasSpeed() {
		speed = sql.NullFloat64{Float64: sample.SpeedValue(), Valid: true}
	}

	if _, err := r.db.ExecContext(ctx, query, sample.VehicleKey, sample.Latitude, sample.Longitude, speed, sample.Timestamp); err != nil {
		return fmt.Errorf("failed to insert position for vehicle %s: %w", sample.VehicleKey, err)
	}
	return nil
}
