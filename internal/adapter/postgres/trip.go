package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/pkg/metrics"
	"github.com/teleka/teleka-taxi/pkg/trm"
)

type TripRepo struct {
	db  *pgxpool.Pool
	trm trm.TxManager
}

func NewTripRepo(db *pgxpool.Pool, trm trm.TxManager) *TripRepo {
	return &TripRepo{db: db, trm: trm}
}

const tripColumns = `id, driver, customer, route, status, amount, trip_time`

func scanTrip(row pgx.Row, t *models.Trip) error {
	return row.Scan(&t.ID, &t.Driver, &t.Customer, &t.Route, &t.Status, &t.Amount, &t.Time)
}

func (r *TripRepo) ListActive(ctx context.Context) ([]models.Trip, error) {
	q := TxorDB(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+tripColumns+` FROM active_trips ORDER BY seq;`)
	if err != nil {
		return nil, fmt.Errorf("trip repo: ListActive: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var t models.Trip
		if err := scanTrip(rows, &t); err != nil {
			return nil, fmt.Errorf("trip repo: ListActive scan: %w", err)
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func (r *TripRepo) Insert(ctx context.Context, trip *models.Trip) error {
	q := TxorDB(ctx, r.db)

	query := `INSERT INTO active_trips (id, driver, customer, route, status, amount, trip_time)
	          VALUES ($1,$2,$3,$4,$5,$6,$7);`
	_, err := q.Exec(ctx, query,
		trip.ID, trip.Driver, trip.Customer, trip.Route, trip.Status, trip.Amount, trip.Time,
	)
	if err != nil {
		return fmt.Errorf("trip repo: Insert: %w", err)
	}

	metrics.ActiveTripsGauge.Inc()
	return nil
}

func (r *TripRepo) Update(ctx context.Context, id string, fn func(*models.Trip) error) (*models.Trip, error) {
	var updated *models.Trip

	err := r.trm.Do(ctx, func(ctx context.Context) error {
		q := TxorDB(ctx, r.db)

		var t models.Trip
		query := `SELECT ` + tripColumns + ` FROM active_trips WHERE id = $1 FOR UPDATE;`
		if err := scanTrip(q.QueryRow(ctx, query, id), &t); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return types.ErrTripNotFound
			}
			return fmt.Errorf("trip repo: Update select: %w", err)
		}

		if err := fn(&t); err != nil {
			return err
		}

		save := `UPDATE active_trips SET driver=$2, customer=$3, route=$4,
		         status=$5, amount=$6, trip_time=$7 WHERE id=$1;`
		if _, err := q.Exec(ctx, save,
			t.ID, t.Driver, t.Customer, t.Route, t.Status, t.Amount, t.Time,
		); err != nil {
			return fmt.Errorf("trip repo: Update save: %w", err)
		}

		updated = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Remove deletes the trip from the active set once it completes or the
// assignment is withdrawn.
func (r *TripRepo) Remove(ctx context.Context, id string) error {
	q := TxorDB(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM active_trips WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("trip repo: Remove: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return types.ErrTripNotFound
	}

	metrics.ActiveTripsGauge.Dec()
	return nil
}

func (r *TripRepo) ReplaceAll(ctx context.Context, trips []models.Trip) error {
	return r.trm.Do(ctx, func(ctx context.Context) error {
		q := TxorDB(ctx, r.db)

		if _, err := q.Exec(ctx, `DELETE FROM active_trips;`); err != nil {
			return fmt.Errorf("trip repo: ReplaceAll clear: %w", err)
		}
		for i := range trips {
			query := `INSERT INTO active_trips (id, driver, customer, route, status, amount, trip_time)
			          VALUES ($1,$2,$3,$4,$5,$6,$7);`
			t := &trips[i]
			if _, err := q.Exec(ctx, query,
				t.ID, t.Driver, t.Customer, t.Route, t.Status, t.Amount, t.Time,
			); err != nil {
				return fmt.Errorf("trip repo: ReplaceAll insert: %w", err)
			}
		}
		metrics.ActiveTripsGauge.Set(float64(len(trips)))
		return nil
	})
}
