package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/pkg/trm"
)

type RequestRepo struct {
	db  *pgxpool.Pool
	trm trm.TxManager
}

func NewRequestRepo(db *pgxpool.Pool, trm trm.TxManager) *RequestRepo {
	return &RequestRepo{db: db, trm: trm}
}

const requestColumns = `id, pickup, dropoff, passenger_name, passenger_phone,
       COALESCE(passenger_email, ''), service_type, passengers, status,
       assigned_driver, fare, created_at`

func scanRequest(row pgx.Row, req *models.RideRequest) error {
	return row.Scan(
		&req.ID, &req.Pickup, &req.Dropoff, &req.PassengerName, &req.PassengerPhone,
		&req.PassengerEmail, &req.ServiceType, &req.Passengers, &req.Status,
		&req.AssignedDriver, &req.Fare, &req.Timestamp,
	)
}

func (r *RequestRepo) List(ctx context.Context) ([]models.RideRequest, error) {
	q := TxorDB(ctx, r.db)

	query := `SELECT ` + requestColumns + ` FROM ride_requests ORDER BY seq;`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("request repo: List: %w", err)
	}
	defer rows.Close()

	var requests []models.RideRequest
	for rows.Next() {
		var req models.RideRequest
		if err := scanRequest(rows, &req); err != nil {
			return nil, fmt.Errorf("request repo: List scan: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *RequestRepo) Get(ctx context.Context, id string) (*models.RideRequest, error) {
	q := TxorDB(ctx, r.db)

	var req models.RideRequest
	query := `SELECT ` + requestColumns + ` FROM ride_requests WHERE id = $1;`
	if err := scanRequest(q.QueryRow(ctx, query, id), &req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrRequestNotFound
		}
		return nil, fmt.Errorf("request repo: Get: %w", err)
	}
	return &req, nil
}

func (r *RequestRepo) Insert(ctx context.Context, req *models.RideRequest) error {
	q := TxorDB(ctx, r.db)

	query := `INSERT INTO ride_requests
	    (id, pickup, dropoff, passenger_name, passenger_phone, passenger_email,
	     service_type, passengers, status, assigned_driver, fare, created_at)
	    VALUES ($1,$2,$3,$4,$5,NULLIF($6,''),$7,$8,$9,$10,$11,$12);`

	_, err := q.Exec(ctx, query,
		req.ID, req.Pickup, req.Dropoff, req.PassengerName, req.PassengerPhone,
		req.PassengerEmail, req.ServiceType, req.Passengers, req.Status,
		req.AssignedDriver, req.Fare, req.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("request repo: Insert: %w", err)
	}
	return nil
}

// Update applies fn to the row locked FOR UPDATE inside a transaction,
// giving the same single-writer semantics as the file store.
func (r *RequestRepo) Update(ctx context.Context, id string, fn func(*models.RideRequest) error) (*models.RideRequest, error) {
	var updated *models.RideRequest

	err := r.trm.Do(ctx, func(ctx context.Context) error {
		q := TxorDB(ctx, r.db)

		var req models.RideRequest
		query := `SELECT ` + requestColumns + ` FROM ride_requests WHERE id = $1 FOR UPDATE;`
		if err := scanRequest(q.QueryRow(ctx, query, id), &req); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return types.ErrRequestNotFound
			}
			return fmt.Errorf("request repo: Update select: %w", err)
		}

		if err := fn(&req); err != nil {
			return err
		}

		save := `UPDATE ride_requests SET
		    pickup=$2, dropoff=$3, passenger_name=$4, passenger_phone=$5,
		    passenger_email=NULLIF($6,''), service_type=$7, passengers=$8,
		    status=$9, assigned_driver=$10, fare=$11
		    WHERE id=$1;`
		if _, err := q.Exec(ctx, save,
			req.ID, req.Pickup, req.Dropoff, req.PassengerName, req.PassengerPhone,
			req.PassengerEmail, req.ServiceType, req.Passengers, req.Status,
			req.AssignedDriver, req.Fare,
		); err != nil {
			return fmt.Errorf("request repo: Update save: %w", err)
		}

		updated = &req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *RequestRepo) ReplaceAll(ctx context.Context, requests []models.RideRequest) error {
	return r.trm.Do(ctx, func(ctx context.Context) error {
		q := TxorDB(ctx, r.db)

		if _, err := q.Exec(ctx, `DELETE FROM ride_requests;`); err != nil {
			return fmt.Errorf("request repo: ReplaceAll clear: %w", err)
		}
		for i := range requests {
			if err := r.Insert(ctx, &requests[i]); err != nil {
				return err
			}
		}
		return nil
	})
}
