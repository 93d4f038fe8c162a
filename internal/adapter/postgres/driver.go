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

type DriverRepo struct {
	db  *pgxpool.Pool
	trm trm.TxManager
}

func NewDriverRepo(db *pgxpool.Pool, trm trm.TxManager) *DriverRepo {
	return &DriverRepo{db: db, trm: trm}
}

const driverColumns = `id, name, email, phone, license, status, trips, rating`

func scanDriver(row pgx.Row, d *models.Driver) error {
	return row.Scan(&d.ID, &d.Name, &d.Email, &d.Phone, &d.License, &d.Status, &d.Trips, &d.Rating)
}

func (r *DriverRepo) List(ctx context.Context) ([]models.Driver, error) {
	q := TxorDB(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+driverColumns+` FROM drivers ORDER BY seq;`)
	if err != nil {
		return nil, fmt.Errorf("driver repo: List: %w", err)
	}
	defer rows.Close()

	var drivers []models.Driver
	for rows.Next() {
		var d models.Driver
		if err := scanDriver(rows, &d); err != nil {
			return nil, fmt.Errorf("driver repo: List scan: %w", err)
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}

func (r *DriverRepo) Get(ctx context.Context, id string) (*models.Driver, error) {
	q := TxorDB(ctx, r.db)

	var d models.Driver
	if err := scanDriver(q.QueryRow(ctx, `SELECT `+driverColumns+` FROM drivers WHERE id = $1;`, id), &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrDriverNotFound
		}
		return nil, fmt.Errorf("driver repo: Get: %w", err)
	}
	return &d, nil
}

func (r *DriverRepo) Insert(ctx context.Context, driver *models.Driver) error {
	q := TxorDB(ctx, r.db)

	query := `INSERT INTO drivers (id, name, email, phone, license, status, trips, rating)
	          VALUES ($1,$2,$3,$4,$5,$6,$7,$8);`
	_, err := q.Exec(ctx, query,
		driver.ID, driver.Name, driver.Email, driver.Phone, driver.License,
		driver.Status, driver.Trips, driver.Rating,
	)
	if err != nil {
		return fmt.Errorf("driver repo: Insert: %w", err)
	}
	return nil
}

func (r *DriverRepo) Update(ctx context.Context, id string, fn func(*models.Driver) error) (*models.Driver, error) {
	return r.updateWhere(ctx, `id = $1`, id, fn)
}

func (r *DriverRepo) UpdateByName(ctx context.Context, name string, fn func(*models.Driver) error) error {
	_, err := r.updateWhere(ctx, `name = $1`, name, fn)
	return err
}

func (r *DriverRepo) updateWhere(ctx context.Context, where, arg string, fn func(*models.Driver) error) (*models.Driver, error) {
	var updated *models.Driver

	err := r.trm.Do(ctx, func(ctx context.Context) error {
		q := TxorDB(ctx, r.db)

		var d models.Driver
		query := `SELECT ` + driverColumns + ` FROM drivers WHERE ` + where + ` FOR UPDATE;`
		if err := scanDriver(q.QueryRow(ctx, query, arg), &d); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return types.ErrDriverNotFound
			}
			return fmt.Errorf("driver repo: update select: %w", err)
		}

		if err := fn(&d); err != nil {
			return err
		}

		save := `UPDATE drivers SET name=$2, email=$3, phone=$4, license=$5,
		         status=$6, trips=$7, rating=$8 WHERE id=$1;`
		if _, err := q.Exec(ctx, save,
			d.ID, d.Name, d.Email, d.Phone, d.License, d.Status, d.Trips, d.Rating,
		); err != nil {
			return fmt.Errorf("driver repo: update save: %w", err)
		}

		updated = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *DriverRepo) ReplaceAll(ctx context.Context, drivers []models.Driver) error {
	return r.trm.Do(ctx, func(ctx context.Context) error {
		q := TxorDB(ctx, r.db)

		if _, err := q.Exec(ctx, `DELETE FROM drivers;`); err != nil {
			return fmt.Errorf("driver repo: ReplaceAll clear: %w", err)
		}
		for i := range drivers {
			if err := r.Insert(ctx, &drivers[i]); err != nil {
				return err
			}
		}
		return nil
	})
}
