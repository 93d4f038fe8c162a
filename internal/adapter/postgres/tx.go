// Package repo implements the record repositories over PostgreSQL. It is a
// drop-in replacement for the flat-file store, selected with
// store.driver: postgres. Expected schema:
//
//	ride_requests(id text primary key, pickup text, dropoff text,
//	    passenger_name text, passenger_phone text, passenger_email text,
//	    service_type text, passengers int, status text,
//	    assigned_driver text, fare numeric, created_at timestamptz,
//	    seq bigserial)
//	drivers(id text primary key, name text, email text, phone text,
//	    license text, status text, trips int, rating numeric, seq bigserial)
//	active_trips(id text primary key, driver text, customer text,
//	    route text, status text, amount text, trip_time text, seq bigserial)
//	notifications(id text primary key, audience text, type text,
//	    message text, data jsonb, request_id text, driver_name text,
//	    created_at timestamptz, read boolean, seq bigserial)
//	driver_stats(id int primary key default 1, doc jsonb)
package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teleka/teleka-taxi/pkg/trm"
)

type Querier interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
}

// TxorDB returns the transaction carried in the context, or the pool.
func TxorDB(ctx context.Context, db *pgxpool.Pool) Querier {
	tx, ok := ctx.Value(trm.TxKey).(pgx.Tx)
	if !ok {
		return db
	}
	return tx
}
