package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/pkg/trm"
)

// Notification audience tags. The flat-file store keeps two collections,
// here a single table is split by the audience column.
const (
	audienceOps    = "operations"
	audienceDriver = "driver"
)

type NotificationRepo struct {
	db  *pgxpool.Pool
	trm trm.TxManager
}

func NewNotificationRepo(db *pgxpool.Pool, trm trm.TxManager) *NotificationRepo {
	return &NotificationRepo{db: db, trm: trm}
}

const notificationColumns = `id, type, message, data, COALESCE(request_id, ''),
       COALESCE(driver_name, ''), created_at, read`

func scanNotification(row pgx.Row, n *models.Notification) error {
	return row.Scan(
		&n.ID, &n.Type, &n.Message, &n.Data, &n.RequestID,
		&n.DriverName, &n.Timestamp, &n.Read,
	)
}

func (r *NotificationRepo) InsertOps(ctx context.Context, n *models.Notification) error {
	return r.insert(ctx, audienceOps, n)
}

func (r *NotificationRepo) InsertDriver(ctx context.Context, n *models.Notification) error {
	return r.insert(ctx, audienceDriver, n)
}

func (r *NotificationRepo) insert(ctx context.Context, audience string, n *models.Notification) error {
	q := TxorDB(ctx, r.db)

	query := `INSERT INTO notifications
	    (id, audience, type, message, data, request_id, driver_name, created_at, read)
	    VALUES ($1,$2,$3,$4,$5,NULLIF($6,''),NULLIF($7,''),$8,$9);`
	_, err := q.Exec(ctx, query,
		n.ID, audience, n.Type, n.Message, n.Data, n.RequestID, n.DriverName, n.Timestamp, n.Read,
	)
	if err != nil {
		return fmt.Errorf("notification repo: insert: %w", err)
	}
	return nil
}

func (r *NotificationRepo) ListOps(ctx context.Context) ([]models.Notification, error) {
	q := TxorDB(ctx, r.db)

	query := `SELECT ` + notificationColumns + ` FROM notifications
	          WHERE audience = $1 ORDER BY seq;`
	return r.list(ctx, q, query, audienceOps)
}

func (r *NotificationRepo) ListDriver(ctx context.Context, driverName string) ([]models.Notification, error) {
	q := TxorDB(ctx, r.db)

	query := `SELECT ` + notificationColumns + ` FROM notifications
	          WHERE audience = '` + audienceDriver + `' AND driver_name = $1 ORDER BY seq;`
	return r.list(ctx, q, query, driverName)
}

func (r *NotificationRepo) list(ctx context.Context, q Querier, query string, args ...any) ([]models.Notification, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("notification repo: list: %w", err)
	}
	defer rows.Close()

	var out []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := scanNotification(rows, &n); err != nil {
			return nil, fmt.Errorf("notification repo: list scan: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkOpsRead flips the read flag. Unknown ids are a no-op, matching the
// flat-file store.
func (r *NotificationRepo) MarkOpsRead(ctx context.Context, id string) error {
	return r.markRead(ctx, audienceOps, id)
}

func (r *NotificationRepo) MarkDriverRead(ctx context.Context, id string) error {
	return r.markRead(ctx, audienceDriver, id)
}

func (r *NotificationRepo) markRead(ctx context.Context, audience, id string) error {
	q := TxorDB(ctx, r.db)

	query := `UPDATE notifications SET read = TRUE WHERE id = $1 AND audience = $2;`
	if _, err := q.Exec(ctx, query, id, audience); err != nil {
		return fmt.Errorf("notification repo: markRead: %w", err)
	}
	return nil
}
