package jsonstore

import (
	"context"

	"github.com/teleka/teleka-taxi/internal/domain/models"
)

type NotificationRepo struct {
	store *Store
}

func NewNotificationRepo(store *Store) *NotificationRepo {
	return &NotificationRepo{store: store}
}

func (r *NotificationRepo) InsertOps(ctx context.Context, n *models.Notification) error {
	return update(r.store, CollectionNotifications, func(items []models.Notification) ([]models.Notification, error) {
		return append(items, *n), nil
	})
}

func (r *NotificationRepo) InsertDriver(ctx context.Context, n *models.Notification) error {
	return update(r.store, CollectionDriverNotifications, func(items []models.Notification) ([]models.Notification, error) {
		return append(items, *n), nil
	})
}

func (r *NotificationRepo) ListOps(ctx context.Context) ([]models.Notification, error) {
	return load[models.Notification](r.store, CollectionNotifications), nil
}

// ListDriver returns the driver-scoped feed filtered by name tag.
func (r *NotificationRepo) ListDriver(ctx context.Context, driverName string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range load[models.Notification](r.store, CollectionDriverNotifications) {
		if n.DriverName == driverName {
			out = append(out, n)
		}
	}
	return out, nil
}

// MarkOpsRead flips the read flag on an operations notification.
// Unknown ids are a no-op, the operation is idempotent.
func (r *NotificationRepo) MarkOpsRead(ctx context.Context, id string) error {
	return r.markRead(CollectionNotifications, id)
}

// MarkDriverRead flips the read flag on a driver notification.
func (r *NotificationRepo) MarkDriverRead(ctx context.Context, id string) error {
	return r.markRead(CollectionDriverNotifications, id)
}

func (r *NotificationRepo) markRead(collection, id string) error {
	return update(r.store, collection, func(items []models.Notification) ([]models.Notification, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Read = true
				break
			}
		}
		return items, nil
	})
}
