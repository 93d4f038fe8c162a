package notify

import (
	"context"

	"github.com/teleka/teleka-taxi/internal/domain/models"
)

type NotificationRepo interface {
	InsertOps(ctx context.Context, n *models.Notification) error
	InsertDriver(ctx context.Context, n *models.Notification) error
	ListOps(ctx context.Context) ([]models.Notification, error)
	ListDriver(ctx context.Context, driverName string) ([]models.Notification, error)
	MarkOpsRead(ctx context.Context, id string) error
	MarkDriverRead(ctx context.Context, id string) error
}

// EventPublisher mirrors the broker producer. May be absent when the
// broker is disabled.
type EventPublisher interface {
	PublishLifecycleEvent(ctx context.Context, event models.LifecycleEvent) error
}

// DriverPusher delivers a payload to a connected driver.
type DriverPusher interface {
	SendTo(driverName string, msg any) error
}
