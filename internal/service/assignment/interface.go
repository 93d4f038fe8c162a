package assignment

import (
	"context"

	"github.com/teleka/teleka-taxi/internal/domain/models"
)

type RequestRepo interface {
	Update(ctx context.Context, id string, fn func(*models.RideRequest) error) (*models.RideRequest, error)
}

type DriverRepo interface {
	Get(ctx context.Context, id string) (*models.Driver, error)
}

type TripRepo interface {
	Insert(ctx context.Context, trip *models.Trip) error
	Remove(ctx context.Context, id string) error
}

type Notifier interface {
	NewAssignment(ctx context.Context, driverName, requestID string) error
}
