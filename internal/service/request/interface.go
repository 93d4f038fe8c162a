package request

import (
	"context"

	"github.com/teleka/teleka-taxi/internal/domain/models"
)

type RequestRepo interface {
	List(ctx context.Context) ([]models.RideRequest, error)
	Get(ctx context.Context, id string) (*models.RideRequest, error)
	Insert(ctx context.Context, req *models.RideRequest) error
	Update(ctx context.Context, id string, fn func(*models.RideRequest) error) (*models.RideRequest, error)
}

type TripRepo interface {
	Update(ctx context.Context, id string, fn func(*models.Trip) error) (*models.Trip, error)
	Remove(ctx context.Context, id string) error
}

type DriverRepo interface {
	UpdateByName(ctx context.Context, name string, fn func(*models.Driver) error) error
}

type Notifier interface {
	NewRequest(ctx context.Context, req *models.RideRequest) error
}
