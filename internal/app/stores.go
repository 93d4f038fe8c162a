package app

import (
	"context"

	"github.com/teleka/teleka-taxi/internal/domain/models"
)

type requestStore interface {
	List(ctx context.Context) ([]models.RideRequest, error)
	Get(ctx context.Context, id string) (*models.RideRequest, error)
	Insert(ctx context.Context, req *models.RideRequest) error
	Update(ctx context.Context, id string, fn func(*models.RideRequest) error) (*models.RideRequest, error)
	ReplaceAll(ctx context.Context, requests []models.RideRequest) error
}

type driverStore interface {
	List(ctx context.Context) ([]models.Driver, error)
	Get(ctx context.Context, id string) (*models.Driver, error)
	Insert(ctx context.Context, driver *models.Driver) error
	Update(ctx context.Context, id string, fn func(*models.Driver) error) (*models.Driver, error)
	UpdateByName(ctx context.Context, name string, fn func(*models.Driver) error) error
	ReplaceAll(ctx context.Context, drivers []models.Driver) error
}

type tripStore interface {
	ListActive(ctx context.Context) ([]models.Trip, error)
	Insert(ctx context.Context, trip *models.Trip) error
	Update(ctx context.Context, id string, fn func(*models.Trip) error) (*models.Trip, error)
	Remove(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, trips []models.Trip) error
}

type statsStore interface {
	Save(ctx context.Context, stats *models.DriverStats) error
	Get(ctx context.Context) (*models.DriverStats, error)
}
