package driverreg

import (
	"context"

	"github.com/teleka/teleka-taxi/internal/domain/models"
)

type DriverRepo interface {
	List(ctx context.Context) ([]models.Driver, error)
	Get(ctx context.Context, id string) (*models.Driver, error)
	Insert(ctx context.Context, driver *models.Driver) error
	Update(ctx context.Context, id string, fn func(*models.Driver) error) (*models.Driver, error)
}
