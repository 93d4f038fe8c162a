package jsonstore

import (
	"context"

	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
)

type DriverRepo struct {
	store *Store
}

func NewDriverRepo(store *Store) *DriverRepo {
	return &DriverRepo{store: store}
}

func (r *DriverRepo) List(ctx context.Context) ([]models.Driver, error) {
	return load[models.Driver](r.store, CollectionDrivers), nil
}

func (r *DriverRepo) Get(ctx context.Context, id string) (*models.Driver, error) {
	for _, d := range load[models.Driver](r.store, CollectionDrivers) {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, types.ErrDriverNotFound
}

func (r *DriverRepo) Insert(ctx context.Context, driver *models.Driver) error {
	return update(r.store, CollectionDrivers, func(items []models.Driver) ([]models.Driver, error) {
		return append(items, *driver), nil
	})
}

func (r *DriverRepo) Update(ctx context.Context, id string, fn func(*models.Driver) error) (*models.Driver, error) {
	var updated *models.Driver

	err := update(r.store, CollectionDrivers, func(items []models.Driver) ([]models.Driver, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if err := fn(&items[i]); err != nil {
				return nil, err
			}
			updated = &items[i]
			return items, nil
		}
		return nil, types.ErrDriverNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateByName mutates the driver with the given display name. Requests
// reference drivers by name, so the trip counter bump comes through here.
func (r *DriverRepo) UpdateByName(ctx context.Context, name string, fn func(*models.Driver) error) error {
	return update(r.store, CollectionDrivers, func(items []models.Driver) ([]models.Driver, error) {
		for i := range items {
			if items[i].Name != name {
				continue
			}
			if err := fn(&items[i]); err != nil {
				return nil, err
			}
			return items, nil
		}
		return nil, types.ErrDriverNotFound
	})
}

func (r *DriverRepo) ReplaceAll(ctx context.Context, drivers []models.Driver) error {
	l := r.store.lockFor(CollectionDrivers)
	l.Lock()
	defer l.Unlock()
	return save(r.store, CollectionDrivers, drivers)
}
