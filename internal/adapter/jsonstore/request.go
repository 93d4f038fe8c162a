package jsonstore

import (
	"context"

	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
)

type RequestRepo struct {
	store *Store
}

func NewRequestRepo(store *Store) *RequestRepo {
	return &RequestRepo{store: store}
}

// List returns all ride requests in insertion order.
func (r *RequestRepo) List(ctx context.Context) ([]models.RideRequest, error) {
	return load[models.RideRequest](r.store, CollectionRequests), nil
}

func (r *RequestRepo) Get(ctx context.Context, id string) (*models.RideRequest, error) {
	for _, req := range load[models.RideRequest](r.store, CollectionRequests) {
		if req.ID == id {
			return &req, nil
		}
	}
	return nil, types.ErrRequestNotFound
}

func (r *RequestRepo) Insert(ctx context.Context, req *models.RideRequest) error {
	return update(r.store, CollectionRequests, func(items []models.RideRequest) ([]models.RideRequest, error) {
		return append(items, *req), nil
	})
}

// Update applies fn to the matching request under the collection lock and
// persists the result. fn errors abort the write untouched.
func (r *RequestRepo) Update(ctx context.Context, id string, fn func(*models.RideRequest) error) (*models.RideRequest, error) {
	var updated *models.RideRequest

	err := update(r.store, CollectionRequests, func(items []models.RideRequest) ([]models.RideRequest, error) {
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
		return nil, types.ErrRequestNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *RequestRepo) ReplaceAll(ctx context.Context, requests []models.RideRequest) error {
	l := r.store.lockFor(CollectionRequests)
	l.Lock()
	defer l.Unlock()
	return save(r.store, CollectionRequests, requests)
}
