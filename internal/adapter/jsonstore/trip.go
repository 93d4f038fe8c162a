package jsonstore

import (
	"context"

	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/pkg/metrics"
)

type TripRepo struct {
	store *Store
}

func NewTripRepo(store *Store) *TripRepo {
	return &TripRepo{store: store}
}

func (r *TripRepo) ListActive(ctx context.Context) ([]models.Trip, error) {
	return load[models.Trip](r.store, CollectionActiveTrips), nil
}

func (r *TripRepo) Insert(ctx context.Context, trip *models.Trip) error {
	err := update(r.store, CollectionActiveTrips, func(items []models.Trip) ([]models.Trip, error) {
		return append(items, *trip), nil
	})
	if err == nil {
		metrics.ActiveTripsGauge.Inc()
	}
	return err
}

func (r *TripRepo) Update(ctx context.Context, id string, fn func(*models.Trip) error) (*models.Trip, error) {
	var updated *models.Trip
	err := update(r.store, CollectionActiveTrips, func(items []models.Trip) ([]models.Trip, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if err := fn(&items[i]); err != nil {
				return nil, err
			}
			t := items[i]
			updated = &t
			return items, nil
		}
		return nil, types.ErrTripNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Remove deletes the trip with the given id from the active collection.
func (r *TripRepo) Remove(ctx context.Context, id string) error {
	found := false
	err := update(r.store, CollectionActiveTrips, func(items []models.Trip) ([]models.Trip, error) {
		kept := items[:0]
		for _, t := range items {
			if t.ID == id {
				found = true
				continue
			}
			kept = append(kept, t)
		}
		if !found {
			return nil, types.ErrTripNotFound
		}
		return kept, nil
	})
	if err == nil && found {
		metrics.ActiveTripsGauge.Dec()
	}
	return err
}

func (r *TripRepo) ReplaceAll(ctx context.Context, trips []models.Trip) error {
	l := r.store.lockFor(CollectionActiveTrips)
	l.Lock()
	defer l.Unlock()

	if err := save(r.store, CollectionActiveTrips, trips); err != nil {
		return err
	}
	metrics.ActiveTripsGauge.Set(float64(len(trips)))
	return nil
}
