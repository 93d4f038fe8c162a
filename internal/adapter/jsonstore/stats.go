package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
)

// StatsRepo stores the single driver stats document. Unlike the other
// collections this one is an object, not an array.
type StatsRepo struct {
	store *Store
}

func NewStatsRepo(store *Store) *StatsRepo {
	return &StatsRepo{store: store}
}

func (r *StatsRepo) Save(ctx context.Context, stats *models.DriverStats) error {
	l := r.store.lockFor(CollectionDriverStats)
	l.Lock()
	defer l.Unlock()

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: marshal %s: %w", CollectionDriverStats, err)
	}
	return r.store.writeDoc(CollectionDriverStats, data)
}

func (r *StatsRepo) Get(ctx context.Context) (*models.DriverStats, error) {
	data, ok := r.store.readDoc(CollectionDriverStats)
	if !ok {
		return nil, types.ErrNotFound
	}

	var stats models.DriverStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, types.ErrNotFound
	}
	return &stats, nil
}
