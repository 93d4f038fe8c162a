package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teleka/teleka-taxi/internal/adapter/jsonstore"
	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/pkg/logger"
)

func TestInitialize(t *testing.T) {
	ctx := context.Background()
	log := logger.InitLogger("test", logger.LevelError)
	store, err := jsonstore.New(t.TempDir(), log)
	require.NoError(t, err)

	requests := jsonstore.NewRequestRepo(store)
	drivers := jsonstore.NewDriverRepo(store)
	trips := jsonstore.NewTripRepo(store)
	stats := jsonstore.NewStatsRepo(store)
	notifications := jsonstore.NewNotificationRepo(store)

	// Pre-existing state must be replaced, not merged.
	require.NoError(t, requests.Insert(ctx, &models.RideRequest{ID: "REQ999", Status: types.RequestPending}))
	require.NoError(t, notifications.InsertOps(ctx, &models.Notification{ID: "NOTIF1"}))

	svc := NewService(requests, drivers, trips, stats, log)
	require.NoError(t, svc.Initialize(ctx))

	ds, err := drivers.List(ctx)
	require.NoError(t, err)
	require.Len(t, ds, 3)
	assert.Equal(t, "D001", ds[0].ID)
	assert.Equal(t, "John Smith", ds[0].Name)
	assert.Equal(t, types.DriverActive, ds[0].Status)

	rs, err := requests.List(ctx)
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "REQ001", rs[0].ID)
	assert.Equal(t, types.RequestPending, rs[0].Status)
	assert.Equal(t, "REQ002", rs[1].ID)
	assert.Equal(t, types.RequestAssigned, rs[1].Status)
	require.NotNil(t, rs[1].AssignedDriver)
	assert.Equal(t, "John Smith", *rs[1].AssignedDriver)

	ts, err := trips.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, ts, 1)
	assert.Equal(t, "REQ002", ts[0].ID)
	assert.Equal(t, "Nakawa Shopping Mall → Hotel Serena", ts[0].Route)
	assert.Equal(t, "$25.50", ts[0].Amount)

	doc, err := stats.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", doc.Email)
	assert.Equal(t, "Toyota Camry - ABC123", doc.Vehicle)

	// Notification feeds survive a reseed.
	feed, err := notifications.ListOps(ctx)
	require.NoError(t, err)
	assert.Len(t, feed, 1)
}
