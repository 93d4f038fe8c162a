package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/pkg/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(t.TempDir(), logger.InitLogger("test", logger.LevelError))
	require.NoError(t, err)
	return store
}

func TestRequestRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRequestRepo(newTestStore(t))

	req := &models.RideRequest{
		ID:            "REQ100",
		Pickup:        "A",
		Dropoff:       "B",
		PassengerName: "Alice",
		Status:        types.RequestPending,
	}
	require.NoError(t, repo.Insert(ctx, req))

	got, err := repo.Get(ctx, "REQ100")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.PassengerName)
	assert.Equal(t, types.RequestPending, got.Status)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRequestRepo_GetUnknown(t *testing.T) {
	repo := NewRequestRepo(newTestStore(t))

	_, err := repo.Get(context.Background(), "REQ404")
	assert.ErrorIs(t, err, types.ErrRequestNotFound)
}

func TestRequestRepo_ListEmptyDir(t *testing.T) {
	repo := NewRequestRepo(newTestStore(t))

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRequestRepo_CorruptDocumentTreatedAsEmpty(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(store.dir, "rideRequests.json"), []byte("{not json"), 0o644))

	repo := NewRequestRepo(store)
	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRequestRepo_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewRequestRepo(newTestStore(t))

	require.NoError(t, repo.Insert(ctx, &models.RideRequest{ID: "REQ1", Status: types.RequestPending}))

	updated, err := repo.Update(ctx, "REQ1", func(r *models.RideRequest) error {
		r.Status = types.RequestAssigned
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, types.RequestAssigned, updated.Status)

	got, err := repo.Get(ctx, "REQ1")
	require.NoError(t, err)
	assert.Equal(t, types.RequestAssigned, got.Status)
}

func TestRequestRepo_UpdateCallbackErrorLeavesDocument(t *testing.T) {
	ctx := context.Background()
	repo := NewRequestRepo(newTestStore(t))

	require.NoError(t, repo.Insert(ctx, &models.RideRequest{ID: "REQ1", Status: types.RequestPending}))

	_, err := repo.Update(ctx, "REQ1", func(r *models.RideRequest) error {
		r.Status = types.RequestCancelled
		return types.ErrInvalidTransition
	})
	assert.ErrorIs(t, err, types.ErrInvalidTransition)

	got, err := repo.Get(ctx, "REQ1")
	require.NoError(t, err)
	assert.Equal(t, types.RequestPending, got.Status)
}

func TestTripRepo_RemoveUnknown(t *testing.T) {
	repo := NewTripRepo(newTestStore(t))

	err := repo.Remove(context.Background(), "REQ404")
	assert.ErrorIs(t, err, types.ErrTripNotFound)
}

func TestTripRepo_InsertAndRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewTripRepo(newTestStore(t))

	require.NoError(t, repo.Insert(ctx, &models.Trip{ID: "REQ1", Driver: "John Smith"}))

	trips, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)

	require.NoError(t, repo.Remove(ctx, "REQ1"))

	trips, err = repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestNotificationRepo_DriverFeedFilteredByName(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepo(newTestStore(t))

	require.NoError(t, repo.InsertDriver(ctx, &models.Notification{ID: "DNOTIF1", DriverName: "John Smith"}))
	require.NoError(t, repo.InsertDriver(ctx, &models.Notification{ID: "DNOTIF2", DriverName: "Sarah Davis"}))

	feed, err := repo.ListDriver(ctx, "John Smith")
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "DNOTIF1", feed[0].ID)
}

func TestNotificationRepo_MarkReadIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepo(newTestStore(t))

	require.NoError(t, repo.InsertOps(ctx, &models.Notification{ID: "NOTIF1"}))

	require.NoError(t, repo.MarkOpsRead(ctx, "NOTIF1"))
	require.NoError(t, repo.MarkOpsRead(ctx, "NOTIF1"))
	// Unknown ids are not an error.
	require.NoError(t, repo.MarkOpsRead(ctx, "NOTIF404"))

	feed, err := repo.ListOps(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.True(t, feed[0].Read)
}

func TestStatsRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewStatsRepo(newTestStore(t))

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, types.ErrNotFound)

	require.NoError(t, repo.Save(ctx, &models.DriverStats{Email: "john@example.com", Rating: 4.8}))

	stats, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", stats.Email)
}
