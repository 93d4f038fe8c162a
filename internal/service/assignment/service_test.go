package assignment

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

type notifierStub struct {
	assignments []string
}

func (n *notifierStub) NewAssignment(ctx context.Context, driverName, requestID string) error {
	n.assignments = append(n.assignments, driverName+"/"+requestID)
	return nil
}

type fixture struct {
	svc      *Service
	requests *jsonstore.RequestRepo
	trips    *jsonstore.TripRepo
	drivers  *jsonstore.DriverRepo
	notifier *notifierStub
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := logger.InitLogger("test", logger.LevelError)
	store, err := jsonstore.New(t.TempDir(), log)
	require.NoError(t, err)

	f := &fixture{
		requests: jsonstore.NewRequestRepo(store),
		trips:    jsonstore.NewTripRepo(store),
		drivers:  jsonstore.NewDriverRepo(store),
		notifier: &notifierStub{},
	}
	f.svc = NewService(f.requests, f.drivers, f.trips, f.notifier, 25.50, log)
	return f
}

func TestAssign(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.drivers.Insert(ctx, &models.Driver{ID: "D001", Name: "John Smith", Status: types.DriverActive}))
	require.NoError(t, f.requests.Insert(ctx, &models.RideRequest{
		ID:            "REQ1",
		Pickup:        "Garden City Mall",
		Dropoff:       "Entebbe Airport",
		PassengerName: "Alice",
		Status:        types.RequestPending,
	}))

	updated, err := f.svc.Assign(ctx, "REQ1", "D001")
	require.NoError(t, err)

	assert.Equal(t, types.RequestAssigned, updated.Status)
	require.NotNil(t, updated.AssignedDriver)
	assert.Equal(t, "John Smith", *updated.AssignedDriver)

	trips, err := f.trips.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "REQ1", trips[0].ID)
	assert.Equal(t, "John Smith", trips[0].Driver)
	assert.Equal(t, "Alice", trips[0].Customer)
	assert.Equal(t, "Garden City Mall → Entebbe Airport", trips[0].Route)
	assert.Equal(t, "$25.50", trips[0].Amount)
	assert.Equal(t, types.RequestAssigned, trips[0].Status)

	assert.Equal(t, []string{"John Smith/REQ1"}, f.notifier.assignments)
}

func TestAssign_UsesRequestFare(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	fare := 45.0
	require.NoError(t, f.drivers.Insert(ctx, &models.Driver{ID: "D001", Name: "John Smith", Status: types.DriverApproved}))
	require.NoError(t, f.requests.Insert(ctx, &models.RideRequest{ID: "REQ1", Status: types.RequestPending, Fare: &fare}))

	_, err := f.svc.Assign(ctx, "REQ1", "D001")
	require.NoError(t, err)

	trips, err := f.trips.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "$45.00", trips[0].Amount)
}

func TestAssign_RequestNotPending(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.drivers.Insert(ctx, &models.Driver{ID: "D001", Name: "John Smith", Status: types.DriverActive}))
	require.NoError(t, f.requests.Insert(ctx, &models.RideRequest{ID: "REQ1", Status: types.RequestCompleted}))

	_, err := f.svc.Assign(ctx, "REQ1", "D001")
	assert.ErrorIs(t, err, types.ErrRequestNotPending)
	assert.Empty(t, f.notifier.assignments)
}

func TestAssign_DriverNotApproved(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.drivers.Insert(ctx, &models.Driver{ID: "D001", Name: "John Smith", Status: types.DriverPending}))
	require.NoError(t, f.requests.Insert(ctx, &models.RideRequest{ID: "REQ1", Status: types.RequestPending}))

	_, err := f.svc.Assign(ctx, "REQ1", "D001")
	assert.ErrorIs(t, err, types.ErrDriverNotApproved)

	// The request must stay untouched.
	req, err := f.requests.Get(ctx, "REQ1")
	require.NoError(t, err)
	assert.Equal(t, types.RequestPending, req.Status)
}

func TestAssign_UnknownDriver(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.requests.Insert(ctx, &models.RideRequest{ID: "REQ1", Status: types.RequestPending}))

	_, err := f.svc.Assign(ctx, "REQ1", "D404")
	assert.ErrorIs(t, err, types.ErrDriverNotFound)
}

func TestDecline(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.drivers.Insert(ctx, &models.Driver{ID: "D001", Name: "John Smith", Status: types.DriverActive}))
	require.NoError(t, f.requests.Insert(ctx, &models.RideRequest{ID: "REQ1", Status: types.RequestPending}))

	_, err := f.svc.Assign(ctx, "REQ1", "D001")
	require.NoError(t, err)

	updated, err := f.svc.Decline(ctx, "REQ1")
	require.NoError(t, err)

	assert.Equal(t, types.RequestPending, updated.Status)
	assert.Nil(t, updated.AssignedDriver)

	trips, err := f.trips.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestDecline_RequiresAssigned(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.requests.Insert(ctx, &models.RideRequest{ID: "REQ1", Status: types.RequestPending}))

	_, err := f.svc.Decline(ctx, "REQ1")
	assert.ErrorIs(t, err, types.ErrRequestNotAssigned)
}
