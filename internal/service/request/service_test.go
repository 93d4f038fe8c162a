package request

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
	requests []string
	err      error
}

func (n *notifierStub) NewRequest(ctx context.Context, req *models.RideRequest) error {
	if n.err != nil {
		return n.err
	}
	n.requests = append(n.requests, req.ID)
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
	f.svc = NewService(f.requests, f.trips, f.drivers, f.notifier, log)
	return f
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.svc.Create(ctx, &models.RideRequest{
		Pickup:        "Garden City Mall",
		Dropoff:       "Entebbe Airport",
		PassengerName: "Alice",
		ServiceType:   types.ServiceStandard,
		Passengers:    2,
	})
	require.NoError(t, err)

	assert.Regexp(t, `^REQ\d+$`, created.ID)
	assert.Equal(t, types.RequestPending, created.Status)
	assert.Nil(t, created.AssignedDriver)
	assert.False(t, created.Timestamp.IsZero())
	assert.Equal(t, []string{created.ID}, f.notifier.requests)

	stored, err := f.requests.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", stored.PassengerName)
}

func TestList_StatusFilter(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.requests.Insert(ctx, &models.RideRequest{ID: "REQ1", Status: types.RequestPending}))
	require.NoError(t, f.requests.Insert(ctx, &models.RideRequest{ID: "REQ2", Status: types.RequestCompleted}))

	all, err := f.svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := f.svc.List(ctx, types.RequestPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "REQ1", pending[0].ID)

	// Unknown filter values match nothing but still return a non-nil slice.
	unknown, err := f.svc.List(ctx, "stuck")
	require.NoError(t, err)
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
}

func TestUpdate_PatchLeavesStatusAlone(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.requests.Insert(ctx, &models.RideRequest{
		ID:      "REQ1",
		Pickup:  "A",
		Dropoff: "B",
		Status:  types.RequestAssigned,
	}))

	pickup := "Kira Road"
	updated, err := f.svc.Update(ctx, "REQ1", models.RideRequestPatch{Pickup: &pickup})
	require.NoError(t, err)

	assert.Equal(t, "Kira Road", updated.Pickup)
	assert.Equal(t, "B", updated.Dropoff)
	assert.Equal(t, types.RequestAssigned, updated.Status)
}

func TestStart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	driver := "John Smith"
	require.NoError(t, f.requests.Insert(ctx, &models.RideRequest{
		ID:             "REQ1",
		Status:         types.RequestAssigned,
		AssignedDriver: &driver,
	}))
	require.NoError(t, f.trips.Insert(ctx, &models.Trip{ID: "REQ1", Status: types.RequestAssigned}))

	updated, err := f.svc.Start(ctx, "REQ1")
	require.NoError(t, err)
	assert.Equal(t, types.RequestInProgress, updated.Status)

	trips, err := f.trips.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, types.RequestInProgress, trips[0].Status)
}

func TestStart_RequiresAssigned(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.requests.Insert(ctx, &models.RideRequest{ID: "REQ1", Status: types.RequestPending}))

	_, err := f.svc.Start(ctx, "REQ1")
	assert.ErrorIs(t, err, types.ErrRequestNotAssigned)
}

func TestComplete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	driver := "John Smith"
	require.NoError(t, f.requests.Insert(ctx, &models.RideRequest{
		ID:             "REQ1",
		Status:         types.RequestInProgress,
		AssignedDriver: &driver,
	}))
	require.NoError(t, f.trips.Insert(ctx, &models.Trip{ID: "REQ1", Driver: driver}))
	require.NoError(t, f.drivers.Insert(ctx, &models.Driver{ID: "D001", Name: driver, Status: types.DriverActive, Trips: 5}))

	updated, err := f.svc.Complete(ctx, "REQ1")
	require.NoError(t, err)
	assert.Equal(t, types.RequestCompleted, updated.Status)

	trips, err := f.trips.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, trips)

	d, err := f.drivers.Get(ctx, "D001")
	require.NoError(t, err)
	assert.Equal(t, 6, d.Trips)
}

func TestComplete_PendingReportsUnknownTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.requests.Insert(ctx, &models.RideRequest{ID: "REQ1", Status: types.RequestPending}))

	_, err := f.svc.Complete(ctx, "REQ1")
	assert.ErrorIs(t, err, types.ErrTripNotFound)
}

func TestComplete_UnknownRequestReportsUnknownTrip(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Complete(context.Background(), "REQ404")
	assert.ErrorIs(t, err, types.ErrTripNotFound)
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	driver := "John Smith"
	require.NoError(t, f.requests.Insert(ctx, &models.RideRequest{
		ID:             "REQ1",
		Status:         types.RequestAssigned,
		AssignedDriver: &driver,
	}))
	require.NoError(t, f.trips.Insert(ctx, &models.Trip{ID: "REQ1", Driver: driver}))

	updated, err := f.svc.Cancel(ctx, "REQ1")
	require.NoError(t, err)
	assert.Equal(t, types.RequestCancelled, updated.Status)

	trips, err := f.trips.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestCancel_TerminalStates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.requests.Insert(ctx, &models.RideRequest{ID: "REQ1", Status: types.RequestCompleted}))

	_, err := f.svc.Cancel(ctx, "REQ1")
	assert.ErrorIs(t, err, types.ErrInvalidTransition)
}
