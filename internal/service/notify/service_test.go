package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teleka/teleka-taxi/internal/adapter/jsonstore"
	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/pkg/logger"
)

type pusherStub struct {
	sent []string
	err  error
}

func (p *pusherStub) SendTo(driverName string, msg any) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, driverName)
	return nil
}

type publisherStub struct {
	events []models.LifecycleEvent
}

func (p *publisherStub) PublishLifecycleEvent(ctx context.Context, event models.LifecycleEvent) error {
	p.events = append(p.events, event)
	return nil
}

func newTestRepo(t *testing.T) *jsonstore.NotificationRepo {
	t.Helper()

	store, err := jsonstore.New(t.TempDir(), logger.InitLogger("test", logger.LevelError))
	require.NoError(t, err)
	return jsonstore.NewNotificationRepo(store)
}

func TestNewRequest(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	publisher := &publisherStub{}
	svc := NewService(repo, &pusherStub{}, publisher, logger.InitLogger("test", logger.LevelError))

	req := &models.RideRequest{ID: "REQ1", PassengerName: "Alice", Status: types.RequestPending}
	require.NoError(t, svc.NewRequest(ctx, req))

	feed, err := repo.ListOps(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)

	n := feed[0]
	assert.Regexp(t, `^NOTIF\d+$`, n.ID)
	assert.Equal(t, types.NotifNewRequest, n.Type)
	assert.Equal(t, "New ride request from Alice", n.Message)
	require.NotNil(t, n.Data)
	assert.Equal(t, "REQ1", n.Data.ID)
	assert.False(t, n.Read)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, types.NotifNewRequest, publisher.events[0].Type)
	assert.Equal(t, "REQ1", publisher.events[0].RequestID)
}

func TestNewAssignment(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	pusher := &pusherStub{}
	svc := NewService(repo, pusher, nil, logger.InitLogger("test", logger.LevelError))

	require.NoError(t, svc.NewAssignment(ctx, "John Smith", "REQ1"))

	feed, err := repo.ListDriver(ctx, "John Smith")
	require.NoError(t, err)
	require.Len(t, feed, 1)

	n := feed[0]
	assert.Regexp(t, `^DNOTIF\d+$`, n.ID)
	assert.Equal(t, types.NotifNewAssignment, n.Type)
	assert.Equal(t, "New trip assigned: REQ1", n.Message)
	assert.Equal(t, "REQ1", n.RequestID)
	assert.Equal(t, "John Smith", n.DriverName)

	assert.Equal(t, []string{"John Smith"}, pusher.sent)
}

func TestNewAssignment_PushFailureKeepsFeed(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	pusher := &pusherStub{err: errors.New("driver not connected")}
	svc := NewService(repo, pusher, nil, logger.InitLogger("test", logger.LevelError))

	require.NoError(t, svc.NewAssignment(ctx, "John Smith", "REQ1"))

	feed, err := repo.ListDriver(ctx, "John Smith")
	require.NoError(t, err)
	assert.Len(t, feed, 1)
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	svc := NewService(repo, &pusherStub{}, nil, logger.InitLogger("test", logger.LevelError))

	require.NoError(t, svc.NewRequest(ctx, &models.RideRequest{ID: "REQ1", PassengerName: "Alice"}))

	feed, err := svc.ListOps(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)

	require.NoError(t, svc.MarkOpsRead(ctx, feed[0].ID))

	feed, err = svc.ListOps(ctx)
	require.NoError(t, err)
	assert.True(t, feed[0].Read)
}
