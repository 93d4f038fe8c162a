package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/pkg/logger"
	wrap "github.com/teleka/teleka-taxi/pkg/logger/wrapper"
	"github.com/teleka/teleka-taxi/pkg/metrics"
)

// Service fans ride lifecycle events out to the operations feed, the
// driver feed, the WebSocket hub and, when configured, the broker.
// Feed writes are authoritative; push channels are best effort.
type Service struct {
	repo      NotificationRepo
	pusher    DriverPusher
	publisher EventPublisher
	log       logger.Logger
}

func NewService(repo NotificationRepo, pusher DriverPusher, publisher EventPublisher, log logger.Logger) *Service {
	return &Service{
		repo:      repo,
		pusher:    pusher,
		publisher: publisher,
		log:       log,
	}
}

// NewRequest records an operations notification for a freshly created
// ride request.
func (s *Service) NewRequest(ctx context.Context, req *models.RideRequest) error {
	ctx = wrap.WithAction(ctx, types.ActionNotifyOps)

	n := &models.Notification{
		ID:        newID("NOTIF"),
		Type:      types.NotifNewRequest,
		Message:   fmt.Sprintf("New ride request from %s", req.PassengerName),
		Data:      req,
		Timestamp: time.Now(),
		Read:      false,
	}

	if err := s.repo.InsertOps(ctx, n); err != nil {
		return wrap.Error(ctx, fmt.Errorf("could not store operations notification: %w", err))
	}
	metrics.NotificationsTotal.WithLabelValues("operations", string(n.Type)).Inc()

	s.publish(ctx, models.LifecycleEvent{
		Type:      types.NotifNewRequest,
		RequestID: req.ID,
		Status:    req.Status,
		Timestamp: n.Timestamp,
	})

	return nil
}

// NewAssignment records a driver notification and pushes it over the
// driver's WebSocket when one is open.
func (s *Service) NewAssignment(ctx context.Context, driverName, requestID string) error {
	ctx = wrap.WithDriver(wrap.WithAction(ctx, types.ActionNotifyDriver), driverName)

	n := &models.Notification{
		ID:         newID("DNOTIF"),
		Type:       types.NotifNewAssignment,
		Message:    fmt.Sprintf("New trip assigned: %s", requestID),
		RequestID:  requestID,
		DriverName: driverName,
		Timestamp:  time.Now(),
		Read:       false,
	}

	if err := s.repo.InsertDriver(ctx, n); err != nil {
		return wrap.Error(ctx, fmt.Errorf("could not store driver notification: %w", err))
	}
	metrics.NotificationsTotal.WithLabelValues("driver", string(n.Type)).Inc()

	if err := s.pusher.SendTo(driverName, n); err != nil {
		s.log.Debug(ctx, "driver not connected, notification stays in feed", "err", err.Error())
	}

	s.publish(ctx, models.LifecycleEvent{
		Type:       types.NotifNewAssignment,
		RequestID:  requestID,
		Status:     types.RequestAssigned,
		DriverName: driverName,
		Timestamp:  n.Timestamp,
	})

	return nil
}

func (s *Service) publish(ctx context.Context, event models.LifecycleEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishLifecycleEvent(ctx, event); err != nil {
		s.log.Warn(ctx, "failed to publish lifecycle event", "err", err.Error())
	}
}

func (s *Service) ListOps(ctx context.Context) ([]models.Notification, error) {
	return s.repo.ListOps(ctx)
}

func (s *Service) ListDriver(ctx context.Context, driverName string) ([]models.Notification, error) {
	return s.repo.ListDriver(ctx, driverName)
}

func (s *Service) MarkOpsRead(ctx context.Context, id string) error {
	return s.repo.MarkOpsRead(ctx, id)
}

func (s *Service) MarkDriverRead(ctx context.Context, id string) error {
	return s.repo.MarkDriverRead(ctx, id)
}
