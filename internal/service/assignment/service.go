package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/pkg/logger"
	wrap "github.com/teleka/teleka-taxi/pkg/logger/wrapper"
	"github.com/teleka/teleka-taxi/pkg/metrics"
)

// Service coordinates pairing pending requests with approved drivers and
// withdrawing assignments that did not work out.
type Service struct {
	requests    RequestRepo
	drivers     DriverRepo
	trips       TripRepo
	notifier    Notifier
	defaultFare float64
	log         logger.Logger
}

func NewService(requests RequestRepo, drivers DriverRepo, trips TripRepo, notifier Notifier, defaultFare float64, log logger.Logger) *Service {
	return &Service{
		requests:    requests,
		drivers:     drivers,
		trips:       trips,
		notifier:    notifier,
		defaultFare: defaultFare,
		log:         log,
	}
}

// Assign pairs a pending request with a driver, opens the active trip and
// notifies the driver. Only pending requests can be assigned.
func (s *Service) Assign(ctx context.Context, requestID, driverID string) (*models.RideRequest, error) {
	ctx = wrap.WithRideRequestID(wrap.WithAction(ctx, types.ActionAssignDriver), requestID)

	driver, err := s.drivers.Get(ctx, driverID)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	if !driver.Assignable() {
		return nil, wrap.Error(ctx, types.ErrDriverNotApproved)
	}
	ctx = wrap.WithDriver(ctx, driver.Name)

	updated, err := s.requests.Update(ctx, requestID, func(req *models.RideRequest) error {
		if req.Status != types.RequestPending {
			return types.ErrRequestNotPending
		}
		req.Status = types.RequestAssigned
		req.AssignedDriver = &driver.Name
		return nil
	})
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	metrics.RecordRequestStatus(types.RequestAssigned.String())

	trip := &models.Trip{
		ID:       updated.ID,
		Driver:   driver.Name,
		Customer: updated.PassengerName,
		Route:    fmt.Sprintf("%s → %s", updated.Pickup, updated.Dropoff),
		Status:   types.RequestAssigned,
		Amount:   fmt.Sprintf("$%.2f", s.fareFor(updated)),
		Time:     time.Now().Format("3:04:05 PM"),
	}
	if err := s.trips.Insert(ctx, trip); err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("could not open active trip: %w", err))
	}

	if err := s.notifier.NewAssignment(ctx, driver.Name, updated.ID); err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("could not notify driver: %w", err))
	}

	s.log.Info(ctx, "driver assigned")
	return updated, nil
}

// Decline returns an assigned request to the pending pool and retires the
// trip opened for it.
func (s *Service) Decline(ctx context.Context, requestID string) (*models.RideRequest, error) {
	ctx = wrap.WithRideRequestID(wrap.WithAction(ctx, types.ActionDeclineRequest), requestID)

	updated, err := s.requests.Update(ctx, requestID, func(req *models.RideRequest) error {
		if req.Status != types.RequestAssigned {
			return types.ErrRequestNotAssigned
		}
		req.Status = types.RequestPending
		req.AssignedDriver = nil
		return nil
	})
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	metrics.RecordRequestStatus(types.RequestPending.String())

	if err := s.trips.Remove(ctx, requestID); err != nil && !errors.Is(err, types.ErrTripNotFound) {
		return nil, wrap.Error(ctx, fmt.Errorf("could not remove active trip: %w", err))
	}

	s.log.Info(ctx, "assignment declined, request back to pending")
	return updated, nil
}

func (s *Service) fareFor(req *models.RideRequest) float64 {
	if req.Fare != nil {
		return *req.Fare
	}
	return s.defaultFare
}
