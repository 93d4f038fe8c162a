package request

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

// Service owns the ride request lifecycle. Assignment and decline live in
// the assignment service, everything else about a request is here.
type Service struct {
	requests RequestRepo
	trips    TripRepo
	drivers  DriverRepo
	notifier Notifier
	log      logger.Logger
}

func NewService(requests RequestRepo, trips TripRepo, drivers DriverRepo, notifier Notifier, log logger.Logger) *Service {
	return &Service{
		requests: requests,
		trips:    trips,
		drivers:  drivers,
		notifier: notifier,
		log:      log,
	}
}

// Create registers a new ride request in pending state and notifies the
// operations feed.
func (s *Service) Create(ctx context.Context, req *models.RideRequest) (*models.RideRequest, error) {
	ctx = wrap.WithAction(ctx, types.ActionCreateRequest)

	req.ID = generateRequestID()
	req.Status = types.RequestPending
	req.AssignedDriver = nil
	req.Timestamp = time.Now()

	ctx = wrap.WithRideRequestID(ctx, req.ID)

	if err := s.requests.Insert(ctx, req); err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("could not store ride request: %w", err))
	}
	metrics.RecordRequestStatus(types.RequestPending.String())

	if err := s.notifier.NewRequest(ctx, req); err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("could not notify operations: %w", err))
	}

	s.log.Info(ctx, "ride request created", "passenger", req.PassengerName)
	return req, nil
}

// List returns requests in insertion order, optionally filtered by status.
// An unknown status filter matches nothing.
func (s *Service) List(ctx context.Context, status types.RequestStatus) ([]models.RideRequest, error) {
	ctx = wrap.WithAction(ctx, types.ActionListRequests)

	all, err := s.requests.List(ctx)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("could not list ride requests: %w", err))
	}
	if status == "" {
		return all, nil
	}

	filtered := []models.RideRequest{}
	for _, req := range all {
		if req.Status == status {
			filtered = append(filtered, req)
		}
	}
	return filtered, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.RideRequest, error) {
	ctx = wrap.WithRideRequestID(wrap.WithAction(ctx, types.ActionGetRequest), id)

	req, err := s.requests.Get(ctx, id)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	return req, nil
}

// Update merges the patch into the request. Status and assignment are not
// patchable, they move only through the lifecycle operations.
func (s *Service) Update(ctx context.Context, id string, patch models.RideRequestPatch) (*models.RideRequest, error) {
	ctx = wrap.WithRideRequestID(wrap.WithAction(ctx, types.ActionUpdateRequest), id)

	updated, err := s.requests.Update(ctx, id, func(req *models.RideRequest) error {
		patch.Apply(req)
		return nil
	})
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	return updated, nil
}

// Start moves an assigned request to in_progress and mirrors the status
// onto its active trip.
func (s *Service) Start(ctx context.Context, id string) (*models.RideRequest, error) {
	ctx = wrap.WithRideRequestID(wrap.WithAction(ctx, types.ActionStartTrip), id)

	updated, err := s.requests.Update(ctx, id, func(req *models.RideRequest) error {
		if req.Status != types.RequestAssigned {
			return types.ErrRequestNotAssigned
		}
		req.Status = types.RequestInProgress
		return nil
	})
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	metrics.RecordRequestStatus(types.RequestInProgress.String())

	if _, err := s.trips.Update(ctx, id, func(t *models.Trip) error {
		t.Status = types.RequestInProgress
		return nil
	}); err != nil && !errors.Is(err, types.ErrTripNotFound) {
		return nil, wrap.Error(ctx, fmt.Errorf("could not update active trip: %w", err))
	}

	s.log.Info(ctx, "trip started")
	return updated, nil
}

// Complete finishes an assigned or in-progress request, retires its active
// trip and credits the driver's trip counter. Requests that never got a
// trip, or finished one already, are reported as an unknown trip.
func (s *Service) Complete(ctx context.Context, id string) (*models.RideRequest, error) {
	ctx = wrap.WithRideRequestID(wrap.WithAction(ctx, types.ActionCompleteTrip), id)

	var driverName string
	updated, err := s.requests.Update(ctx, id, func(req *models.RideRequest) error {
		if req.Status != types.RequestAssigned && req.Status != types.RequestInProgress {
			return types.ErrTripNotFound
		}
		if req.AssignedDriver != nil {
			driverName = *req.AssignedDriver
		}
		req.Status = types.RequestCompleted
		return nil
	})
	if err != nil {
		if errors.Is(err, types.ErrRequestNotFound) {
			return nil, wrap.Error(ctx, types.ErrTripNotFound)
		}
		return nil, wrap.Error(ctx, err)
	}
	metrics.RecordRequestStatus(types.RequestCompleted.String())

	if err := s.trips.Remove(ctx, id); err != nil && !errors.Is(err, types.ErrTripNotFound) {
		return nil, wrap.Error(ctx, fmt.Errorf("could not remove active trip: %w", err))
	}

	if driverName != "" {
		err := s.drivers.UpdateByName(ctx, driverName, func(d *models.Driver) error {
			d.Trips++
			return nil
		})
		if err != nil && !errors.Is(err, types.ErrDriverNotFound) {
			return nil, wrap.Error(ctx, fmt.Errorf("could not credit driver trips: %w", err))
		}
	}

	s.log.Info(ctx, "trip completed", "driver", driverName)
	return updated, nil
}

// Cancel withdraws a pending or assigned request and removes any active
// trip created for it.
func (s *Service) Cancel(ctx context.Context, id string) (*models.RideRequest, error) {
	ctx = wrap.WithRideRequestID(wrap.WithAction(ctx, types.ActionCancelRequest), id)

	updated, err := s.requests.Update(ctx, id, func(req *models.RideRequest) error {
		if req.Status != types.RequestPending && req.Status != types.RequestAssigned {
			return types.ErrInvalidTransition
		}
		req.Status = types.RequestCancelled
		return nil
	})
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	metrics.RecordRequestStatus(types.RequestCancelled.String())

	if err := s.trips.Remove(ctx, id); err != nil && !errors.Is(err, types.ErrTripNotFound) {
		return nil, wrap.Error(ctx, fmt.Errorf("could not remove active trip: %w", err))
	}

	s.log.Info(ctx, "ride request cancelled")
	return updated, nil
}
