package driverreg

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/pkg/logger"
	wrap "github.com/teleka/teleka-taxi/pkg/logger/wrapper"
)

// Service is the driver registry: registrations come in pending and an
// operator approves or rejects them once.
type Service struct {
	drivers DriverRepo
	log     logger.Logger
}

func NewService(drivers DriverRepo, log logger.Logger) *Service {
	return &Service{
		drivers: drivers,
		log:     log,
	}
}

// Register files a new driver registration awaiting operator review.
func (s *Service) Register(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	ctx = wrap.WithAction(ctx, types.ActionRegisterDriver)

	driver.ID = fmt.Sprintf("D%d%03d", time.Now().UnixMilli(), rand.Intn(1000))
	driver.Status = types.DriverPending
	driver.Trips = 0
	driver.Rating = 0

	if err := s.drivers.Insert(ctx, driver); err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("could not store driver: %w", err))
	}

	s.log.Info(wrap.WithDriver(ctx, driver.Name), "driver registration filed")
	return driver, nil
}

// Approve accepts a pending registration and puts the driver on duty.
func (s *Service) Approve(ctx context.Context, id string) (*models.Driver, error) {
	ctx = wrap.WithAction(ctx, types.ActionApproveDriver)
	return s.judge(ctx, id, types.DriverActive)
}

// Reject turns a pending registration down.
func (s *Service) Reject(ctx context.Context, id string) (*models.Driver, error) {
	ctx = wrap.WithAction(ctx, types.ActionRejectDriver)
	return s.judge(ctx, id, types.DriverRejected)
}

// judge settles a registration. A registration can be judged once.
func (s *Service) judge(ctx context.Context, id string, verdict types.DriverStatus) (*models.Driver, error) {
	updated, err := s.drivers.Update(ctx, id, func(d *models.Driver) error {
		if d.Status != types.DriverPending {
			return types.ErrDriverAlreadyJudged
		}
		d.Status = verdict
		return nil
	})
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	s.log.Info(wrap.WithDriver(ctx, updated.Name), "registration settled", "status", updated.Status.String())
	return updated, nil
}

func (s *Service) List(ctx context.Context) ([]models.Driver, error) {
	return s.drivers.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*models.Driver, error) {
	return s.drivers.Get(ctx, id)
}
