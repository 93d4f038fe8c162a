package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/pkg/logger"
	wrap "github.com/teleka/teleka-taxi/pkg/logger/wrapper"
)

type RequestRepo interface {
	ReplaceAll(ctx context.Context, requests []models.RideRequest) error
}

type DriverRepo interface {
	ReplaceAll(ctx context.Context, drivers []models.Driver) error
}

type TripRepo interface {
	ReplaceAll(ctx context.Context, trips []models.Trip) error
}

type StatsRepo interface {
	Save(ctx context.Context, stats *models.DriverStats) error
}

// Service resets the store to a known demo state. Notification feeds are
// left untouched.
type Service struct {
	requests RequestRepo
	drivers  DriverRepo
	trips    TripRepo
	stats    StatsRepo
	log      logger.Logger
}

func NewService(requests RequestRepo, drivers DriverRepo, trips TripRepo, stats StatsRepo, log logger.Logger) *Service {
	return &Service{
		requests: requests,
		drivers:  drivers,
		trips:    trips,
		stats:    stats,
		log:      log,
	}
}

// Initialize overwrites drivers, requests, active trips and the driver
// stats document with the sample data set.
func (s *Service) Initialize(ctx context.Context) error {
	ctx = wrap.WithAction(ctx, types.ActionSeedData)

	if err := s.drivers.ReplaceAll(ctx, sampleDrivers()); err != nil {
		return wrap.Error(ctx, fmt.Errorf("could not seed drivers: %w", err))
	}
	if err := s.requests.ReplaceAll(ctx, sampleRequests()); err != nil {
		return wrap.Error(ctx, fmt.Errorf("could not seed ride requests: %w", err))
	}
	if err := s.trips.ReplaceAll(ctx, sampleTrips()); err != nil {
		return wrap.Error(ctx, fmt.Errorf("could not seed active trips: %w", err))
	}
	if err := s.stats.Save(ctx, sampleDriverStats()); err != nil {
		return wrap.Error(ctx, fmt.Errorf("could not seed driver stats: %w", err))
	}

	s.log.Info(ctx, "sample data initialized")
	return nil
}

func sampleDrivers() []models.Driver {
	return []models.Driver{
		{ID: "D001", Name: "John Smith", Email: "john@example.com", Phone: "+1234567890", License: "DL123456789", Status: types.DriverActive, Trips: 5, Rating: 4.8},
		{ID: "D002", Name: "Mike Johnson", Email: "mike@example.com", Phone: "+1234567891", License: "DL987654321", Status: types.DriverActive, Trips: 3, Rating: 4.6},
		{ID: "D003", Name: "Sarah Davis", Email: "sarah@example.com", Phone: "+1234567892", License: "DL456789123", Status: types.DriverActive, Trips: 8, Rating: 4.9},
	}
}

func sampleRequests() []models.RideRequest {
	now := time.Now()
	johnSmith := "John Smith"
	premiumFare := 45.00
	standardFare := 25.50

	return []models.RideRequest{
		{
			ID:             "REQ001",
			Pickup:         "Kampala City Center",
			Dropoff:        "Entebbe Airport",
			PassengerName:  "John Doe",
			PassengerPhone: "+256700000000",
			PassengerEmail: "john@example.com",
			ServiceType:    types.ServicePremium,
			Passengers:     2,
			Status:         types.RequestPending,
			AssignedDriver: nil,
			Fare:           &premiumFare,
			Timestamp:      now.Add(-time.Hour),
		},
		{
			ID:             "REQ002",
			Pickup:         "Nakawa Shopping Mall",
			Dropoff:        "Hotel Serena",
			PassengerName:  "Jane Smith",
			PassengerPhone: "+256711111111",
			PassengerEmail: "jane@example.com",
			ServiceType:    types.ServiceStandard,
			Passengers:     1,
			Status:         types.RequestAssigned,
			AssignedDriver: &johnSmith,
			Fare:           &standardFare,
			Timestamp:      now.Add(-30 * time.Minute),
		},
	}
}

func sampleTrips() []models.Trip {
	return []models.Trip{
		{
			ID:       "REQ002",
			Driver:   "John Smith",
			Customer: "Jane Smith",
			Route:    "Nakawa Shopping Mall → Hotel Serena",
			Status:   types.RequestAssigned,
			Amount:   "$25.50",
			Time:     time.Now().Format("3:04:05 PM"),
		},
	}
}

func sampleDriverStats() *models.DriverStats {
	return &models.DriverStats{
		Email:          "john@example.com",
		Rating:         4.8,
		AcceptanceRate: 95,
		TotalTrips:     5,
		TotalEarnings:  125.00,
		TodayEarnings:  25.50,
		WeekEarnings:   125.00,
		MonthEarnings:  500.00,
		Phone:          "+1234567890",
		License:        "DL123456789",
		Vehicle:        "Toyota Camry - ABC123",
	}
}
