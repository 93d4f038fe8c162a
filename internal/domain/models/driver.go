package models

import "github.com/teleka/teleka-taxi/internal/domain/types"

// Driver is created by registration (status pending) or seeded.
// An operator moves the registration to approved/rejected; approved drivers
// flip between active/inactive for duty.
type Driver struct {
	ID      string             `json:"id"`
	Name    string             `json:"name"`
	Email   string             `json:"email"`
	Phone   string             `json:"phone"`
	License string             `json:"license"`
	Status  types.DriverStatus `json:"status"`
	Trips   int                `json:"trips"`
	Rating  float64            `json:"rating"`
}

// Assignable reports whether the driver can be bound to a request.
func (d Driver) Assignable() bool {
	switch d.Status {
	case types.DriverApproved, types.DriverActive:
		return true
	default:
		return false
	}
}

// DriverStats is the denormalized per-driver summary document the driver
// console reads. Written by seeding only, never maintained incrementally.
type DriverStats struct {
	Email          string  `json:"email"`
	Rating         float64 `json:"rating"`
	AcceptanceRate int     `json:"acceptanceRate"`
	TotalTrips     int     `json:"totalTrips"`
	TotalEarnings  float64 `json:"totalEarnings"`
	TodayEarnings  float64 `json:"todayEarnings"`
	WeekEarnings   float64 `json:"weekEarnings"`
	MonthEarnings  float64 `json:"monthEarnings"`
	Phone          string  `json:"phone"`
	License        string  `json:"license"`
	Vehicle        string  `json:"vehicle"`
}
