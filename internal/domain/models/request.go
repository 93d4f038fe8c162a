package models

import (
	"time"

	"github.com/teleka/teleka-taxi/internal/domain/types"
)

// RideRequest is a customer's ask for transportation, tracked through its
// lifecycle: pending -> assigned -> in_progress -> completed, with
// cancellation from pending/assigned and decline back to pending.
// JSON tags match the documents the consoles already read and write.
type RideRequest struct {
	ID             string              `json:"id"`
	Pickup         string              `json:"pickup"`
	Dropoff        string              `json:"dropoff"`
	PassengerName  string              `json:"passengerName"`
	PassengerPhone string              `json:"passengerPhone"`
	PassengerEmail string              `json:"passengerEmail,omitempty"`
	ServiceType    types.ServiceType   `json:"serviceType"`
	Passengers     int                 `json:"passengers"`
	Status         types.RequestStatus `json:"status"`
	AssignedDriver *string             `json:"assignedDriver"`
	Fare           *float64            `json:"fare,omitempty"`
	Timestamp      time.Time           `json:"timestamp"`
}

// RideRequestPatch carries the mutable fields of a partial update.
// Status and assignment are deliberately absent, they only move through
// the lifecycle operations.
type RideRequestPatch struct {
	Pickup         *string            `json:"pickup"`
	Dropoff        *string            `json:"dropoff"`
	PassengerName  *string            `json:"passengerName"`
	PassengerPhone *string            `json:"passengerPhone"`
	PassengerEmail *string            `json:"passengerEmail"`
	ServiceType    *types.ServiceType `json:"serviceType"`
	Passengers     *int               `json:"passengers"`
	Fare           *float64           `json:"fare"`
}

// Apply merges the non-nil patch fields into the request.
func (p RideRequestPatch) Apply(r *RideRequest) {
	if p.Pickup != nil {
		r.Pickup = *p.Pickup
	}
	if p.Dropoff != nil {
		r.Dropoff = *p.Dropoff
	}
	if p.PassengerName != nil {
		r.PassengerName = *p.PassengerName
	}
	if p.PassengerPhone != nil {
		r.PassengerPhone = *p.PassengerPhone
	}
	if p.PassengerEmail != nil {
		r.PassengerEmail = *p.PassengerEmail
	}
	if p.ServiceType != nil {
		r.ServiceType = *p.ServiceType
	}
	if p.Passengers != nil {
		r.Passengers = *p.Passengers
	}
	if p.Fare != nil {
		r.Fare = p.Fare
	}
}
