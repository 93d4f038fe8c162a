package dto

import (
	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/pkg/validator"
)

type CreateRequestReq struct {
	Pickup         string   `json:"pickup"`
	Dropoff        string   `json:"dropoff"`
	PassengerName  string   `json:"passengerName"`
	PassengerPhone string   `json:"passengerPhone"`
	PassengerEmail string   `json:"passengerEmail"`
	ServiceType    string   `json:"serviceType"`
	Passengers     int      `json:"passengers"`
	Fare           *float64 `json:"fare"`
}

func (r *CreateRequestReq) Validate(v *validator.Validator) {
	v.Check(r.Pickup != "", "pickup", "must be provided")
	v.Check(len(r.Pickup) < 200, "pickup", "must be less than 200 characters")

	v.Check(r.Dropoff != "", "dropoff", "must be provided")
	v.Check(len(r.Dropoff) < 200, "dropoff", "must be less than 200 characters")

	v.Check(r.PassengerName != "", "passengerName", "must be provided")
	v.Check(len(r.PassengerName) < 100, "passengerName", "must be less than 100 characters")

	v.Check(r.PassengerPhone != "", "passengerPhone", "must be provided")

	v.Check(validator.PermittedValue(r.ServiceType,
		types.ServiceStandard.String(), types.ServicePremium.String()),
		"serviceType", "must be standard or premium")

	v.Check(r.Passengers >= 1 && r.Passengers <= 8, "passengers", "must be between 1 and 8")

	if r.Fare != nil {
		v.Check(*r.Fare > 0, "fare", "must be greater than zero")
	}
}

func (r *CreateRequestReq) ToModel() *models.RideRequest {
	return &models.RideRequest{
		Pickup:         r.Pickup,
		Dropoff:        r.Dropoff,
		PassengerName:  r.PassengerName,
		PassengerPhone: r.PassengerPhone,
		PassengerEmail: r.PassengerEmail,
		ServiceType:    types.ServiceType(r.ServiceType),
		Passengers:     r.Passengers,
		Fare:           r.Fare,
	}
}

type PatchRequestReq struct {
	models.RideRequestPatch
}

func (r *PatchRequestReq) Validate(v *validator.Validator) {
	if r.Pickup != nil {
		v.Check(*r.Pickup != "", "pickup", "must not be empty")
	}
	if r.Dropoff != nil {
		v.Check(*r.Dropoff != "", "dropoff", "must not be empty")
	}
	if r.PassengerName != nil {
		v.Check(*r.PassengerName != "", "passengerName", "must not be empty")
	}
	if r.ServiceType != nil {
		v.Check(validator.PermittedValue(*r.ServiceType,
			types.ServiceStandard, types.ServicePremium),
			"serviceType", "must be standard or premium")
	}
	if r.Passengers != nil {
		v.Check(*r.Passengers >= 1 && *r.Passengers <= 8, "passengers", "must be between 1 and 8")
	}
	if r.Fare != nil {
		v.Check(*r.Fare > 0, "fare", "must be greater than zero")
	}
}

type AssignReq struct {
	DriverID   string `json:"driverId"`
	DriverName string `json:"driverName"`
}

func (r *AssignReq) Validate(v *validator.Validator) {
	v.Check(r.DriverID != "", "driverId", "must be provided")
}
