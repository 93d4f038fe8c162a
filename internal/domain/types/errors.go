package types

import "errors"

var (
	ErrRequestNotFound      = errors.New("ride request not found")
	ErrDriverNotFound       = errors.New("driver not found")
	ErrTripNotFound         = errors.New("trip not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotFound             = errors.New("requested item not found")

	ErrRequestNotPending   = errors.New("ride request is not pending")
	ErrRequestNotAssigned  = errors.New("ride request is not assigned")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrDriverNotApproved   = errors.New("driver registration is not approved")
	ErrDriverAlreadyJudged = errors.New("driver registration already reviewed")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
