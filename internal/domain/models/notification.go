package models

import (
	"time"

	"github.com/teleka/teleka-taxi/internal/domain/types"
)

// Notification is an append-only lifecycle event consumed by polling.
// Operations notifications carry the full request as Data; driver-scoped
// notifications carry the request ID and the driver name tag.
type Notification struct {
	ID         string                 `json:"id"`
	Type       types.NotificationType `json:"type"`
	Message    string                 `json:"message"`
	Data       *RideRequest           `json:"data,omitempty"`
	RequestID  string                 `json:"requestId,omitempty"`
	DriverName string                 `json:"driverName,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
	Read       bool                   `json:"read"`
}

// LifecycleEvent is the envelope published to the message broker when one
// is configured. External consumers subscribe by routing key
// "request.<type>".
type LifecycleEvent struct {
	Type       types.NotificationType `json:"type"`
	RequestID  string                 `json:"request_id"`
	Status     types.RequestStatus    `json:"status"`
	DriverName string                 `json:"driver_name,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
}
