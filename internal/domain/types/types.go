package types

// Enum for ride request status
type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestAssigned   RequestStatus = "assigned"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestCancelled  RequestStatus = "cancelled"
)

func (s RequestStatus) String() string {
	return string(s)
}

// Known reports whether the value is one of the defined request statuses.
// Unknown filter values are not an error, they simply match nothing.
func (s RequestStatus) Known() bool {
	switch s {
	case RequestPending, RequestAssigned, RequestInProgress, RequestCompleted, RequestCancelled:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transition is allowed from the status.
func (s RequestStatus) Terminal() bool {
	return s == RequestCompleted || s == RequestCancelled
}

// Enum for driver status.
// pending/approved/rejected track registration review,
// active/inactive track duty once a driver is approved.
type DriverStatus string

const (
	DriverPending  DriverStatus = "pending"
	DriverApproved DriverStatus = "approved"
	DriverRejected DriverStatus = "rejected"
	DriverActive   DriverStatus = "active"
	DriverInactive DriverStatus = "inactive"
)

func (s DriverStatus) String() string {
	return string(s)
}

// Enum for notification type
type NotificationType string

const (
	NotifNewRequest    NotificationType = "new_request"
	NotifNewAssignment NotificationType = "new_assignment"
)

// Enum for service type on a ride request
type ServiceType string

const (
	ServiceStandard ServiceType = "standard"
	ServicePremium  ServiceType = "premium"
)

func (s ServiceType) String() string {
	return string(s)
}

// Enum for console user roles
type UserRole string

const (
	RoleOperator UserRole = "OPERATOR"
)

func (r UserRole) String() string {
	return string(r)
}
