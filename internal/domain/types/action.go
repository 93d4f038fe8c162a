package types

// Action names carried in the log context.
const (
	ActionCreateRequest  = "create_request"
	ActionListRequests   = "list_requests"
	ActionGetRequest     = "get_request"
	ActionUpdateRequest  = "update_request"
	ActionStartTrip      = "start_trip"
	ActionCompleteTrip   = "complete_trip"
	ActionCancelRequest  = "cancel_request"
	ActionAssignDriver   = "assign_driver"
	ActionDeclineRequest = "decline_request"

	ActionRegisterDriver = "register_driver"
	ActionApproveDriver  = "approve_driver"
	ActionRejectDriver   = "reject_driver"

	ActionNotifyOps    = "notify_operations"
	ActionNotifyDriver = "notify_driver"
	ActionMarkRead     = "mark_notification_read"

	ActionSeedData = "initialize_sample_data"

	ActionOperatorLogin = "operator_login"

	ActionRabbitConnected = "rabbitmq_connected"
	ActionRabbitClosing   = "rabbitmq_closing"
	ActionRabbitClosed    = "rabbitmq_closed"
	ActionRabbitPublish   = "rabbitmq_publish"
)
