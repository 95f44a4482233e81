package domain

// Priority levels understood by the ntfy delivery service
const (
	PriorityHigh    = "high"
	PriorityDefault = "default"
	PriorityLow     = "low"
)

// Notification is the computed presentation for one hook event
type Notification struct {
	Title    string
	Message  string
	Priority string
	Tags     []string
}

// DeliveryMeta carries event metadata alongside the presentation so the
// delivery service can correlate notifications with sessions
type DeliveryMeta struct {
	SessionID string
	HookName  string
	Event     string
	Project   ProjectContext
}
