package domain

// Event type values sent by the agent runtime. Anything else takes the
// generic classification path.
const (
	EventToolPermissionRequest = "tool-permission-request"
	EventPromptIdleTimeout     = "prompt-idle-timeout"
)

// DefaultIdleSeconds is reported when an idle-timeout event carries no duration
const DefaultIdleSeconds = 60

// HookEvent matches the JSON document the agent runtime writes to the hook's
// stdin. The contract between the two programs is the JSON schema, not Go
// types; field names follow the Codex notify payload.
type HookEvent struct {
	Type          string `json:"type"`
	SessionID     string `json:"session_id"`
	CWD           string `json:"cwd"`
	HookEventName string `json:"hook_event_name"`
	Message       string `json:"message"`

	// tool-permission-request fields
	ApprovalType string   `json:"approval_type"`
	ToolName     string   `json:"tool_name"`
	Command      string   `json:"command"`
	Changes      []string `json:"changes"`
	Reason       string   `json:"reason"`

	// prompt-idle-timeout fields. Pointer so an explicit 0 is distinguishable
	// from an absent field, which defaults to DefaultIdleSeconds.
	IdleDurationSeconds *int `json:"idle_duration_seconds"`
}

// Session returns the session identifier, defaulting to "unknown"
func (e HookEvent) Session() string {
	if e.SessionID == "" {
		return "unknown"
	}
	return e.SessionID
}

// IdleSeconds returns the idle duration with the default applied
func (e HookEvent) IdleSeconds() int {
	if e.IdleDurationSeconds == nil {
		return DefaultIdleSeconds
	}
	return *e.IdleDurationSeconds
}

// EventName resolves the display name for the event using the fallback chain:
// explicit hook_event_name, then type, then "notification"
func (e HookEvent) EventName() string {
	if e.HookEventName != "" {
		return e.HookEventName
	}
	if e.Type != "" {
		return e.Type
	}
	return "notification"
}
