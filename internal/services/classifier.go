package services

import (
	"fmt"
	"strings"

	"toasty/internal/domain"
)

// maxChangePreview caps how many changed files a permission notification lists
const maxChangePreview = 3

// Classifier maps hook events to notification presentations. It is pure:
// project title and tag are fixed at construction, sourced from the project
// context once at process start.
type Classifier struct {
	projectTitle string
	projectTag   string
}

// NewClassifier creates a Classifier for the given project identity
func NewClassifier(projectTitle, projectTag string) *Classifier {
	return &Classifier{
		projectTitle: projectTitle,
		projectTag:   projectTag,
	}
}

// Classify builds the presentation for an event and returns it together with
// the resolved event name used for message enrichment
func (c *Classifier) Classify(evt domain.HookEvent) (domain.Notification, string) {
	switch evt.Type {
	case domain.EventToolPermissionRequest:
		return c.toolPermission(evt), evt.Type
	case domain.EventPromptIdleTimeout:
		return c.idleTimeout(evt), evt.Type
	default:
		eventName := evt.EventName()
		raw := evt.Message
		if raw == "" {
			raw = fmt.Sprintf("Codex event: %s", eventName)
		}
		return c.analyzeMessage(raw), eventName
	}
}

// toolPermission builds the presentation for a tool approval request
func (c *Classifier) toolPermission(evt domain.HookEvent) domain.Notification {
	toolName := evt.ToolName
	if toolName == "" {
		toolName = "unknown"
	}

	lines := []string{fmt.Sprintf("Claude needs permission to use %s", toolName)}

	switch evt.ApprovalType {
	case "exec":
		if evt.Command != "" {
			lines = append(lines, fmt.Sprintf("Command: %s", evt.Command))
		}
	case "patch":
		if len(evt.Changes) > 0 {
			preview := evt.Changes
			if len(preview) > maxChangePreview {
				preview = preview[:maxChangePreview]
			}
			lines = append(lines, fmt.Sprintf("Files: %s", strings.Join(preview, ", ")))
			if remaining := len(evt.Changes) - maxChangePreview; remaining > 0 {
				lines = append(lines, fmt.Sprintf("(+%d more)", remaining))
			}
		}
	}

	if evt.Reason != "" {
		lines = append(lines, fmt.Sprintf("Reason: %s", evt.Reason))
	}

	return domain.Notification{
		Title:    fmt.Sprintf("%s: Permission Required", c.projectTitle),
		Message:  strings.Join(lines, "\n"),
		Priority: domain.PriorityHigh,
		Tags:     []string{"warning", "key", c.projectTag},
	}
}

// idleTimeout builds the presentation for an idle session report
func (c *Classifier) idleTimeout(evt domain.HookEvent) domain.Notification {
	return domain.Notification{
		Title:    fmt.Sprintf("%s: Session Idle", c.projectTitle),
		Message:  fmt.Sprintf("Claude session idle for %ds", evt.IdleSeconds()),
		Priority: domain.PriorityDefault,
		Tags:     []string{"clock", c.projectTag},
	}
}

// analyzeMessage classifies free-form message text by substring search.
// The order is deliberate and first-match-wins: a message containing both
// "error" and "completed" is an error.
func (c *Classifier) analyzeMessage(raw string) domain.Notification {
	lower := strings.ToLower(raw)

	contains := func(subs ...string) bool {
		for _, s := range subs {
			if strings.Contains(lower, s) {
				return true
			}
		}
		return false
	}

	var (
		suffix   string
		priority string
		tags     []string
	)

	switch {
	case contains("permission", "approval"):
		suffix = "Permission Required"
		priority = domain.PriorityHigh
		tags = []string{"warning", "key", c.projectTag}
	case contains("error", "failed"):
		suffix = "Error Detected"
		priority = domain.PriorityHigh
		tags = []string{"red_circle", "warning", c.projectTag}
	case contains("waiting", "idle"):
		suffix = "Waiting for Input"
		priority = domain.PriorityLow
		tags = []string{"clock", "zzz", c.projectTag}
	case contains("blocked", "hook"):
		suffix = "Hook Alert"
		priority = domain.PriorityDefault
		tags = []string{"stop_sign", "warning", c.projectTag}
	case contains("completed", "finished"):
		suffix = "Task Completed"
		priority = domain.PriorityDefault
		tags = []string{"white_check_mark", "gear", c.projectTag}
	default:
		suffix = "Notification"
		priority = domain.PriorityDefault
		tags = []string{"bell", "info", c.projectTag}
	}

	return domain.Notification{
		Title:    fmt.Sprintf("%s: %s", c.projectTitle, suffix),
		Message:  raw,
		Priority: priority,
		Tags:     tags,
	}
}

// FormatMessage enriches a classified message with the event name and the
// repository status. Clean repositories add no suffix.
func (c *Classifier) FormatMessage(message, eventName string, pc domain.ProjectContext) string {
	if eventName != "" {
		message = fmt.Sprintf("%s (%s)", message, eventName)
	}
	if pc.Dirty() {
		message = fmt.Sprintf("%s • %s", message, pc.GitStatus)
	}
	return message
}
