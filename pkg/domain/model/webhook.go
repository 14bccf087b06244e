package model

import "time"

// WebhookEventType represents the type of webhook event received
type WebhookEventType string

const (
	EventTypePullRequest WebhookEventType = "pull_request"
	EventTypePing        WebhookEventType = "ping"
	EventTypeUnknown     WebhookEventType = "unknown"
)

// Pull request actions the bot reacts to
const (
	ActionOpened   = "opened"
	ActionReopened = "reopened"
	ActionEdited   = "edited"
)

// WebhookEvent represents a webhook event received from GitHub
type WebhookEvent struct {
	ID         string           // Retrieved from X-GitHub-Delivery header
	Type       WebhookEventType // Retrieved from X-GitHub-Event header
	Action     string           // Event action (e.g., opened, edited)
	Repository string           // Repository name
	Sender     string           // Sender username
	ReceivedAt time.Time        // Time when the event was received
	RawPayload []byte           // Raw JSON payload
}

// IsSupportedEvent checks if the event is supported
func (e *WebhookEvent) IsSupportedEvent() bool {
	switch e.Type {
	case EventTypePullRequest:
		switch e.Action {
		case ActionOpened, ActionReopened, ActionEdited:
			return true
		}
		return false
	default:
		return false
	}
}
