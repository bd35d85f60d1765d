package events

import "time"

// Event type codes emitted by the application.
const (
	TypePostCreated = "POST_CREATED"
	TypePostUpdated = "POST_UPDATED"
	TypePostDeleted = "POST_DELETED"
	TypeUserLogin   = "USER_LOGIN"
	TypeUserLogout  = "USER_LOGOUT"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "POST_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the common implementation used by all emitters.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewPostEvent builds an event for a post lifecycle change.
func NewPostEvent(eventType, postID, slug, ownerID string) BaseEvent {
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"post_id": postID,
			"slug":    slug,
			"user_id": ownerID,
		},
		OccurredAt: time.Now(),
	}
}

// NewUserEvent builds an event for a session lifecycle change.
func NewUserEvent(eventType, userID string) BaseEvent {
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"user_id": userID,
		},
		OccurredAt: time.Now(),
	}
}
