package events

import "time"

// Domain event codes published on the NATS bus. The notification worker maps
// these to stored notifications via the notification_types registry.
const (
	TypeUserSignedIn     = "USER_SIGNED_IN"
	TypeUserSignedUp     = "USER_SIGNED_UP"
	TypeCourseEnrolled   = "COURSE_ENROLLED"
	TypeClassJoined      = "CLASS_JOINED"
	TypeClassLeft        = "CLASS_LEFT"
	TypeContactSubmitted = "CONTACT_SUBMITTED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_SIGNED_IN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation used across services.
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

// New builds a BaseEvent stamped with the current time.
func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
