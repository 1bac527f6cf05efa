// Package events provides the pub/sub bus for registry change
// notifications.
package events

import "time"

// Event is the base interface all events implement.
type Event interface {
	EventType() string
	EntityID() int64
	OccurredAt() time.Time
}

// BaseEvent provides common fields for all events.
type BaseEvent struct {
	Type      string    `json:"type"`
	ID        int64     `json:"entity_id"`
	Timestamp time.Time `json:"occurred_at"`
}

func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) EntityID() int64       { return e.ID }
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// NewBaseEvent creates a BaseEvent with the current timestamp.
func NewBaseEvent(eventType string, entityID int64) BaseEvent {
	return BaseEvent{
		Type:      eventType,
		ID:        entityID,
		Timestamp: time.Now(),
	}
}
