package services

import "log"

// Directory event types published after successful writes.
const (
	EventUserRegistered  = "user.registered"
	EventEmployeeCreated = "employee.created"
	EventEmployeeDeleted = "employee.deleted"
)

// EventPublisher delivers directory events to a broker.
type EventPublisher interface {
	PublishEvent(eventType string, payload interface{}) error
}

// publishEvent sends the event if a publisher is configured. Delivery failures are
// logged and never fail the request that triggered them.
func publishEvent(p EventPublisher, eventType string, payload interface{}) {
	if p == nil {
		return
	}
	if err := p.PublishEvent(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
