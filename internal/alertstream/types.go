package alertstream

import (
	"time"

	"monitor-srv/internal/model"
)

// EventType labels a stream frame.
type EventType string

const (
	EventTypeAlert  EventType = "ALERT"
	EventTypeSystem EventType = "SYSTEM"
)

// Event is the frame pushed to subscribed clients.
type Event struct {
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Alert     *model.MonitoringAlert `json:"alert,omitempty"`
	Message   string                 `json:"message,omitempty"`
}

// broadcastMessage routes an event to one organization's subscribers.
type broadcastMessage struct {
	orgID string
	event Event
}
