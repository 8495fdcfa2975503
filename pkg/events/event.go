package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHAT_TURN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent embeds the common fields for simple event implementations.
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

// NewChatTurnEvent records one completed conversation turn for downstream
// analytics. Failed turns carry failed=true and no stage transition.
func NewChatTurnEvent(clientID, instanceID, stage, category, tier string, failed bool) Event {
	return BaseEvent{
		Type: "CHAT_TURN",
		Data: map[string]interface{}{
			"client_id":   clientID,
			"instance_id": instanceID,
			"stage":       stage,
			"category":    category,
			"tier":        tier,
			"failed":      failed,
		},
		OccurredAt: time.Now(),
	}
}
