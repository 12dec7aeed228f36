package events

import (
	"encoding/json"
	"time"
)

const (
	EventNotificationRequested = "NotificationRequested"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // session id
	Payload       json.RawMessage `json:"payload"`
}

type NotificationRequestedPayload struct {
	Kind string `json:"kind"` // booking | order
	Text string `json:"text"`
	Link string `json:"link"`
}
