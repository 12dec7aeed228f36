package notify

import (
	"context"
	"time"

	"github.com/ariefcatur/go-repair-shop/internal/events"
	kafkax "github.com/ariefcatur/go-repair-shop/internal/kafka"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
)

// Publisher is the async producer surface; Publish never reports delivery.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// KafkaNotifier publishes a NotificationRequested envelope per notification.
type KafkaNotifier struct {
	Producer Publisher
	Service  string
}

func (k *KafkaNotifier) Notify(ctx context.Context, n Notification) {
	ev := events.Envelope{
		EventID:       uuid.NewString(),
		EventType:     events.EventNotificationRequested,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      k.Service,
		TraceID:       middleware.GetReqID(ctx),
		CorrelationID: n.SessionID,
		Payload: kafkax.MustMarshal(events.NotificationRequestedPayload{
			Kind: string(n.Kind),
			Text: n.Text,
			Link: n.Link,
		}),
	}
	k.Producer.Publish(events.PartitionKey(n.SessionID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(events.EventNotificationRequested)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
