package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ariefcatur/go-repair-shop/internal/events"
	kafkax "github.com/ariefcatur/go-repair-shop/internal/kafka"
	"github.com/ariefcatur/go-repair-shop/internal/redisx"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Relay consumes NotificationRequested envelopes and hands them to Sink.
type Relay struct {
	Sink    Notifier
	Redis   *redis.Client // optional; dedups redelivered events
	Service string
	Log     *zap.Logger
}

// HandleRequested is installed as the consumer handler.
func (r *Relay) HandleRequested(ctx context.Context, m kafkago.Message) error {
	var env events.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		r.Log.Warn("dropping undecodable envelope", zap.Int64("offset", m.Offset), zap.Error(err))
		return nil
	}
	if env.EventType != events.EventNotificationRequested {
		return nil
	}

	if r.Redis != nil {
		won, err := redisx.Claim(ctx, r.Redis, fmt.Sprintf(redisx.KeyDedup, r.Service, env.EventID), redisx.TTLDedup)
		if err != nil {
			return fmt.Errorf("dedup claim: %w", err)
		}
		if !won {
			return nil
		}
	}

	p, err := kafkax.UnwrapPayload[events.NotificationRequestedPayload](env.Payload)
	if err != nil {
		r.Log.Warn("dropping bad payload", zap.String("event_id", env.EventID), zap.Error(err))
		return nil
	}
	r.Sink.Notify(ctx, Notification{
		Kind:      Kind(p.Kind),
		SessionID: env.CorrelationID,
		Text:      p.Text,
		Link:      p.Link,
	})
	return nil
}
