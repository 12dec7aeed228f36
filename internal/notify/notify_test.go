package notify

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
	"testing"

	"github.com/ariefcatur/go-repair-shop/internal/events"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLinkEncodesLikeURIComponent(t *testing.T) {
	link := Link("https://wa.me/37360000000", "Rezervare nouă:\n📱 Model: Apple iPhone 15 & co")

	assert.Contains(t, link, "https://wa.me/37360000000?text=")
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "%20")
	assert.Contains(t, link, "%0A")
	assert.Contains(t, link, "%26")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Rezervare nouă:\n📱 Model: Apple iPhone 15 & co", u.Query().Get("text"))
}

type fakePublisher struct {
	mu   sync.Mutex
	keys [][]byte
	vals [][]byte
	hdrs [][]kafkago.Header
}

func (f *fakePublisher) Publish(key, value []byte, headers ...kafkago.Header) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, key)
	f.vals = append(f.vals, value)
	f.hdrs = append(f.hdrs, headers)
}

func TestKafkaNotifierPublishesEnvelope(t *testing.T) {
	pub := &fakePublisher{}
	n := &KafkaNotifier{Producer: pub, Service: "storefront"}

	n.Notify(context.Background(), Notification{Kind: KindOrder, SessionID: "sess-1", Text: "hi", Link: "https://wa.me/1?text=hi"})

	require.Len(t, pub.vals, 1)
	assert.Equal(t, []byte("sess-1"), pub.keys[0])
	assert.Equal(t, "x-event-type", pub.hdrs[0][0].Key)

	var env events.Envelope
	require.NoError(t, json.Unmarshal(pub.vals[0], &env))
	assert.Equal(t, events.EventNotificationRequested, env.EventType)
	assert.Equal(t, "storefront", env.Producer)
	assert.Equal(t, "sess-1", env.CorrelationID)
	assert.NotEmpty(t, env.EventID)

	var p events.NotificationRequestedPayload
	require.NoError(t, json.Unmarshal(env.Payload, &p))
	assert.Equal(t, "order", p.Kind)
	assert.Equal(t, "https://wa.me/1?text=hi", p.Link)
}

func TestRecorderAndLogNotifier(t *testing.T) {
	r := &Recorder{}
	r.Notify(context.Background(), Notification{Kind: KindBooking})
	assert.Len(t, r.Sent(), 1)

	LogNotifier{Log: zap.NewNop()}.Notify(context.Background(), Notification{Kind: KindBooking})
}
