package notify

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type Kind string

const (
	KindBooking Kind = "booking"
	KindOrder   Kind = "order"
)

// Notification is a formatted summary plus the deep link that carries it.
type Notification struct {
	Kind      Kind
	SessionID string
	Text      string
	Link      string
}

// Notifier hands a notification to the outbound channel. Delivery is never acknowledged.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Link embeds text into the messaging deep link: <base>?text=<encoded>.
func Link(base, text string) string {
	return base + "?text=" + encodeComponent(text)
}

// encodeComponent escapes like encodeURIComponent (space as %20).
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// LogNotifier only logs the link; used when no broker is configured.
type LogNotifier struct {
	Log *zap.Logger
}

func (l LogNotifier) Notify(_ context.Context, n Notification) {
	l.Log.Info("notification",
		zap.String("kind", string(n.Kind)),
		zap.String("session_id", n.SessionID),
		zap.String("link", n.Link))
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu   sync.Mutex
	sent []Notification
}

func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	r.sent = append(r.sent, n)
	r.mu.Unlock()
}

func (r *Recorder) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.sent...)
}
