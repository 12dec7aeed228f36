package booking

import (
	"context"
	"time"

	"github.com/ariefcatur/go-repair-shop/internal/notify"
	"go.uber.org/zap"
)

// DefaultSubmitDelay is the simulated network round trip before dispatch.
const DefaultSubmitDelay = time.Second

// Store holds one visitor's booking draft. A nil draft means nothing is in progress.
type Store struct {
	sessionID string
	draft     *Draft
	notifier  notify.Notifier
	linkBase  string
	delay     time.Duration
	log       *zap.Logger
}

type Option func(*Store)

func WithDelay(d time.Duration) Option { return func(s *Store) { s.delay = d } }

func NewStore(sessionID string, n notify.Notifier, linkBase string, log *zap.Logger, opts ...Option) *Store {
	s := &Store{
		sessionID: sessionID,
		notifier:  n,
		linkBase:  linkBase,
		delay:     DefaultSubmitDelay,
		log:       log,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Update shallow-merges p into the draft, creating it when absent.
func (s *Store) Update(p Patch) {
	if s.draft == nil {
		s.draft = &Draft{}
	}
	s.draft.apply(p)
}

func (s *Store) Clear() { s.draft = nil }

// Current returns a copy of the draft, or nil.
func (s *Store) Current() *Draft {
	if s.draft == nil {
		return nil
	}
	d := s.draft.clone()
	return &d
}

// Submit waits the simulated delay, sends the summary link and always clears the draft.
// ctx only reaches the notifier; the delay itself is not cancelable.
func (s *Store) Submit(ctx context.Context) {
	if s.draft == nil {
		return
	}
	d := s.draft.clone()
	s.log.Info("submitting booking",
		zap.String("session_id", s.sessionID),
		zap.String("brand", d.DeviceBrand),
		zap.String("model", d.DeviceModel),
		zap.String("issue", d.Issue))

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	text := FormatMessage(d)
	s.notifier.Notify(ctx, notify.Notification{
		Kind:      notify.KindBooking,
		SessionID: s.sessionID,
		Text:      text,
		Link:      notify.Link(s.linkBase, text),
	})
	s.draft = nil
}
