package session

import (
	"context"
	"sync"
	"time"

	"github.com/ariefcatur/go-repair-shop/internal/booking"
	"github.com/ariefcatur/go-repair-shop/internal/cart"
	"github.com/ariefcatur/go-repair-shop/internal/catalog"
	"github.com/ariefcatur/go-repair-shop/internal/notify"
	"github.com/ariefcatur/go-repair-shop/internal/wizard"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Session is one visitor's state. Callers hold Lock while touching the stores.
type Session struct {
	ID      string
	Cart    *cart.Store
	Booking *booking.Store
	Wizard  *wizard.Wizard

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) Lock() {
	s.mu.Lock()
	s.lastSeen = time.Now()
}

func (s *Session) Unlock() { s.mu.Unlock() }

type Deps struct {
	CartStorage cart.Storage
	Notifier    notify.Notifier
	Catalog     catalog.Catalog
	LinkBase    string
	Location    *time.Location
	SubmitDelay time.Duration
	Clock       func() time.Time
	Log         *zap.Logger
}

// Registry owns every live session.
type Registry struct {
	deps     Deps
	mu       sync.RWMutex
	sessions map[string]*Session
	sfg      singleflight.Group // one restore per session id
}

func NewRegistry(deps Deps) *Registry {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	return &Registry{deps: deps, sessions: map[string]*Session{}}
}

// Get returns the session, restoring its cart from storage on first use. A failed
// restore is not cached; the next call tries again.
func (r *Registry) Get(ctx context.Context, id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		return s, nil
	}

	// The restore is shared by every waiting caller, so it must not die with the first one.
	rctx := context.WithoutCancel(ctx)
	v, err, _ := r.sfg.Do(id, func() (interface{}, error) {
		r.mu.RLock()
		s, ok := r.sessions[id]
		r.mu.RUnlock()
		if ok {
			return s, nil
		}

		s, err := r.open(rctx, id)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.sessions[id] = s
		r.mu.Unlock()
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Session), nil
}

func (r *Registry) open(ctx context.Context, id string) (*Session, error) {
	log := r.deps.Log.With(zap.String("session_id", id))
	c, err := cart.Open(ctx, r.deps.CartStorage, cart.Key(id), log)
	if err != nil {
		return nil, err
	}
	bs := booking.NewStore(id, r.deps.Notifier, r.deps.LinkBase, log, booking.WithDelay(r.deps.SubmitDelay))
	return &Session{
		ID:       id,
		Cart:     c,
		Booking:  bs,
		Wizard:   wizard.New(bs, r.deps.Catalog, r.deps.Location, wizard.WithClock(r.deps.Clock)),
		lastSeen: time.Now(),
	}, nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than idle. Carts stay in storage and are
// restored on the next visit; wizard and booking drafts are lost.
func (r *Registry) Sweep(idle time.Duration) int {
	cutoff := time.Now().Add(-idle)
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, s := range r.sessions {
		if !s.mu.TryLock() {
			continue
		}
		stale := s.lastSeen.Before(cutoff)
		s.mu.Unlock()
		if stale {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

// RunSweeper sweeps every interval until ctx is done.
func (r *Registry) RunSweeper(ctx context.Context, every, idle time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := r.Sweep(idle); n > 0 {
				r.deps.Log.Info("sessions swept", zap.Int("count", n))
			}
		}
	}
}
