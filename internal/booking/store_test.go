package booking

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/ariefcatur/go-repair-shop/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBase = "https://wa.me/37360000000"

func newStore(rec notify.Notifier, opts ...Option) *Store {
	opts = append([]Option{WithDelay(0)}, opts...)
	return NewStore("sess-1", rec, testBase, zap.NewNop(), opts...)
}

func TestUpdateCreatesDraft(t *testing.T) {
	s := newStore(&notify.Recorder{})
	assert.Nil(t, s.Current())

	s.Update(Patch{DeviceBrand: Ptr("Apple")})
	require.NotNil(t, s.Current())
	assert.Equal(t, "Apple", s.Current().DeviceBrand)
}

func TestUpdateDisjointKeysUnion(t *testing.T) {
	s := newStore(&notify.Recorder{})
	s.Update(Patch{DeviceBrand: Ptr("Apple"), DeviceModel: Ptr("iPhone 15")})
	s.Update(Patch{Issue: Ptr("screen")})

	d := s.Current()
	assert.Equal(t, "Apple", d.DeviceBrand)
	assert.Equal(t, "iPhone 15", d.DeviceModel)
	assert.Equal(t, "screen", d.Issue)
}

func TestUpdateLastWriteWins(t *testing.T) {
	s := newStore(&notify.Recorder{})
	s.Update(Patch{Issue: Ptr("screen")})
	s.Update(Patch{Issue: Ptr("battery")})
	assert.Equal(t, "battery", s.Current().Issue)
}

func TestUpdateReplacesCustomer(t *testing.T) {
	s := newStore(&notify.Recorder{})
	s.Update(Patch{Customer: &Customer{Name: "Ana", Phone: "060000000", Email: "ana@example.com"}})
	s.Update(Patch{Customer: &Customer{Name: "Ion"}})

	c := s.Current().Customer
	require.NotNil(t, c)
	assert.Equal(t, "Ion", c.Name)
	assert.Empty(t, c.Phone)
	assert.Empty(t, c.Email)
}

func TestCurrentIsACopy(t *testing.T) {
	s := newStore(&notify.Recorder{})
	s.Update(Patch{Customer: &Customer{Name: "Ana"}})

	d := s.Current()
	d.Customer.Name = "changed"
	assert.Equal(t, "Ana", s.Current().Customer.Name)
}

func TestClear(t *testing.T) {
	s := newStore(&notify.Recorder{})
	s.Update(Patch{Issue: Ptr("port")})
	s.Clear()
	assert.Nil(t, s.Current())
}

func TestSubmitWithoutDraftIsNoop(t *testing.T) {
	rec := &notify.Recorder{}
	s := newStore(rec)
	s.Submit(context.Background())
	assert.Empty(t, rec.Sent())
}

func TestSubmitSendsLinkAndClears(t *testing.T) {
	rec := &notify.Recorder{}
	s := newStore(rec)
	s.Update(Patch{
		DeviceBrand: Ptr("Samsung"),
		DeviceModel: Ptr("Galaxy S24"),
		Issue:       Ptr("battery"),
		Customer:    &Customer{Name: "Ana", Phone: "+37360000001"},
		Status:      Ptr(StatusPending),
	})

	s.Submit(context.Background())

	assert.Nil(t, s.Current())
	sent := rec.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, notify.KindBooking, sent[0].Kind)
	assert.Equal(t, "sess-1", sent[0].SessionID)

	u, err := url.Parse(sent[0].Link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, sent[0].Text, u.Query().Get("text"))
}

type droppingNotifier struct{}

func (droppingNotifier) Notify(context.Context, notify.Notification) {}

func TestSubmitClearsEvenWhenChannelDrops(t *testing.T) {
	s := newStore(droppingNotifier{})
	s.Update(Patch{Issue: Ptr("other")})
	s.Submit(context.Background())
	assert.Nil(t, s.Current())
}

func TestSubmitWaitsDelay(t *testing.T) {
	s := newStore(&notify.Recorder{}, WithDelay(30*time.Millisecond))
	s.Update(Patch{Issue: Ptr("other")})

	start := time.Now()
	s.Submit(context.Background())
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestSubmitIgnoresCanceledContext(t *testing.T) {
	rec := &notify.Recorder{}
	s := newStore(rec)
	s.Update(Patch{Issue: Ptr("other")})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Submit(ctx)

	assert.Len(t, rec.Sent(), 1)
	assert.Nil(t, s.Current())
}
