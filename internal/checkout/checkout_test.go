package checkout

import (
	"context"
	"testing"

	"github.com/ariefcatur/go-repair-shop/internal/cart"
	"github.com/ariefcatur/go-repair-shop/internal/catalog"
	"github.com/ariefcatur/go-repair-shop/internal/money"
	"github.com/ariefcatur/go-repair-shop/internal/notify"
	"github.com/ariefcatur/go-repair-shop/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func filledCart(t *testing.T) *cart.Store {
	t.Helper()
	ctx := context.Background()
	c, err := cart.Open(ctx, cart.NewMemoryStorage(), cart.Key("s1"), zap.NewNop())
	require.NoError(t, err)
	c.AddItem(ctx, catalog.Product{ID: "p1", Price: money.New(249, money.MDL)}, 2)
	c.AddItem(ctx, catalog.Product{ID: "p2", Price: money.New(100, money.MDL)}, 1)
	return c
}

func newService() (*Service, *notify.Recorder) {
	rec := &notify.Recorder{}
	return &Service{Notifier: rec, LinkBase: "https://wa.me/37360000000"}, rec
}

func keyOf(t *testing.T, err error) string {
	t.Helper()
	k, ok := validation.KeyOf(err)
	require.True(t, ok, "expected validation error, got %v", err)
	return k
}

func TestPlaceOrderValidation(t *testing.T) {
	ctx := context.Background()
	svc, rec := newService()

	t.Run("empty cart", func(t *testing.T) {
		empty, err := cart.Open(ctx, cart.NewMemoryStorage(), cart.Key("x"), zap.NewNop())
		require.NoError(t, err)
		_, err = svc.PlaceOrder(ctx, "x", empty, Form{Name: "Ana", Phone: "1"})
		assert.Equal(t, KeyCartEmpty, keyOf(t, err))
	})

	t.Run("missing phone", func(t *testing.T) {
		c := filledCart(t)
		_, err := svc.PlaceOrder(ctx, "s1", c, Form{Name: "Ana"})
		assert.Equal(t, KeyFillRequired, keyOf(t, err))
		assert.False(t, c.Empty())
	})

	t.Run("courier without address", func(t *testing.T) {
		c := filledCart(t)
		_, err := svc.PlaceOrder(ctx, "s1", c, Form{Name: "Ana", Phone: "1", Fulfillment: Courier})
		assert.Equal(t, KeyDeliveryAddress, keyOf(t, err))
		assert.False(t, c.Empty())
	})

	assert.Empty(t, rec.Sent())
}

func TestPlaceOrderPickup(t *testing.T) {
	ctx := context.Background()
	svc, rec := newService()
	c := filledCart(t)

	o, err := svc.PlaceOrder(ctx, "s1", c, Form{Name: "Ana", Phone: "060000000"})
	require.NoError(t, err)

	assert.True(t, c.Empty())
	assert.Len(t, o.Lines, 2)
	assert.True(t, o.Subtotal.Equal(money.New(598, money.MDL)))
	assert.True(t, o.DeliveryFee.IsZero())
	assert.True(t, o.Total.Equal(money.New(598, money.MDL)))
	assert.Equal(t, Pickup, o.Form.Fulfillment)
	assert.Equal(t, CashOnDelivery, o.Form.Payment)

	sent := rec.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, notify.KindOrder, sent[0].Kind)
	assert.Equal(t, o.Link, sent[0].Link)
	assert.Contains(t, o.Message, "🚚 Ridicare din service")
	assert.Contains(t, o.Message, "💰 Total: 598 MDL")
}

func TestPlaceOrderCourierAddsFee(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	c := filledCart(t)

	o, err := svc.PlaceOrder(ctx, "s1", c, Form{Name: "Ana", Phone: "1", Fulfillment: Courier, Address: "str. Ștefan cel Mare 1"})
	require.NoError(t, err)
	assert.True(t, o.DeliveryFee.Equal(CourierFee))
	assert.True(t, o.Total.Equal(money.New(648, money.MDL)))
	assert.Contains(t, o.Message, "🚚 Livrare: str. Ștefan cel Mare 1")
	assert.Contains(t, o.Message, "💰 Total: 598 MDL")
}

func TestPlaceOrderCourierNeedsMDLCart(t *testing.T) {
	ctx := context.Background()
	svc, rec := newService()
	c, err := cart.Open(ctx, cart.NewMemoryStorage(), cart.Key("eur"), zap.NewNop())
	require.NoError(t, err)
	c.AddItem(ctx, catalog.Product{ID: "p1", Price: money.New(20, money.EUR)}, 1)

	_, err = svc.PlaceOrder(ctx, "eur", c, Form{Name: "Ana", Phone: "1", Fulfillment: Courier, Address: "str. Unirii 2"})
	assert.Equal(t, KeyCourierCurrency, keyOf(t, err))
	assert.False(t, c.Empty())
	assert.Empty(t, rec.Sent())

	o, err := svc.PlaceOrder(ctx, "eur", c, Form{Name: "Ana", Phone: "1"})
	require.NoError(t, err)
	assert.True(t, o.DeliveryFee.Equal(money.Zero(money.EUR)))
	assert.True(t, o.Total.Equal(money.New(20, money.EUR)))
}

func TestFormatMessage(t *testing.T) {
	msg := FormatMessage(Form{Name: "Ana", Phone: "060000000", Email: "ana@example.com", Fulfillment: Pickup}, money.New(200, money.MDL))
	want := "Comandă nouă:\n" +
		"👤 Ana\n" +
		"📞 060000000\n" +
		"📧 ana@example.com\n" +
		"🚚 Ridicare din service\n" +
		"💰 Total: 200 MDL"
	assert.Equal(t, want, msg)

	assert.Contains(t, FormatMessage(Form{Name: "Ana", Phone: "1"}, money.New(1, money.MDL)), "📧 N/A")
}
