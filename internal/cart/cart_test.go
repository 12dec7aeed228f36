package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/ariefcatur/go-repair-shop/internal/catalog"
	"github.com/ariefcatur/go-repair-shop/internal/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func product(id string, amount int64) catalog.Product {
	return catalog.Product{ID: id, Slug: id, Title: id, Price: money.New(amount, money.MDL), Stock: 10}
}

func newStore(t *testing.T) (*Store, *MemoryStorage) {
	t.Helper()
	st := NewMemoryStorage()
	return mustOpen(t, st, "s1"), st
}

func mustOpen(t *testing.T, st Storage, sessionID string) *Store {
	t.Helper()
	s, err := Open(context.Background(), st, Key(sessionID), zap.NewNop())
	require.NoError(t, err)
	return s
}

func amount(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestCartScenario(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	s.AddItem(ctx, product("p1", 100), 2)
	assert.True(t, s.Total().Equal(money.New(200, money.MDL)))
	assert.Equal(t, 2, s.ItemCount())

	s.UpdateQty(ctx, "p1", 5)
	assert.True(t, s.Total().Equal(money.New(500, money.MDL)))

	s.UpdateQty(ctx, "p1", 0)
	assert.True(t, s.Empty())
	assert.True(t, s.Total().Equal(money.New(0, money.MDL)))
}

func TestAddItemMergesSameProduct(t *testing.T) {
	ctx := context.Background()
	a, _ := newStore(t)
	b, _ := newStore(t)

	a.AddItem(ctx, product("p1", 75), 2)
	a.AddItem(ctx, product("p1", 75), 3)
	b.AddItem(ctx, product("p1", 75), 5)

	require.Len(t, a.Lines(), 1)
	assert.Equal(t, b.Lines(), a.Lines())
	assert.Equal(t, 5, a.Lines()[0].Qty)
}

func TestAddItemSnapshotsUnitPrice(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	s.AddItem(ctx, product("p1", 100), 1)
	s.AddItem(ctx, product("p1", 999), 1)

	l := s.Lines()[0]
	assert.True(t, l.UnitPrice.Amount.Equal(amount(100)))
	assert.True(t, l.Total.Amount.Equal(amount(200)))
}

func TestAddItemIgnoresNonPositiveQty(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	s.AddItem(ctx, product("p1", 100), 0)
	s.AddItem(ctx, product("p1", 100), -2)
	assert.True(t, s.Empty())
}

func TestLineTotalAlwaysDerived(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	ops := []func(){
		func() { s.AddItem(ctx, product("a", 19), 3) },
		func() { s.AddItem(ctx, product("b", 250), 1) },
		func() { s.UpdateQty(ctx, "a", 7) },
		func() { s.AddItem(ctx, product("a", 19), 2) },
		func() { s.UpdateQty(ctx, "b", 4) },
		func() { s.UpdateQty(ctx, "missing", 4) },
	}
	for _, op := range ops {
		op()
		for _, l := range s.Lines() {
			assert.True(t, l.Total.Amount.Equal(l.UnitPrice.Amount.Mul(amount(int64(l.Qty)))), "line %s", l.ProductID)
		}
	}

	count, sum := 0, decimal.Zero
	for _, l := range s.Lines() {
		count += l.Qty
		sum = sum.Add(l.Total.Amount)
	}
	assert.Equal(t, count, s.ItemCount())
	assert.True(t, s.Total().Amount.Equal(sum))
	assert.True(t, s.Total().Amount.Equal(amount(9*19+4*250)))
}

func TestUpdateQtyZeroEqualsRemove(t *testing.T) {
	ctx := context.Background()
	a, _ := newStore(t)
	b, _ := newStore(t)
	for _, s := range []*Store{a, b} {
		s.AddItem(ctx, product("p1", 10), 1)
		s.AddItem(ctx, product("p2", 20), 2)
	}

	a.UpdateQty(ctx, "p1", 0)
	b.RemoveItem(ctx, "p1")
	assert.Equal(t, b.Lines(), a.Lines())

	a.UpdateQty(ctx, "p2", -1)
	assert.True(t, a.Empty())
}

func TestUnknownProductIsNoop(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)
	s.AddItem(ctx, product("p1", 10), 1)

	s.UpdateQty(ctx, "nope", 3)
	s.RemoveItem(ctx, "nope")
	s.RemoveItem(ctx, "")
	require.Len(t, s.Lines(), 1)
	assert.Equal(t, 1, s.ItemCount())
}

func TestTotalUsesFirstLineCurrency(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	eur := catalog.Product{ID: "e", Price: money.New(10, money.EUR)}
	s.AddItem(ctx, eur, 1)
	s.AddItem(ctx, product("m", 5), 1)

	assert.Equal(t, money.EUR, s.Total().Currency)
	assert.True(t, s.Total().Amount.Equal(amount(15)))
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)
	s.AddItem(ctx, product("p1", 10), 1)
	s.ClearCart(ctx)

	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.ItemCount())
	assert.Equal(t, money.MDL, s.Total().Currency)
}

func TestReloadRestoresLines(t *testing.T) {
	ctx := context.Background()
	s, st := newStore(t)
	s.AddItem(ctx, product("p1", 100), 2)
	s.AddItem(ctx, product("p2", 40), 1)

	reloaded := mustOpen(t, st, "s1")
	want, got := s.Lines(), reloaded.Lines()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ProductID, got[i].ProductID)
		assert.Equal(t, want[i].Qty, got[i].Qty)
		assert.True(t, want[i].UnitPrice.Equal(got[i].UnitPrice))
		assert.True(t, want[i].Total.Equal(got[i].Total))
	}
	assert.True(t, reloaded.Total().Equal(money.New(240, money.MDL)))

	other := mustOpen(t, st, "s2")
	assert.True(t, other.Empty())
}

func TestLinesReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)
	s.AddItem(ctx, product("p1", 100), 1)

	lines := s.Lines()
	lines[0].Qty = 50
	assert.Equal(t, 1, s.Lines()[0].Qty)
}

type failingStorage struct{ loadErr, saveErr error }

func (f failingStorage) Load(context.Context, string) (State, error) { return State{}, f.loadErr }
func (f failingStorage) Save(context.Context, string, State) error  { return f.saveErr }

func TestSaveFailureDoesNotBreakCart(t *testing.T) {
	ctx := context.Background()
	s := mustOpen(t, failingStorage{loadErr: ErrNotFound, saveErr: errors.New("down")}, "s1")

	s.AddItem(ctx, product("p1", 100), 1)
	assert.Equal(t, 1, s.ItemCount())
}

func TestOpenReturnsLoadFailure(t *testing.T) {
	down := errors.New("down")
	s, err := Open(context.Background(), failingStorage{loadErr: down}, Key("s1"), zap.NewNop())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, down)
}
