package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/ariefcatur/go-repair-shop/internal/catalog"
	"github.com/ariefcatur/go-repair-shop/internal/money"
	"go.uber.org/zap"
)

// Line is one cart entry per distinct product. Total is always UnitPrice × Qty.
type Line struct {
	ProductID string      `json:"productId"`
	Qty       int         `json:"qty"`
	UnitPrice money.Money `json:"unitPrice"`
	Total     money.Money `json:"total"`
}

func newLine(productID string, unit money.Money, qty int) Line {
	return Line{ProductID: productID, Qty: qty, UnitPrice: unit, Total: unit.Mul(qty)}
}

func (l Line) withQty(qty int) Line {
	l.Qty = qty
	l.Total = l.UnitPrice.Mul(qty)
	return l
}

// Store owns one visitor's cart. It is not safe for concurrent use; callers serialize access.
type Store struct {
	key     string
	lines   []Line
	storage Storage
	log     *zap.Logger
}

// Open restores the cart saved under key. A missing or unreadable state starts an empty
// cart; any other load failure is returned so the saved cart is never overwritten.
func Open(ctx context.Context, storage Storage, key string, log *zap.Logger) (*Store, error) {
	s := &Store{key: key, storage: storage, log: log}
	st, err := storage.Load(ctx, key)
	switch {
	case err == nil:
		s.lines = st.Lines
	case errors.Is(err, ErrNotFound):
	case errors.Is(err, ErrCorrupt):
		log.Warn("cart state unreadable, starting empty", zap.String("key", key), zap.Error(err))
	default:
		return nil, fmt.Errorf("restore cart %s: %w", key, err)
	}
	return s, nil
}

// AddItem merges qty into the product's line or appends a line priced at product.Price.
// qty below 1 is ignored.
func (s *Store) AddItem(ctx context.Context, p catalog.Product, qty int) {
	if qty < 1 {
		return
	}
	if i := s.find(p.ID); i >= 0 {
		s.lines[i] = s.lines[i].withQty(s.lines[i].Qty + qty)
	} else {
		s.lines = append(s.lines, newLine(p.ID, p.Price, qty))
	}
	s.persist(ctx)
}

// UpdateQty sets the line quantity; qty <= 0 removes the line. Unknown ids are ignored.
func (s *Store) UpdateQty(ctx context.Context, productID string, qty int) {
	if qty <= 0 {
		s.RemoveItem(ctx, productID)
		return
	}
	if i := s.find(productID); i >= 0 {
		s.lines[i] = s.lines[i].withQty(qty)
	}
	s.persist(ctx)
}

func (s *Store) RemoveItem(ctx context.Context, productID string) {
	if i := s.find(productID); i >= 0 {
		s.lines = append(s.lines[:i:i], s.lines[i+1:]...)
	}
	s.persist(ctx)
}

func (s *Store) ClearCart(ctx context.Context) {
	s.lines = nil
	s.persist(ctx)
}

// Total sums line totals in the first line's currency. Mixed currencies are not checked.
func (s *Store) Total() money.Money {
	if len(s.lines) == 0 {
		return money.Zero(money.DefaultCurrency)
	}
	total := money.Zero(s.lines[0].Total.Currency)
	for _, l := range s.lines {
		total = total.Add(l.Total)
	}
	return total
}

func (s *Store) ItemCount() int {
	n := 0
	for _, l := range s.lines {
		n += l.Qty
	}
	return n
}

func (s *Store) Lines() []Line {
	return append([]Line(nil), s.lines...)
}

func (s *Store) Empty() bool { return len(s.lines) == 0 }

func (s *Store) find(productID string) int {
	for i, l := range s.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) persist(ctx context.Context) {
	if err := s.storage.Save(ctx, s.key, State{Lines: s.Lines(), Version: StateVersion}); err != nil {
		s.log.Warn("cart persist failed", zap.String("key", s.key), zap.Error(err))
	}
}
