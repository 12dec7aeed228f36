package httpx

import (
	"net/http"

	"github.com/ariefcatur/go-repair-shop/internal/cart"
	"github.com/ariefcatur/go-repair-shop/internal/catalog"
	"github.com/ariefcatur/go-repair-shop/internal/checkout"
	"github.com/ariefcatur/go-repair-shop/internal/locale"
	"github.com/ariefcatur/go-repair-shop/internal/money"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	keyInvalidQuantity = "shop.invalidQuantity"
	keyOrderSuccess    = "shop.orderSuccess"
	maxQty             = 99
)

type CartHandler struct {
	Catalog  catalog.Catalog
	Checkout *checkout.Service
	Log      *zap.Logger
}

func (h *CartHandler) Register(r chi.Router) {
	r.Get("/cart", h.getCart)
	r.Delete("/cart", h.clearCart)
	r.Post("/cart/items", h.addItem)
	r.Patch("/cart/items/{productID}", h.updateItem)
	r.Delete("/cart/items/{productID}", h.removeItem)
	r.Post("/checkout", h.placeOrder)
}

type cartResp struct {
	Lines     []cart.Line `json:"lines"`
	Total     money.Money `json:"total"`
	ItemCount int         `json:"itemCount"`
}

func viewCart(c *cart.Store) cartResp {
	return cartResp{Lines: c.Lines(), Total: c.Total(), ItemCount: c.ItemCount()}
}

type addItemReq struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

type updateItemReq struct {
	Qty int `json:"qty"`
}

func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r.Context())
	s.Lock()
	defer s.Unlock()
	writeJSON(w, http.StatusOK, viewCart(s.Cart))
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemReq
	if !decode(w, r, &req) {
		return
	}
	if req.Qty < 1 || req.Qty > maxQty {
		respondInvalid(w, r, keyInvalidQuantity)
		return
	}
	p, ok := h.Catalog.ProductByID(req.ProductID)
	if !ok {
		respondError(w, http.StatusNotFound, locale.T(localeFrom(r.Context()), keyProductNotFound), CodeNotFound)
		return
	}

	s := sessionFrom(r.Context())
	s.Lock()
	defer s.Unlock()
	s.Cart.AddItem(r.Context(), p, req.Qty)
	writeJSON(w, http.StatusOK, viewCart(s.Cart))
}

// PATCH /cart/items/{productID}; qty 0 removes the line.
func (h *CartHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemReq
	if !decode(w, r, &req) {
		return
	}
	if req.Qty < 0 || req.Qty > maxQty {
		respondInvalid(w, r, keyInvalidQuantity)
		return
	}

	s := sessionFrom(r.Context())
	s.Lock()
	defer s.Unlock()
	s.Cart.UpdateQty(r.Context(), chi.URLParam(r, "productID"), req.Qty)
	writeJSON(w, http.StatusOK, viewCart(s.Cart))
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r.Context())
	s.Lock()
	defer s.Unlock()
	s.Cart.RemoveItem(r.Context(), chi.URLParam(r, "productID"))
	writeJSON(w, http.StatusOK, viewCart(s.Cart))
}

func (h *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r.Context())
	s.Lock()
	defer s.Unlock()
	s.Cart.ClearCart(r.Context())
	writeJSON(w, http.StatusOK, viewCart(s.Cart))
}

type orderResp struct {
	checkout.Order
	Notice string `json:"notice"`
}

func (h *CartHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var form checkout.Form
	if !decode(w, r, &form) {
		return
	}

	s := sessionFrom(r.Context())
	s.Lock()
	defer s.Unlock()
	o, err := h.Checkout.PlaceOrder(r.Context(), s.ID, s.Cart, form)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	h.Log.Info("order placed",
		zap.String("session_id", s.ID),
		zap.String("total", o.Total.String()),
		zap.Int("lines", len(o.Lines)))
	writeJSON(w, http.StatusCreated, orderResp{Order: o, Notice: locale.T(localeFrom(r.Context()), keyOrderSuccess)})
}
