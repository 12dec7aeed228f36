package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/ariefcatur/go-repair-shop/internal/cart"
	"github.com/ariefcatur/go-repair-shop/internal/money"
	"github.com/ariefcatur/go-repair-shop/internal/notify"
	"github.com/ariefcatur/go-repair-shop/internal/validation"
)

type Fulfillment string

const (
	Pickup  Fulfillment = "pickup"
	Courier Fulfillment = "courier"
)

type Payment string

const (
	CashOnDelivery Payment = "cod"
	PayAtPickup    Payment = "pickup"
)

const (
	KeyCartEmpty       = "shop.cartEmpty"
	KeyFillRequired    = "shop.fillRequired"
	KeyDeliveryAddress = "shop.addDeliveryAddress"
	KeyCourierCurrency = "shop.courierCurrency"
)

// CourierFee is charged on top of the cart for courier delivery.
var CourierFee = money.New(50, money.MDL)

type Form struct {
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	Email       string      `json:"email"`
	Fulfillment Fulfillment `json:"fulfillment"`
	Address     string      `json:"address"`
	Payment     Payment     `json:"payment"`
}

// Order is the summary of a placed order intent.
type Order struct {
	Lines       []cart.Line `json:"lines"`
	Subtotal    money.Money `json:"subtotal"`
	DeliveryFee money.Money `json:"deliveryFee"`
	Total       money.Money `json:"total"`
	Form        Form        `json:"customer"`
	Message     string      `json:"message"`
	Link        string      `json:"link"`
}

func (f Form) validate() error {
	if f.Name == "" || f.Phone == "" {
		return validation.New(KeyFillRequired)
	}
	if f.Fulfillment == Courier && f.Address == "" {
		return validation.New(KeyDeliveryAddress)
	}
	return nil
}

// deliveryFee prices delivery in the cart's currency. The courier tariff exists only in
// CourierFee's currency, so courier delivery of any other cart is refused.
func deliveryFee(f Fulfillment, currency money.Currency) (money.Money, error) {
	if f != Courier {
		return money.Zero(currency), nil
	}
	if currency != CourierFee.Currency {
		return money.Money{}, validation.New(KeyCourierCurrency)
	}
	return CourierFee, nil
}

// Service places order intents: it empties the cart and sends the order summary.
type Service struct {
	Notifier notify.Notifier
	LinkBase string
}

// PlaceOrder validates the form, clears the cart and dispatches the summary. The message
// reports the cart total; the courier fee is shown separately in the returned order.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, c *cart.Store, f Form) (Order, error) {
	if c.Empty() {
		return Order{}, validation.New(KeyCartEmpty)
	}
	if f.Fulfillment == "" {
		f.Fulfillment = Pickup
	}
	if f.Payment == "" {
		f.Payment = CashOnDelivery
	}
	if err := f.validate(); err != nil {
		return Order{}, err
	}

	subtotal := c.Total()
	fee, err := deliveryFee(f.Fulfillment, subtotal.Currency)
	if err != nil {
		return Order{}, err
	}
	o := Order{
		Lines:       c.Lines(),
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal.Add(fee),
		Form:        f,
	}
	c.ClearCart(ctx)

	o.Message = FormatMessage(f, subtotal)
	o.Link = notify.Link(s.LinkBase, o.Message)
	s.Notifier.Notify(ctx, notify.Notification{
		Kind:      notify.KindOrder,
		SessionID: sessionID,
		Text:      o.Message,
		Link:      o.Link,
	})
	return o, nil
}

func FormatMessage(f Form, total money.Money) string {
	email := f.Email
	if email == "" {
		email = "N/A"
	}
	delivery := "Ridicare din service"
	if f.Fulfillment == Courier {
		delivery = "Livrare: " + f.Address
	}

	var b strings.Builder
	b.WriteString("Comandă nouă:\n")
	fmt.Fprintf(&b, "👤 %s\n", f.Name)
	fmt.Fprintf(&b, "📞 %s\n", f.Phone)
	fmt.Fprintf(&b, "📧 %s\n", email)
	fmt.Fprintf(&b, "🚚 %s\n", delivery)
	fmt.Fprintf(&b, "💰 Total: %s %s", total.Amount.String(), total.Currency)
	return b.String()
}
