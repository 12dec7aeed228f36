package booking

import (
	"fmt"
	"strings"
)

const notAvailable = "N/A"

// FormatMessage renders the draft summary sent to the shop. Field order is fixed.
func FormatMessage(d Draft) string {
	var name, phone, email string
	if d.Customer != nil {
		name, phone, email = d.Customer.Name, d.Customer.Phone, d.Customer.Email
	}
	if email == "" {
		email = notAvailable
	}

	var b strings.Builder
	b.WriteString("Rezervare nouă:\n")
	fmt.Fprintf(&b, "📱 Model: %s %s\n", d.DeviceBrand, d.DeviceModel)
	fmt.Fprintf(&b, "🔧 Problemă: %s\n", d.Issue)
	fmt.Fprintf(&b, "👤 Nume: %s\n", name)
	fmt.Fprintf(&b, "📞 Telefon: %s\n", phone)
	fmt.Fprintf(&b, "📧 Email: %s", email)
	return b.String()
}
