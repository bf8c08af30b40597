// Package whatsapp composes the order summary message relayed to staff and
// builds the wa.me handoff link.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/money"
	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/order"
)

// Details carries the fulfillment-specific field for the detail line. Only the
// field matching the order's fulfillment type is read.
type Details struct {
	Address    string
	TableNo    string
	PickupTime string
}

// ComposeMessage renders the plain-text order summary. Each item appears as
// "{qty} {name} ({Rp...})", comma-joined. Exactly one detail line is appended,
// selected by the fulfillment type; an empty detail value yields no line.
// The result is not URL-encoded; Link does that.
func ComposeMessage(customer string, items []order.Item, total int64, method order.FulfillmentType, details Details) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("%d %s (%s)", it.Quantity, it.Name, money.Rupiah(it.Price)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Halo Admin, saya %s.\n\n", customer)
	fmt.Fprintf(&b, "Order: %s\n\n", strings.Join(lines, ", "))
	fmt.Fprintf(&b, "Total: %s\n", money.Rupiah(total))
	fmt.Fprintf(&b, "Metode: %s", method)

	switch method {
	case order.TypeDelivery:
		if details.Address != "" {
			fmt.Fprintf(&b, "\nAlamat: %s", details.Address)
		}
	case order.TypeDineIn:
		if details.TableNo != "" {
			fmt.Fprintf(&b, "\nNomor Meja: %s", details.TableNo)
		}
	case order.TypePickup:
		if details.PickupTime != "" {
			fmt.Fprintf(&b, "\nWaktu Pickup: %s", details.PickupTime)
		}
	}

	return b.String()
}

// Link builds the wa.me deep link for the given recipient phone number
// (international format, digits only) and message text.
func Link(phone, message string) string {
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(message)
}
