package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	cartdomain "github.com/tokobajusablon/storefront/internal/cart/domain"
	"github.com/tokobajusablon/storefront/pkg/money"
)

// ErrEmptyCart is returned when checkout is attempted with no lines.
var ErrEmptyCart = errors.New("cart is empty")

// ErrShippingIncomplete is returned when a required shipping field is
// missing. Validation happens before any state changes.
var ErrShippingIncomplete = errors.New("shipping info incomplete")

// ShippingInfo is the customer-entered delivery data. Note is
// optional and rendered as "-" when empty.
type ShippingInfo struct {
	Name    string
	Phone   string
	Address string
	Note    string
}

// Validate checks the required fields.
func (s ShippingInfo) Validate() error {
	switch {
	case strings.TrimSpace(s.Name) == "":
		return fmt.Errorf("%w: nama", ErrShippingIncomplete)
	case strings.TrimSpace(s.Phone) == "":
		return fmt.Errorf("%w: hp", ErrShippingIncomplete)
	case strings.TrimSpace(s.Address) == "":
		return fmt.Errorf("%w: alamat", ErrShippingIncomplete)
	}
	return nil
}

const divider = "------------------------------------------"

// ComposeOrderMessage renders the order as the WhatsApp text the store
// admin receives: a numbered line per cart entry, the grand total and
// the shipping block. Currency formatting is the shared rupiah
// formatter used everywhere prices are shown.
func ComposeOrderMessage(items []cartdomain.LineItem, total int64, shipping ShippingInfo) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	var b strings.Builder
	b.WriteString("*HALO ADMIN TOKO BAJU*\n\n")
	b.WriteString("Saya ingin memesan produk berikut:\n")
	b.WriteString(divider + "\n")
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s (%s, %s) x %d = %s\n",
			i+1, item.Name, item.Color, item.Size, item.Quantity, money.FormatIDR(item.LineTotal()))
	}
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "*Total: %s*\n\n", money.FormatIDR(total))

	note := shipping.Note
	if note == "" {
		note = "-"
	}
	b.WriteString("*Data Pengiriman:*\n")
	fmt.Fprintf(&b, "Nama: %s\n", shipping.Name)
	fmt.Fprintf(&b, "No. HP: %s\n", shipping.Phone)
	fmt.Fprintf(&b, "Alamat: %s\n", shipping.Address)
	fmt.Fprintf(&b, "Catatan: %s\n\n", note)
	b.WriteString("Terima kasih.")

	return b.String(), nil
}

// HandoffURL builds the wa.me deep link carrying the order message.
// contactNumber is digits-only international format; the message is
// percent-encoded as a URI component.
func HandoffURL(contactNumber, message string) string {
	return "https://wa.me/" + contactNumber + "?text=" + encodeComponent(message)
}

// encodeComponent percent-encodes like a URI component: spaces become
// %20, not '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
