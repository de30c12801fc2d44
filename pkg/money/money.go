// Package money formats rupiah amounts. Every price shown to a user,
// in API responses or in the WhatsApp order message, goes through
// FormatIDR so the output stays uniform.
package money

import "strconv"

// FormatIDR renders a whole-rupiah amount as "Rp 1.234.567".
// Amounts in this domain carry no fractional subunit.
func FormatIDR(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	// Insert a dot every three digits from the right.
	n := len(digits)
	grouped := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, digits[i])
	}

	out := "Rp " + string(grouped)
	if negative {
		out = "-" + out
	}
	return out
}
