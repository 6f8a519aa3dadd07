package currency

import "github.com/shopspring/decimal"

// Prices are stored as whole rupees. Display formats them with the Indian
// digit grouping used throughout the storefront (₹1,00,000).
func Display(amount int64) string {
	if amount < 0 {
		return "-₹" + group(decimal.NewFromInt(-amount))
	}
	return "₹" + group(decimal.NewFromInt(amount))
}

func group(d decimal.Decimal) string {
	s := d.StringFixed(0)
	if len(s) > 3 {
		head := s[:len(s)-3]
		tail := s[len(s)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		s = ""
		for _, p := range parts {
			s += p + ","
		}
		s += tail
	}
	return s
}
