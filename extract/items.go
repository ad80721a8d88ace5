package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// LineItem is one purchased entry parsed from a receipt body line.
type LineItem struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Quantity int     `json:"quantity"`
}

var (
	// Summary lines describe money already counted elsewhere, never
	// purchases.
	summaryLinePattern = regexp.MustCompile(`(?i)(total|subtotal|gst|tax|discount|amount payable|grand total|net amount)`)

	trailingAmountPattern = regexp.MustCompile(`([\d,]+\.\d{2})\s*$`)
	currencyAmountPattern = regexp.MustCompile(`₹\s*([\d,]+\.\d{2})`)
	quantityPattern       = regexp.MustCompile(`(?:(\d+)\s*[xX]|[xX]\s*(\d+))`)
)

// LineItems parses purchased entries of the shape "name ... amount" from the
// receipt body, emitting them in source line order. Quantity markers like
// "2 x Idli" or "Idli x2" are folded into the item; quantity defaults to 1.
func LineItems(text string) []LineItem {
	var items []LineItem
	for _, line := range strings.Split(text, "\n") {
		if summaryLinePattern.MatchString(line) {
			continue
		}

		m := trailingAmountPattern.FindStringSubmatchIndex(line)
		if m == nil {
			m = currencyAmountPattern.FindStringSubmatchIndex(line)
		}
		if m == nil {
			continue
		}
		amount, err := parseCurrency(line[m[2]:m[3]])
		if err != nil {
			continue
		}

		name := strings.TrimSpace(line[:m[0]])
		quantity := 1
		if qm := quantityPattern.FindStringSubmatch(name); qm != nil {
			digits := qm[1]
			if digits == "" {
				digits = qm[2]
			}
			if q, err := strconv.Atoi(digits); err == nil {
				quantity = q
			}
			name = strings.TrimSpace(quantityPattern.ReplaceAllString(name, ""))
		}

		if name == "" {
			continue
		}
		items = append(items, LineItem{Name: name, Amount: amount, Quantity: quantity})
	}
	return items
}
