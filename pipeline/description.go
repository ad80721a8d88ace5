package pipeline

import (
	"fmt"
	"strings"

	"github.com/rupeetrack/receiptkit/extract"
)

// Describe composes a short human-readable expense description from whatever
// was extracted. Merchant plus a few items reads like a purchase summary;
// with less to work with it degrades to the category.
func Describe(merchant string, items []extract.LineItem, category string) string {
	switch {
	case merchant != "" && len(items) == 1:
		return fmt.Sprintf("%s from %s", items[0].Name, merchant)
	case merchant != "" && len(items) > 0 && len(items) <= 3:
		names := make([]string, len(items))
		for i, item := range items {
			names[i] = item.Name
		}
		return fmt.Sprintf("%s from %s", strings.Join(names, ", "), merchant)
	case merchant != "" && len(items) > 3:
		return fmt.Sprintf("Multiple items from %s", merchant)
	case merchant != "":
		return fmt.Sprintf("Purchase from %s", merchant)
	case len(items) == 1:
		return items[0].Name
	case len(items) > 1:
		return fmt.Sprintf("Multiple items - %s", strings.ToLower(category))
	default:
		return fmt.Sprintf("Expense - %s", strings.ToLower(category))
	}
}
