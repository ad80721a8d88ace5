package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Labeled totals are preferred over any other number on the receipt; the
// more specific labels outrank a bare "total".
var labeledTotalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:grand total|grandtotal|net amount|amount payable|amount to pay|total amount|bill total)[:\s]*₹?\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)total[:\s]*₹?\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
}

var currencyTokenPattern = regexp.MustCompile(`₹?\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)

// Amount finds the payable total. It first looks for an explicitly labeled
// total line; failing that it falls back to the numerically largest
// currency-like token anywhere in the text. The second value reports whether
// anything parsed.
func Amount(text string) (float64, bool) {
	for _, pat := range labeledTotalPatterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			if v, err := parseCurrency(m[1]); err == nil {
				return v, true
			}
		}
	}

	var best float64
	found := false
	for _, m := range currencyTokenPattern.FindAllStringSubmatch(text, -1) {
		v, err := parseCurrency(m[1])
		if err != nil {
			continue
		}
		if !found || v > best {
			best = v
			found = true
		}
	}
	return best, found
}

func parseCurrency(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
