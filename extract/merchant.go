package extract

import (
	"regexp"
	"strings"
)

// Administrative vocabulary that disqualifies a header line from being the
// merchant name.
var merchantSkipWords = []string{"bill", "invoice", "receipt", "date", "time", "gst", "tax"}

var alphaPattern = regexp.MustCompile(`[A-Za-z]`)

// Merchant scans the first five non-empty lines of the receipt for the shop
// name: the first line that carries no administrative vocabulary and
// contains at least one letter.
func Merchant(text string) (string, bool) {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > 5 {
			break
		}
		lower := strings.ToLower(line)
		if containsAny(lower, merchantSkipWords) {
			continue
		}
		if alphaPattern.MatchString(line) {
			return line, true
		}
	}
	return "", false
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
