package extract

import (
	"regexp"
	"strings"
	"time"
)

// isoDate is the normalized output layout for every extracted date.
const isoDate = "2006-01-02"

// datePatterns are tried in order; the first whose match also survives
// calendar validation wins. A match that fails validation is skipped, not
// fatal. Word boundaries keep a day-month pair from being carved out of a
// longer digit run (e.g. the tail of an ISO date).
var datePatterns = []struct {
	re    *regexp.Regexp
	parse func(m []string) (time.Time, error)
}{
	{
		// DD-MM-YYYY or DD/MM/YY
		re: regexp.MustCompile(`\b(\d{1,2})[-/](\d{1,2})[-/](\d{2,4})\b`),
		parse: func(m []string) (time.Time, error) {
			layout := "2/1/2006"
			if len(m[3]) == 2 {
				layout = "2/1/06"
			}
			return time.Parse(layout, m[1]+"/"+m[2]+"/"+m[3])
		},
	},
	{
		// DD Mon YYYY, three-letter month with optional trailing characters
		re: regexp.MustCompile(`(?i)\b(\d{1,2})\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*[\s,]*(\d{2,4})\b`),
		parse: func(m []string) (time.Time, error) {
			month := strings.ToUpper(m[2][:1]) + strings.ToLower(m[2][1:])
			layout := "2 Jan 2006"
			if len(m[3]) == 2 {
				layout = "2 Jan 06"
			}
			return time.Parse(layout, m[1]+" "+month+" "+m[3])
		},
	},
	{
		// YYYY-MM-DD
		re: regexp.MustCompile(`\b(\d{4})[-/](\d{1,2})[-/](\d{1,2})\b`),
		parse: func(m []string) (time.Time, error) {
			return time.Parse("2006-1-2", m[1]+"-"+m[2]+"-"+m[3])
		},
	},
}

// Date finds the transaction date and normalizes it to YYYY-MM-DD. The
// second value reports whether any pattern yielded a valid calendar date.
func Date(text string) (string, bool) {
	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		t, err := p.parse(m)
		if err != nil {
			continue
		}
		return t.Format(isoDate), true
	}
	return "", false
}
