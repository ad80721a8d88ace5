package extract

import "testing"

func TestDateFormats(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Date: 15-01-2024", "2024-01-15"},
		{"Date: 15/01/2024", "2024-01-15"},
		{"Date: 05/03/24", "2024-03-05"},
		{"Date: 2024-01-15", "2024-01-15"},
		{"Visited on 5 Mar 2024, thanks", "2024-03-05"},
		{"15 january 2024", "2024-01-15"},
	}
	for _, c := range cases {
		got, ok := Date(c.text)
		if !ok || got != c.want {
			t.Fatalf("Date(%q) = %q, %v; want %q", c.text, got, ok, c.want)
		}
	}
}

func TestDateRoundTripStable(t *testing.T) {
	first, ok := Date("2024-01-15")
	if !ok {
		t.Fatalf("expected a date")
	}
	second, ok := Date(first)
	if !ok || second != first {
		t.Fatalf("round trip unstable: %q -> %q", first, second)
	}
}

func TestDateInvalidCalendarDateIsSkipped(t *testing.T) {
	// 31 February fails validation; the later ISO date must still win.
	got, ok := Date("31/02/2024 printed 2024-06-01")
	if !ok || got != "2024-06-01" {
		t.Fatalf("Date() = %q, %v; want 2024-06-01", got, ok)
	}
}

func TestDateNothingMatches(t *testing.T) {
	if _, ok := Date("no dates to see here"); ok {
		t.Fatalf("expected no date")
	}
}
