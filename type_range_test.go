package printsales

import "testing"

func TestNewRangeSwapsReversedBounds(t *testing.T) {
	r := NewRange(day("2025-01-05"), day("2025-01-01"))
	if r.From != day("2025-01-01") || r.To != day("2025-01-05") {
		t.Errorf("NewRange did not swap: %v", r)
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(day("2025-01-02"), day("2025-01-04"))
	testCases := []struct {
		date string
		want bool
	}{
		{"2025-01-01", false},
		{"2025-01-02", true},
		{"2025-01-03", true},
		{"2025-01-04", true},
		{"2025-01-05", false},
	}
	for _, tc := range testCases {
		if got := r.Contains(day(tc.date)); got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestRangeDays(t *testing.T) {
	r := NewRange(day("2025-01-30"), day("2025-02-02"))
	var got []Date
	for d := range r.Days() {
		got = append(got, d)
	}
	want := []Date{day("2025-01-30"), day("2025-01-31"), day("2025-02-01"), day("2025-02-02")}
	if len(got) != len(want) {
		t.Fatalf("got %d days, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("day[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
