package printsales

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in   string
		want Date
		err  bool
	}{
		{in: "2025-01-02", want: NewDate(2025, time.January, 2)},
		{in: "2025-1-2", want: NewDate(2025, time.January, 2)},
		{in: "02-01-2025", err: true},
		{in: "not a date", err: true},
		{in: "", err: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.err {
			if err == nil {
				t.Errorf("ParseDate(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDateStringOrdersLexicographically(t *testing.T) {
	a, b := NewDate(2025, time.January, 9), NewDate(2025, time.October, 1)
	if !(a.String() < b.String()) {
		t.Errorf("%q not < %q, zero padding broken", a, b)
	}
}

func TestDateAddNormalizes(t *testing.T) {
	got := NewDate(2025, time.January, 31).Add(1)
	if want := NewDate(2025, time.February, 1); got != want {
		t.Errorf("Add(1) = %v, want %v", got, want)
	}
}

func TestDateCompare(t *testing.T) {
	a, b := day("2025-01-01"), day("2025-01-02")
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("Compare() disagrees with chronological order")
	}
	if !a.Before(b) || !b.After(a) {
		t.Error("Before/After disagree with chronological order")
	}
}
