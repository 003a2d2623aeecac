package youtube

import (
	"testing"
	"time"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
		ok    bool
	}{
		{"plain", "1234", 1234, true},
		{"comma separated", "123,456,789", 123456789, true},
		{"trims whitespace", " 42 ", 42, true},
		{"empty", "", 0, false},
		{"abbreviated not parsed", "1.2M", 0, false},
		{"words not parsed", "1.2 million subscribers", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCount(tt.input)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseJoinedDate(t *testing.T) {
	got, ok := ParseJoinedDate("Mar 15, 2015")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	want := time.Date(2015, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, ok := ParseJoinedDate("not a date"); ok {
		t.Error("expected parse to fail")
	}
	if _, ok := ParseJoinedDate(""); ok {
		t.Error("expected parse to fail on empty input")
	}
}

func TestParseJoinedDate_FullMonthName(t *testing.T) {
	// Some locales render the full month; the three-letter prefix still keys it.
	got, ok := ParseJoinedDate("March 15, 2015")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if got.Month() != time.March {
		t.Errorf("month = %v, want March", got.Month())
	}
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	joined := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	if got := DaysSince(joined, now); got != 9 {
		t.Errorf("got %d, want 9", got)
	}

	// Clock skew must not produce negative ages.
	future := now.Add(48 * time.Hour)
	if got := DaysSince(future, now); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}
