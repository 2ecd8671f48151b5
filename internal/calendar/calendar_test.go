package calendar

import (
	"errors"
	"testing"
)

func TestFirstDay(t *testing.T) {
	if got := DayNumber(1); got != 0 {
		t.Errorf("DayNumber(1) = %d, want 0", got)
	}
	if got := WeekdayName(1); got != "Monday" {
		t.Errorf("WeekdayName(1) = %q, want Monday", got)
	}
	if got := SeasonNumber(1); got != Spring {
		t.Errorf("SeasonNumber(1) = %d, want %d", got, Spring)
	}
	if got := YearNumber(1); got != 0 {
		t.Errorf("YearNumber(1) = %d, want 0", got)
	}
}

func TestSeasonBoundaries(t *testing.T) {
	if got := DayNumber(29); got != 0 {
		t.Errorf("DayNumber(29) = %d, want 0", got)
	}
	if got := SeasonNumber(28); got != Spring {
		t.Errorf("SeasonNumber(28) = %d, want Spring", got)
	}
	if got := SeasonNumber(29); got != Summer {
		t.Errorf("SeasonNumber(29) = %d, want Summer", got)
	}
	if got := SeasonName(85); got != "Winter" {
		t.Errorf("SeasonName(85) = %q, want Winter", got)
	}
	if got := YearNumber(112); got != 0 {
		t.Errorf("YearNumber(112) = %d, want 0", got)
	}
	if got := YearNumber(113); got != 1 {
		t.Errorf("YearNumber(113) = %d, want 1", got)
	}
	if got := SeasonNumber(113); got != Spring {
		t.Errorf("SeasonNumber(113) = %d, want Spring", got)
	}
}

func TestWeekdayCycle(t *testing.T) {
	want := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday", "Monday"}
	for i, name := range want {
		if got := WeekdayName(int32(i + 1)); got != name {
			t.Errorf("WeekdayName(%d) = %q, want %q", i+1, got, name)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Format(1); got != "Monday Spring 1, Year 1" {
		t.Errorf("Format(1) = %q", got)
	}
	if got := Format(168); got != "Sunday Summer 28, Year 2" {
		t.Errorf("Format(168) = %q", got)
	}
	for _, date := range []int32{0, -5} {
		if got := Format(date); got != "UNEXPECTED" {
			t.Errorf("Format(%d) = %q, want UNEXPECTED", date, got)
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	date, err := Index(2, 3, 15)
	if err != nil {
		t.Fatalf("Index() failed: %v", err)
	}
	if date != 112+56+15 {
		t.Fatalf("Index(2, 3, 15) = %d", date)
	}
	if YearNumber(date) != 1 || SeasonNumber(date) != Fall || DayNumber(date) != 14 {
		t.Errorf("round trip mismatch for %d: %s", date, Format(date))
	}

	if _, err := Index(1, 5, 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange for season 5, got %v", err)
	}
	if _, err := Index(1, 1, 29); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange for day 29, got %v", err)
	}
}

func TestParse(t *testing.T) {
	cases := map[string]int32{
		"29":            29,
		"1 summer 1":    29,
		"y2 Winter 28":  224,
		"1 4 15":        99,
		"  3  spring 2": 226,
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("Parse(%q) = %d, want %d", in, got, want)
		}
	}

	for _, in := range []string{"", "0", "1 autumn 3", "a b", "1 spring x"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}

func TestParseUpperBound(t *testing.T) {
	if got, err := Parse("2147483632"); err != nil || got != MaxDate {
		t.Errorf("expected MaxDate, got %d (%v)", got, err)
	}
	if _, err := Parse("2147483633"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange past MaxDate, got %v", err)
	}
	if _, err := Parse("19173962 spring 1"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange past MaxYear, got %v", err)
	}
}
