// Package calendar maps in-game date indices to weekdays, seasons and years.
//
// Dates are 1-based: date 1 is Monday, Spring 1 of year 1. Every season has
// 28 days and every year four seasons (112 days).
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	DaysPerWeek   = 7
	DaysPerSeason = 28
	DaysPerYear   = DaysPerSeason * 4

	// MaxYear is the last year whose every date fits in an int32 index.
	MaxYear = 19173961
	// MaxDate is the last day of MaxYear.
	MaxDate int32 = MaxYear * DaysPerYear
)

// ErrOutOfRange is returned when a year, season or day is outside its range.
var ErrOutOfRange = errors.New("calendar: out of range")

var weekdayNames = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var seasonNames = [4]string{"Spring", "Summer", "Fall", "Winter"}

// Weekday numbers as returned by Weekday.
const (
	Monday uint8 = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Season numbers as returned by SeasonNumber.
const (
	Spring uint8 = iota
	Summer
	Fall
	Winter
)

// DayNumber returns the 0-based day of the season.
func DayNumber(date int32) uint8 {
	return uint8((date - 1) % DaysPerSeason)
}

// Weekday returns the 0-based day of the week, Monday being 0.
func Weekday(date int32) uint8 {
	return DayNumber(date) % DaysPerWeek
}

// WeekdayName returns the English name of the date's weekday.
func WeekdayName(date int32) string {
	return weekdayNames[Weekday(date)]
}

// SeasonNumber returns the 0-based season, Spring being 0.
func SeasonNumber(date int32) uint8 {
	return uint8(((date - 1) / DaysPerSeason) % 4)
}

// SeasonName returns the English name of the date's season.
func SeasonName(date int32) string {
	return seasonNames[SeasonNumber(date)]
}

// YearNumber returns the 0-based year.
func YearNumber(date int32) uint32 {
	return uint32((date - 1) / DaysPerYear)
}

// Format renders a date as "Monday Spring 1, Year 1".
// Non-positive dates come from half-typed input and render as "UNEXPECTED".
func Format(date int32) string {
	if date <= 0 {
		return "UNEXPECTED"
	}

	return fmt.Sprintf("%s %s %d, Year %d",
		WeekdayName(date),
		SeasonName(date),
		DayNumber(date)+1,
		YearNumber(date)+1,
	)
}

// Index converts a 1-based year, season (1..4) and day (1..28) to a date index.
func Index(year, season, day int) (int32, error) {
	if year < 1 || year > MaxYear {
		return 0, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}
	if season < 1 || season > 4 {
		return 0, fmt.Errorf("%w: season %d", ErrOutOfRange, season)
	}
	if day < 1 || day > DaysPerSeason {
		return 0, fmt.Errorf("%w: day %d", ErrOutOfRange, day)
	}
	return int32((year-1)*DaysPerYear + (season-1)*DaysPerSeason + day), nil
}

// ParseSeason accepts a season name (any case) or its 1-based number.
func ParseSeason(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 4 {
			return 0, fmt.Errorf("%w: season %d", ErrOutOfRange, n)
		}
		return n, nil
	}
	for i, name := range seasonNames {
		if strings.EqualFold(name, s) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("calendar: unknown season %q", s)
}

// Parse reads either a plain date index ("29") or "<year> <season> <day>"
// ("1 summer 1", "2 4 15").
func Parse(s string) (int32, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		n, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			return 0, fmt.Errorf("calendar: invalid date %q: %w", s, err)
		}
		if n < 1 || n > int64(MaxDate) {
			return 0, fmt.Errorf("%w: date %d", ErrOutOfRange, n)
		}
		return int32(n), nil
	case 3:
		year, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(fields[0]), "y"))
		if err != nil {
			return 0, fmt.Errorf("calendar: invalid year %q", fields[0])
		}
		season, err := ParseSeason(fields[1])
		if err != nil {
			return 0, err
		}
		day, err := strconv.Atoi(fields[2])
		if err != nil {
			return 0, fmt.Errorf("calendar: invalid day %q", fields[2])
		}
		return Index(year, season, day)
	default:
		return 0, fmt.Errorf("calendar: invalid date %q", s)
	}
}
