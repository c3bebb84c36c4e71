// Package dates implements strict composition of user-typed date and time
// strings into absolute instants.
//
// The wire format is deliberately rigid: DD.MM.YYYY and HH:MM with exact
// digit groups. Anything else is rejected with a FormatError so callers
// re-prompt instead of guessing what the user meant. Well-formed but
// non-existent calendar dates (31.04., 29.02. outside leap years) are
// rejected separately and never clamped to a neighbouring day.
package dates

import (
	"regexp"
	"strconv"
	"time"

	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
)

// Pre-compiled wire-format patterns: exactly 2/2/4 and 2/2 digit groups.
var (
	datePattern = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{4})$`)
	timePattern = regexp.MustCompile(`^(\d{2}):(\d{2})$`)
)

// ParseCivil validates dateStr and timeStr against the strict wire format
// and returns the civil value. Failures name the offending part via
// *domain.FormatError; a syntactically valid but impossible calendar date
// fails with domain.ErrInvalidDate.
func ParseCivil(dateStr, timeStr string) (domain.CivilDateTime, error) {
	dm := datePattern.FindStringSubmatch(dateStr)
	if dm == nil {
		return domain.CivilDateTime{}, &domain.FormatError{Part: domain.FormatPartDate, Input: dateStr}
	}
	tm := timePattern.FindStringSubmatch(timeStr)
	if tm == nil {
		return domain.CivilDateTime{}, &domain.FormatError{Part: domain.FormatPartTime, Input: timeStr}
	}

	day, _ := strconv.Atoi(dm[1])
	month, _ := strconv.Atoi(dm[2])
	year, _ := strconv.Atoi(dm[3])
	hour, _ := strconv.Atoi(tm[1])
	minute, _ := strconv.Atoi(tm[2])

	// 24:00 and 09:61 match the digit pattern but are not clock times.
	if hour > 23 || minute > 59 {
		return domain.CivilDateTime{}, &domain.FormatError{Part: domain.FormatPartTime, Input: timeStr}
	}

	c := domain.CivilDateTime{Year: year, Month: month, Day: day, Hour: hour, Minute: minute}
	if !calendarExists(c) {
		return domain.CivilDateTime{}, domain.ErrInvalidDate
	}
	return c, nil
}

// calendarExists checks that the civil date names a real calendar day.
// time.Date normalises out-of-range components (April 31 becomes May 1),
// so a round-trip comparison detects impossible dates.
func calendarExists(c domain.CivilDateTime) bool {
	t := time.Date(c.Year, time.Month(c.Month), c.Day, 0, 0, 0, 0, time.UTC)
	return t.Year() == c.Year && int(t.Month()) == c.Month && t.Day() == c.Day
}

// Compose parses the strict wire format and resolves the result to an
// absolute instant in loc, minute precision. loc is the venue timezone
// the civil time is written in; nil means UTC.
func Compose(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	c, err := ParseCivil(dateStr, timeStr)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}
	return c.In(loc), nil
}
