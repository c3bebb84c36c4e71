package dates

import (
	"fmt"
	"time"
)

// German short forms, matching the locale of the ticket pages the tool
// was built around.
var (
	shortWeekdays = map[time.Weekday]string{
		time.Sunday:    "So",
		time.Monday:    "Mo",
		time.Tuesday:   "Di",
		time.Wednesday: "Mi",
		time.Thursday:  "Do",
		time.Friday:    "Fr",
		time.Saturday:  "Sa",
	}

	longMonths = map[time.Month]string{
		time.January:   "Januar",
		time.February:  "Februar",
		time.March:     "März",
		time.April:     "April",
		time.May:       "Mai",
		time.June:      "Juni",
		time.July:      "Juli",
		time.August:    "August",
		time.September: "September",
		time.October:   "Oktober",
		time.November:  "November",
		time.December:  "Dezember",
	}
)

// FormatList renders an instant for list rows and the widget view,
// e.g. "Sa, 20.09.2025 – 20:00 Uhr". loc is the display zone; nil means UTC.
func FormatList(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return fmt.Sprintf("%s, %s – %s Uhr",
		shortWeekdays[local.Weekday()],
		local.Format("02.01.2006"),
		local.Format("15:04"))
}

// FormatMonthHeader renders the month grouping header, e.g. "September 2025".
func FormatMonthHeader(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return fmt.Sprintf("%s %d", longMonths[local.Month()], local.Year())
}

// MonthKey returns the YYYY-MM grouping key for an instant.
func MonthKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("2006-01")
}

// CivilStrings splits an instant back into the DD.MM.YYYY and HH:MM wire
// forms in loc. Used to prefill edit prompts.
func CivilStrings(t time.Time, loc *time.Location) (dateStr, timeStr string) {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return local.Format("02.01.2006"), local.Format("15:04")
}
