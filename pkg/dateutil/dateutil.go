// Package dateutil provides month arithmetic on zero-based calendar months.
package dateutil

import (
	"fmt"
	"time"
)

var shortMonths = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// AbsMonth returns year*12+month where month is zero-based (0 = January)
func AbsMonth(year, month int) int {
	return year*12 + month
}

// FromAbs splits an absolute month back into year and zero-based month
func FromAbs(abs int) (year, month int) {
	year = abs / 12
	month = abs % 12
	if month < 0 {
		month += 12
		year--
	}
	return year, month
}

// LastDayOfMonth returns the last calendar day of the given zero-based month
func LastDayOfMonth(year, month int) time.Time {
	// Day 0 of the following month normalizes to the last day of this one
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of days in the given zero-based month
func DaysInMonth(year, month int) int {
	return LastDayOfMonth(year, month).Day()
}

// ShortMonth returns a three-letter month name for a zero-based month
func ShortMonth(month int) string {
	if month < 0 || month > 11 {
		return "???"
	}
	return shortMonths[month]
}

// Label formats a zero-based month as "Jan 2026"
func Label(year, month int) string {
	return fmt.Sprintf("%s %d", ShortMonth(month), year)
}

// LabelAbs formats an absolute month as "Jan 2026"
func LabelAbs(abs int) string {
	y, m := FromAbs(abs)
	return Label(y, m)
}
