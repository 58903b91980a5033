package domain

import (
	"math"
	"time"
)

// Break lengths an entry may record, in minutes.
var allowedBreakMinutes = [...]int{0, 15, 30, 60}

// RoundToQuarterHour rounds a decimal hour value to the nearest multiple of
// 0.25. Ties round half away from zero: 7.125 -> 7.25. Quarter-hour
// multiples are exact in binary floating point, so rounding is idempotent
// on already-rounded values.
func RoundToQuarterHour(hours float64) float64 {
	return math.Round(hours*4) / 4
}

// ComputeTotalHours computes worked hours for a closed interval:
// (end - start in minutes - breakMinutes) / 60, rounded to the nearest
// quarter hour.
//
// The function itself does not bound its inputs; TimeEntry.Validate rejects
// intervals where the break meets or exceeds the worked time before this
// runs, so a zero or negative result never reaches storage.
func ComputeTotalHours(start, end time.Time, breakMinutes int) float64 {
	totalMinutes := end.Sub(start).Minutes() - float64(breakMinutes)
	return RoundToQuarterHour(totalMinutes / 60)
}

// IsValidBreakMinutes reports whether m is one of the allowed break lengths.
func IsValidBreakMinutes(m int) bool {
	for _, v := range allowedBreakMinutes {
		if m == v {
			return true
		}
	}
	return false
}
