// Package workday buckets instants into company-local work days.
package workday

import "time"

// Date returns the work day that now falls on in loc, normalized to UTC
// midnight so dates compare and store uniformly regardless of the company
// timezone. The process-local timezone is never consulted.
func Date(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
