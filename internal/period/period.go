package period

import "time"

// Selectors accepted by the dashboard period filter.
const (
	Today  = "today"
	Week   = "week"
	Month  = "month"
	Year   = "year"
	Custom = "custom"
)

const dateLayout = "2006-01-02"

// Range is a calendar-date window, both ends inclusive. Dates cross the API
// boundary as YYYY-MM-DD with no time-of-day or zone.
type Range struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Resolve maps a period selector to a concrete range ending at now's calendar
// date. Unrecognized selectors (including "custom" without explicit bounds)
// take the month branch.
func Resolve(selector string, now time.Time) Range {
	var start time.Time
	switch selector {
	case Today:
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case Week:
		start = now.AddDate(0, 0, -7)
	case Year:
		start = now.AddDate(-1, 0, 0)
	default:
		start = now.AddDate(0, -1, 0)
	}
	return Range{Start: start.Format(dateLayout), End: now.Format(dateLayout)}
}

// ResolveCustom builds a range from explicit YYYY-MM-DD bounds, swapping them
// if given out of order. Missing or malformed bounds fall back to the month
// window, matching what Resolve does for a bare "custom" selector.
func ResolveCustom(from, to string, now time.Time) Range {
	start, errFrom := time.Parse(dateLayout, from)
	end, errTo := time.Parse(dateLayout, to)
	if errFrom != nil || errTo != nil {
		return Resolve(Month, now)
	}
	if end.Before(start) {
		start, end = end, start
	}
	return Range{Start: start.Format(dateLayout), End: end.Format(dateLayout)}
}
