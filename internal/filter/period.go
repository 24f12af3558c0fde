package filter

import "time"

// Period is a named date span for quick filtering.
type Period string

const (
	Last7Days  Period = "Last 7 Days"
	Last30Days Period = "Last 30 Days"
	Last90Days Period = "Last 90 Days"
	Last6Mon   Period = "Last 6 Months"
	LastYear   Period = "Last Year"
	AllTime    Period = "All Time"
	Custom     Period = "Custom"
)

// Periods returns the named periods in cycle order.
func Periods() []Period {
	return []Period{AllTime, Last7Days, Last30Days, Last90Days, Last6Mon, LastYear, Custom}
}

// periodDays maps relative periods to their day count.
var periodDays = map[Period]int{
	Last7Days:  7,
	Last30Days: 30,
	Last90Days: 90,
	Last6Mon:   180,
	LastYear:   365,
}

// Resolve maps a named period to a concrete (start, end) pair.
// Relative periods are anchored at the dataset's latest date, since
// the table is historical. Custom passes through the user-chosen
// dates. All results are clamped to [minDate, maxDate] and normalized
// so start never exceeds end.
func Resolve(p Period, minDate, maxDate, customStart, customEnd time.Time) (time.Time, time.Time) {
	var start, end time.Time

	switch p {
	case AllTime:
		return minDate, maxDate
	case Custom:
		start, end = customStart, customEnd
		if start.IsZero() {
			start = minDate
		}
		if end.IsZero() {
			end = maxDate
		}
	default:
		days, ok := periodDays[p]
		if !ok {
			return minDate, maxDate
		}
		end = maxDate
		start = maxDate.AddDate(0, 0, -days)
	}

	if start.After(end) {
		start, end = end, start
	}
	start = clamp(start, minDate, maxDate)
	end = clamp(end, minDate, maxDate)
	return start, end
}

func clamp(t, min, max time.Time) time.Time {
	if t.Before(min) {
		return min
	}
	if t.After(max) {
		return max
	}
	return t
}
