package util

import "time"

var (
	dailyLayout    = "2006-01-02"
	intradayLayout = "2006-01-02 15:04"
)

// NewYorkLocation is the display zone for bar timestamps, matching the
// exchange-local rendering of the dashboard.
var NewYorkLocation = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// FormatBarTime renders a bar timestamp; intraday windows keep the
// time-of-day component.
func FormatBarTime(t time.Time, intraday bool) string {
	if intraday {
		return t.Format(intradayLayout)
	}
	return t.Format(dailyLayout)
}
