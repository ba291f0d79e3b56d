package analytics

import "time"

// DayWindow returns the UTC bounds [start, end) of the reporting-zone
// calendar day containing now.
func DayWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	start := midnight(now, loc)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}

// WeekWindow returns the UTC bounds [start, end) covering the 7 reporting-zone
// calendar days ending today.
func WeekWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	start := midnight(now, loc).AddDate(0, 0, -6)
	return start.UTC(), midnight(now, loc).AddDate(0, 0, 1).UTC()
}

// MonthWindow returns the UTC bounds [start, end) covering the 12
// reporting-zone calendar months ending this month.
func MonthWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	l := now.In(loc)
	start := time.Date(l.Year(), l.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, -11, 0)
	end := time.Date(l.Year(), l.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
	return start.UTC(), end.UTC()
}

func midnight(now time.Time, loc *time.Location) time.Time {
	l := now.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, loc)
}
