package analytics

import "time"

type dayAcc struct {
	date    time.Time
	hours   [24]bucket
	entries int
}

// Week buckets records into the 7 reporting-zone calendar days ending today.
// Every day is pre-seeded so sparse data still yields a full 7-day skeleton.
// Records outside the window are ignored.
func Week(records []Record, now time.Time, loc *time.Location) WeekReport {
	start := midnight(now, loc).AddDate(0, 0, -6)

	days := make([]dayAcc, 7)
	index := make(map[string]int, 7)
	for i := range days {
		d := start.AddDate(0, 0, i)
		days[i].date = d
		index[d.Format("2006-01-02")] = i
	}

	var latest *Record
	for i := range records {
		r := &records[i]
		local := r.At.In(loc)
		di, ok := index[local.Format("2006-01-02")]
		if !ok {
			continue
		}
		days[di].hours[local.Hour()].add(r.Score)
		days[di].entries++
		if latest == nil || r.At.After(latest.At) {
			latest = r
		}
	}

	week := make([]DayReport, 7)
	for i := range days {
		d := &days[i]
		hourly := make([]*float64, 24)
		for h := range d.hours {
			hourly[h] = d.hours[h].avg()
		}
		week[i] = DayReport{
			Date:               d.date.Format("2006-01-02"),
			Weekday:            d.date.Format("Mon"),
			Sentiment:          weightedAvg(d.hours[:]),
			Entries:            d.entries,
			MorningSentiment:   periodAverage(hourly, morningStart, afternoonStart),
			AfternoonSentiment: periodAverage(hourly, afternoonStart, eveningStart),
			EveningSentiment:   periodAverage(hourly, eveningStart, dayEnd),
			HourlySentiments:   hourly,
		}
	}

	return WeekReport{
		CurrentMood: currentMood(latest),
		WeekData:    week,
	}
}
