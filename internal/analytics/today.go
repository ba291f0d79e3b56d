package analytics

import "time"

// Today buckets records into 24 hourly slots for the reporting-zone day
// containing now. The day sentiment is the weighted average over all records;
// the morning/afternoon/evening rollups average the non-null hourly values.
func Today(records []Record, now time.Time, loc *time.Location) TodayReport {
	var hours [24]bucket
	var total bucket
	var latest *Record

	for i := range records {
		r := &records[i]
		hours[r.At.In(loc).Hour()].add(r.Score)
		total.add(r.Score)
		if latest == nil || r.At.After(latest.At) {
			latest = r
		}
	}

	hourly := make([]*float64, 24)
	for h := range hours {
		hourly[h] = hours[h].avg()
	}

	return TodayReport{
		Day:                now.In(loc).Format("2006-01-02"),
		CurrentMood:        currentMood(latest),
		Sentiment:          total.avg(),
		MorningSentiment:   periodAverage(hourly, morningStart, afternoonStart),
		AfternoonSentiment: periodAverage(hourly, afternoonStart, eveningStart),
		EveningSentiment:   periodAverage(hourly, eveningStart, dayEnd),
		HourlySentiments:   hourly,
		MoodCount:          len(records),
	}
}
