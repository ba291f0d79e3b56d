package analytics

import "time"

type monthAcc struct {
	first   time.Time
	weeks   [5]bucket
	entries int
}

// Month buckets records into the 12 reporting-zone calendar months ending
// this month, each split into 5 week-of-month slots. The week index is
// floor((dayOfMonth + weekdayOfFirst - 1) / 7), clamped into [0, 4] so a
// 31-day month starting late in the week still counts its trailing days
// instead of dropping them. Months come back ascending by "YYYY-MM".
func Month(records []Record, now time.Time, loc *time.Location) []MonthReport {
	l := now.In(loc)
	base := time.Date(l.Year(), l.Month(), 1, 0, 0, 0, 0, loc)

	months := make([]monthAcc, 12)
	index := make(map[string]int, 12)
	for i := range months {
		first := base.AddDate(0, i-11, 0)
		months[i].first = first
		index[first.Format("2006-01")] = i
	}

	for i := range records {
		r := &records[i]
		local := r.At.In(loc)
		mi, ok := index[local.Format("2006-01")]
		if !ok {
			continue
		}
		acc := &months[mi]
		w := (local.Day() + int(acc.first.Weekday()) - 1) / 7
		if w < 0 {
			w = 0
		}
		if w > 4 {
			w = 4
		}
		acc.weeks[w].add(r.Score)
		acc.entries++
	}

	out := make([]MonthReport, 12)
	for i := range months {
		acc := &months[i]
		weekly := make([]*float64, 5)
		for wi := range acc.weeks {
			weekly[wi] = acc.weeks[wi].avg()
		}
		out[i] = MonthReport{
			Month:               acc.first.Format("2006-01"),
			MonthName:           acc.first.Format("Jan"),
			Year:                acc.first.Year(),
			Sentiment:           weightedAvg(acc.weeks[:]),
			Entries:             acc.entries,
			WeeklySentiments:    weekly,
			FirstWeekSentiment:  weekly[0],
			SecondWeekSentiment: weekly[1],
			ThirdWeekSentiment:  weekly[2],
			FourthWeekSentiment: weekly[3],
			FifthWeekSentiment:  weekly[4],
		}
	}
	return out
}
