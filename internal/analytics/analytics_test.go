package analytics

import (
	"encoding/json"
	"testing"
	"time"
)

// ist mirrors the default reporting zone (UTC+05:30).
var ist = time.FixedZone("UTC+05:30", 5*3600+30*60)

func at(t *testing.T, year int, month time.Month, day, hour, min int) time.Time {
	t.Helper()
	return time.Date(year, month, day, hour, min, 0, 0, ist)
}

func wantValue(t *testing.T, name string, got *float64, want float64) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s = nil, want %v", name, want)
	}
	if *got != want {
		t.Errorf("%s = %v, want %v", name, *got, want)
	}
}

func wantNil(t *testing.T, name string, got *float64) {
	t.Helper()
	if got != nil {
		t.Errorf("%s = %v, want nil", name, *got)
	}
}

func TestToday(t *testing.T) {
	now := at(t, 2026, time.September, 1, 21, 0)

	t.Run("morning and evening moods", func(t *testing.T) {
		records := []Record{
			{Mood: "Happy", Score: 1, At: at(t, 2026, time.September, 1, 9, 0)},
			{Mood: "Sad", Score: -1, At: at(t, 2026, time.September, 1, 20, 0)},
		}
		rep := Today(records, now, ist)

		if rep.Day != "2026-09-01" {
			t.Errorf("Day = %q, want 2026-09-01", rep.Day)
		}
		wantValue(t, "MorningSentiment", rep.MorningSentiment, 1)
		wantNil(t, "AfternoonSentiment", rep.AfternoonSentiment)
		wantValue(t, "EveningSentiment", rep.EveningSentiment, -1)
		wantValue(t, "Sentiment", rep.Sentiment, 0)
		if rep.MoodCount != 2 {
			t.Errorf("MoodCount = %d, want 2", rep.MoodCount)
		}
		if rep.CurrentMood == nil || rep.CurrentMood.Mood != "Sad" {
			t.Errorf("CurrentMood = %+v, want the 20:00 Sad entry", rep.CurrentMood)
		}
		wantValue(t, "HourlySentiments[9]", rep.HourlySentiments[9], 1)
		wantValue(t, "HourlySentiments[20]", rep.HourlySentiments[20], -1)
		wantNil(t, "HourlySentiments[0]", rep.HourlySentiments[0])
	})

	t.Run("no records yields full null skeleton", func(t *testing.T) {
		rep := Today(nil, now, ist)

		if len(rep.HourlySentiments) != 24 {
			t.Fatalf("HourlySentiments length = %d, want 24", len(rep.HourlySentiments))
		}
		for h, v := range rep.HourlySentiments {
			if v != nil {
				t.Errorf("HourlySentiments[%d] = %v, want nil", h, *v)
			}
		}
		wantNil(t, "Sentiment", rep.Sentiment)
		wantNil(t, "MorningSentiment", rep.MorningSentiment)
		wantNil(t, "AfternoonSentiment", rep.AfternoonSentiment)
		wantNil(t, "EveningSentiment", rep.EveningSentiment)
		if rep.MoodCount != 0 {
			t.Errorf("MoodCount = %d, want 0", rep.MoodCount)
		}
		if rep.CurrentMood != nil {
			t.Errorf("CurrentMood = %+v, want nil", rep.CurrentMood)
		}
	})

	t.Run("hour attribution follows the reporting zone", func(t *testing.T) {
		// 20:30 UTC on Aug 31 is 02:00 on Sep 1 in the reporting zone.
		records := []Record{
			{Mood: "Calm", Score: 0.5, At: time.Date(2026, time.August, 31, 20, 30, 0, 0, time.UTC)},
		}
		rep := Today(records, now, ist)
		wantValue(t, "HourlySentiments[2]", rep.HourlySentiments[2], 0.5)
	})

	t.Run("idempotent for identical input", func(t *testing.T) {
		records := []Record{
			{Mood: "Happy", Score: 1, At: at(t, 2026, time.September, 1, 9, 15)},
			{Mood: "Meh", Score: 0, At: at(t, 2026, time.September, 1, 13, 45)},
		}
		a, err := json.Marshal(Today(records, now, ist))
		if err != nil {
			t.Fatal(err)
		}
		b, err := json.Marshal(Today(records, now, ist))
		if err != nil {
			t.Fatal(err)
		}
		if string(a) != string(b) {
			t.Errorf("two runs produced different output:\n%s\n%s", a, b)
		}
	})
}

func TestWeek(t *testing.T) {
	now := at(t, 2026, time.September, 1, 12, 0)

	t.Run("always seven days ascending", func(t *testing.T) {
		rep := Week(nil, now, ist)

		if len(rep.WeekData) != 7 {
			t.Fatalf("WeekData length = %d, want 7", len(rep.WeekData))
		}
		wantDates := []string{
			"2026-08-26", "2026-08-27", "2026-08-28", "2026-08-29",
			"2026-08-30", "2026-08-31", "2026-09-01",
		}
		for i, d := range rep.WeekData {
			if d.Date != wantDates[i] {
				t.Errorf("WeekData[%d].Date = %q, want %q", i, d.Date, wantDates[i])
			}
			wantNil(t, "Sentiment", d.Sentiment)
			if d.Entries != 0 {
				t.Errorf("WeekData[%d].Entries = %d, want 0", i, d.Entries)
			}
			if len(d.HourlySentiments) != 24 {
				t.Errorf("WeekData[%d] hourly length = %d, want 24", i, len(d.HourlySentiments))
			}
		}
		if rep.WeekData[6].Weekday != "Tue" {
			t.Errorf("today's weekday = %q, want Tue", rep.WeekData[6].Weekday)
		}
		if rep.CurrentMood != nil {
			t.Errorf("CurrentMood = %+v, want nil", rep.CurrentMood)
		}
	})

	t.Run("day sentiment is weighted by raw counts", func(t *testing.T) {
		// Two entries in hour 10 and one in hour 11: the weighted day
		// average is (1+1-1)/3, not the mean of the two hourly averages.
		records := []Record{
			{Mood: "Happy", Score: 1, At: at(t, 2026, time.August, 30, 10, 0)},
			{Mood: "Joyful", Score: 1, At: at(t, 2026, time.August, 30, 10, 30)},
			{Mood: "Sad", Score: -1, At: at(t, 2026, time.August, 30, 11, 0)},
		}
		rep := Week(records, now, ist)

		day := rep.WeekData[4] // Aug 30
		if day.Date != "2026-08-30" {
			t.Fatalf("WeekData[4].Date = %q, want 2026-08-30", day.Date)
		}
		wantValue(t, "Sentiment", day.Sentiment, 0.33)
		if day.Entries != 3 {
			t.Errorf("Entries = %d, want 3", day.Entries)
		}
		// Sub-period rollup averages the hourly averages instead: (1 + -1)/2.
		wantValue(t, "MorningSentiment", day.MorningSentiment, 0)
	})

	t.Run("current mood is the most recent record", func(t *testing.T) {
		records := []Record{
			{Mood: "Happy", Score: 1, At: at(t, 2026, time.August, 27, 9, 0)},
			{Mood: "Down", Score: -0.8, At: at(t, 2026, time.September, 1, 8, 0)},
			{Mood: "Content", Score: 0.6, At: at(t, 2026, time.August, 29, 22, 0)},
		}
		rep := Week(records, now, ist)
		if rep.CurrentMood == nil || rep.CurrentMood.Mood != "Down" {
			t.Errorf("CurrentMood = %+v, want the Sep 1 Down entry", rep.CurrentMood)
		}
	})

	t.Run("records outside the window are ignored", func(t *testing.T) {
		records := []Record{
			{Mood: "Happy", Score: 1, At: at(t, 2026, time.August, 20, 9, 0)},
		}
		rep := Week(records, now, ist)
		for i, d := range rep.WeekData {
			if d.Entries != 0 {
				t.Errorf("WeekData[%d].Entries = %d, want 0", i, d.Entries)
			}
		}
		if rep.CurrentMood != nil {
			t.Errorf("CurrentMood = %+v, want nil", rep.CurrentMood)
		}
	})
}

func TestMonth(t *testing.T) {
	now := at(t, 2026, time.September, 1, 12, 0)

	t.Run("always twelve months ascending", func(t *testing.T) {
		rep := Month(nil, now, ist)

		if len(rep) != 12 {
			t.Fatalf("length = %d, want 12", len(rep))
		}
		if rep[0].Month != "2025-10" || rep[11].Month != "2026-09" {
			t.Errorf("range = %q..%q, want 2025-10..2026-09", rep[0].Month, rep[11].Month)
		}
		for i := 1; i < len(rep); i++ {
			if rep[i-1].Month >= rep[i].Month {
				t.Errorf("months out of order: %q before %q", rep[i-1].Month, rep[i].Month)
			}
		}
		for _, m := range rep {
			wantNil(t, m.Month+" Sentiment", m.Sentiment)
			if m.Entries != 0 {
				t.Errorf("%s Entries = %d, want 0", m.Month, m.Entries)
			}
			if len(m.WeeklySentiments) != 5 {
				t.Errorf("%s WeeklySentiments length = %d, want 5", m.Month, len(m.WeeklySentiments))
			}
		}
		if rep[11].MonthName != "Sep" || rep[11].Year != 2026 {
			t.Errorf("latest month = %s %d, want Sep 2026", rep[11].MonthName, rep[11].Year)
		}
	})

	t.Run("weighted month average and week aliases", func(t *testing.T) {
		records := []Record{
			{Mood: "Happy", Score: 1, At: at(t, 2026, time.July, 1, 10, 0)},
			{Mood: "Joyful", Score: 1, At: at(t, 2026, time.July, 2, 10, 0)},
			{Mood: "Sad", Score: -1, At: at(t, 2026, time.July, 20, 10, 0)},
		}
		rep := Month(records, now, ist)

		var july MonthReport
		for _, m := range rep {
			if m.Month == "2026-07" {
				july = m
			}
		}
		// July 1 2026 is a Wednesday (weekday 3): days 1-2 land in week 0,
		// day 20 in week 3.
		wantValue(t, "FirstWeekSentiment", july.FirstWeekSentiment, 1)
		wantValue(t, "FourthWeekSentiment", july.FourthWeekSentiment, -1)
		wantNil(t, "SecondWeekSentiment", july.SecondWeekSentiment)
		wantValue(t, "Sentiment", july.Sentiment, 0.33)
		if july.Entries != 3 {
			t.Errorf("Entries = %d, want 3", july.Entries)
		}
		if july.FirstWeekSentiment != july.WeeklySentiments[0] {
			t.Error("FirstWeekSentiment does not alias WeeklySentiments[0]")
		}
		if july.FifthWeekSentiment != july.WeeklySentiments[4] {
			t.Error("FifthWeekSentiment does not alias WeeklySentiments[4]")
		}
	})

	t.Run("overflowing week index is clamped, not dropped", func(t *testing.T) {
		// Aug 1 2026 is a Saturday, so Aug 31 computes index 5; it must be
		// folded into the fifth bucket and still counted.
		records := []Record{
			{Mood: "Warm", Score: 0.8, At: at(t, 2026, time.August, 31, 10, 0)},
		}
		rep := Month(records, now, ist)

		var aug MonthReport
		for _, m := range rep {
			if m.Month == "2026-08" {
				aug = m
			}
		}
		wantValue(t, "FifthWeekSentiment", aug.FifthWeekSentiment, 0.8)
		if aug.Entries != 1 {
			t.Errorf("Entries = %d, want 1", aug.Entries)
		}
	})
}

func TestWindows(t *testing.T) {
	now := time.Date(2026, time.September, 1, 1, 0, 0, 0, ist)

	t.Run("day window spans the local calendar day", func(t *testing.T) {
		from, to := DayWindow(now, ist)
		wantFrom := time.Date(2026, time.August, 31, 18, 30, 0, 0, time.UTC)
		if !from.Equal(wantFrom) {
			t.Errorf("from = %v, want %v", from, wantFrom)
		}
		if !to.Equal(wantFrom.AddDate(0, 0, 1)) {
			t.Errorf("to = %v, want %v", to, wantFrom.AddDate(0, 0, 1))
		}
	})

	t.Run("week window starts six local days back", func(t *testing.T) {
		from, to := WeekWindow(now, ist)
		wantFrom := time.Date(2026, time.August, 25, 18, 30, 0, 0, time.UTC)
		if !from.Equal(wantFrom) {
			t.Errorf("from = %v, want %v", from, wantFrom)
		}
		if !to.Equal(time.Date(2026, time.September, 1, 18, 30, 0, 0, time.UTC)) {
			t.Errorf("to = %v", to)
		}
	})

	t.Run("month window starts eleven months back on the first", func(t *testing.T) {
		from, _ := MonthWindow(now, ist)
		wantFrom := time.Date(2025, time.September, 30, 18, 30, 0, 0, time.UTC)
		if !from.Equal(wantFrom) {
			t.Errorf("from = %v, want %v", from, wantFrom)
		}
	})
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0.333333, 0.33},
		{0.335, 0.34},
		{-0.666666, -0.67},
		{1, 1},
		{0, 0},
	}
	for _, c := range cases {
		if got := round2(c.in); got != c.want {
			t.Errorf("round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
