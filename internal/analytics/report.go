package analytics

import "time"

// Record is one timestamped sentiment observation. At is stored UTC; every
// bucket index is derived by shifting it into the reporting zone.
type Record struct {
	Mood  string
	Score float64
	At    time.Time
}

// CurrentMood is the most recent record in a window.
type CurrentMood struct {
	Mood           string    `json:"mood"`
	SentimentScore float64   `json:"sentimentScore"`
	Timestamp      time.Time `json:"timestamp"`
}

// TodayReport is the payload of GET /api/mood/analytics/today. Sentiment
// fields are nil (JSON null) when no records contributed, never omitted.
type TodayReport struct {
	Day                string       `json:"day"`
	CurrentMood        *CurrentMood `json:"currentMood"`
	Sentiment          *float64     `json:"sentiment"`
	MorningSentiment   *float64     `json:"morningSentiment"`
	AfternoonSentiment *float64     `json:"afternoonSentiment"`
	EveningSentiment   *float64     `json:"eveningSentiment"`
	HourlySentiments   []*float64   `json:"hourlySentiments"`
	MoodCount          int          `json:"moodCount"`
}

// DayReport is one calendar day inside a WeekReport.
type DayReport struct {
	Date               string     `json:"date"`
	Weekday            string     `json:"weekday"`
	Sentiment          *float64   `json:"sentiment"`
	Entries            int        `json:"entries"`
	MorningSentiment   *float64   `json:"morningSentiment"`
	AfternoonSentiment *float64   `json:"afternoonSentiment"`
	EveningSentiment   *float64   `json:"eveningSentiment"`
	HourlySentiments   []*float64 `json:"hourlySentiments"`
}

// WeekReport is the payload of GET /api/mood/analytics/week. WeekData always
// holds exactly 7 days, oldest first.
type WeekReport struct {
	CurrentMood *CurrentMood `json:"currentMood"`
	WeekData    []DayReport  `json:"weekData"`
}

// MonthReport is one calendar month of GET /api/mood/analytics/month. The
// five named week fields alias WeeklySentiments[0..4].
type MonthReport struct {
	Month               string     `json:"month"`
	MonthName           string     `json:"monthName"`
	Year                int        `json:"year"`
	Sentiment           *float64   `json:"sentiment"`
	Entries             int        `json:"entries"`
	WeeklySentiments    []*float64 `json:"weeklySentiments"`
	FirstWeekSentiment  *float64   `json:"firstWeekSentiment"`
	SecondWeekSentiment *float64   `json:"secondWeekSentiment"`
	ThirdWeekSentiment  *float64   `json:"thirdWeekSentiment"`
	FourthWeekSentiment *float64   `json:"fourthWeekSentiment"`
	FifthWeekSentiment  *float64   `json:"fifthWeekSentiment"`
}

func currentMood(latest *Record) *CurrentMood {
	if latest == nil {
		return nil
	}
	return &CurrentMood{
		Mood:           latest.Mood,
		SentimentScore: latest.Score,
		Timestamp:      latest.At,
	}
}
