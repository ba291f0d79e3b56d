package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"wellnest/internal/analytics"
	"wellnest/internal/models"
	"wellnest/internal/mood"
)

type MoodHandler struct {
	db  *sqlx.DB
	loc *time.Location
	dev bool
}

// NewMoodHandler takes the reporting zone used to resolve "local day"
// boundaries for all three analytics windows.
func NewMoodHandler(db *sqlx.DB, loc *time.Location, dev bool) *MoodHandler {
	return &MoodHandler{db: db, loc: loc, dev: dev}
}

type moodRequest struct {
	Mood string `json:"mood"`
}

// Add records a mood selection. The score is looked up from the fixed table;
// an unknown label rejects the whole write.
func (h *MoodHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)

	var req moodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	score, err := mood.Score(req.Mood)
	if err != nil {
		if errors.Is(err, mood.ErrUnknownMood) {
			respondError(w, http.StatusBadRequest, "Invalid mood value")
			return
		}
		respondServerError(w, h.dev, err)
		return
	}

	var entry models.MoodEntry
	err = h.db.QueryRowx(`INSERT INTO mood_entries (user_id, mood, sentiment_score) VALUES ($1, $2, $3)
	                       RETURNING id, user_id, mood, sentiment_score, date`,
		userID, req.Mood, score).StructScan(&entry)
	if err != nil {
		respondServerError(w, h.dev, err)
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

func (h *MoodHandler) AnalyticsToday(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	now := time.Now()

	from, to := analytics.DayWindow(now, h.loc)
	records, err := h.fetch(userID, from, to)
	if err != nil {
		respondServerError(w, h.dev, err)
		return
	}
	respondJSON(w, http.StatusOK, analytics.Today(records, now, h.loc))
}

func (h *MoodHandler) AnalyticsWeek(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	now := time.Now()

	from, to := analytics.WeekWindow(now, h.loc)
	records, err := h.fetch(userID, from, to)
	if err != nil {
		respondServerError(w, h.dev, err)
		return
	}
	respondJSON(w, http.StatusOK, analytics.Week(records, now, h.loc))
}

func (h *MoodHandler) AnalyticsMonth(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	now := time.Now()

	from, to := analytics.MonthWindow(now, h.loc)
	records, err := h.fetch(userID, from, to)
	if err != nil {
		respondServerError(w, h.dev, err)
		return
	}
	respondJSON(w, http.StatusOK, analytics.Month(records, now, h.loc))
}

func (h *MoodHandler) fetch(userID int, from, to time.Time) ([]analytics.Record, error) {
	rows, err := h.db.Queryx(`SELECT mood, sentiment_score, date FROM mood_entries
	                           WHERE user_id=$1 AND date >= $2 AND date < $3 ORDER BY date`,
		userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []analytics.Record
	for rows.Next() {
		var rec analytics.Record
		if err := rows.Scan(&rec.Mood, &rec.Score, &rec.At); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
