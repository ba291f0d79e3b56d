package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"

	"wellnest/internal/models"
	"wellnest/internal/sentiment"
	"wellnest/internal/services"
)

type JournalHandler struct {
	db     *sqlx.DB
	encSvc *services.EncryptionService
	dev    bool
}

// NewJournalHandler takes an optional encryption service; when nil, entries
// are stored in plaintext.
func NewJournalHandler(db *sqlx.DB, encSvc *services.EncryptionService, dev bool) *JournalHandler {
	return &JournalHandler{db: db, encSvc: encSvc, dev: dev}
}

type journalRequest struct {
	Entry string `json:"entry" validate:"required,max=1000"`
}

// Add scores the text and persists the entry atomically; the response always
// carries the plaintext the caller submitted.
func (h *JournalHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)

	var req journalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	if strings.TrimSpace(req.Entry) == "" {
		respondError(w, http.StatusBadRequest, "Entry is required")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Entry must be at most 1000 characters")
		return
	}

	score := sentiment.Analyze(req.Entry)

	stored := req.Entry
	if h.encSvc != nil {
		enc, err := h.encSvc.EncryptEntry(req.Entry)
		if err != nil {
			respondServerError(w, h.dev, err)
			return
		}
		stored = enc
	}

	var entry models.JournalEntry
	err := h.db.QueryRowx(`INSERT INTO journal_entries (user_id, entry, sentiment_score) VALUES ($1, $2, $3)
	                        RETURNING id, user_id, sentiment_score, created_at`,
		userID, stored, score).Scan(&entry.ID, &entry.UserID, &entry.SentimentScore, &entry.CreatedAt)
	if err != nil {
		respondServerError(w, h.dev, err)
		return
	}
	entry.Entry = req.Entry

	respondJSON(w, http.StatusCreated, entry)
}

// List returns the user's journal history, newest first.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)

	rows, err := h.db.Queryx(`SELECT id, user_id, entry, sentiment_score, created_at FROM journal_entries
	                           WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		respondServerError(w, h.dev, err)
		return
	}
	defer rows.Close()

	out := []models.JournalEntry{}
	for rows.Next() {
		var entry models.JournalEntry
		if err := rows.StructScan(&entry); err != nil {
			respondServerError(w, h.dev, err)
			return
		}
		if h.encSvc != nil {
			plain, err := h.encSvc.DecryptEntry(entry.Entry)
			if err != nil {
				// Undecryptable rows (e.g. written before the key rotated)
				// are skipped rather than failing the whole listing.
				continue
			}
			entry.Entry = plain
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		respondServerError(w, h.dev, err)
		return
	}

	respondJSON(w, http.StatusOK, out)
}
