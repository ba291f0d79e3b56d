package models

import "time"

type User struct {
	ID           int       `db:"id" json:"id"`
	Username     *string   `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// MoodEntry records one discrete mood selection. SentimentScore is the fixed
// table value for Mood, assigned at write time and never recomputed.
type MoodEntry struct {
	ID             int       `db:"id" json:"id"`
	UserID         int       `db:"user_id" json:"userId"`
	Mood           string    `db:"mood" json:"mood"`
	SentimentScore float64   `db:"sentiment_score" json:"sentimentScore"`
	Date           time.Time `db:"date" json:"date"`
}

// JournalEntry records one free-text entry. SentimentScore is derived from
// the text by the lexicon analyzer at write time. Entry may be encrypted at
// rest; the stored ciphertext never leaves the handlers.
type JournalEntry struct {
	ID             int       `db:"id" json:"id"`
	UserID         int       `db:"user_id" json:"userId"`
	Entry          string    `db:"entry" json:"entry"`
	SentimentScore float64   `db:"sentiment_score" json:"sentimentScore"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}
