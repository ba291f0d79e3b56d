package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"wellnest/internal/models"
)

type AuthHandler struct {
	db        *sqlx.DB
	jwtSecret []byte
	dev       bool
}

func NewAuthHandler(db *sqlx.DB, jwtSecret []byte, dev bool) *AuthHandler {
	return &AuthHandler{db: db, jwtSecret: jwtSecret, dev: dev}
}

type registerRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=25"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid email or password")
		return
	}

	var exists bool
	if err := h.db.Get(&exists, `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`, req.Email); err != nil {
		respondServerError(w, h.dev, err)
		return
	}
	if exists {
		respondError(w, http.StatusBadRequest, "User already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondServerError(w, h.dev, err)
		return
	}

	if _, err := h.db.Exec(`INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3)`,
		req.Username, req.Email, string(hashed)); err != nil {
		// Unique-constraint race with a concurrent register lands here too.
		respondError(w, http.StatusBadRequest, "User already exists")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "User created successfully"})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	var user models.User
	err := h.db.Get(&user, `SELECT id, username, email, password_hash, created_at, updated_at FROM users WHERE email=$1`, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusBadRequest, "User not found")
			return
		}
		respondServerError(w, h.dev, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		respondError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := h.issueJWT(user.ID)
	if err != nil {
		respondServerError(w, h.dev, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user": map[string]any{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Profile returns the authenticated user's public fields.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)

	var out struct {
		Username *string `db:"username" json:"username"`
		Email    string  `db:"email" json:"email"`
	}
	if err := h.db.Get(&out, `SELECT username, email FROM users WHERE id=$1`, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondServerError(w, h.dev, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *AuthHandler) issueJWT(userID int) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.jwtSecret)
}
