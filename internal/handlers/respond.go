package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes the {"message": ...} envelope every endpoint uses.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"message": msg})
}

// respondServerError writes a 500. The underlying error string is attached
// only in development mode.
func respondServerError(w http.ResponseWriter, dev bool, err error) {
	body := map[string]string{"message": "Server error"}
	if dev && err != nil {
		body["error"] = err.Error()
	}
	respondJSON(w, http.StatusInternalServerError, body)
}
