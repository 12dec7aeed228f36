package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/ariefcatur/go-repair-shop/internal/locale"
	"github.com/ariefcatur/go-repair-shop/internal/validation"
)

// Error codes returned next to the message.
const (
	CodeInvalidJSON = "invalid_json"
	CodeNotFound    = "not_found"
	CodeInternal    = "internal"
	CodeUnavailable = "unavailable"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg, code string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}

// respondInvalid translates a validation key for the request locale.
func respondInvalid(w http.ResponseWriter, r *http.Request, key string) {
	respondError(w, http.StatusUnprocessableEntity, locale.T(localeFrom(r.Context()), key), key)
}

// respondErr maps validation errors to 422 and everything else to 500.
func respondErr(w http.ResponseWriter, r *http.Request, err error) {
	if key, ok := validation.KeyOf(err); ok {
		respondInvalid(w, r, key)
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error(), CodeInternal)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json", CodeInvalidJSON)
		return false
	}
	return true
}
