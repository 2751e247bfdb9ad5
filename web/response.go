package web

import (
	"errors"
	"io"
	"net/http"
	"time"

	"lottotrack/analysis"
	"lottotrack/service"
	"lottotrack/validation"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 64 << 10

// APIResponse is the envelope of every JSON response
type APIResponse struct {
	Status   string    `json:"status"` // "success" or "error"
	Data     any       `json:"data"`
	Metadata Metadata  `json:"metadata"`
	Error    *APIError `json:"error,omitempty"`
}

// Metadata contains response metadata
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	Warning   string    `json:"warning,omitempty"`
}

// APIError is the machine-readable error part of a response
type APIError struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Details []validation.FieldError `json:"details,omitempty"`
}

// Error codes
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeBadRequest         = "BAD_REQUEST"
	CodeUnauthorized       = "AUTHENTICATION_ERROR"
	CodeForbidden          = "AUTHORIZATION_ERROR"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUserExists         = "USER_EXISTS"
	CodeNotFound           = "NOT_FOUND"
	CodeInsufficient       = "INSUFFICIENT_CANDIDATES"
	CodeStatsUnavailable   = "STATS_UNAVAILABLE"
	CodeStorage            = "STORAGE_ERROR"
	CodeInternal           = "INTERNAL_ERROR"
)

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	data, err := json.Marshal(response)
	if err != nil {
		log.WithError(err).Error("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		log.WithError(err).Error("Failed to write JSON response")
	}
}

func respondData(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, &APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: Metadata{Timestamp: time.Now()},
	})
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, &APIResponse{
		Status:   "error",
		Metadata: Metadata{Timestamp: time.Now()},
		Error:    &APIError{Code: code, Message: message},
	})
}

// respondServiceError maps a service error onto a status code and error code
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *validation.RequestValidationError
	switch {
	case errors.As(err, &ve):
		respondJSON(w, http.StatusBadRequest, &APIResponse{
			Status:   "error",
			Metadata: Metadata{Timestamp: time.Now()},
			Error:    &APIError{Code: CodeValidation, Message: ve.Message(), Details: ve.Fields()},
		})
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, CodeInvalidCredentials, "Invalid username or password")
		return
	case errors.Is(err, service.ErrUserExists):
		respondError(w, http.StatusConflict, CodeUserExists, "Username is already taken")
		return
	case errors.Is(err, service.ErrUserNotFound):
		respondError(w, http.StatusNotFound, CodeNotFound, "User not found")
		return
	case errors.Is(err, service.ErrPickNotFound):
		respondError(w, http.StatusNotFound, CodeNotFound, "Pick not found or not owned by you")
		return
	case errors.Is(err, analysis.ErrInsufficientCandidates):
		respondError(w, http.StatusConflict, CodeInsufficient, "Not enough numbers left to recommend; delete some picks and try again")
		return
	case errors.Is(err, analysis.ErrStatsUnavailable):
		respondError(w, http.StatusServiceUnavailable, CodeStatsUnavailable, "Statistics not available")
		return
	}

	code := CodeInternal
	if errors.Is(err, service.ErrStorageFailure) {
		code = CodeStorage
	}
	log.WithError(err).WithFields(log.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"code":   code,
	}).Error("Request failed")
	respondError(w, http.StatusInternalServerError, code, "Something went wrong, please try again later")
}

// decodeJSON reads a JSON request body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, CodeBadRequest, "Request body too large")
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		respondError(w, http.StatusBadRequest, CodeBadRequest, "Malformed JSON body")
		return false
	}
	return true
}
