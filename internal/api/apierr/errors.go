package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/soomtochukwu/XLMate/internal/model"
	"github.com/soomtochukwu/XLMate/internal/services/keyauth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes. Authorization and duplication failures carry
// distinct codes so a caller retrying a submission can tell a benign
// replay (DUPLICATE_GAME for an id it just committed) from a real
// attempt to overwrite history.
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidRecord      = "INVALID_RECORD"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeNotAuthorized      = "NOT_AUTHORIZED"
	CodeNotInitialized     = "NOT_INITIALIZED"
	CodeAlreadyInitialized = "ALREADY_INITIALIZED"
	CodeDuplicateGame      = "DUPLICATE_GAME"
	CodeGameNotFound       = "GAME_NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrNotInitialized):
		return &httpError{http.StatusConflict, APIError{CodeNotInitialized, "Registry is not initialized"}}
	case errors.Is(err, model.ErrAlreadyInitialized):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyInitialized, "Registry is already initialized"}}
	case errors.Is(err, model.ErrUnauthorized):
		return &httpError{http.StatusForbidden, APIError{CodeNotAuthorized, "Caller does not hold the required role"}}
	case errors.Is(err, model.ErrDuplicateGame):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateGame, "Game is already recorded"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrInvalidRecord):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRecord, err.Error()}}

	// Map auth errors
	case errors.Is(err, keyauth.ErrInvalidKey):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthenticated, "Invalid API key"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthenticatedError creates an error for missing or bad credentials
func NewUnauthenticatedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthenticated, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
