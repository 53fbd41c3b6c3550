package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/no1453/woggle/internal/model"
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

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeSessionNotFound     = "SESSION_NOT_FOUND"
	CodePathTooShort        = "PATH_TOO_SHORT"
	CodePathNotAdjacent     = "PATH_NOT_ADJACENT"
	CodePathRepeatsTile     = "PATH_REPEATS_TILE"
	CodeWordNotInDictionary = "WORD_NOT_IN_DICTIONARY"
	CodeWordAlreadyFound    = "WORD_ALREADY_FOUND"
	CodeInvalidPosition     = "INVALID_POSITION"
	CodeDictionaryNotLoaded = "DICTIONARY_NOT_LOADED"
	CodeInternalError       = "INTERNAL_ERROR"
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
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrPathTooShort):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodePathTooShort, "Words must use at least three tiles"}}
	case errors.Is(err, model.ErrPathNotAdjacent):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodePathNotAdjacent, "Each tile must touch the previous one"}}
	case errors.Is(err, model.ErrPathRepeatsTile):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodePathRepeatsTile, "A tile may only be used once per word"}}
	case errors.Is(err, model.ErrWordNotInDictionary):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeWordNotInDictionary, "Not a dictionary word"}}
	case errors.Is(err, model.ErrWordAlreadyFound):
		return &httpError{http.StatusConflict, APIError{CodeWordAlreadyFound, "Word has already been found"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Invalid board position"}}
	case errors.Is(err, model.ErrDictionaryNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeDictionaryNotLoaded, "Dictionary is not loaded"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
