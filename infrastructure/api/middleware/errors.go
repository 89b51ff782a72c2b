package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ankarhem/advent-of-code/domain/almanac"
	"github.com/ankarhem/advent-of-code/domain/interval"
	"github.com/ankarhem/advent-of-code/domain/mapping"
	parser "github.com/ankarhem/advent-of-code/infrastructure/almanac"
	"github.com/ankarhem/advent-of-code/internal/database"
	"github.com/ankarhem/advent-of-code/internal/log"
)

// ErrAuthentication matches every AuthenticationError.
var ErrAuthentication = errors.New("authentication failed")

// APIError is an error carrying an explicit HTTP status.
type APIError struct {
	code    int
	message string
	cause   error
}

// NewAPIError creates a new APIError.
func NewAPIError(code int, message string, cause error) *APIError {
	return &APIError{code: code, message: message, cause: cause}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("api error %d: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("api error %d: %s", e.code, e.message)
}

// Unwrap returns the underlying cause.
func (e *APIError) Unwrap() error { return e.cause }

// Code returns the HTTP status code.
func (e *APIError) Code() int { return e.code }

// Message returns the error message.
func (e *APIError) Message() string { return e.message }

// AuthenticationError reports a missing or rejected API key.
type AuthenticationError struct {
	message string
}

// NewAuthenticationError creates a new AuthenticationError.
func NewAuthenticationError(message string) *AuthenticationError {
	return &AuthenticationError{message: message}
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.message)
}

// Unwrap returns ErrAuthentication for errors.Is compatibility.
func (e *AuthenticationError) Unwrap() error { return ErrAuthentication }

type errorDocument struct {
	Errors []errorObject `json:"errors"`
}

type errorObject struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

// classify maps an error to an HTTP status, a title and a detail message.
func classify(err error) (int, string, string) {
	var apiErr *APIError
	var authErr *AuthenticationError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &apiErr):
		return apiErr.Code(), http.StatusText(apiErr.Code()), err.Error()
	case errors.As(err, &authErr):
		return http.StatusUnauthorized, "Unauthorized", authErr.message
	case errors.As(err, &syntaxErr):
		return http.StatusBadRequest, "Malformed Request", err.Error()
	case errors.Is(err, parser.ErrSyntax):
		return http.StatusBadRequest, "Invalid Almanac", err.Error()
	case errors.Is(err, mapping.ErrConfig),
		errors.Is(err, interval.ErrOverflow),
		errors.Is(err, interval.ErrInverted):
		return http.StatusBadRequest, "Invalid Stage Rules", err.Error()
	case errors.Is(err, almanac.ErrUnpairedSeeds), errors.Is(err, almanac.ErrUnknownMode):
		return http.StatusBadRequest, "Invalid Seeds", err.Error()
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound, "Not Found", err.Error()
	default:
		return http.StatusInternalServerError, "Internal Server Error", err.Error()
	}
}

// WriteError writes a JSON:API error document for err.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status, title, detail := classify(err)
	correlationID := log.CorrelationID(r.Context())

	if logger != nil {
		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(r.Context(), level, "request error",
			"status", status,
			"error", err.Error(),
			"path", r.URL.Path,
		)
	}

	w.Header().Set("Content-Type", "application/vnd.api+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorDocument{
		Errors: []errorObject{{
			ID:     correlationID,
			Status: strconv.Itoa(status),
			Title:  title,
			Detail: detail,
		}},
	})
}

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/vnd.api+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
