package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Shu5555/jinro-app/internal/model"
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
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeDataError            = "DATA_ERROR"
	CodeCountMismatch        = "COUNT_MISMATCH"
	CodeInsufficientRoles    = "INSUFFICIENT_ROLES"
	CodeSubstitutionFailed   = "SUBSTITUTION_FAILED"
	CodePoolExhausted        = "POOL_EXHAUSTED"
	CodeWrongPassword        = "WRONG_PASSWORD"
	CodeDecodeFailed         = "DECODE_FAILED"
	CodeDistributionNotFound = "DISTRIBUTION_NOT_FOUND"
	CodeSessionNotFound      = "SESSION_NOT_FOUND"
	CodeNotGM                = "NOT_GM"
	CodeUnknownVoter         = "UNKNOWN_VOTER"
	CodeUnknownTarget        = "UNKNOWN_TARGET"
	CodeUnknownChatRoom      = "UNKNOWN_CHAT_ROOM"
	CodeWordPoolNotLoaded    = "WORD_POOL_NOT_LOADED"
	CodeInternalError        = "INTERNAL_ERROR"
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

// NewInvalidRequest creates an invalid-request error with a custom message
func NewInvalidRequest(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates a generic internal error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
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
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Detail-bearing generation errors keep their message verbatim so
	// the caller can show the shortfall to the GM.
	var dataErr *model.DataError
	if errors.As(err, &dataErr) {
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeDataError, dataErr.Error()}}
	}
	var countErr *model.CountMismatchError
	if errors.As(err, &countErr) {
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeCountMismatch, countErr.Error()}}
	}
	var insufficientErr *model.InsufficientRolesError
	if errors.As(err, &insufficientErr) {
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInsufficientRoles, insufficientErr.Error()}}
	}
	var substErr *model.SubstitutionError
	if errors.As(err, &substErr) {
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeSubstitutionFailed, substErr.Error()}}
	}
	var poolErr *model.PoolExhaustedError
	if errors.As(err, &poolErr) {
		return &httpError{http.StatusUnprocessableEntity, APIError{CodePoolExhausted, poolErr.Error()}}
	}

	switch {
	case errors.Is(err, model.ErrWrongPassword):
		return &httpError{http.StatusNotFound, APIError{CodeWrongPassword, "No assignment matches that password"}}
	case errors.Is(err, model.ErrPayloadDecode):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeDecodeFailed, "Payload could not be decoded"}}
	case errors.Is(err, model.ErrDistributionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeDistributionNotFound, "Distribution not found"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrNotGM):
		return &httpError{http.StatusForbidden, APIError{CodeNotGM, "GM passphrase does not match"}}
	case errors.Is(err, model.ErrUnknownVoter):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownVoter, "Voter is not a session participant"}}
	case errors.Is(err, model.ErrUnknownTarget), errors.Is(err, model.ErrTargetIsGM):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownTarget, "Invalid vote target"}}
	case errors.Is(err, model.ErrUnknownChatRoom):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownChatRoom, "Chat room does not belong to this session"}}
	case errors.Is(err, model.ErrWordPoolNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeWordPoolNotLoaded, "Password word pool not loaded"}}
	case errors.Is(err, model.ErrNoParticipants), errors.Is(err, model.ErrNoCandidates),
		errors.Is(err, model.ErrEmptyRoleName), errors.Is(err, model.ErrEmptyCatalog):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, err.Error()}}
	}

	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
