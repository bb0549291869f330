// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package publicauth

import (
	"encoding/json"
	"net/http"

	"github.com/vantagehq/interview-service/internal/logging"
)

// Kind names the first check that failed during authentication or scope
// enforcement. Every failure is terminal for the request.
type Kind string

const (
	KindMissingCredentials Kind = "MissingCredentials"
	KindInvalidFormat      Kind = "InvalidFormat"
	KindNotFound           Kind = "NotFound"
	KindNotPublic          Kind = "NotPublic"
	KindDisabled           Kind = "Disabled"
	KindInvalidCode        Kind = "InvalidCode"
	KindEmailMismatch      Kind = "EmailMismatch"
	KindMissingAuth        Kind = "MissingAuth"
	KindTokenExpired       Kind = "TokenExpired"
	KindInvalidToken       Kind = "InvalidToken"
	KindWrongTokenType     Kind = "WrongTokenType"
	KindMissingClaims      Kind = "MissingClaims"
	KindMissingContext     Kind = "MissingContext"
	KindInterviewMismatch  Kind = "InterviewMismatch"
	KindResponseNotFound   Kind = "ResponseNotFound"
	KindResponseMismatch   Kind = "ResponseMismatch"
	KindDuplicateResponse  Kind = "DuplicateResponse"
	KindStorageError       Kind = "StorageError"
	KindInternalError      Kind = "InternalError"
)

// Error is a typed authentication/authorization failure. Status is the HTTP
// status the middleware replies with; Message is the client-facing text.
// Backend detail never travels in Message, only in server logs.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrMissingCredentials = &Error{KindMissingCredentials, http.StatusUnauthorized, "interview id, email and access code are required"}
	ErrInvalidFormat      = &Error{KindInvalidFormat, http.StatusBadRequest, "interview id must be an integer"}
	ErrNotFound           = &Error{KindNotFound, http.StatusNotFound, "interview not found"}
	ErrNotPublic          = &Error{KindNotPublic, http.StatusForbidden, "interview is not publicly accessible"}
	ErrDisabled           = &Error{KindDisabled, http.StatusForbidden, "interview is disabled"}
	ErrInvalidCode        = &Error{KindInvalidCode, http.StatusUnauthorized, "invalid access code"}
	ErrEmailMismatch      = &Error{KindEmailMismatch, http.StatusForbidden, "email does not match the interview contact"}
	ErrMissingAuth        = &Error{KindMissingAuth, http.StatusUnauthorized, "missing authorization header"}
	ErrTokenExpired       = &Error{KindTokenExpired, http.StatusUnauthorized, "token expired, please authenticate again"}
	ErrInvalidToken       = &Error{KindInvalidToken, http.StatusUnauthorized, "invalid token"}
	ErrWrongTokenType     = &Error{KindWrongTokenType, http.StatusForbidden, "token is not a public interview token"}
	ErrMissingClaims      = &Error{KindMissingClaims, http.StatusUnauthorized, "token is missing required claims"}
	ErrMissingContext     = &Error{KindMissingContext, http.StatusUnauthorized, "missing public interview context"}
	ErrInterviewMismatch  = &Error{KindInterviewMismatch, http.StatusForbidden, "you can only access your assigned interview"}
	ErrResponseNotFound   = &Error{KindResponseNotFound, http.StatusNotFound, "response not found"}
	ErrResponseMismatch   = &Error{KindResponseMismatch, http.StatusForbidden, "you can only access responses of your assigned interview"}
	ErrDuplicateResponse  = &Error{KindDuplicateResponse, http.StatusConflict, "a response for this question already exists"}
	ErrStorage            = &Error{KindStorageError, http.StatusInternalServerError, "internal server error"}
	ErrInternal           = &Error{KindInternalError, http.StatusInternalServerError, "internal server error"}
)

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WriteError renders the failure as the JSON envelope every public interview
// endpoint replies with.
func WriteError(w http.ResponseWriter, e *Error, logger logging.LoggerInterface) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	if err := json.NewEncoder(w).Encode(errorBody{Success: false, Error: e.Message}); err != nil {
		logger.Errorf("failed to encode error response: %v", err)
	}
}
