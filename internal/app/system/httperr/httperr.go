// Package httperr is the single boundary where service failures become HTTP
// responses. Handlers and stores return errors; Write translates them into
// a status code and the JSON error body {"message": "..."} the API promises.
//
// Anything that is not an *Error (driver failures, context timeouts, bugs)
// is answered with a generic 500 so internals never reach the client.
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Kind classifies a failure the way the API reports it.
type Kind int

const (
	// Validation covers missing or malformed request fields.
	Validation Kind = iota + 1
	// Unauthorized covers bad credentials and missing/invalid/expired tokens.
	Unauthorized
	// Forbidden covers authenticated subjects acting on resources they do not own.
	Forbidden
	// NotFound covers unknown ids (including well-formed ids that resolve to nothing).
	NotFound
	// Conflict covers uniqueness violations: duplicate email, duplicate NGO
	// name, duplicate campaign registration.
	Conflict
	// Internal covers store and infrastructure failures.
	Internal
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case Validation:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure with a client-safe message.
type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, logged but never serialized
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a classified error with a client-visible message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches an underlying cause to a classified error. The cause is for
// logs; clients only ever see the message.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

type errorBody struct {
	Message string `json:"message"`
}

// Write sends err to the client. Classified errors keep their kind and
// message; everything else becomes a generic 500.
func Write(w http.ResponseWriter, err error) {
	var he *Error
	if !errors.As(err, &he) {
		he = &Error{Kind: Internal, Message: "Server error"}
	}

	msg := he.Message
	if he.Kind == Internal {
		// Internal messages may describe infrastructure; never leak them.
		msg = "Server error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.Kind.Status())
	_ = json.NewEncoder(w).Encode(errorBody{Message: msg})
}
