package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies failures so handlers can map them to a single
// user-facing notification with the right status.
type Kind int

const (
	KindAuth Kind = iota + 1
	KindPolicy
	KindNotFound
	KindCollaborator
)

type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Auth reports bad credentials or an expired session.
func Auth(msg string) error {
	return &Error{Kind: KindAuth, Msg: msg}
}

// Policy reports a role check failure at call time.
func Policy(msg string) error {
	return &Error{Kind: KindPolicy, Msg: msg}
}

// NotFound reports a mutate or delete against a missing identifier.
func NotFound(collection, id string) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf("%s: no record with id %s", collection, id)}
}

// Collaborator wraps an opaque failure from an external system
// (identity provider, document store, blob store, share sink).
func Collaborator(op string, cause error) error {
	return &Error{Kind: KindCollaborator, Msg: op + " failed", Cause: cause}
}

func is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func IsAuth(err error) bool         { return is(err, KindAuth) }
func IsPolicy(err error) bool       { return is(err, KindPolicy) }
func IsNotFound(err error) bool     { return is(err, KindNotFound) }
func IsCollaborator(err error) bool { return is(err, KindCollaborator) }

// Message is the user-facing text for an error, with collaborator causes
// kept out of the response body.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "internal error"
}

// Status maps an error to the HTTP status a handler should respond with.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return 500
	}
	switch e.Kind {
	case KindAuth:
		return 401
	case KindPolicy:
		return 403
	case KindNotFound:
		return 404
	case KindCollaborator:
		return 502
	default:
		return 500
	}
}
