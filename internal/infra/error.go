package infra

import (
	"errors"
	"log/slog"
	"strconv"

	"storefront-bff/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	slogger.Error("Repository error: "+msg,
		slog.String("kind", string(kind)),
		slog.Any("error", err),
	)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
)

type CommerceErrorKind string

// Commerce API failure kinds
const (
	KindTransient CommerceErrorKind = "TRANSIENT"
	KindRejected  CommerceErrorKind = "REJECTED"
	KindDecode    CommerceErrorKind = "DECODE"
)

// CommerceError describes a failed commerce API call
type CommerceError struct {
	Kind     CommerceErrorKind
	Endpoint string
	Status   int
	msg      string
	err      error
}

func (e CommerceError) Error() string {
	s := string(e.Kind) + ": " + e.Endpoint
	if e.Status != 0 {
		s += " (" + strconv.Itoa(e.Status) + ")"
	}
	if e.msg != "" {
		s += ": " + e.msg
	}
	if e.err != nil {
		s += ": " + e.err.Error()
	}
	return s
}

func (e CommerceError) Unwrap() error {
	return e.err
}

// NewCommerceError marks the failure with the matching usecase sentinel.
// A rejection message from the backend is attached as the user-facing hint.
func NewCommerceError(kind CommerceErrorKind, endpoint string, status int, msg string, err error) error {
	var out error = CommerceError{Kind: kind, Endpoint: endpoint, Status: status, msg: msg, err: err}

	switch kind {
	case KindRejected:
		out = errs.Mark(out, errs.ErrRejected)
		if msg != "" {
			out = errs.WithHint(out, msg)
		}
	default:
		out = errs.Mark(out, errs.ErrTransient)
	}
	return out
}

func IsCommerceKind(err error, kind CommerceErrorKind) bool {
	var e CommerceError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
