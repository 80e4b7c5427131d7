package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is understands both wrapping and marks.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

// WithHint attaches a user-facing message, e.g. the backend's rejection text.
func WithHint(err error, hint string) error {
	if err == nil || hint == "" {
		return err
	}
	return cr.WithHint(err, hint)
}

// Hint returns the first user-facing message attached to err, if any.
func Hint(err error) string {
	hints := cr.GetAllHints(err)
	if len(hints) == 0 {
		return ""
	}
	return hints[0]
}

func As(err error, target any) bool {
	return cr.As(err, target)
}

// Cause returns the innermost error of the chain
func Cause(err error) error {
	return cr.UnwrapAll(err)
}
