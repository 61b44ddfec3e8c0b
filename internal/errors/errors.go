package errors

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/recipeplanner/internal/logger"
)

// Format renders err with the "Error: " prefix used for all user-facing
// failures. Hints attached with WithHint are printed on a second line.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	var h *hinted
	if errors.As(err, &h) {
		msg += "\nHint: " + h.hint
	}
	return msg
}

func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

type hinted struct {
	err  error
	hint string
}

func (h *hinted) Error() string { return h.err.Error() }
func (h *hinted) Unwrap() error { return h.err }

// WithHint attaches a suggested next step to err
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return &hinted{err: err, hint: hint}
}

// Report logs err and writes its formatted form to w
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintln(w, Format(err))
}

// Fatal reports err on stderr and exits with status 1
func Fatal(err error) {
	if err != nil {
		Report(os.Stderr, err)
		os.Exit(1)
	}
}
