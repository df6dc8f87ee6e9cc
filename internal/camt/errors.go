package camt

import (
	"errors"
	"fmt"
)

// Error kinds returned by Parser. Every parse failure wraps exactly one of
// them, so callers can classify failures with errors.Is.
var (
	// ErrFormat reports an unrecognized namespace, a missing required
	// element or a value that does not parse as its expected literal.
	ErrFormat = errors.New("camt: format error")
	// ErrConfig reports that no reporting currency could be determined.
	ErrConfig = errors.New("camt: configuration error")
	// ErrReconciliation reports that no opening or closing balance is left
	// for the reporting currency.
	ErrReconciliation = errors.New("camt: reconciliation error")
)

func formatErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFormat, fmt.Sprintf(format, args...))
}

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

func reconciliationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrReconciliation, fmt.Sprintf(format, args...))
}
