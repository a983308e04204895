package list

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrMalformedImport  = errors.New("malformed import")
)

// NotFoundError reports a stale or unknown id. Callers treat it as a no-op.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

func (e NotFoundError) Unwrap() error {
	return ErrNotFound
}

// InvalidOperationError is a rejected request that leaves state unchanged.
type InvalidOperationError struct {
	Op     string
	Reason string
}

func (e InvalidOperationError) Error() string {
	if e.Op == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e InvalidOperationError) Unwrap() error {
	return ErrInvalidOperation
}

// MalformedImportError reports a backup document that failed structural checks.
type MalformedImportError struct {
	Reason string
	Err    error
}

func (e MalformedImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid backup file: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid backup file: %s", e.Reason)
}

func (e MalformedImportError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedImport, e.Err}
	}
	return []error{ErrMalformedImport}
}
