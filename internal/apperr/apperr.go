// Package apperr defines the error taxonomy shared by the service and handler
// layers: validation failures, missing records and storage failures. Handlers map
// each kind onto an HTTP status, nothing else inspects error strings.
package apperr

import (
	"fmt"
	"strings"
)

// ValidationError reports which required fields were missing or empty in a
// client-supplied payload.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or empty required fields: %s", strings.Join(e.Fields, ", "))
}

// NotFoundError reports that no assignment exists under the requested id.
type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("assignment %d not found", e.ID)
}

// StorageError wraps a failure from the backing store. The wrapped error carries
// the full driver detail for logs; clients only ever see a generic message.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
