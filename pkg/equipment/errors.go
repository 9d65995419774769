package equipment

import "fmt"

// ValidationError reports bad, missing or contradictory input. Maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a referenced record that does not exist. Maps to 404.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// ConflictError reports a uniqueness violation. Maps to 409.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// PersistenceError reports a store-level failure or a mutation that affected
// zero rows. Maps to 500; the wrapped cause never reaches the client.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: no rows affected", e.Op)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
