package apperrors

import "fmt"

type Kind int

const (
	// Validation covers bad or missing input fields.
	Validation Kind = iota
	// NotFound covers lookups that matched no record.
	NotFound
	// Store covers unexpected persistence failures.
	Store
)

// Error is the tagged error carried from services up to the error
// middleware, which switches on Kind instead of inspecting messages.
type Error struct {
	Kind    Kind
	Status  int // optional; middleware falls back to 500
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *Error {
	return &Error{Kind: Validation, Message: msg}
}

func NewNotFound(msg string) *Error {
	return &Error{Kind: NotFound, Message: msg}
}

func NewStore(op string, err error) *Error {
	return &Error{Kind: Store, Message: fmt.Sprintf("%s: %v", op, err), Err: err}
}
