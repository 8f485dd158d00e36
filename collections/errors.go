package collections

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Collection operations.
//
// Use [errors.Is] for comparisons and [errors.As] to reach the typed error
// carrying the offending key, position or value:
//
//	err := c.Append(v)
//	var verr *collections.ValidationError
//	if errors.As(err, &verr) {
//	    log.Printf("rejected %v: %v", verr.Value, verr.Reason)
//	}
var (
	// ErrInvalidItem is matched by every [ValidationError]: a value was
	// rejected by the collection's validation policy.
	ErrInvalidItem = errors.New("collections: invalid collection item")

	// ErrNotFound is matched by [NotFoundError], returned by
	// [Collection.Get] when the key is absent.
	ErrNotFound = errors.New("collections: key not found")

	// ErrContainer is matched by [ContainerError]: the underlying store
	// failed while servicing a lookup.
	ErrContainer = errors.New("collections: container failure")

	// ErrInvalidArgument is matched by every [ArgumentError].
	ErrInvalidArgument = errors.New("collections: invalid argument")

	// ErrInvalidChunkSize is returned when Chunk is called with size <= 0.
	ErrInvalidChunkSize = errors.New("collections: chunk size must be greater than 0")

	// ErrMalformedJSON is returned when decoding input that is not a JSON
	// array or object.
	ErrMalformedJSON = errors.New("collections: input is not a JSON array or object")
)

// Policy rejection reasons. They appear as [ValidationError.Reason].
var (
	ErrNotNumeric        = errors.New("value must be numeric")
	ErrEmptyString       = errors.New("value must be a non-empty string")
	ErrNotSelfValidating = errors.New("value does not implement self-validation")
	ErrSelfCheckFailed   = errors.New("value failed its own validation")
	ErrKindMismatch      = errors.New("value is not of the required kind")
	ErrNotFinite         = errors.New("value must be a finite number")

	// ErrOutOfRange is the reason given when a numeric value cannot be
	// converted to the requested Go type without overflow.
	ErrOutOfRange = errors.New("value is out of range for the target type")
)

// ValidationError reports a value rejected by a validation policy.
//
// Position is the zero-based position of the value in the input sequence
// when the failure happened during a bulk operation (construction, Map,
// Filter, Absorb, decoding), and -1 otherwise.
type ValidationError struct {
	Op       string
	Key      Key
	Position int
	Value    any
	Reason   error
}

func (e *ValidationError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("collections: %s: invalid item %#v at position %d (key %s): %v",
			e.Op, e.Value, e.Position, e.Key, e.Reason)
	}
	return fmt.Sprintf("collections: %s: invalid item %#v (key %s): %v", e.Op, e.Value, e.Key, e.Reason)
}

// Unwrap exposes both [ErrInvalidItem] and the policy reason to errors.Is.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrInvalidItem, e.Reason}
}

// NotFoundError is returned by [Collection.Get] for an absent key.
type NotFoundError struct {
	Key Key
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("collections: key %s not found", e.Key)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ContainerError wraps an unexpected fault raised by the underlying store
// while a lookup was serviced. It unwraps to the original cause.
type ContainerError struct {
	Key   Key
	Cause error
}

func (e *ContainerError) Error() string {
	return fmt.Sprintf("collections: retrieving key %s: %v", e.Key, e.Cause)
}

func (e *ContainerError) Unwrap() error { return e.Cause }

func (e *ContainerError) Is(target error) bool { return target == ErrContainer }

// ArgumentError reports a precondition violation. Nothing is changed when
// it is returned.
type ArgumentError struct {
	Op    string
	Arg   string
	Value any
	Err   error
}

func (e *ArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("collections: %s: invalid %s %v: %v", e.Op, e.Arg, e.Value, e.Err)
	}
	return fmt.Sprintf("collections: %s: invalid %s %v", e.Op, e.Arg, e.Value)
}

func (e *ArgumentError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidArgument, e.Err}
	}
	return []error{ErrInvalidArgument}
}
