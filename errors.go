package shelf

import (
	"errors"
	"fmt"
)

// Error kinds returned by Store operations. Each wraps the underlying cause;
// match with errors.Is and inspect the chain with errors.Unwrap.
var (
	// ErrLoadFailed is returned when a record file is missing, unreadable,
	// or cannot be decoded during Load or LoadAll.
	ErrLoadFailed = errors.New("shelf: load failed")

	// ErrStoreFailed is returned when encoding or writing fails during Save.
	ErrStoreFailed = errors.New("shelf: store failed")

	// ErrDeleteFailed is returned when listing or removal fails during
	// Delete or DeleteAll.
	ErrDeleteFailed = errors.New("shelf: delete failed")

	// ErrUnsafePathSegment is returned when a type name, folder, or record
	// id cannot be used as a single path segment (empty, contains a path
	// separator, "..", or a NUL byte). It is always wrapped in one of the
	// three operation kinds above.
	ErrUnsafePathSegment = errors.New("shelf: unsafe path segment")
)

// loadErr wraps a cause as an ErrLoadFailed.
func loadErr(cause error) error {
	return fmt.Errorf("%w: %w", ErrLoadFailed, cause)
}

// storeErr wraps a cause as an ErrStoreFailed.
func storeErr(cause error) error {
	return fmt.Errorf("%w: %w", ErrStoreFailed, cause)
}

// deleteErr wraps a cause as an ErrDeleteFailed.
func deleteErr(cause error) error {
	return fmt.Errorf("%w: %w", ErrDeleteFailed, cause)
}
