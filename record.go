package shelf

import (
	"fmt"
	"reflect"
	"strings"
)

// Record is the contract a persisted value must satisfy: a stable identifier,
// unique within its (type, folder) scope, rendered as a path-safe string.
type Record interface {
	RecordID() string
}

// typeNameOf derives the storage directory name from a value's concrete type.
// Pointers are dereferenced so *User and User share one directory.
//
// Two distinct types that render to the same name silently share storage;
// detecting that is the caller's responsibility.
func typeNameOf(v any) (string, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return "", fmt.Errorf("%w: nil value has no type name", ErrUnsafePathSegment)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		return "", fmt.Errorf("%w: unnamed type %v", ErrUnsafePathSegment, t)
	}
	return name, nil
}

// elemTypeNameOf derives the storage directory name from a *[]T target.
func elemTypeNameOf(target any) (string, error) {
	t := reflect.TypeOf(target)
	if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Slice {
		return "", fmt.Errorf("%w: target must be a pointer to a slice, got %T", ErrUnsafePathSegment, target)
	}
	elem := t.Elem().Elem()
	for elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	name := elem.Name()
	if name == "" {
		return "", fmt.Errorf("%w: unnamed element type %v", ErrUnsafePathSegment, elem)
	}
	return name, nil
}

// validSegment checks that s can be used as exactly one path segment below
// the container root. Identifiers that could escape the root (separators,
// "..") are rejected rather than escaped, so stored ids always round-trip
// unchanged.
func validSegment(s string) error {
	switch {
	case s == "":
		return fmt.Errorf("%w: empty segment", ErrUnsafePathSegment)
	case s == "." || s == "..":
		return fmt.Errorf("%w: %q", ErrUnsafePathSegment, s)
	case strings.ContainsAny(s, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrUnsafePathSegment, s)
	case strings.ContainsRune(s, 0):
		return fmt.Errorf("%w: segment contains NUL", ErrUnsafePathSegment)
	}
	return nil
}
