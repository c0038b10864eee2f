package assert

import (
	"errors"
	"os"
	"reflect"
	"testing"
)

// Equal asserts that the two inputs are identical according to
// reflect.DeepEqual.
func Equal[T any](t *testing.T, expected, actual T) bool {
	t.Helper()

	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("expected: %#v, actual: %#v", expected, actual)
		return false
	}

	return true
}

// False asserts that the input is false.
func False(t *testing.T, actual bool) bool {
	t.Helper()

	return Equal(t, false, actual)
}

// True asserts that the input is true.
func True(t *testing.T, actual bool) bool {
	t.Helper()

	return Equal(t, true, actual)
}

// Zero asserts that the input is equal to T's zero value according to
// reflect.DeepEqual.
func Zero[T any](t *testing.T, actual T) bool {
	t.Helper()

	var zero T
	return Equal(t, zero, actual)
}

// NoError fails the test immediately if err is non-nil. Most filesystem
// fixtures are useless after a failed step, so this stops rather than
// continuing like the other helpers.
func NoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ErrorIs asserts that errors.Is(err, target) holds.
func ErrorIs(t *testing.T, err, target error) bool {
	t.Helper()

	if !errors.Is(err, target) {
		t.Errorf("expected error matching %v, actual: %v", target, err)
		return false
	}

	return true
}

// Exists asserts whether something exists at path.
func Exists(t *testing.T, expected bool, path string) bool {
	t.Helper()

	_, err := os.Lstat(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		t.Errorf("failed to stat %s: %v", path, err)
		return false
	}

	if actual := err == nil; actual != expected {
		t.Errorf("expected exists(%s) to be %v", path, expected)
		return false
	}

	return true
}
