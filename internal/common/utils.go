package common

import (
	"fmt"
	"strings"
)

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Used to drop secrets from memory once they have been hashed or compared.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

// StorageError wraps err so that it matches both ErrStorage and err itself.
func StorageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

// ValidationError returns an ErrValidation with a human-readable reason.
func ValidationError(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

// HasSeparator reports whether s contains a character that would break a
// single-line comma-delimited record.
func HasSeparator(s string) bool {
	return strings.ContainsAny(s, ",\r\n")
}
