package common

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- WipeByteArray ----------

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

// ---------- error helpers ----------

func TestStorageError_MatchesBoth(t *testing.T) {
	err := StorageError("append users", os.ErrPermission)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStorage))
	assert.True(t, errors.Is(err, os.ErrPermission))
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
	assert.Contains(t, err.Error(), "append users")
}

func TestValidationError(t *testing.T) {
	err := ValidationError("identifier is required")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "identifier is required")
}

func TestHasSeparator(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"alice@example.com", false},
		{"a,b", true},
		{"line\nbreak", true},
		{"cr\r", true},
		{"", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, HasSeparator(tc.in), tc.in)
	}
}
