package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	v := NewCredentialsValidator()

	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid", "alice", false},
		{"with digits", "user42", false},
		{"with allowed symbols", "a.b_c-d", false},
		{"min length", "abc", false},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", MaxUsernameLen+1), true},
		{"empty", "", true},
		{"with space", "alice smith", true},
		{"with slash", "a/b/c", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	v := NewCredentialsValidator()

	assert.NoError(t, v.ValidatePassword("longenough"))
	assert.NoError(t, v.ValidatePassword(strings.Repeat("x", MinPasswordLen)))
	assert.Error(t, v.ValidatePassword("short"))
	assert.Error(t, v.ValidatePassword(""))
}

func TestValidateRegister(t *testing.T) {
	v := NewCredentialsValidator()

	assert.NoError(t, v.ValidateRegister("alice", "password123"))

	err := v.ValidateRegister("a", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "username")

	err = v.ValidateRegister("alice", "short")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}
