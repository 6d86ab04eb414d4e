package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWipeByteArray(t *testing.T) {
	b := []byte("secret")
	WipeByteArray(b)
	assert.Equal(t, make([]byte, 6), b)
}

func TestTruncateSecret(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"longer than limit", "abcdef123456", 6, "abcdef…"},
		{"exactly limit", "abc", 3, "abc"},
		{"shorter than limit", "ab", 6, "ab"},
		{"empty", "", 6, ""},
		{"zero limit hides everything", "abc", 0, "…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateSecret(tt.in, tt.n))
		})
	}
}
