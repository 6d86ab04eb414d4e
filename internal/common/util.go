// Package common contains small helpers shared across careerdesk packages.
package common

// WipeByteArray overwrites the slice contents with zeros. Used to clear
// password buffers as soon as they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// TruncateSecret returns a bounded prefix of a secret suitable for logs.
// The full value must never be logged; anything longer than n runes is cut
// and marked with an ellipsis.
func TruncateSecret(s string, n int) string {
	if n <= 0 {
		return "…"
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
