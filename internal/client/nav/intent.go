package nav

import "sync"

// Intent remembers the destination an unauthenticated user was redirected
// away from. It holds at most one path; a newer bounce overwrites an older
// one, and resuming consumes the value.
type Intent struct {
	mu   sync.Mutex
	path string
}

func (i *Intent) Remember(path string) {
	if path == "" {
		return
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.path = path
}

// Resume returns the remembered path, or fallback when none is remembered.
// The remembered path is cleared either way.
func (i *Intent) Resume(fallback string) string {
	i.mu.Lock()
	defer i.mu.Unlock()
	p := i.path
	i.path = ""
	if p == "" {
		return fallback
	}
	return p
}
