package play

import (
	"bufio"
	"errors"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// ErrOutOfBounds is returned for a history index outside the recorded range.
var ErrOutOfBounds = errors.New("index out of range")

const baseHistory = "play.history"

// History is the list of fragments submitted in earlier sessions, oldest
// first. Each entry is stored on one line as a quoted string.
type History struct {
	path    string
	entries []string
	mu      sync.RWMutex
}

// NewHistory creates a History persisted at path. An empty path keeps
// history in memory only.
func NewHistory(path string) *History {
	return &History{path: path}
}

// Load replaces the entries with those stored in the history file. A missing
// file is an empty history; unreadable lines are skipped.
func (h *History) Load() error {
	if h.path == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	file, err := os.Open(h.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return err
	}
	defer file.Close()

	h.entries = nil

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		entry, err := strconv.Unquote(scanner.Text())
		if err != nil || strings.TrimSpace(entry) == "" {
			continue
		}

		h.entries = append(h.entries, entry)
	}

	return scanner.Err()
}

// Add records entry as the newest item, moving an equal older entry to the
// end instead of duplicating it.
func (h *History) Add(entry string) error {
	if strings.TrimSpace(entry) == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		return nil
	}

	if i := slices.Index(h.entries, entry); i >= 0 {
		h.entries = slices.Delete(h.entries, i, i+1)
		h.entries = append(h.entries, entry)

		return h.rewrite()
	}

	h.entries = append(h.entries, entry)

	if h.path == "" {
		return nil
	}

	file, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(strconv.Quote(entry) + "\n")

	return err
}

// Get returns the entry at index i; 0 is the oldest.
func (h *History) Get(i int) (string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if i < 0 || i >= len(h.entries) {
		return "", ErrOutOfBounds
	}

	return h.entries[i], nil
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.entries)
}

// rewrite must be called with h.mu held.
func (h *History) rewrite() error {
	if h.path == "" {
		return nil
	}

	var b strings.Builder

	for _, e := range h.entries {
		b.WriteString(strconv.Quote(e))
		b.WriteByte('\n')
	}

	return os.WriteFile(h.path, []byte(b.String()), 0o600)
}
