package execshell

// History keeps submitted lines in memory, oldest first.
//
// History is append-only for the lifetime of a shell and is never written
// to disk. Consecutive duplicates and empty lines are not recorded.
type History struct {
	entries []string
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{entries: make([]string, 0)}
}

// Add appends entry and reports whether it was recorded. An empty entry
// or one equal to the most recent entry is skipped.
func (h *History) Add(entry string) bool {
	if entry == "" {
		return false
	}

	// Avoid duplicate consecutive entries
	if last, ok := h.Last(); ok && last == entry {
		return false
	}

	h.entries = append(h.entries, entry)
	return true
}

// Last returns the most recent entry.
func (h *History) Last() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[len(h.entries)-1], true
}

// At returns the entry at index i. The caller keeps i in [0, Len()).
func (h *History) At(i int) string {
	return h.entries[i]
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the history
func (h *History) Entries() []string {
	return append([]string{}, h.entries...)
}
