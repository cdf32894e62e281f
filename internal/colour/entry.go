package colour

import (
	"time"

	"github.com/google/uuid"
)

// MaxHistory caps the number of entries a History retains.
const MaxHistory = 35

// Entry is a committed colour in its display notations. Entries are values:
// a later commit supersedes an entry, it never edits one.
type Entry struct {
	ID        string    `json:"id"`
	Hex       string    `json:"hex"`
	RGB       string    `json:"rgb"`
	HSL       string    `json:"hsl"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewEntry records c at the given time.
func NewEntry(c RGB, at time.Time) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Hex:       c.Hex(),
		RGB:       c.String(),
		HSL:       c.HSLString(),
		CreatedAt: at,
	}
}

// History is an immutable, newest-first list of entries.
type History struct {
	entries []Entry
}

// Commit returns a new History with e first. Older entries with the same hex
// are dropped and the result is capped at MaxHistory.
func (h History) Commit(e Entry) History {
	next := make([]Entry, 0, min(len(h.entries)+1, MaxHistory))
	next = append(next, e)
	for _, old := range h.entries {
		if len(next) == MaxHistory {
			break
		}
		if old.Hex == e.Hex {
			continue
		}
		next = append(next, old)
	}
	return History{entries: next}
}

// Entries returns a copy of the entries, newest first.
func (h History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries.
func (h History) Len() int {
	return len(h.entries)
}

// Latest returns the most recent entry.
func (h History) Latest() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[0], true
}
