package domain

import "time"

// VocabEntry is a single entry in a user's personal word list.
// Word, Translation and Category are stored lowercase. Entries are never
// updated in place, only inserted and deleted.
type VocabEntry struct {
	ID          int
	UserID      int64
	Word        string // English word
	Translation string // Russian translation
	Category    string
	Level       int
	Custom      bool
	CreatedAt   time.Time
}

// Card is a single quiz prompt: a Russian word to translate plus English
// answer options containing the correct word exactly once.
type Card struct {
	Level       int
	Category    string
	Translation string
	Options     []string
}

// CategoryCount is a per-level, per-category word count for the stats screen.
type CategoryCount struct {
	Level    int
	Category string
	Count    int
}
