package domain

import "errors"

// Recoverable conditions surfaced by the quiz and word flows. Handlers
// convert each into a status message; none of them are fatal.
var (
	// ErrNoWords means the current category/level has no entries to quiz.
	ErrNoWords = errors.New("no words available")

	// ErrNoSelection means a card or add/delete action was attempted
	// before a level and category were chosen.
	ErrNoSelection = errors.New("no level or category selected")

	// ErrDuplicate means an entry with the same (owner, word, translation,
	// category, level) key already exists.
	ErrDuplicate = errors.New("entry already exists")

	// ErrNotFound means the deletion target does not exist.
	ErrNotFound = errors.New("entry not found")

	// ErrNoActiveCard means an answer arrived while no card was pending.
	ErrNoActiveCard = errors.New("no active card")
)
