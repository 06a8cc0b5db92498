package domain

import (
	"strings"
	"sync"
)

// maxRecentWords bounds the recently-shown FIFO. A just-shown word is not
// offered again until three other words have been shown, when alternatives
// exist.
const maxRecentWords = 3

// PendingAction tells the interpreter how to read the next inbound text.
// Each variant carries exactly the fields its commit step needs; a nil
// PendingAction means the next text is a quiz answer.
type PendingAction interface {
	pendingAction()
}

// AddAwaitWord: the user pressed "add word", the next text is the Russian
// word to add.
type AddAwaitWord struct {
	Category string
	Level    int
}

// AddAwaitTranslation: the Russian word is staged, the next text is its
// English translation and commits the addition.
type AddAwaitTranslation struct {
	Category   string
	Level      int
	NativeWord string
}

// DeleteAwaitWord: the user pressed "delete word", the next text is the
// Russian translation of the entry to remove.
type DeleteAwaitWord struct {
	Category string
	Level    int
}

func (AddAwaitWord) pendingAction()        {}
func (AddAwaitTranslation) pendingAction() {}
func (DeleteAwaitWord) pendingAction()     {}

// Session is a user's volatile quiz state. It lives for the process
// lifetime only: a restart loses quiz progress but not the persistent
// level/category Selection.
//
// Session is not internally synchronized. Callers hold the session lock
// for a whole message-handling turn, so two messages from the same user
// can never interleave updates to the recent or missed sets.
type Session struct {
	mu sync.Mutex

	recent []string
	missed map[string]struct{}

	// TargetWord is set if and only if a card has been rendered and not
	// yet resolved. Both fields are lowercase.
	TargetWord        string
	TargetTranslation string

	Pending PendingAction
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{
		missed: make(map[string]struct{}),
	}
}

// Lock acquires the session for one message-handling turn.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session after the turn.
func (s *Session) Unlock() { s.mu.Unlock() }

// PushRecent records a shown word, evicting the oldest entry once the
// FIFO holds more than three words.
func (s *Session) PushRecent(word string) {
	s.recent = append(s.recent, strings.ToLower(word))
	if len(s.recent) > maxRecentWords {
		s.recent = s.recent[1:]
	}
}

// Recent returns a copy of the recently-shown words, oldest first.
func (s *Session) Recent() []string {
	out := make([]string, len(s.recent))
	copy(out, s.recent)
	return out
}

// IsRecent reports whether the word was among the last shown words.
func (s *Session) IsRecent(word string) bool {
	word = strings.ToLower(word)
	for _, r := range s.recent {
		if r == word {
			return true
		}
	}
	return false
}

// MarkMissed records a word the user answered incorrectly this session.
func (s *Session) MarkMissed(word string) {
	s.missed[strings.ToLower(word)] = struct{}{}
}

// IsMissed reports whether the word was previously missed this session.
func (s *Session) IsMissed(word string) bool {
	_, ok := s.missed[strings.ToLower(word)]
	return ok
}

// MissedCount returns the number of distinct missed words.
func (s *Session) MissedCount() int {
	return len(s.missed)
}

// SetTarget stages the pair the user is being quizzed on.
func (s *Session) SetTarget(word, translation string) {
	s.TargetWord = strings.ToLower(word)
	s.TargetTranslation = strings.ToLower(translation)
}

// ClearTarget drops the staged pair.
func (s *Session) ClearTarget() {
	s.TargetWord = ""
	s.TargetTranslation = ""
}

// HasTarget reports whether a card is awaiting an answer.
func (s *Session) HasTarget() bool {
	return s.TargetWord != ""
}
