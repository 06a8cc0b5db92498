package service

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"slovanglik/internal/domain"
)

// optionCount is how many answer options a card carries when enough
// distinct words exist.
const optionCount = 4

// missedWeight is the total selection weight of a previously-missed word.
// Missed words come up three times as often as the rest.
const missedWeight = 3

// QuizService picks the next card to show and checks quiz answers.
// It never touches the word store; its only side effects are on the
// session passed in.
type QuizService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuizService creates a quiz service with a time-seeded source.
func NewQuizService() *QuizService {
	return &QuizService{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// newQuizServiceWithSource pins the random source, for deterministic tests.
func newQuizServiceWithSource(src rand.Source) *QuizService {
	return &QuizService{rng: rand.New(src)}
}

// BuildCard picks the next word to quiz from the candidates and assembles
// its option set.
//
// Words shown in the last three cards are skipped when alternatives exist;
// words missed earlier this session are weighted three to one. The chosen
// word is pushed onto the session's recent FIFO and staged as the target.
// Returns domain.ErrNoWords for an empty candidate set, leaving the
// session untouched.
func (s *QuizService) BuildCard(candidates []domain.VocabEntry, sess *domain.Session) (*domain.Card, error) {
	if len(candidates) == 0 {
		return nil, domain.ErrNoWords
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Recency exclusion is best-effort: if every candidate was shown
	// recently, fall back to the full set rather than starve selection.
	available := make([]domain.VocabEntry, 0, len(candidates))
	for _, e := range candidates {
		if !sess.IsRecent(e.Word) {
			available = append(available, e)
		}
	}
	if len(available) == 0 {
		available = candidates
	}

	pool := make([]domain.VocabEntry, 0, len(available))
	pool = append(pool, available...)
	for _, e := range available {
		if sess.IsMissed(e.Word) {
			pool = append(pool, e, e)
		}
	}

	chosen := pool[s.rng.Intn(len(pool))]

	sess.PushRecent(chosen.Word)
	sess.SetTarget(chosen.Word, chosen.Translation)

	return &domain.Card{
		Level:       chosen.Level,
		Category:    chosen.Category,
		Translation: chosen.Translation,
		Options:     s.buildOptions(candidates, strings.ToLower(chosen.Word)),
	}, nil
}

// buildOptions assembles the answer options: the target plus distractors
// drawn from the other candidate words, min(4, unique words) in total,
// no duplicates, shuffled. Caller holds s.mu.
func (s *QuizService) buildOptions(candidates []domain.VocabEntry, target string) []string {
	others := make([]string, 0, len(candidates))
	for _, e := range candidates {
		if w := strings.ToLower(e.Word); w != target {
			others = append(others, w)
		}
	}
	s.rng.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})

	options := []string{target}
	seen := map[string]struct{}{target: {}}
	for _, w := range others {
		if len(options) == optionCount {
			break
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		options = append(options, w)
	}

	s.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// CheckAnswer compares the user's text against the staged target word.
// A wrong answer records the target into the session's missed set and
// keeps the card active for another attempt.
func (s *QuizService) CheckAnswer(sess *domain.Session, text string) (bool, error) {
	if !sess.HasTarget() {
		return false, domain.ErrNoActiveCard
	}

	if strings.ToLower(strings.TrimSpace(text)) == sess.TargetWord {
		return true, nil
	}

	sess.MarkMissed(sess.TargetWord)
	return false, nil
}
