package service

import (
	"math/rand"
	"testing"

	"slovanglik/internal/domain"
	"slovanglik/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbersCandidates() []domain.VocabEntry {
	return []domain.VocabEntry{
		testutil.NewTestEntry(123, "one", "один", "числа", 1),
		testutil.NewTestEntry(123, "two", "два", "числа", 1),
		testutil.NewTestEntry(123, "three", "три", "числа", 1),
	}
}

func TestQuizService_BuildCard_EmptyCandidates(t *testing.T) {
	quiz := newQuizServiceWithSource(rand.NewSource(1))
	sess := domain.NewSession()

	card, err := quiz.BuildCard(nil, sess)

	assert.ErrorIs(t, err, domain.ErrNoWords)
	assert.Nil(t, card)
	assert.False(t, sess.HasTarget())
	assert.Empty(t, sess.Recent())
}

func TestQuizService_BuildCard_ExcludesRecentWords(t *testing.T) {
	quiz := newQuizServiceWithSource(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		sess := domain.NewSession()
		sess.PushRecent("two")

		card, err := quiz.BuildCard(numbersCandidates(), sess)
		require.NoError(t, err)
		require.NotNil(t, card)

		assert.NotEqual(t, "two", sess.TargetWord)
	}
}

func TestQuizService_BuildCard_RecentFallback(t *testing.T) {
	quiz := newQuizServiceWithSource(rand.NewSource(1))
	sess := domain.NewSession()
	sess.PushRecent("one")
	sess.PushRecent("two")
	sess.PushRecent("three")

	// Every candidate is recent; selection must not starve
	card, err := quiz.BuildCard(numbersCandidates(), sess)

	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Contains(t, []string{"one", "two", "three"}, sess.TargetWord)
}

func TestQuizService_BuildCard_UpdatesSession(t *testing.T) {
	quiz := newQuizServiceWithSource(rand.NewSource(1))
	sess := domain.NewSession()

	for i := 0; i < 10; i++ {
		_, err := quiz.BuildCard(numbersCandidates(), sess)
		require.NoError(t, err)

		recent := sess.Recent()
		assert.LessOrEqual(t, len(recent), 3)
		// The chosen word is the newest recent entry and the target
		assert.Equal(t, sess.TargetWord, recent[len(recent)-1])
		assert.NotEmpty(t, sess.TargetTranslation)
	}
}

func TestQuizService_BuildCard_Options(t *testing.T) {
	tests := []struct {
		name        string
		pairs       map[string]string
		wantOptions int
	}{
		{
			name: "more candidates than option slots",
			pairs: map[string]string{
				"one": "один", "two": "два", "three": "три",
				"red": "красный", "blue": "синий", "fat": "толстый",
			},
			wantOptions: 4,
		},
		{
			name:        "exactly four",
			pairs:       map[string]string{"one": "один", "two": "два", "three": "три", "red": "красный"},
			wantOptions: 4,
		},
		{
			name:        "fewer unique words than slots",
			pairs:       map[string]string{"one": "один", "two": "два"},
			wantOptions: 2,
		},
		{
			name:        "single word",
			pairs:       map[string]string{"one": "один"},
			wantOptions: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz := newQuizServiceWithSource(rand.NewSource(7))
			candidates := testutil.NewTestEntries(123, "числа", 1, tt.pairs)

			for i := 0; i < 50; i++ {
				sess := domain.NewSession()
				card, err := quiz.BuildCard(candidates, sess)
				require.NoError(t, err)

				assert.Len(t, card.Options, tt.wantOptions)

				seen := map[string]int{}
				for _, opt := range card.Options {
					seen[opt]++
				}
				for opt, n := range seen {
					assert.Equal(t, 1, n, "option %q duplicated", opt)
				}
				assert.Equal(t, 1, seen[sess.TargetWord], "target must appear exactly once")
			}
		})
	}
}

func TestQuizService_BuildCard_MissedWordsWeighted(t *testing.T) {
	quiz := newQuizServiceWithSource(rand.NewSource(42))

	// "two" was just shown, "three" was missed earlier: selection must be
	// one of {one, three} with three roughly three times as likely.
	const draws = 3000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		sess := domain.NewSession()
		sess.PushRecent("two")
		sess.MarkMissed("three")

		_, err := quiz.BuildCard(numbersCandidates(), sess)
		require.NoError(t, err)
		counts[sess.TargetWord]++
	}

	assert.Zero(t, counts["two"], "recently shown word must not be selected")
	assert.Equal(t, draws, counts["one"]+counts["three"])

	// Expected split is 1:3; allow generous slack around it
	ratio := float64(counts["three"]) / float64(counts["one"])
	assert.Greater(t, ratio, 2.0, "missed word selected %d times vs %d", counts["three"], counts["one"])
	assert.Less(t, ratio, 4.5)
}

func TestQuizService_CheckAnswer(t *testing.T) {
	tests := []struct {
		name          string
		target        string
		answer        string
		expectCorrect bool
	}{
		{
			name:          "exact match",
			target:        "table",
			answer:        "table",
			expectCorrect: true,
		},
		{
			name:          "case-insensitive match",
			target:        "table",
			answer:        "  TaBLe ",
			expectCorrect: true,
		},
		{
			name:          "wrong answer",
			target:        "table",
			answer:        "chair",
			expectCorrect: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz := NewQuizService()
			sess := domain.NewSession()
			sess.SetTarget(tt.target, "стол")

			correct, err := quiz.CheckAnswer(sess, tt.answer)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectCorrect, correct)
			if tt.expectCorrect {
				assert.False(t, sess.IsMissed(tt.target))
			} else {
				// The missed word is the target, not the typed answer
				assert.True(t, sess.IsMissed(tt.target))
				assert.False(t, sess.IsMissed(tt.answer))
				assert.True(t, sess.HasTarget(), "card stays active after a miss")
			}
		})
	}
}

func TestQuizService_CheckAnswer_NoActiveCard(t *testing.T) {
	quiz := NewQuizService()
	sess := domain.NewSession()

	_, err := quiz.CheckAnswer(sess, "table")
	assert.ErrorIs(t, err, domain.ErrNoActiveCard)
}
