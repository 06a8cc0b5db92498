package service

import (
	"errors"
	"fmt"
	"strings"

	"slovanglik/internal/domain"

	"go.uber.org/zap"
)

// OutcomeKind classifies what a turn of free text did.
type OutcomeKind int

const (
	// OutcomeNoCard: an answer arrived with no card pending.
	OutcomeNoCard OutcomeKind = iota
	// OutcomeCorrect: the answer matched the target word.
	OutcomeCorrect
	// OutcomeIncorrect: the answer missed; the card stays active.
	OutcomeIncorrect
	// OutcomeTranslationPrompted: the Russian word is staged, waiting for
	// its translation.
	OutcomeTranslationPrompted
	// OutcomeAdded: a new custom entry was stored.
	OutcomeAdded
	// OutcomeDuplicate: the pair already existed; nothing was stored.
	OutcomeDuplicate
	// OutcomeDeleted: the entry was removed.
	OutcomeDeleted
	// OutcomeNotFound: no entry matched the deletion target.
	OutcomeNotFound
)

// Outcome is what a handled turn produced. Card is set when the turn ends
// with a fresh card; Word/Translation name the pair for status texts.
type Outcome struct {
	Kind        OutcomeKind
	Word        string
	Translation string
	Card        *domain.Card
}

// Interpreter resolves free text against the session's pending action:
// staged add/delete input when one is pending, a quiz answer otherwise.
// It owns all session mutation for a turn; callers hold the session lock.
type Interpreter struct {
	words  *WordService
	quiz   *QuizService
	logger *zap.Logger
}

// NewInterpreter creates a new interpreter
func NewInterpreter(words *WordService, quiz *QuizService, logger *zap.Logger) *Interpreter {
	return &Interpreter{
		words:  words,
		quiz:   quiz,
		logger: logger,
	}
}

// BeginAdd arms the add-word flow. Refused without an active selection,
// leaving the session unchanged.
func (i *Interpreter) BeginAdd(sel *domain.Selection, sess *domain.Session) error {
	if !sel.Active() {
		return domain.ErrNoSelection
	}
	sess.Pending = domain.AddAwaitWord{Category: sel.Category, Level: sel.Level}
	return nil
}

// BeginDelete arms the delete-word flow. Refused without an active
// selection, leaving the session unchanged.
func (i *Interpreter) BeginDelete(sel *domain.Selection, sess *domain.Session) error {
	if !sel.Active() {
		return domain.ErrNoSelection
	}
	sess.Pending = domain.DeleteAwaitWord{Category: sel.Category, Level: sel.Level}
	return nil
}

// Interpret runs one turn of the state machine.
//
//	AddAwaitWord        -> stage text, await translation
//	AddAwaitTranslation -> commit the add (or report duplicate), new card
//	DeleteAwaitWord     -> commit the delete (or report not found), new card
//	no pending action   -> quiz answer against the target word
//
// Commits clear the pending action whatever the result.
func (i *Interpreter) Interpret(userID int64, text string, sel *domain.Selection, sess *domain.Session) (Outcome, error) {
	text = strings.ToLower(strings.TrimSpace(text))

	switch p := sess.Pending.(type) {
	case domain.AddAwaitWord:
		sess.Pending = domain.AddAwaitTranslation{
			Category:   p.Category,
			Level:      p.Level,
			NativeWord: text,
		}
		return Outcome{Kind: OutcomeTranslationPrompted}, nil

	case domain.AddAwaitTranslation:
		sess.Pending = nil

		entry, err := i.words.AddCustomWord(userID, p.NativeWord, text, p.Category, p.Level)
		kind := OutcomeAdded
		if errors.Is(err, domain.ErrDuplicate) {
			kind = OutcomeDuplicate
		} else if err != nil {
			return Outcome{}, fmt.Errorf("failed to add word: %w", err)
		}

		i.logger.Info("Add word flow finished",
			zap.Int64("user_id", userID),
			zap.String("word", entry.Word),
			zap.Bool("duplicate", kind == OutcomeDuplicate),
		)

		card, err := i.NextCard(userID, p.Category, p.Level, sess)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: kind, Word: entry.Word, Translation: entry.Translation, Card: card}, nil

	case domain.DeleteAwaitWord:
		sess.Pending = nil

		kind := OutcomeDeleted
		err := i.words.DeleteWord(userID, text, p.Category, p.Level)
		if errors.Is(err, domain.ErrNotFound) {
			kind = OutcomeNotFound
		} else if err != nil {
			return Outcome{}, fmt.Errorf("failed to delete word: %w", err)
		}

		i.logger.Info("Delete word flow finished",
			zap.Int64("user_id", userID),
			zap.String("translation", text),
			zap.Bool("found", kind == OutcomeDeleted),
		)

		card, err := i.NextCard(userID, p.Category, p.Level, sess)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: kind, Translation: text, Card: card}, nil

	default:
		correct, err := i.quiz.CheckAnswer(sess, text)
		if errors.Is(err, domain.ErrNoActiveCard) {
			return Outcome{Kind: OutcomeNoCard}, nil
		}
		if err != nil {
			return Outcome{}, err
		}

		if !correct {
			return Outcome{Kind: OutcomeIncorrect, Word: sess.TargetWord}, nil
		}

		out := Outcome{Kind: OutcomeCorrect, Word: sess.TargetWord}
		sess.ClearTarget()
		if sel.Active() {
			card, err := i.NextCard(userID, sel.Category, sel.Level, sess)
			if err != nil {
				return Outcome{}, err
			}
			out.Card = card
		}
		return out, nil
	}
}

// NextCard fetches the current candidates and builds a fresh card.
// Returns a nil card when the category ran out of words, so callers can
// tell the user instead of failing the turn.
func (i *Interpreter) NextCard(userID int64, category string, level int, sess *domain.Session) (*domain.Card, error) {
	candidates, err := i.words.Candidates(userID, category, level)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	card, err := i.quiz.BuildCard(candidates, sess)
	if errors.Is(err, domain.ErrNoWords) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return card, nil
}
