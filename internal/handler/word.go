package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"slovanglik/internal/domain"
	"slovanglik/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText routes all free text: menu buttons, level/category picks,
// then the interpreter for staged add/delete input and quiz answers.
// The session lock is held for the whole turn.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	sess := h.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	sel, err := h.users.Selection(userID)
	if err != nil {
		h.logger.Error("Failed to load selection", zap.Error(err))
		return c.Send(msgInternalError)
	}

	switch text {
	case cmdHelp:
		return h.handleHelp(c)
	case cmdRefresh:
		return h.handleRefresh(c)
	case cmdStats:
		return h.handleStats(c)
	case cmdPickLevel:
		return h.sendMainMenu(c)
	case cmdPickCategory:
		return h.sendCategoryMenu(c, sel)
	case cmdNext:
		return h.sendNextCard(c, sel, sess)
	case cmdAddWord:
		if err := h.interp.BeginAdd(sel, sess); err != nil {
			return h.handleRefusal(c, err)
		}
		return c.Send("Введите слово на русском:")
	case cmdDeleteWord:
		if err := h.interp.BeginDelete(sel, sess); err != nil {
			return h.handleRefusal(c, err)
		}
		return c.Send("Введите слово на русском для удаления:")
	}

	if level, ok := parseLevel(text); ok {
		return h.selectLevel(c, sess, level)
	}

	// A typed category name counts as a category pick, but never while
	// add/delete input is staged.
	if sess.Pending == nil && sel.Level > 0 {
		isCategory, err := h.words.HasCategory(userID, sel.Level, text)
		if err != nil {
			h.logger.Error("Failed to check category", zap.Error(err))
			return c.Send(msgInternalError)
		}
		if isCategory {
			return h.selectCategory(c, sess, sel, text)
		}
	}

	out, err := h.interp.Interpret(userID, text, sel, sess)
	if err != nil {
		h.logger.Error("Failed to interpret text",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send(msgInternalError)
	}

	return h.renderOutcome(c, out)
}

// handleRefusal silently ignores actions without an active selection,
// matching the reply-keyboard flow where those buttons only appear on cards
func (h *Handler) handleRefusal(c tele.Context, err error) error {
	if errors.Is(err, domain.ErrNoSelection) {
		return nil
	}
	h.logger.Error("Failed to begin word action", zap.Error(err))
	return c.Send(msgInternalError)
}

// parseLevel recognizes a "Уровень N" button press
func parseLevel(text string) (int, bool) {
	if !strings.HasPrefix(text, "Уровень") {
		return 0, false
	}
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return 0, false
	}
	level, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil || level < 1 {
		return 0, false
	}
	return level, true
}

// selectLevel persists the level choice and shows the category keyboard
func (h *Handler) selectLevel(c tele.Context, sess *domain.Session, level int) error {
	userID := c.Sender().ID

	if err := h.users.SelectLevel(userID, level); err != nil {
		h.logger.Error("Failed to set level", zap.Error(err))
		return c.Send(msgInternalError)
	}
	sess.Pending = nil

	if err := c.Send(fmt.Sprintf("Уровень %d успешно загружен!", level)); err != nil {
		return err
	}

	return h.sendCategoryMenu(c, &domain.Selection{UserID: userID, Level: level})
}

// selectCategory persists the category choice and deals the first card
func (h *Handler) selectCategory(c tele.Context, sess *domain.Session, sel *domain.Selection, text string) error {
	userID := c.Sender().ID
	category := strings.ToLower(strings.TrimSpace(text))

	if err := h.users.SelectCategory(userID, category); err != nil {
		h.logger.Error("Failed to set category", zap.Error(err))
		return c.Send(msgInternalError)
	}

	return h.sendNextCard(c, &domain.Selection{
		UserID:   userID,
		Level:    sel.Level,
		Category: category,
	}, sess)
}

// sendNextCard deals a fresh card for the active selection
func (h *Handler) sendNextCard(c tele.Context, sel *domain.Selection, sess *domain.Session) error {
	if !sel.Active() {
		return nil
	}

	card, err := h.interp.NextCard(c.Sender().ID, sel.Category, sel.Level, sess)
	if err != nil {
		h.logger.Error("Failed to build card", zap.Error(err))
		return c.Send(msgInternalError)
	}
	if card == nil {
		return c.Send("В этой категории пока нет слов.")
	}

	return h.sendCard(c, card)
}

// sendCard renders a card: the Russian prompt plus the option keyboard
// and the flow buttons
func (h *Handler) sendCard(c tele.Context, card *domain.Card) error {
	text := fmt.Sprintf(
		"<b>Уровень %d</b> - <b>%s</b>\nВыберите вариант перевода слова:\n🇷🇺 <b><i>%s</i></b>",
		card.Level,
		title(card.Category),
		card.Translation,
	)

	markup := keyboardOf(
		card.Options,
		[]string{cmdNext, cmdAddWord},
		[]string{cmdDeleteWord, cmdPickCategory},
		[]string{cmdPickLevel},
	)
	return c.Send(text, markup)
}

// renderOutcome turns an interpreter outcome into the user-facing reply
func (h *Handler) renderOutcome(c tele.Context, out service.Outcome) error {
	var status string
	switch out.Kind {
	case service.OutcomeTranslationPrompted:
		return c.Send("Введите перевод на английский:")
	case service.OutcomeNoCard:
		return c.Send("Ошибка: текущее слово не найдено.")
	case service.OutcomeIncorrect:
		return c.Send("Неправильно! Попробуйте снова.")
	case service.OutcomeCorrect:
		status = "Правильно! 👍"
	case service.OutcomeAdded:
		status = fmt.Sprintf("Слово '%s → %s' добавлено!", out.Translation, out.Word)
	case service.OutcomeDuplicate:
		status = fmt.Sprintf("Слово '%s → %s' уже имеется.", out.Translation, out.Word)
	case service.OutcomeDeleted:
		status = fmt.Sprintf("Слово '%s' удалено!", out.Translation)
	case service.OutcomeNotFound:
		status = "Слово не найдено."
	default:
		return nil
	}

	if err := c.Send(status); err != nil {
		return err
	}

	if out.Card == nil {
		return c.Send("Нет доступных слов для обучения.")
	}
	return h.sendCard(c, out.Card)
}
