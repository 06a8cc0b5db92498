package handler

import (
	"math/rand"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

var greetings = []string{
	"Привет! Я твой новый помощник по изучению английского языка!",
	"Здравствуйте! Готов помочь вам освоить английский язык?",
	"Приветствуем вас! Давайте вместе учим английский!",
	"Хэллоу! Ваш личный бот для изучения английского готов к работе!",
}

// handleStart handles /start: registers the user, gives them the canonical
// word set and shows the level menu
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.words.RefreshDefaults(userID); err != nil {
		h.logger.Error("Failed to copy default words", zap.Error(err))
		return c.Send(msgInternalError)
	}

	if err := c.Send(greetings[rand.Intn(len(greetings))]); err != nil {
		return err
	}

	return h.sendMainMenu(c)
}
