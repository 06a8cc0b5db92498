package handler

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"slovanglik/internal/service"
	"slovanglik/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Reply-keyboard button labels. The bot is driven entirely by reply
// keyboards, so routing happens on message text.
const (
	cmdNext         = "Дальше ⏭"
	cmdAddWord      = "Добавить слово +"
	cmdDeleteWord   = "Удалить слово -"
	cmdPickCategory = "Выбрать категорию 🔄"
	cmdPickLevel    = "Выбрать уровень 🔄"
	cmdHelp         = "Справка"
	cmdRefresh      = "Обновить"
	cmdStats        = "Статистика"
)

const msgInternalError = "Произошла ошибка. Попробуйте позже."

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	users    *service.UserService
	words    *service.WordService
	stats    *service.StatsService
	interp   *service.Interpreter
	sessions *session.Registry
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	users *service.UserService,
	words *service.WordService,
	stats *service.StatsService,
	interp *service.Interpreter,
	sessions *session.Registry,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		users:    users,
		words:    words,
		stats:    stats,
		interp:   interp,
		sessions: sessions,
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)
}

// levelButton renders a level as its keyboard label
func levelButton(level int) string {
	return fmt.Sprintf("Уровень %d", level)
}

// title uppercases the first rune, the way categories are displayed
func title(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// keyboardOf builds a two-column reply keyboard from labels, appending
// the extra rows at the bottom
func keyboardOf(labels []string, extra ...[]string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}

	var rows []tele.Row
	for i := 0; i < len(labels); i += 2 {
		if i+1 < len(labels) {
			rows = append(rows, markup.Row(markup.Text(labels[i]), markup.Text(labels[i+1])))
		} else {
			rows = append(rows, markup.Row(markup.Text(labels[i])))
		}
	}
	for _, extraRow := range extra {
		row := tele.Row{}
		for _, label := range extraRow {
			row = append(row, markup.Text(label))
		}
		rows = append(rows, row)
	}

	markup.Reply(rows...)
	return markup
}
