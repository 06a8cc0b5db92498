package handler

import (
	"fmt"
	"strings"

	"slovanglik/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// sendMainMenu shows the level overview with per-level category lists
func (h *Handler) sendMainMenu(c tele.Context) error {
	userID := c.Sender().ID

	levels, err := h.words.Levels()
	if err != nil {
		h.logger.Error("Failed to load levels", zap.Error(err))
		return c.Send(msgInternalError)
	}

	var text strings.Builder
	text.WriteString("<b>Выберите уровень для изучения:</b>\n")

	labels := make([]string, 0, len(levels))
	for _, level := range levels {
		categories, err := h.words.Categories(userID, level)
		if err != nil {
			h.logger.Error("Failed to load categories", zap.Error(err))
			return c.Send(msgInternalError)
		}

		text.WriteString(fmt.Sprintf("\n<b>Уровень %d</b>\n", level))
		for _, category := range categories {
			text.WriteString(fmt.Sprintf("  • <i>%s</i>\n", title(category)))
		}

		labels = append(labels, levelButton(level))
	}

	markup := keyboardOf(labels, []string{cmdHelp, cmdRefresh, cmdStats})
	return c.Send(text.String(), markup)
}

// sendCategoryMenu shows the category keyboard for the selected level
func (h *Handler) sendCategoryMenu(c tele.Context, sel *domain.Selection) error {
	if sel == nil || sel.Level == 0 {
		return h.sendMainMenu(c)
	}

	categories, err := h.words.Categories(c.Sender().ID, sel.Level)
	if err != nil {
		h.logger.Error("Failed to load categories", zap.Error(err))
		return c.Send(msgInternalError)
	}

	if len(categories) == 0 {
		return c.Send("На этом уровне нет доступных категорий.")
	}

	labels := make([]string, 0, len(categories))
	for _, category := range categories {
		labels = append(labels, title(category))
	}

	markup := keyboardOf(labels, []string{cmdPickLevel})
	return c.Send("<b>Выберите категорию:</b>", markup)
}

// handleHelp sends the usage guide
func (h *Handler) handleHelp(c tele.Context) error {
	helpText := "<b>Справка по использованию бота Slovanglik</b>\n" +
		"<i>Назначение программы:</i>\n" +
		"Программа предназначена для изучения английского языка через " +
		"перевод слов с русского на английский.\n" +
		"<i>Основные возможности:</i>\n" +
		"• Выбор уровня сложности\n" +
		"• Выбор категории слов в каждом уровне сложности\n" +
		"• Обучение переводу слов с выбором вариантов ответа\n" +
		"• Добавление новых слов\n" +
		"• Удаление изученных слов\n" +
		"• Статистика количества слов по уровням и категориям\n" +
		"<i>Порядок действий:</i>\n" +
		"1. Выберите уровень сложности, нажав на соответствующую кнопку " +
		"<b>Уровень X</b>, где X — выбранный уровень сложности.\n" +
		"2. Выберите категорию слов для обучения, нажав на соответствующую " +
		"кнопку <b>Название Категории</b>, в выбранном уровне сложности.\n" +
		"3. Бот покажет слово на русском языке и ниже варианты перевода.\n" +
		"4. Выберите правильный вариант перевода из предложенных.\n" +
		"5. В случае правильного ответа, будет предложено следующее слово. " +
		"При неверном ответе - еще попытка.\n" +
		"6. Используйте кнопку <b>Дальше ⏭</b> для перехода к следующему " +
		"слову минуя ответ.\n" +
		"7. Используйте кнопку <b>Добавить слово +</b> для добавления нового " +
		"слова (следуя подсказкам).\n" +
		"8. Используйте кнопку <b>Удалить слово -</b> для удаления слова из " +
		"словаря (следуя подсказкам).\n" +
		"9. Используйте кнопку <b>Выбрать категорию 🔄</b> для выбора другой " +
		"категории слов на данном уровне сложности.\n" +
		"10. Используйте кнопку <b>Выбрать уровень 🔄</b> для выбора другого " +
		"уровня сложности.\n" +
		"11. Кнопка <b>Обновить</b> обновляет общую базу данных слов, " +
		"при этом слова добавленные пользователем сохраняются.\n" +
		"12. Кнопка <b>Статистика</b> выводит на экран общее количество слов " +
		"для изучения, а так же на каждом уровне и в категориях.\n" +
		"Примечание:\n" +
		"- слова предлагаются для перевода в хаотичном порядке\n" +
		"- слова в которых была допущена ошибка при выборе варианта перевода, " +
		"предлагаются далее чаще других (как наиболее сложные)"

	return c.Send(helpText)
}

// handleRefresh re-copies the canonical word set, keeping custom entries
func (h *Handler) handleRefresh(c tele.Context) error {
	if err := h.words.RefreshDefaults(c.Sender().ID); err != nil {
		h.logger.Error("Failed to refresh default words", zap.Error(err))
		return c.Send(msgInternalError)
	}
	return c.Send("База данных обновлена")
}

// handleStats shows word counts per level and category
func (h *Handler) handleStats(c tele.Context) error {
	counts, total, err := h.stats.Summary(c.Sender().ID)
	if err != nil {
		return c.Send("Ошибка формирования статистики.")
	}

	if len(counts) == 0 {
		return c.Send("В вашей базе пока нет слов.")
	}

	var text strings.Builder
	text.WriteString(fmt.Sprintf("<b>Статистика</b>\nВсего слов - %d\n", total))

	currentLevel := 0
	levelTotal := 0
	var levelLines strings.Builder
	flush := func() {
		if currentLevel != 0 {
			text.WriteString(fmt.Sprintf("\n%d Уровень - %d\n", currentLevel, levelTotal))
			text.WriteString(levelLines.String())
		}
	}

	for _, count := range counts {
		if count.Level != currentLevel {
			flush()
			currentLevel = count.Level
			levelTotal = 0
			levelLines.Reset()
		}
		levelTotal += count.Count
		levelLines.WriteString(fmt.Sprintf("%s - %d\n", title(count.Category), count.Count))
	}
	flush()

	return c.Send(text.String())
}
