package telegram

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tokenform/api/internal/form"
)

const filterPrefix = "filter:"

// Клавиатура фильтров: одна кнопка на поле, отмеченные с галочкой
func makeFilterKeyboard(sel form.Selection) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(form.Fields))
	for _, f := range form.Fields {
		label := "▫️ " + f.Label()
		if sel.Has(f) {
			label = "✅ " + f.Label()
		}
		btn := tgbotapi.NewInlineKeyboardButtonData(label, filterPrefix+strconv.Itoa(int(f)))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(btn))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func parseFilterData(data string) (form.Field, bool) {
	if !strings.HasPrefix(data, filterPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(data, filterPrefix))
	if err != nil || n < 0 || n >= len(form.Fields) {
		return 0, false
	}
	return form.Fields[n], true
}

func renderView(s *form.Session) string {
	return fmt.Sprintf("<b>Filtered Response:</b>\n<pre>%s</pre>", html.EscapeString(s.View()))
}
