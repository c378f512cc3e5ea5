package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (r *Router) handleCallback(cb tgbotapi.CallbackQuery) {
	_, _ = r.Bot.Request(tgbotapi.NewCallback(cb.ID, "")) // ack
	if cb.Message == nil {
		return
	}
	cid := cb.Message.Chat.ID

	f, ok := parseFilterData(cb.Data)
	if !ok {
		return
	}
	s, ok := r.lookupSession(cid)
	if !ok || s.Last() == nil {
		r.send(cid, "Nothing to filter yet: send a JSON object first.")
		return
	}

	// фильтр пересчитывается из кэша, без повторного запроса
	sel := s.Toggle(f)
	edit := tgbotapi.NewEditMessageTextAndMarkup(cid, cb.Message.MessageID, renderView(s), makeFilterKeyboard(sel))
	edit.ParseMode = tgbotapi.ModeHTML
	if _, err := r.Bot.Send(edit); err != nil {
		r.log().Warn("edit failed", zap.Int64("chat_id", cid), zap.Error(err))
	}
}
