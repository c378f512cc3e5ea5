package telegram

import (
	"context"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"tokenform/api/internal/form"
	"tokenform/api/internal/types"
)

// Sender is the subset of *tgbotapi.BotAPI the router uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Classifier is the subset of *form.Client the router uses.
type Classifier interface {
	form.Submitter
	Status(ctx context.Context) (*types.Status, error)
}

type Router struct {
	Bot    Sender
	Client Classifier
	Log    *zap.Logger

	sessions sync.Map
}

func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	// callback-кнопки фильтров
	if upd.CallbackQuery != nil {
		r.handleCallback(*upd.CallbackQuery)
		return
	}
	if upd.Message == nil {
		return
	}
	if upd.Message.IsCommand() {
		r.HandleCommand(ctx, upd)
		return
	}
	if strings.TrimSpace(upd.Message.Text) == "" {
		r.send(upd.Message.Chat.ID, "Send me a JSON object like {\"data\":[\"a\",\"1\"]}.")
		return
	}
	r.handleSubmit(ctx, upd.Message.Chat.ID, upd.Message.Text)
}

func (r *Router) HandleCommand(ctx context.Context, upd tgbotapi.Update) {
	cid := upd.Message.Chat.ID
	switch upd.Message.Command() {
	case "start", "help":
		r.send(cid, "Send a JSON object with a \"data\" array, for example:\n"+
			"{\"data\":[\"a\",\"b\",\"1\",\"334\",\"A\",\"z\"]}\n"+
			"Then pick which fields to show with the buttons.\nCommands: /health, /reset")
	case "reset":
		r.clearSession(cid)
		r.send(cid, "Cleared.")
	case "health":
		st, err := r.Client.Status(ctx)
		if err != nil {
			r.log().Warn("status check failed", zap.Int64("chat_id", cid), zap.Error(err))
			r.send(cid, "⚠️ Classifier unavailable")
			return
		}
		r.send(cid, "✅ OK: "+st.UserID)
	default:
		r.send(cid, "Unknown command")
	}
}

func (r *Router) handleSubmit(ctx context.Context, chatID int64, text string) {
	s := r.sessionFor(chatID)
	if _, err := s.SubmitText(ctx, text); err != nil {
		r.log().Info("submit failed", zap.Int64("chat_id", chatID), zap.Error(err))
		r.send(chatID, form.UserMessage)
		return
	}
	msg := tgbotapi.NewMessage(chatID, renderView(s))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = makeFilterKeyboard(s.Selection())
	if _, err := r.Bot.Send(msg); err != nil {
		r.log().Warn("send failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (r *Router) send(chatID int64, text string) {
	if _, err := r.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		r.log().Warn("send failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (r *Router) log() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}
