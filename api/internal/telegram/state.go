package telegram

import (
	"tokenform/api/internal/form"
)

// sessions: chatID -> *form.Session. Живут только в памяти процесса.

func (r *Router) sessionFor(chatID int64) *form.Session {
	if v, ok := r.sessions.Load(chatID); ok {
		return v.(*form.Session)
	}
	v, _ := r.sessions.LoadOrStore(chatID, form.NewSession(r.Client))
	return v.(*form.Session)
}

func (r *Router) lookupSession(chatID int64) (*form.Session, bool) {
	v, ok := r.sessions.Load(chatID)
	if !ok {
		return nil, false
	}
	return v.(*form.Session), true
}

func (r *Router) clearSession(chatID int64) { r.sessions.Delete(chatID) }
