package form

import (
	"context"
	"sync"

	"tokenform/api/internal/types"
)

// Submitter is the part of Client a Session needs.
type Submitter interface {
	Submit(ctx context.Context, req Request) (*types.Response, error)
}

// Session caches the last successful response and the current selection.
// Selection changes never hit the network.
type Session struct {
	client Submitter

	mu   sync.Mutex
	last *types.Response
	sel  Selection
}

func NewSession(client Submitter) *Session {
	return &Session{client: client}
}

// SubmitText parses text and, if valid, submits it. The cached response is
// replaced only on success.
func (s *Session) SubmitText(ctx context.Context, text string) (*types.Response, error) {
	req, err := ParseInput(text)
	if err != nil {
		return nil, err
	}
	return s.Submit(ctx, req)
}

func (s *Session) Submit(ctx context.Context, req Request) (*types.Response, error) {
	resp, err := s.client.Submit(ctx, req)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.last = resp
	s.mu.Unlock()
	return resp, nil
}

func (s *Session) Last() *types.Response {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Session) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel
}

func (s *Session) SetSelection(sel Selection) {
	s.mu.Lock()
	s.sel = sel
	s.mu.Unlock()
}

func (s *Session) Toggle(f Field) Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel = s.sel.Toggle(f)
	return s.sel
}

// View renders the cached response filtered by the current selection, or ""
// when nothing has been submitted yet.
func (s *Session) View() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return ""
	}
	return Render(s.last, s.sel)
}
