package form

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokenform/api/internal/types"
)

type fakeSubmitter struct {
	calls int
	resp  *types.Response
	err   error
}

func (f *fakeSubmitter) Submit(context.Context, Request) (*types.Response, error) {
	f.calls++
	return f.resp, f.err
}

func TestSessionInvalidInputNeverSubmits(t *testing.T) {
	fake := &fakeSubmitter{resp: sample}
	s := NewSession(fake)

	_, err := s.SubmitText(context.Background(), `{"nodata":1}`)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, fake.calls)
	assert.Nil(t, s.Last())
	assert.Empty(t, s.View())
}

func TestSessionFilterUsesCache(t *testing.T) {
	fake := &fakeSubmitter{resp: sample}
	s := NewSession(fake)

	_, err := s.SubmitText(context.Background(), `{"data":["a"]}`)
	require.NoError(t, err)
	assert.Equal(t, "{}", s.View())

	s.Toggle(Numbers)
	s.Toggle(Alphabets)
	assert.Equal(t, SelectionOf(Numbers, Alphabets), s.Selection())
	assert.Contains(t, s.View(), `"numbers"`)
	assert.Contains(t, s.View(), `"alphabets"`)

	s.SetSelection(SelectionOf(HighestLowercase))
	assert.NotContains(t, s.View(), `"numbers"`)
	assert.Equal(t, 1, fake.calls)
}

func TestSessionFailureKeepsPreviousResponse(t *testing.T) {
	fake := &fakeSubmitter{resp: sample}
	s := NewSession(fake)
	_, err := s.SubmitText(context.Background(), `{"data":["a"]}`)
	require.NoError(t, err)

	fake.resp, fake.err = nil, errors.New("connection refused")
	_, err = s.SubmitText(context.Background(), `{"data":["b"]}`)
	require.Error(t, err)
	assert.Same(t, sample, s.Last())
}

func TestSessionNewSubmissionOverwrites(t *testing.T) {
	next := &types.Response{IsSuccess: true, Numbers: []string{"7"}}
	fake := &fakeSubmitter{resp: sample}
	s := NewSession(fake)
	_, _ = s.SubmitText(context.Background(), `{"data":["a"]}`)

	fake.resp = next
	_, err := s.SubmitText(context.Background(), `{"data":["7"]}`)
	require.NoError(t, err)
	assert.Same(t, next, s.Last())
}
