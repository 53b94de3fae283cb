package searchview

import (
	"context"
	"fmt"
	"testing"

	errors "github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"
)

func responseWith(n int) *Response {
	resp := &Response{Success: true, URLResults: []UrlResult{}}
	for i := range n {
		resp.URLResults = append(resp.URLResults, UrlResult{
			URL:   fmt.Sprintf("https://example.com/%d", i),
			Title: fmt.Sprintf("Video %d", i+1),
		})
	}
	return resp
}

func TestStateSubmitRejectsBlankQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		s := NewState()
		next, req, err := s.Submit(q)
		require.ErrorIs(t, err, ErrEmptyQuery)
		require.Equal(t, s, next)
		require.Zero(t, req)
	}
}

func TestStateSubmitClearsPreviousResult(t *testing.T) {
	s, req, err := NewState().Submit("first")
	require.NoError(t, err)
	s, _ = s.Resolve(Outcome{Seq: req.Seq, Response: responseWith(3)})
	require.Equal(t, PhaseSuccess, s.Phase())

	s, req, err = s.Submit("  second  ")
	require.NoError(t, err)
	require.Equal(t, "second", req.Query)
	require.Equal(t, uint64(2), req.Seq)
	require.Equal(t, PhaseLoading, s.Phase())
	require.True(t, s.Loading())
	require.Nil(t, s.Response())
	require.Empty(t, s.Err())
	require.Empty(t, s.Visible())
}

func TestStateSubmitWhileLoading(t *testing.T) {
	s, _, err := NewState().Submit("first")
	require.NoError(t, err)

	next, _, err := s.Submit("second")
	require.ErrorIs(t, err, ErrBusy)
	require.Equal(t, s, next)
}

func TestStateResolvePagination(t *testing.T) {
	s, req, err := NewState().Submit("q")
	require.NoError(t, err)

	s, applied := s.Resolve(Outcome{Seq: req.Seq, Response: responseWith(20)})
	require.True(t, applied)
	require.Equal(t, PhaseSuccess, s.Phase())
	require.Equal(t, 3, s.TotalPages())
	require.Equal(t, 1, s.Page())
	require.True(t, s.Paginated())
	require.False(t, s.HasPrev())
	require.True(t, s.HasNext())

	visible := s.Visible()
	require.Len(t, visible, ItemsPerPage)
	require.Equal(t, "https://example.com/0", visible[0].URL)
	require.Equal(t, "https://example.com/8", visible[8].URL)

	s = s.PrevPage()
	require.Equal(t, 1, s.Page())

	s = s.NextPage().NextPage()
	require.Equal(t, 3, s.Page())
	require.Equal(t, 18, s.VisibleOffset())
	require.Len(t, s.Visible(), 2)
	require.False(t, s.HasNext())

	s = s.NextPage()
	require.Equal(t, 3, s.Page())

	s = s.GoToPage(99)
	require.Equal(t, 3, s.Page())
}

func TestStatePageResetsOnNewSearch(t *testing.T) {
	s, req, _ := NewState().Submit("q")
	s, _ = s.Resolve(Outcome{Seq: req.Seq, Response: responseWith(30)})
	s = s.NextPage().NextPage()
	require.Equal(t, 3, s.Page())

	s, req, _ = s.Submit("q2")
	s, _ = s.Resolve(Outcome{Seq: req.Seq, Response: responseWith(30)})
	require.Equal(t, 1, s.Page())
}

func TestStateResolveEmpty(t *testing.T) {
	s, req, _ := NewState().Submit("q")
	s, applied := s.Resolve(Outcome{Seq: req.Seq, Response: responseWith(0)})
	require.True(t, applied)
	require.Equal(t, PhaseEmpty, s.Phase())
	require.NotNil(t, s.Response())
	require.Empty(t, s.Visible())
	require.Zero(t, s.TotalPages())
	require.False(t, s.Paginated())
	require.False(t, s.HasNext())
	require.False(t, s.HasPrev())
}

func TestStateResolveFailure(t *testing.T) {
	s, req, _ := NewState().Submit("q")
	s, applied := s.Resolve(Outcome{Seq: req.Seq, Err: errors.New("boom")})
	require.True(t, applied)
	require.Equal(t, PhaseFailed, s.Phase())
	require.Equal(t, "boom", s.Err())
	require.Nil(t, s.Response())
	require.Empty(t, s.Results())
	require.False(t, s.Loading())

	s, _, err := s.Submit("again")
	require.NoError(t, err)
	require.Empty(t, s.Err())
}

func TestStateIgnoresStaleOutcome(t *testing.T) {
	s, first, _ := NewState().Submit("first")
	s, cancelled := s.Cancel()
	require.True(t, cancelled)
	require.Equal(t, CancelledMessage, s.Err())

	s, second, _ := s.Submit("second")

	next, applied := s.Resolve(Outcome{Seq: first.Seq, Response: responseWith(5)})
	require.False(t, applied)
	require.Equal(t, s, next)

	s, applied = s.Resolve(Outcome{Seq: second.Seq, Response: responseWith(2)})
	require.True(t, applied)
	require.Len(t, s.Results(), 2)

	_, applied = s.Resolve(Outcome{Seq: second.Seq, Response: responseWith(9)})
	require.False(t, applied)
}

func TestStateCancelOnlyWhileLoading(t *testing.T) {
	s := NewState()
	next, ok := s.Cancel()
	require.False(t, ok)
	require.Equal(t, s, next)
}

func TestErrorMessage(t *testing.T) {
	require.Empty(t, ErrorMessage(nil))
	require.Equal(t, CancelledMessage, ErrorMessage(errors.Wrap(context.Canceled, "send")))
	require.Equal(t, TimeoutMessage, ErrorMessage(errors.Wrap(context.DeadlineExceeded, "send")))
	require.Equal(t, "plain", ErrorMessage(errors.New("plain")))
}

func TestPhaseString(t *testing.T) {
	require.Equal(t, "idle", PhaseIdle.String())
	require.Equal(t, "loading", PhaseLoading.String())
	require.Equal(t, "success", PhaseSuccess.String())
	require.Equal(t, "empty", PhaseEmpty.String())
	require.Equal(t, "failed", PhaseFailed.String())
	require.Equal(t, "unknown", Phase(42).String())
}
