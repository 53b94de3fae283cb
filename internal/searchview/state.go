package searchview

import (
	"context"
	"strings"

	errors "github.com/Laisky/errors/v2"

	"github.com/Laisky/video-search/library/askapi"
)

// Phase is the lifecycle position of the view.
type Phase int

const (
	// PhaseIdle nothing has been submitted yet
	PhaseIdle Phase = iota
	// PhaseLoading a request is in flight
	PhaseLoading
	// PhaseSuccess the latest answer has at least one result
	PhaseSuccess
	// PhaseEmpty the latest answer has no results
	PhaseEmpty
	// PhaseFailed the latest submission failed
	PhaseFailed
)

// String returns the lower case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseEmpty:
		return "empty"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

const (
	// CancelledMessage is shown when the user abandons an in-flight request.
	CancelledMessage = "request cancelled"
	// TimeoutMessage is shown when a request exceeds the configured deadline.
	TimeoutMessage = "request timed out"
)

var (
	// ErrEmptyQuery is returned by Submit for blank queries.
	ErrEmptyQuery = errors.New("query is empty")
	// ErrBusy is returned by Submit while a request is in flight.
	ErrBusy = errors.New("a request is already in flight")
)

// Request identifies one submission.
type Request struct {
	Seq   uint64
	Query string
}

// Outcome is the result of executing a Request.
type Outcome struct {
	Seq      uint64
	Response *Response
	Err      error
}

// State is the whole view state. The zero value is an idle view.
type State struct {
	phase    Phase
	query    string
	response *Response
	errMsg   string
	page     int
	seq      uint64
}

// NewState returns an idle view.
func NewState() State {
	return State{phase: PhaseIdle, page: 1}
}

// Submit starts a new submission of query.
//
// Blank queries and submissions while loading are rejected and leave the state unchanged.
func (s State) Submit(query string) (State, Request, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return s, Request{}, ErrEmptyQuery
	}
	if s.phase == PhaseLoading {
		return s, Request{}, ErrBusy
	}

	s.seq++
	s.phase = PhaseLoading
	s.query = trimmed
	s.response = nil
	s.errMsg = ""

	return s, Request{Seq: s.seq, Query: trimmed}, nil
}

// Resolve applies the outcome of the latest submission.
//
// Outcomes of superseded or cancelled submissions are ignored, applied reports
// whether the state changed.
func (s State) Resolve(o Outcome) (next State, applied bool) {
	if s.phase != PhaseLoading || o.Seq != s.seq {
		return s, false
	}

	if o.Err != nil {
		s.phase = PhaseFailed
		s.errMsg = ErrorMessage(o.Err)
		s.response = nil
		return s, true
	}

	resp := o.Response
	if resp == nil {
		resp = &Response{Success: true}
	}
	s.response = resp
	s.errMsg = ""
	s.page = 1
	if len(resp.URLResults) == 0 {
		s.phase = PhaseEmpty
	} else {
		s.phase = PhaseSuccess
	}

	return s, true
}

// Cancel abandons the in-flight submission, whose outcome will be ignored.
func (s State) Cancel() (State, bool) {
	if s.phase != PhaseLoading {
		return s, false
	}

	s.seq++
	s.phase = PhaseFailed
	s.errMsg = CancelledMessage
	return s, true
}

// NextPage moves one page forward, clamped at the last page.
func (s State) NextPage() State {
	s.page = ClampPage(s.page+1, s.TotalPages())
	return s
}

// PrevPage moves one page back, clamped at the first page.
func (s State) PrevPage() State {
	s.page = ClampPage(s.page-1, s.TotalPages())
	return s
}

// GoToPage jumps to page, clamped to the valid range.
func (s State) GoToPage(page int) State {
	s.page = ClampPage(page, s.TotalPages())
	return s
}

// Phase returns the lifecycle position.
func (s State) Phase() Phase { return s.phase }

// Loading reports whether a request is in flight, input is disabled meanwhile.
func (s State) Loading() bool { return s.phase == PhaseLoading }

// Query returns the last submitted query.
func (s State) Query() string { return s.query }

// Err returns the error banner text, empty when there is none.
func (s State) Err() string { return s.errMsg }

// Response returns the latest answer, nil while loading or after a failure.
func (s State) Response() *Response {
	if s.errMsg != "" {
		return nil
	}
	return s.response
}

// Results returns every url result of the latest answer.
func (s State) Results() []UrlResult {
	if resp := s.Response(); resp != nil {
		return resp.URLResults
	}
	return nil
}

// Page returns the 1-based current page.
func (s State) Page() int {
	if s.page < 1 {
		return 1
	}
	return s.page
}

// TotalPages returns the number of result pages.
func (s State) TotalPages() int { return TotalPages(len(s.Results())) }

// Visible returns the results shown on the current page.
func (s State) Visible() []UrlResult { return PageSlice(s.Results(), s.Page()) }

// VisibleOffset returns the index of the first visible result.
func (s State) VisibleOffset() int { return (s.Page() - 1) * ItemsPerPage }

// Paginated reports whether pagination controls are shown.
func (s State) Paginated() bool { return s.TotalPages() > 1 }

// HasPrev reports whether Previous is enabled.
func (s State) HasPrev() bool { return s.Page() > 1 }

// HasNext reports whether Next is enabled.
func (s State) HasNext() bool { return s.Page() < s.TotalPages() }

// ErrorMessage converts a failed fetch into the banner text.
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return CancelledMessage
	case errors.Is(err, context.DeadlineExceeded):
		return TimeoutMessage
	}

	if typed, ok := askapi.AsError(err); ok {
		return typed.Error()
	}
	return err.Error()
}
