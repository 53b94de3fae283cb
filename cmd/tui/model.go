package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/Laisky/video-search/internal/searchview"
	"github.com/Laisky/video-search/library/askapi"
)

const (
	defaultWidth  = 96
	answerHeight  = 8
	healthTimeout = 5 * time.Second
)

// focusArea is the part of the view that receives key input
type focusArea int

const (
	focusInput focusArea = iota
	focusResults
)

// Executor runs one submission, see searchview.Orchestrator.
type Executor interface {
	Execute(ctx context.Context, req searchview.Request) searchview.Outcome
}

// Prober checks the backend health, see askapi.Client.
type Prober interface {
	Health(ctx context.Context) (*askapi.HealthResponse, error)
}

// Options configures NewModel.
type Options struct {
	// BaseURL is displayed in the header.
	BaseURL string
	// Prober, if set, is called once at startup.
	Prober Prober
}

// outcomeMsg delivers the result of a submission to Update
type outcomeMsg searchview.Outcome

// healthMsg delivers the startup probe result to Update
type healthMsg struct {
	healthy bool
	err     error
}

// Model is the search view following the Bubble Tea architecture
type Model struct {
	ctx      context.Context
	executor Executor
	opts     Options

	state  searchview.State
	cancel context.CancelFunc
	focus  focusArea

	input   textinput.Model
	spinner spinner.Model
	answer  viewport.Model
	help    help.Model

	renderer      *glamour.TermRenderer
	rendererWidth int

	// health is empty until the probe reports
	health string

	width    int
	height   int
	quitting bool
}

// NewModel creates the search view
func NewModel(ctx context.Context, executor Executor, opts Options) Model {
	input := textinput.New()
	input.Placeholder = "Ask for match clips, raids, players..."
	input.Prompt = "🔍 "
	input.CharLimit = 512
	input.Width = defaultWidth - 8
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = GetProgressStyle()

	return Model{
		ctx:      ctx,
		executor: executor,
		opts:     opts,
		state:    searchview.NewState(),
		focus:    focusInput,
		input:    input,
		spinner:  sp,
		answer:   viewport.New(defaultWidth-4, answerHeight),
		help:     help.New(),
	}
}

// State returns the current view state
func (m Model) State() searchview.State {
	return m.state
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.probe())
}

// probe checks the backend once, nil without a Prober
func (m Model) probe() tea.Cmd {
	prober := m.opts.Prober
	if prober == nil {
		return nil
	}

	ctx := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, healthTimeout)
		defer cancel()

		resp, err := prober.Health(ctx)
		if err != nil {
			return healthMsg{err: err}
		}
		return healthMsg{healthy: resp.Healthy()}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(m.contentWidth()-8, 10)
		m.answer.Width = m.contentWidth() - 4
		m.refreshAnswer()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case outcomeMsg:
		next, applied := m.state.Resolve(searchview.Outcome(msg))
		if !applied {
			return m, nil
		}
		m.state = next
		m.release()
		m.refreshAnswer()
		m.answer.GotoTop()
		m.focusOn(focusInput)
		return m, textinput.Blink

	case healthMsg:
		switch {
		case askapi.IsKind(msg.err, askapi.ErrKindApplication):
			// the server answered, but with an error status
			m.health = "unhealthy"
		case msg.err != nil:
			m.health = "unreachable"
		case msg.healthy:
			m.health = "healthy"
		default:
			m.health = "unhealthy"
		}
		return m, nil
	}

	if m.focus == focusInput && !m.state.Loading() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey routes key events by focus and loading state
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		m.release()
		m.quitting = true
		return m, tea.Quit
	}

	if m.state.Loading() {
		if key.Matches(msg, keys.Cancel) {
			m.release()
			m.state, _ = m.state.Cancel()
			m.focusOn(focusInput)
			return m, textinput.Blink
		}
		// input is disabled while the request is in flight
		return m, nil
	}

	if key.Matches(msg, keys.Focus) {
		if m.focus == focusInput {
			m.focusOn(focusResults)
		} else {
			m.focusOn(focusInput)
			return m, textinput.Blink
		}
		return m, nil
	}

	if m.focus == focusResults {
		return m.handleResultsKey(msg)
	}
	return m.handleInputKey(msg)
}

// handleInputKey handles key events while the query input has focus
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Submit):
		return m.submit()
	case msg.Type == tea.KeyPgDown:
		m.state = m.state.NextPage()
		return m, nil
	case msg.Type == tea.KeyPgUp:
		m.state = m.state.PrevPage()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleResultsKey handles key events while the results have focus
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.QuitResults):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Next):
		m.state = m.state.NextPage()
	case key.Matches(msg, keys.Prev):
		m.state = m.state.PrevPage()
	case key.Matches(msg, keys.Up):
		m.answer.ScrollUp(1)
	case key.Matches(msg, keys.Down):
		m.answer.ScrollDown(1)
	case key.Matches(msg, keys.Cancel):
		m.focusOn(focusInput)
		return m, textinput.Blink
	case key.Matches(msg, keys.Submit):
		return m.submit()
	}

	return m, nil
}

// submit starts a request for the current input, blank input is ignored
func (m Model) submit() (tea.Model, tea.Cmd) {
	next, req, err := m.state.Submit(m.input.Value())
	if err != nil {
		return m, nil
	}

	m.state = next
	m.input.Blur()

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	executor := m.executor

	return m, tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			return outcomeMsg(executor.Execute(ctx, req))
		},
	)
}

// release cancels the context of the in-flight request, if any
func (m *Model) release() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// focusOn moves key input to area
func (m *Model) focusOn(area focusArea) {
	m.focus = area
	if area == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// contentWidth is the usable width inside the window
func (m Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return max(m.width-2, 30)
}

// refreshAnswer renders the latest answer into the viewport
func (m *Model) refreshAnswer() {
	resp := m.state.Response()
	if resp == nil || resp.Answer == "" {
		m.answer.SetContent("")
		return
	}

	width := max(m.answer.Width-2, 20)
	if m.renderer == nil || m.rendererWidth != width {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			m.renderer = nil
			m.answer.SetContent(resp.Answer)
			return
		}
		m.renderer = renderer
		m.rendererWidth = width
	}

	out, err := m.renderer.Render(resp.Answer)
	if err != nil {
		out = resp.Answer
	}
	m.answer.SetContent(out)
}
