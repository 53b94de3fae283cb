package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Laisky/video-search/internal/searchview"
)

const gridColumns = 3

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return GetSubtitleStyle().Render("Goodbye! 👋\n")
	}

	sections := []string{
		m.renderHeader(),
		m.renderInput(),
		m.renderBody(),
		m.renderStatusBar(),
		m.renderHelp(),
	}

	parts := sections[:0]
	for _, section := range sections {
		if section != "" {
			parts = append(parts, section)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderHeader renders the title and the backend address
func (m Model) renderHeader() string {
	header := GetHeaderStyle().Render("🎬 Video Search")
	if m.opts.BaseURL == "" {
		return header
	}

	backend := m.opts.BaseURL
	if m.health != "" {
		backend = fmt.Sprintf("%s (%s)", backend, m.health)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, header, " ", GetSubtitleStyle().Render(backend))
}

// renderInput renders the query input box
func (m Model) renderInput() string {
	return GetBoxStyle(m.focus == focusInput && !m.state.Loading()).
		Width(m.contentWidth()).
		Render(m.input.View())
}

// renderBody renders the part of the view that depends on the phase
func (m Model) renderBody() string {
	switch m.state.Phase() {
	case searchview.PhaseIdle:
		return GetSubtitleStyle().Render("Type a question and press enter to search for videos.")
	case searchview.PhaseLoading:
		return m.spinner.View() + " Searching for " + fmt.Sprintf("%q", m.state.Query()) + "..."
	case searchview.PhaseFailed:
		return GetErrorBannerStyle().
			Width(m.contentWidth()).
			Render(GetErrorStyle().Render("❌ " + m.state.Err()))
	case searchview.PhaseEmpty:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderAnswer(),
			GetSubtitleStyle().Render("No videos found for this question."),
			m.renderDropped(),
		)
	case searchview.PhaseSuccess:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderAnswer(),
			m.renderGrid(),
			m.renderPagination(),
			m.renderDropped(),
		)
	default:
		return ""
	}
}

// renderAnswer renders the answer viewport, empty when there is no answer
func (m Model) renderAnswer() string {
	resp := m.state.Response()
	if resp == nil || resp.Answer == "" {
		return ""
	}
	return GetBoxStyle(false).Width(m.contentWidth()).Render(m.answer.View())
}

// renderGrid renders the current page as rows of video cards
func (m Model) renderGrid() string {
	visible := m.state.Visible()
	if len(visible) == 0 {
		return ""
	}

	border := GetCardStyle().GetHorizontalFrameSize()
	cardWidth := max(m.contentWidth()/gridColumns-border, 16)

	rows := make([]string, 0, (len(visible)+gridColumns-1)/gridColumns)
	for start := 0; start < len(visible); start += gridColumns {
		end := min(start+gridColumns, len(visible))
		cards := make([]string, 0, gridColumns)
		for _, result := range visible[start:end] {
			cards = append(cards, renderCard(result, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders one video card of the given inner width
func renderCard(result searchview.UrlResult, width int) string {
	preview := placeholderGlyph + " no preview"
	if thumb, ok := result.Thumbnail(); ok {
		preview = thumbnailGlyph + " " + thumb
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		GetSubtitleStyle().Render(truncate(preview, width)),
		GetCardTitleStyle().Render(truncate(result.Title, width)),
		GetLinkStyle().Render(truncate(result.URL, width)),
	)

	return GetCardStyle().Width(width + GetCardStyle().GetHorizontalPadding()).Render(body)
}

// renderPagination renders Previous / page / Next, only when there is more than one page
func (m Model) renderPagination() string {
	if !m.state.Paginated() {
		return ""
	}

	prev := GetControlStyle(m.state.HasPrev()).Render("‹ Previous")
	next := GetControlStyle(m.state.HasNext()).Render("Next ›")
	page := fmt.Sprintf("Page %d of %d", m.state.Page(), m.state.TotalPages())

	return lipgloss.JoinHorizontal(lipgloss.Top, prev, "   ", page, "   ", next)
}

// renderDropped notes raw results that could not be shown
func (m Model) renderDropped() string {
	resp := m.state.Response()
	if resp == nil || resp.Dropped == 0 {
		return ""
	}
	return GetSubtitleStyle().Render(fmt.Sprintf("%d result(s) skipped: no video link", resp.Dropped))
}

// renderStatusBar renders token usage and the generated query of the latest answer
func (m Model) renderStatusBar() string {
	resp := m.state.Response()
	if resp == nil {
		return ""
	}

	fields := []string{
		fmt.Sprintf("%d video(s)", len(resp.URLResults)),
		fmt.Sprintf("%d tokens", resp.TokensUsed),
	}
	if resp.Query != "" {
		fields = append(fields, "sql: "+resp.Query)
	}

	return GetStatusBarStyle().Render(truncate(strings.Join(fields, " • "), m.contentWidth()-2))
}

// renderHelp renders the bindings available in the current mode
func (m Model) renderHelp() string {
	bindings := keys.inputHelp()
	switch {
	case m.state.Loading():
		bindings = keys.loadingHelp()
	case m.focus == focusResults:
		bindings = keys.resultsHelp()
	}
	return GetHelpStyle().Render(m.help.ShortHelpView(bindings))
}

// truncate cuts s to width display cells
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
