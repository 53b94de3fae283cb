// Package tui provides the terminal user interface of video-search.
// It uses the Charm Bubble Tea framework to draw the search view.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI based on modern design principles
var (
	// Primary colors
	primaryColor   = lipgloss.Color("#7C3AED") // Violet
	secondaryColor = lipgloss.Color("#10B981") // Emerald
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red

	// Neutral colors
	fgColor     = lipgloss.Color("#CDD6F4") // Light foreground
	mutedColor  = lipgloss.Color("#6C7086") // Muted text
	borderColor = lipgloss.Color("#45475A") // Border
	highlightBg = lipgloss.Color("#45475A") // Highlight background
)

// placeholderGlyph stands in for a thumbnail that cannot be resolved.
const placeholderGlyph = "🎞"

// thumbnailGlyph marks a card whose thumbnail url is known.
const thumbnailGlyph = "🖼"

// subtitleStyle creates the subtitle/description style
var subtitleStyle = lipgloss.NewStyle().
	Foreground(mutedColor).
	Italic(true)

// helpStyle creates the style for help text at the bottom
var helpStyle = lipgloss.NewStyle().
	Foreground(mutedColor).
	MarginTop(1)

// boxStyle creates a bordered box style
var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(borderColor).
	Padding(0, 1)

// focusedBoxStyle highlights the box that receives key input
var focusedBoxStyle = boxStyle.
	BorderForeground(primaryColor)

// cardStyle is the frame of a single video card
var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(borderColor).
	Padding(0, 1)

// cardTitleStyle is the title line of a video card
var cardTitleStyle = lipgloss.NewStyle().
	Foreground(secondaryColor).
	Bold(true)

// linkStyle renders urls
var linkStyle = lipgloss.NewStyle().
	Foreground(fgColor).
	Underline(true)

// errorStyle creates style for error messages
var errorStyle = lipgloss.NewStyle().
	Foreground(errorColor).
	Bold(true)

// errorBannerStyle frames the error message
var errorBannerStyle = lipgloss.NewStyle().
	Border(lipgloss.ThickBorder()).
	BorderForeground(errorColor).
	Padding(0, 1)

// headerStyle creates the header/banner style
var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(fgColor).
	Background(primaryColor).
	Padding(0, 2).
	MarginBottom(1)

// progressStyle creates the style for progress indicators
var progressStyle = lipgloss.NewStyle().
	Foreground(accentColor)

// activeControlStyle is an enabled pagination control
var activeControlStyle = lipgloss.NewStyle().
	Foreground(accentColor).
	Bold(true)

// disabledControlStyle is a pagination control at a range boundary
var disabledControlStyle = lipgloss.NewStyle().
	Foreground(borderColor)

// statusBarStyle creates the style for the status bar
var statusBarStyle = lipgloss.NewStyle().
	Foreground(mutedColor).
	Background(highlightBg).
	Padding(0, 1)

// GetSubtitleStyle returns the subtitle style
func GetSubtitleStyle() lipgloss.Style {
	return subtitleStyle
}

// GetHelpStyle returns the help style
func GetHelpStyle() lipgloss.Style {
	return helpStyle
}

// GetBoxStyle returns the box style, highlighted when focused
func GetBoxStyle(focused bool) lipgloss.Style {
	if focused {
		return focusedBoxStyle
	}
	return boxStyle
}

// GetCardStyle returns the video card style
func GetCardStyle() lipgloss.Style {
	return cardStyle
}

// GetCardTitleStyle returns the video card title style
func GetCardTitleStyle() lipgloss.Style {
	return cardTitleStyle
}

// GetLinkStyle returns the url style
func GetLinkStyle() lipgloss.Style {
	return linkStyle
}

// GetErrorStyle returns the error style
func GetErrorStyle() lipgloss.Style {
	return errorStyle
}

// GetErrorBannerStyle returns the error banner style
func GetErrorBannerStyle() lipgloss.Style {
	return errorBannerStyle
}

// GetHeaderStyle returns the header style
func GetHeaderStyle() lipgloss.Style {
	return headerStyle
}

// GetProgressStyle returns the progress style
func GetProgressStyle() lipgloss.Style {
	return progressStyle
}

// GetControlStyle returns the pagination control style
func GetControlStyle(enabled bool) lipgloss.Style {
	if enabled {
		return activeControlStyle
	}
	return disabledControlStyle
}

// GetStatusBarStyle returns the status bar style
func GetStatusBarStyle() lipgloss.Style {
	return statusBarStyle
}
