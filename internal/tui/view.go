package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading && m.result == nil {
		return m.renderLoading()
	}

	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case SceneScenarios:
		content = m.scenariosModel.View()
	case SceneParameters:
		content = m.parametersModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneHerd:
		content = m.herdModel.View()
	case SceneCompare:
		content = m.compareModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	// Title (2) + status (1) + padding (1)
	contentHeight := m.height - 4

	contentContainer := lipgloss.NewStyle().
		Height(max(1, contentHeight)).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("Herdsim - Buffalo Herd Investment Projection")

	breadcrumb := m.currentScene.String()
	if m.selectedScenario != "" {
		breadcrumb = fmt.Sprintf("%s / %s", breadcrumb, m.selectedScenario)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		SubtitleStyle.Render(breadcrumb),
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("h", "home"),
		formatShortcut("s", "scenarios"),
		formatShortcut("p", "parameters"),
		formatShortcut("r", "results"),
		formatShortcut("v", "herd"),
		formatShortcut("c", "compare"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}

	statusText := strings.Join(shortcuts, " • ")

	var right string
	switch {
	case m.loading:
		right = m.spinner.View() + " " + m.loadingMessage
	case m.status != "":
		right = InfoStyle.Render(m.status)
	case m.projector != nil:
		stats := m.projector.Stats()
		right = SubtitleStyle.Render(fmt.Sprintf("cache %d/%d", stats.Hits, stats.Hits+stats.Misses))
	}
	if right != "" {
		width := m.width - lipgloss.Width(statusText) - lipgloss.Width(right) - 4
		statusText = statusText + strings.Repeat(" ", max(1, width)) + right
	}

	return StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderLoading renders the spinner and loading message
func (m Model) renderLoading() string {
	message := m.loadingMessage
	if message == "" {
		message = "Loading..."
	}

	content := BorderStyle.Render(
		fmt.Sprintf("%s %s", m.spinner.View(), message),
	)

	return m.renderApp(content)
}

// renderError renders an error message
func (m Model) renderError() string {
	content := ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err.Error()),
	)

	return m.renderApp(content)
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	helpText := `
Herdsim - Buffalo Herd Investment Projection

KEYBOARD SHORTCUTS:
  h        Home dashboard
  s        Saved scenarios
  p        Edit parameters
  r        Yearly and monthly results
  v        Herd lineage and valuation
  c        Compare what-if templates
  ?        Show this help
  ESC      Go back
  q/Ctrl+C Quit

PARAMETERS:
  ↑/↓      Move between parameters
  ←/→ +/-  Adjust the focused value
  PgUp/Dn  Move the horizon by a year
  x        Reset to the loaded values
  Ctrl+S   Save as a named scenario

RESULTS:
  Tab      Cycle yearly, monthly and chart views
  y/m/g    Jump to yearly, monthly or chart

COMPARE:
  Space    Toggle a template
  /        Type a custom transform, e.g. add_units:units=2
  Enter    Run the comparison
`

	return BorderStyle.Render(helpText)
}
