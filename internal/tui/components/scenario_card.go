package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/internal/tui/tuistyles"
	"github.com/rgehrsitz/herdsim/pkg/dateutil"
)

// ScenarioCard displays a named parameter set and a few highlights
type ScenarioCard struct {
	Name        string
	Description string
	Highlights  []string
	IsSelected  bool
	Width       int
}

// NewScenarioCard creates a new scenario card
func NewScenarioCard(name string) *ScenarioCard {
	return &ScenarioCard{
		Name:  name,
		Width: 48,
	}
}

// NewParametersCard creates a card summarizing simulation parameters
func NewParametersCard(name string, p domain.SimulationParameters) *ScenarioCard {
	cgf := "without growing fund"
	if p.CGFEnabled {
		cgf = "with growing fund"
	}
	return NewScenarioCard(name).
		AddHighlight(fmt.Sprintf("%d unit%s, %d months", p.UnitCount, plural(p.UnitCount), p.DurationMonths)).
		AddHighlight(fmt.Sprintf("starts %d %s", p.StartDay, dateutil.Label(p.StartYear, p.StartMonth))).
		AddHighlight(cgf)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// WithDescription adds a description
func (s *ScenarioCard) WithDescription(desc string) *ScenarioCard {
	s.Description = desc
	return s
}

// AddHighlight adds a key metric or parameter
func (s *ScenarioCard) AddHighlight(highlight string) *ScenarioCard {
	s.Highlights = append(s.Highlights, highlight)
	return s
}

// SetSelected marks the card as selected
func (s *ScenarioCard) SetSelected(selected bool) *ScenarioCard {
	s.IsSelected = selected
	return s
}

// WithWidth sets the card width
func (s *ScenarioCard) WithWidth(width int) *ScenarioCard {
	s.Width = width
	return s
}

// Render returns the bordered card
func (s *ScenarioCard) Render() string {
	var content strings.Builder

	content.WriteString(tuistyles.TitleStyle.Render(s.Name))
	if s.Description != "" {
		content.WriteString("\n")
		content.WriteString(tuistyles.SubtitleStyle.Render(s.Description))
	}
	for _, h := range s.Highlights {
		content.WriteString("\n")
		content.WriteString(tuistyles.HelpDescStyle.Render("• " + h))
	}

	border := tuistyles.ColorBorder
	if s.IsSelected {
		border = tuistyles.ColorPrimary
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(s.Width)

	return cardStyle.Render(content.String())
}

// RenderCompact returns a single-line version
func (s *ScenarioCard) RenderCompact() string {
	line := s.Name
	if len(s.Highlights) > 0 {
		line += " " + tuistyles.HelpDescStyle.Render("• "+s.Highlights[0])
	}
	return line
}

// ScenarioListCompact renders a selection list with a cursor
func ScenarioListCompact(cards []*ScenarioCard, selectedIndex int) string {
	if len(cards) == 0 {
		return tuistyles.InfoStyle.Render("No scenarios available")
	}

	rendered := make([]string, len(cards))
	for i, card := range cards {
		prefix := "  "
		style := tuistyles.UnselectedItemStyle
		if i == selectedIndex {
			prefix = "▸ "
			style = tuistyles.SelectedItemStyle
		}
		rendered[i] = style.Render(prefix) + style.Render(card.RenderCompact())
	}

	return strings.Join(rendered, "\n")
}
