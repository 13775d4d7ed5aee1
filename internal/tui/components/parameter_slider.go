package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/herdsim/internal/tui/tuistyles"
)

// ParameterSlider edits one integer simulation parameter within a range.
// When Labels is set, Labels[Value-Min] is displayed instead of the number,
// which turns the slider into a picker for months or an on/off toggle.
type ParameterSlider struct {
	Key         string
	Label       string
	Value       int
	Min         int
	Max         int
	Step        int
	Unit        string
	Labels      []string
	Width       int
	IsFocused   bool
	Description string
}

// NewParameterSlider creates a new parameter slider, clamping value into range
func NewParameterSlider(key, label string, value, min, max, step int) *ParameterSlider {
	if step < 1 {
		step = 1
	}
	p := &ParameterSlider{
		Key:   key,
		Label: label,
		Min:   min,
		Max:   max,
		Step:  step,
		Width: 30,
	}
	p.SetValue(value)
	return p
}

// NewToggle creates a two-state slider displayed as off/on
func NewToggle(key, label string, on bool) *ParameterSlider {
	value := 0
	if on {
		value = 1
	}
	return NewParameterSlider(key, label, value, 0, 1, 1).WithLabels([]string{"off", "on"})
}

// WithUnit sets the unit suffix
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithLabels sets display labels for every value in Min..Max
func (p *ParameterSlider) WithLabels(labels []string) *ParameterSlider {
	p.Labels = labels
	return p
}

// WithWidth sets the slider width
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// SetFocused sets the focus state
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// WithDescription adds a help line
func (p *ParameterSlider) WithDescription(desc string) *ParameterSlider {
	p.Description = desc
	return p
}

// Increment increases the value by one step and reports whether it changed
func (p *ParameterSlider) Increment() bool {
	return p.Move(1)
}

// Decrement decreases the value by one step and reports whether it changed
func (p *ParameterSlider) Decrement() bool {
	return p.Move(-1)
}

// Move shifts the value by a number of steps and reports whether it changed
func (p *ParameterSlider) Move(steps int) bool {
	before := p.Value
	p.SetValue(p.Value + steps*p.Step)
	return p.Value != before
}

// SetMax changes the upper bound, clamping the current value
func (p *ParameterSlider) SetMax(upper int) {
	p.Max = upper
	p.SetValue(p.Value)
}

// SetValue sets the value directly, clamping to min/max
func (p *ParameterSlider) SetValue(value int) {
	p.Value = max(p.Min, min(p.Max, value))
}

// Percentage returns the position of the value within the range, 0 to 1
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return float64(p.Value-p.Min) / float64(p.Max-p.Min)
}

// Display formats a value the way the slider shows it
func (p *ParameterSlider) Display(value int) string {
	if i := value - p.Min; i >= 0 && i < len(p.Labels) {
		return p.Labels[i]
	}
	return fmt.Sprintf("%d%s", value, p.Unit)
}

// Render returns the full slider with label, bar, range and hints
func (p *ParameterSlider) Render() string {
	var content strings.Builder

	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary).Bold(true)
	}

	content.WriteString(labelStyle.Render(p.Label))
	content.WriteString("  ")
	content.WriteString(valueStyle.Render(p.Display(p.Value)))
	content.WriteString("\n")
	content.WriteString(p.renderBar(p.Width))

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	content.WriteString(" ")
	content.WriteString(rangeStyle.Render(fmt.Sprintf("%s ─ %s", p.Display(p.Min), p.Display(p.Max))))

	if p.Description != "" {
		content.WriteString("\n")
		content.WriteString(tuistyles.SubtitleStyle.Render(p.Description))
	}

	return content.String()
}

// RenderCompact returns a single-line version with a mini bar
func (p *ParameterSlider) RenderCompact() string {
	labelStyle := tuistyles.ParameterLabelStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
	}
	return fmt.Sprintf("%s %s %s",
		labelStyle.Render(p.Label+":"),
		tuistyles.ParameterValueStyle.Render(p.Display(p.Value)),
		p.renderBar(10))
}

func (p *ParameterSlider) renderBar(width int) string {
	thumb := int(p.Percentage()*float64(width-1) + 0.5)

	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < width; i++ {
		switch {
		case i == thumb:
			bar.WriteString(thumbStyle.Render("●"))
		case i < thumb:
			bar.WriteString(thumbStyle.Render("━"))
		default:
			bar.WriteString(tuistyles.SliderTrackStyle.Render("─"))
		}
	}
	bar.WriteString("]")
	return bar.String()
}
