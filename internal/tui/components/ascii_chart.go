package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/herdsim/internal/tui/tuistyles"
)

// DataSeries is one line of a chart
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart plots monthly series against a rupee axis, with an optional
// horizontal reference line such as the initial investment.
type ASCIIChart struct {
	Title      string
	Series     []*DataSeries
	Labels     []string // x-axis labels
	Width      int
	Height     int
	ShowLegend bool
	Reference  *float64
	RefLabel   string
}

// NewASCIIChart creates a new ASCII chart
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:      title,
		Width:      72,
		Height:     14,
		ShowLegend: true,
	}
}

// AddSeries adds a data series to the chart
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// AddDecimalSeries adds a series of rupee amounts
func (c *ASCIIChart) AddDecimalSeries(name string, amounts []decimal.Decimal, color lipgloss.Color) *ASCIIChart {
	points := make([]float64, len(amounts))
	for i, a := range amounts {
		points[i] = a.InexactFloat64()
	}
	return c.AddSeries(name, points, color)
}

// WithReference draws a dashed horizontal line at value
func (c *ASCIIChart) WithReference(label string, value decimal.Decimal) *ASCIIChart {
	v := value.InexactFloat64()
	c.Reference = &v
	c.RefLabel = label
	return c
}

// WithLabels sets the x-axis labels
func (c *ASCIIChart) WithLabels(labels []string) *ASCIIChart {
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// Render returns the styled chart
func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 || len(c.Series[0].Points) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder
	if c.Title != "" {
		content.WriteString(tuistyles.TitleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	lo, hi := c.bounds()
	content.WriteString(c.renderGrid(lo, hi))

	if c.ShowLegend {
		content.WriteString("\n")
		content.WriteString(c.renderLegend())
	}
	return content.String()
}

// bounds returns the padded value range across every series and the reference
func (c *ASCIIChart) bounds() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			lo = math.Min(lo, p)
			hi = math.Max(hi, p)
		}
	}
	if c.Reference != nil {
		lo = math.Min(lo, *c.Reference)
		hi = math.Max(hi, *c.Reference)
	}
	if hi == lo {
		hi = lo + 1
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

const yAxisWidth = 11

func (c *ASCIIChart) row(v, lo, hi float64) int {
	return c.Height - 1 - int(math.Round((v-lo)/(hi-lo)*float64(c.Height-1)))
}

func (c *ASCIIChart) col(i, n, width int) int {
	if n <= 1 {
		return 0
	}
	return int(math.Round(float64(i) / float64(n-1) * float64(width-1)))
}

func (c *ASCIIChart) renderGrid(lo, hi float64) string {
	width := max(2, c.Width-yAxisWidth-3)

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	if c.Reference != nil {
		y := c.row(*c.Reference, lo, hi)
		for x := 0; x < width; x += 2 {
			grid[y][x] = '┄'
		}
	}

	for idx, s := range c.Series {
		char := seriesChar(idx)
		prevX, prevY := -1, -1
		for i, p := range s.Points {
			x, y := c.col(i, len(s.Points), width), c.row(p, lo, hi)
			if prevX >= 0 {
				drawLine(grid, prevX, prevY, x, y)
			}
			grid[y][x] = char
			prevX, prevY = x, y
		}
	}

	var out strings.Builder
	axisStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)
	for i, line := range grid {
		label := ""
		if i == 0 || i == c.Height-1 || i == c.Height/2 {
			label = FormatChartValue(hi - float64(i)/float64(c.Height-1)*(hi-lo))
		}
		out.WriteString(axisStyle.Render(label))
		out.WriteString(" │ ")
		out.WriteString(string(line))
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └─")
	out.WriteString(strings.Repeat("─", width))

	if len(c.Labels) > 0 {
		out.WriteString("\n")
		out.WriteString(c.renderXAxisLabels(width))
	}
	return out.String()
}

// renderXAxisLabels places the first, middle and last labels under their columns
func (c *ASCIIChart) renderXAxisLabels(width int) string {
	line := []rune(strings.Repeat(" ", width+len(c.Labels[len(c.Labels)-1])))
	n := len(c.Labels)
	for _, i := range []int{0, n / 2, n - 1} {
		x := c.col(i, n, width)
		for j, r := range []rune(c.Labels[i]) {
			if x+j < len(line) {
				line[x+j] = r
			}
		}
	}
	style := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	return strings.Repeat(" ", yAxisWidth+3) + style.Render(strings.TrimRight(string(line), " "))
}

func (c *ASCIIChart) renderLegend() string {
	var items []string
	for i, s := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(s.Color).Render(string(seriesChar(i)))
		items = append(items, fmt.Sprintf("%s %s", symbol, s.Name))
	}
	if c.Reference != nil && c.RefLabel != "" {
		items = append(items, "┄ "+c.RefLabel)
	}
	return tuistyles.HelpDescStyle.Render(strings.Join(items, "  •  "))
}

func seriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

// drawLine joins two grid points with Bresenham's algorithm, leaving existing marks alone
func drawLine(grid [][]rune, x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		if y0 >= 0 && y0 < len(grid) && x0 >= 0 && x0 < len(grid[y0]) && grid[y0][x0] == ' ' {
			grid[y0][x0] = '·'
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FormatChartValue abbreviates an axis value in lakh or crore
func FormatChartValue(value float64) string {
	a := math.Abs(value)
	switch {
	case a >= 1e7:
		return fmt.Sprintf("₹%.1f Cr", value/1e7)
	case a >= 1e5:
		return fmt.Sprintf("₹%.1f L", value/1e5)
	case a >= 1e3:
		return fmt.Sprintf("₹%.0fK", value/1e3)
	}
	return fmt.Sprintf("₹%.0f", value)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
