package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/algoviz/internal/step"
)

const (
	barWidth = 4
	barGap   = 1
	barRune  = "█"
)

// Heights scales values so the largest magnitude fills rows. Negative values
// are drawn by magnitude; an all-zero array gets zero-height bars.
func Heights(values []int, rows int) []int {
	maxVal := 0
	for _, v := range values {
		if a := abs(v); a > maxVal {
			maxVal = a
		}
	}
	scale := 1.0
	if maxVal > 0 {
		scale = float64(rows) / float64(maxVal)
	}
	out := make([]int, len(values))
	for i, v := range values {
		h := int(float64(abs(v))*scale + 0.5)
		if h > rows {
			h = rows
		}
		out[i] = h
	}
	return out
}

// Bars draws f as rows of vertical bars with the values underneath.
func Bars(f step.Frame, theme Theme, rows int) string {
	if len(f.Values) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Muted).Render("(no values)")
	}
	heights := Heights(f.Values, rows)

	styles := make([]lipgloss.Style, len(f.Values))
	for i := range f.Values {
		styles[i] = lipgloss.NewStyle().Foreground(theme.Bar(f.ColorAt(i)))
	}

	cell := strings.Repeat(barRune, barWidth)
	blank := strings.Repeat(" ", barWidth)
	gap := strings.Repeat(" ", barGap)

	var b strings.Builder
	for r := rows; r >= 1; r-- {
		for i, h := range heights {
			if i > 0 {
				b.WriteString(gap)
			}
			if h >= r {
				b.WriteString(styles[i].Render(cell))
			} else {
				b.WriteString(blank)
			}
		}
		b.WriteString("\n")
	}

	label := lipgloss.NewStyle().Foreground(theme.Text).Width(barWidth).Align(lipgloss.Center)
	for i, v := range f.Values {
		if i > 0 {
			b.WriteString(gap)
		}
		b.WriteString(label.Render(fit(strconv.Itoa(v), barWidth)))
	}
	return b.String()
}

func fit(s string, w int) string {
	if len(s) <= w {
		return s
	}
	return s[:w-1] + "…"
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
