package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/scaleos/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var blocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	peak := maxOf(values)
	if peak == 0 {
		peak = 1
	}

	var buf strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		idx = min(max(idx, 0), len(blocks)-1)
		buf.WriteRune(blocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Render(buf.String())
}

// BarChart renders one column per value, height rows tall, with a y-axis
// ceiling label and x-axis labels every labelEvery bars. Falls back to a
// sparkline when there is not enough room.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height, labelEvery int) string {
	if len(values) == 0 {
		return ""
	}

	t := theme.Active
	ceiling := maxOf(values)
	if ceiling == 0 {
		ceiling = 1
	}

	yLabel := FormatAxis(ceiling)
	yLabelW := max(len(yLabel), len("0")) + 1

	n := len(values)
	barW := (width - yLabelW - 1 - (n - 1)) / n
	if height < 3 || barW < 1 {
		return Sparkline(values, color)
	}
	barW = min(barW, 4)

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	peakStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	barStyle := lipgloss.NewStyle().Foreground(color)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		top := ceiling * float64(row) / float64(height)
		bottom := ceiling * float64(row-1) / float64(height)

		label := ""
		if row == height {
			label = yLabel
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", yLabelW, label)))

		for i, v := range values {
			if i > 0 {
				b.WriteString(" ")
			}
			style := barStyle
			if v == ceiling {
				style = peakStyle
			}
			switch {
			case v >= top:
				b.WriteString(style.Render(strings.Repeat("█", barW)))
			case v > bottom:
				idx := int((v - bottom) / (top - bottom) * float64(len(blocks)))
				idx = min(max(idx, 0), len(blocks)-1)
				b.WriteString(style.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(strings.Repeat(" ", barW))
			}
		}
		b.WriteString("\n")
	}

	axisLen := n*barW + n - 1
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s└%s", yLabelW, "0", strings.Repeat("─", axisLen))))

	if len(labels) == n && labelEvery > 0 {
		buf := []rune(strings.Repeat(" ", axisLen))
		for i := 0; i < n; i += labelEvery {
			pos := i * (barW + 1)
			for j, r := range labels[i] {
				if pos+j < len(buf) {
					buf[pos+j] = r
				}
			}
		}
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", yLabelW+1))
		b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))
	}

	return b.String()
}

// FormatAxis formats a dollar amount compactly, e.g. 125000 -> "$125k".
func FormatAxis(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("$%.0fM", v/1e6)
		}
		return fmt.Sprintf("$%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("$%.0fk", v/1e3)
		}
		return fmt.Sprintf("$%.1fk", v/1e3)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

func maxOf(values []float64) float64 {
	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	return peak
}
