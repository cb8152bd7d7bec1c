package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderConfidence renders a confidence bar like [████░░░░] 82%.
func RenderConfidence(confidence float64, width int) string {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(confidence * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	return fmt.Sprintf("[%s] %3.0f%%", StylePurple.Render(bar), confidence*100)
}

// RenderTrend renders the session's risk scores as a fixed-scale vertical
// bar chart, one column per entry, y range pinned to 0-10. Repeated calls
// over the same scores produce identical output.
func RenderTrend(scores []int, height int) string {
	if len(scores) == 0 {
		return Dim("No entries yet.")
	}
	if height < 2 {
		height = 10
	}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		threshold := float64(row) / float64(height) * 10

		// Axis label on the 0/5/10 gridlines.
		label := "   "
		switch row {
		case height:
			label = "10 "
		case (height + 1) / 2:
			label = " 5 "
		}
		b.WriteString(Dim(label))
		b.WriteString(Dim("│"))

		for _, score := range scores {
			if float64(score) >= threshold {
				b.WriteString(barStyle(score).Render(filledBlock))
			} else {
				b.WriteString(" ")
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString(Dim(" 0 └" + strings.Repeat("─", len(scores)*2)))
	return b.String()
}

func barStyle(score int) lipgloss.Style {
	switch {
	case score >= 8:
		return StyleRed
	case score >= 5:
		return StyleYellow
	default:
		return StyleGreen
	}
}
