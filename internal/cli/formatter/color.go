package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/mindguard/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SeverityColor returns the lipgloss style for a severity tier.
func SeverityColor(severity domain.Severity) lipgloss.Style {
	switch severity {
	case domain.SeverityHigh:
		return StyleRed
	case domain.SeverityModerate:
		return StyleYellow
	case domain.SeverityStable:
		return StyleGreen
	default:
		return StyleDim
	}
}

// SeverityIndicator returns a colored severity indicator such as "● HIGH DISTRESS".
func SeverityIndicator(severity domain.Severity) string {
	switch severity {
	case domain.SeverityHigh:
		return StyleRed.Render("● HIGH DISTRESS")
	case domain.SeverityModerate:
		return StyleYellow.Render("● MODERATE RISK")
	case domain.SeverityStable:
		return StyleGreen.Render("● STABLE")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// SeverityMessage returns the colored guidance line shown for a tier.
func SeverityMessage(severity domain.Severity) string {
	switch severity {
	case domain.SeverityHigh:
		return StyleRed.Render("Emotional distress detected. Consider reaching out to a trusted adult or counselor.")
	case domain.SeverityModerate:
		return StyleYellow.Render("Moderate risk. Practice coping strategies or talk to someone you trust.")
	default:
		return StyleGreen.Render("Emotional state appears stable.")
	}
}

// EmotionBadge returns a capitalized, purple-styled emotion label.
func EmotionBadge(emotion string) string {
	if emotion == "" {
		return StyleDim.Render("--")
	}
	label := strings.ToUpper(emotion[:1]) + emotion[1:]
	return StylePurple.Render(label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
