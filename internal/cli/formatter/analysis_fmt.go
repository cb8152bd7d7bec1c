package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mindguard/internal/domain"
)

// FormatAnalysis renders the result panel for one analyzed reflection:
// primary emotion, confidence, risk level, severity message, coping tips.
func FormatAnalysis(a *domain.Analysis) string {
	var b strings.Builder

	b.WriteString(Header("Emotional Analysis"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold("Primary Emotion:"), EmotionBadge(a.Assessment.Emotion)))
	b.WriteString(fmt.Sprintf("%s       %s\n", Bold("Confidence:"), RenderConfidence(a.Assessment.Confidence, 20)))
	b.WriteString(fmt.Sprintf("%s       %s  %s\n",
		Bold("Risk Level:"),
		SeverityColor(a.Assessment.Severity).Render(fmt.Sprintf("%d/10", a.Assessment.RiskScore)),
		SeverityIndicator(a.Assessment.Severity),
	))
	if a.Assessment.CrisisFlag {
		b.WriteString(StyleRed.Render("Crisis keyword detected.") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(SeverityMessage(a.Assessment.Severity))
	b.WriteString("\n\n")

	b.WriteString(Header("Suggested Coping Tips"))
	b.WriteString("\n\n")
	b.WriteString(TipList(a.Tips))

	return b.String()
}

// FormatHistoryTable renders the reflection history as an Entry/Risk
// Level table in insertion order.
func FormatHistoryTable(entries []*domain.ReflectionEntry) string {
	if len(entries) == 0 {
		return Dim("No reflections yet.")
	}

	headers := []string{"#", "ENTRY", "RISK LEVEL"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", e.Seq+1)),
			StyleFg.Render(Truncate(e.Text, 60)),
			SeverityColor(e.Severity).Render(fmt.Sprintf("%d", e.RiskScore)),
		})
	}
	return RenderTable(headers, rows)
}
