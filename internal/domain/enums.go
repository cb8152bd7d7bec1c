package domain

// Severity is the presentation tier derived from a risk score and crisis flag.
// It drives display color and messaging only, never the numeric score.
type Severity string

const (
	SeverityStable   Severity = "stable"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
)

// SeverityFor buckets a risk score into its display tier. A raised crisis
// flag always maps to high regardless of the score.
func SeverityFor(riskScore int, crisisFlag bool) Severity {
	switch {
	case crisisFlag || riskScore >= 8:
		return SeverityHigh
	case riskScore >= 5:
		return SeverityModerate
	default:
		return SeverityStable
	}
}
