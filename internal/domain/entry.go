package domain

import "time"

// ReflectionEntry is one analyzed journal entry. Entries are immutable
// after creation and owned by the session journal; they are never edited
// or individually deleted.
type ReflectionEntry struct {
	ID         string
	Seq        int // 0-based insertion index within the session
	Text       string
	RiskScore  int
	Emotion    string
	Confidence float64
	CrisisFlag bool
	Severity   Severity
	CreatedAt  time.Time
}
