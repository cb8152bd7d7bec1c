package domain

// EmotionScore is one ranked (label, score) pair from the classifier.
// Scores for a single input sum to approximately 1.0; the slice order is
// the classifier's ranking order and is authoritative for tie-breaking.
type EmotionScore struct {
	Label string
	Score float64
}

// Assessment is the outcome of scoring one reflection. Transient: computed
// per analyze action and folded into a ReflectionEntry on append.
type Assessment struct {
	Emotion    string  // primary emotion, lower-cased
	Confidence float64 // score of the primary emotion, in [0,1]
	RiskScore  int     // 0-10
	Severity   Severity
	CrisisFlag bool
}

// Analysis bundles everything the UI shows after one analyze action.
type Analysis struct {
	Entry      *ReflectionEntry
	Assessment Assessment
	Tips       []string
}
