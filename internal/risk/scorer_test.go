package risk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/mindguard/internal/classifier"
	"github.com/alexanderramin/mindguard/internal/domain"
	"github.com/alexanderramin/mindguard/internal/testutil"
)

func negativeSet() map[string]struct{} {
	return map[string]struct{}{"sadness": {}, "fear": {}, "anger": {}}
}

func newTestScorer(clf classifier.Classifier) *Scorer {
	return NewScorer(clf, DefaultCrisisKeywords(), NegativeEmotions())
}

func TestComputeScore_CrisisOverridesEverything(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		confidence float64
	}{
		{"high-confidence joy", "joy", 0.99},
		{"low-confidence sadness", "sadness", 0.01},
		{"unknown label", "ennui", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ComputeScore(true, tt.label, tt.confidence, negativeSet())
			assert.Equal(t, 10, score)
		})
	}
}

func TestComputeScore_NegativeEmotionFormula(t *testing.T) {
	tests := []struct {
		label      string
		confidence float64
		want       int
	}{
		{"sadness", 0.82, 8},
		{"fear", 0.5, 5},
		{"anger", 0.09, 0},
		{"sadness", 1.0, 10},
		{"sadness", 0.0, 0},
	}
	for _, tt := range tests {
		score := ComputeScore(false, tt.label, tt.confidence, negativeSet())
		assert.Equal(t, tt.want, score, "label=%s conf=%v", tt.label, tt.confidence)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 10)
	}
}

func TestComputeScore_PositiveEmotionFormula(t *testing.T) {
	tests := []struct {
		label      string
		confidence float64
		want       int
	}{
		{"joy", 0.9, 0},
		{"neutral", 0.5, 2},
		{"surprise", 0.0, 5},
		{"joy", 1.0, 0},
		{"unlisted", 0.2, 4},
	}
	for _, tt := range tests {
		score := ComputeScore(false, tt.label, tt.confidence, negativeSet())
		assert.Equal(t, tt.want, score, "label=%s conf=%v", tt.label, tt.confidence)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 5)
	}
}

func TestComputeScore_ClampsOutOfRangeConfidence(t *testing.T) {
	// A broken classifier may report confidence outside [0,1]; the
	// score must still land in range.
	assert.Equal(t, 10, ComputeScore(false, "sadness", 1.4, negativeSet()))
	assert.Equal(t, 0, ComputeScore(false, "sadness", -0.3, negativeSet()))
	assert.Equal(t, 5, ComputeScore(false, "joy", -0.7, negativeSet()))
	assert.Equal(t, 0, ComputeScore(false, "joy", 1.8, negativeSet()))
}

func TestPrimaryEmotion_FirstMaxWinsTies(t *testing.T) {
	scores := []domain.EmotionScore{
		{Label: "fear", Score: 0.4},
		{Label: "sadness", Score: 0.4},
		{Label: "joy", Score: 0.2},
	}
	primary := PrimaryEmotion(scores)
	assert.Equal(t, "fear", primary.Label, "classifier order breaks ties, not label name")
}

func TestAssess_CrisisKeyword(t *testing.T) {
	// "hopeless" is a crisis keyword: risk 10 regardless of the
	// classifier's opinion.
	clf := testutil.NewFakeClassifier(
		domain.EmotionScore{Label: "joy", Score: 0.95},
		domain.EmotionScore{Label: "sadness", Score: 0.05},
	)
	scorer := newTestScorer(clf)

	a, err := scorer.Assess(context.Background(), "I feel hopeless about everything")
	require.NoError(t, err)

	assert.True(t, a.CrisisFlag)
	assert.Equal(t, 10, a.RiskScore)
	assert.Equal(t, domain.SeverityHigh, a.Severity)
	assert.Equal(t, "joy", a.Emotion)
}

func TestAssess_SadnessHighConfidence(t *testing.T) {
	clf := testutil.NewFakeClassifier(
		domain.EmotionScore{Label: "sadness", Score: 0.82},
		domain.EmotionScore{Label: "fear", Score: 0.1},
		domain.EmotionScore{Label: "joy", Score: 0.08},
	)
	scorer := newTestScorer(clf)

	a, err := scorer.Assess(context.Background(), "everything went wrong today")
	require.NoError(t, err)

	assert.False(t, a.CrisisFlag)
	assert.Equal(t, "sadness", a.Emotion)
	assert.InDelta(t, 0.82, a.Confidence, 1e-9)
	assert.Equal(t, 8, a.RiskScore)
	assert.Equal(t, domain.SeverityHigh, a.Severity)
}

func TestAssess_JoyIsStable(t *testing.T) {
	clf := testutil.NewFakeClassifier(
		domain.EmotionScore{Label: "joy", Score: 0.9},
		domain.EmotionScore{Label: "neutral", Score: 0.1},
	)
	scorer := newTestScorer(clf)

	a, err := scorer.Assess(context.Background(), "today was a really good day")
	require.NoError(t, err)

	assert.Equal(t, "joy", a.Emotion)
	assert.Equal(t, 0, a.RiskScore)
	assert.Equal(t, domain.SeverityStable, a.Severity)
}

func TestAssess_EmptyTextRejectedBeforeClassifier(t *testing.T) {
	clf := testutil.NewFakeClassifier(domain.EmotionScore{Label: "joy", Score: 1})
	scorer := newTestScorer(clf)

	for _, input := range []string{"", "   ", "\n\t "} {
		_, err := scorer.Assess(context.Background(), input)
		assert.ErrorIs(t, err, ErrEmptyText)
	}
	assert.Empty(t, clf.Calls, "classifier must not be called for empty input")
}

func TestAssess_ClassifierErrorSurfaces(t *testing.T) {
	clf := &testutil.FakeClassifier{Err: classifier.ErrUnavailable}
	scorer := newTestScorer(clf)

	_, err := scorer.Assess(context.Background(), "some text")
	assert.ErrorIs(t, err, classifier.ErrUnavailable)
}

func TestAssess_EmptyScoreListIsInvalidOutput(t *testing.T) {
	clf := &testutil.FakeClassifier{}
	scorer := newTestScorer(clf)

	_, err := scorer.Assess(context.Background(), "some text")
	assert.ErrorIs(t, err, classifier.ErrInvalidOutput)
}

func TestSeverityFor_Tiers(t *testing.T) {
	tests := []struct {
		score  int
		crisis bool
		want   domain.Severity
	}{
		{10, true, domain.SeverityHigh},
		{0, true, domain.SeverityHigh},
		{8, false, domain.SeverityHigh},
		{7, false, domain.SeverityModerate},
		{5, false, domain.SeverityModerate},
		{4, false, domain.SeverityStable},
		{0, false, domain.SeverityStable},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.SeverityFor(tt.score, tt.crisis), "score=%d crisis=%v", tt.score, tt.crisis)
	}
}
