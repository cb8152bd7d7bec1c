package risk

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/mindguard/internal/classifier"
	"github.com/alexanderramin/mindguard/internal/domain"
)

// ErrEmptyText indicates the input was empty after trimming. The scorer
// rejects it before any classifier call.
var ErrEmptyText = errors.New("reflection text is empty")

// NegativeEmotions returns the labels scored with the high-risk formula.
func NegativeEmotions() []string {
	return []string{"sadness", "fear", "anger"}
}

// Scorer maps a free-text reflection to a bounded risk assessment. It is
// deterministic given the classifier's output: the score is always
// derivable from the text via the crisis check and the two formulas.
type Scorer struct {
	classifier classifier.Classifier
	keywords   []string
	negative   map[string]struct{}
}

// NewScorer builds a Scorer around a classifier, a crisis keyword list,
// and the set of negative emotion labels. All three are fixed for the
// scorer's lifetime.
func NewScorer(clf classifier.Classifier, keywords []string, negative []string) *Scorer {
	set := make(map[string]struct{}, len(negative))
	for _, label := range negative {
		set[strings.ToLower(label)] = struct{}{}
	}
	return &Scorer{classifier: clf, keywords: keywords, negative: set}
}

// Assess runs the full scoring pipeline for one reflection: crisis check,
// classification, primary emotion selection, risk formula, severity tier.
// It has no side effects; the caller decides whether to persist.
func (s *Scorer) Assess(ctx context.Context, text string) (*domain.Assessment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	crisisFlag := ContainsCrisisKeyword(text, s.keywords)

	scores, err := s.classifier.Classify(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return nil, fmt.Errorf("%w: classifier returned no scores", classifier.ErrInvalidOutput)
	}

	primary := PrimaryEmotion(scores)
	score := ComputeScore(crisisFlag, primary.Label, primary.Score, s.negative)

	return &domain.Assessment{
		Emotion:    primary.Label,
		Confidence: primary.Score,
		RiskScore:  score,
		Severity:   domain.SeverityFor(score, crisisFlag),
		CrisisFlag: crisisFlag,
	}, nil
}

// PrimaryEmotion selects the pair with the maximum score. Ties go to the
// first occurrence in the classifier's returned order; that order, not
// the label name, is authoritative.
func PrimaryEmotion(scores []domain.EmotionScore) domain.EmotionScore {
	primary := scores[0]
	for _, s := range scores[1:] {
		if s.Score > primary.Score {
			primary = s
		}
	}
	return primary
}

// ComputeScore applies the risk formula. Crisis overrides everything at
// 10. Negative primaries score floor(confidence*10) in [0,10]; all other
// labels score floor((1-confidence)*5) in [0,5]. Clamping is explicit so
// an out-of-range confidence from the classifier cannot escape the range.
func ComputeScore(crisisFlag bool, label string, confidence float64, negative map[string]struct{}) int {
	if crisisFlag {
		return 10
	}
	if _, ok := negative[strings.ToLower(label)]; ok {
		return clamp(int(confidence*10), 0, 10)
	}
	return clamp(int((1-confidence)*5), 0, 5)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
