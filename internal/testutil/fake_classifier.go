package testutil

import (
	"context"

	"github.com/alexanderramin/mindguard/internal/domain"
)

// FakeClassifier is a scripted Classifier for tests. Each Classify call
// pops the next scripted result; when the script runs out, the last
// result repeats.
type FakeClassifier struct {
	Results [][]domain.EmotionScore
	Err     error
	Calls   []string

	next int
}

// NewFakeClassifier scripts a classifier that always returns the given
// ranked scores.
func NewFakeClassifier(scores ...domain.EmotionScore) *FakeClassifier {
	return &FakeClassifier{Results: [][]domain.EmotionScore{scores}}
}

func (f *FakeClassifier) Classify(ctx context.Context, text string) ([]domain.EmotionScore, error) {
	f.Calls = append(f.Calls, text)
	if f.Err != nil {
		return nil, f.Err
	}
	if len(f.Results) == 0 {
		return nil, nil
	}
	idx := f.next
	if idx >= len(f.Results) {
		idx = len(f.Results) - 1
	}
	f.next++
	return f.Results[idx], nil
}

func (f *FakeClassifier) Available(ctx context.Context) bool {
	return f.Err == nil
}
