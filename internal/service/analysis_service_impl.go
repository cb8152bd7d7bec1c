package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/mindguard/internal/domain"
	"github.com/alexanderramin/mindguard/internal/repository"
	"github.com/alexanderramin/mindguard/internal/risk"
)

type analysisService struct {
	scorer  *risk.Scorer
	advice  risk.AdviceTable
	journal repository.JournalRepo
}

// NewAnalysisService wires the risk scorer, advice table, and journal
// into the analyze flow.
func NewAnalysisService(scorer *risk.Scorer, advice risk.AdviceTable, journal repository.JournalRepo) AnalysisService {
	return &analysisService{scorer: scorer, advice: advice, journal: journal}
}

func (s *analysisService) Analyze(ctx context.Context, text string) (*domain.Analysis, error) {
	assessment, err := s.scorer.Assess(ctx, text)
	if err != nil {
		return nil, err
	}

	entry := &domain.ReflectionEntry{
		ID:         uuid.New().String(),
		Text:       strings.TrimSpace(text),
		RiskScore:  assessment.RiskScore,
		Emotion:    assessment.Emotion,
		Confidence: assessment.Confidence,
		CrisisFlag: assessment.CrisisFlag,
		Severity:   assessment.Severity,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.journal.Append(ctx, entry); err != nil {
		return nil, err
	}

	return &domain.Analysis{
		Entry:      entry,
		Assessment: *assessment,
		Tips:       s.advice.TipsFor(assessment.Emotion),
	}, nil
}
