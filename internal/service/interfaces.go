package service

import (
	"context"

	"github.com/alexanderramin/mindguard/internal/domain"
)

// AnalysisService runs the full analyze flow for one reflection: crisis
// check, classification, risk scoring, advice lookup, journal append.
type AnalysisService interface {
	// Analyze scores the text and appends a journal entry on success.
	// Validation failures and classifier errors leave the journal
	// untouched.
	Analyze(ctx context.Context, text string) (*domain.Analysis, error)
}

// JournalService exposes read access to the session journal.
type JournalService interface {
	All(ctx context.Context) ([]*domain.ReflectionEntry, error)
	IsEmpty(ctx context.Context) (bool, error)
}

// ReportService materializes the trend chart and the exportable report
// from the current journal.
type ReportService interface {
	// TrendPNG renders the risk trend chart from the full journal.
	TrendPNG(ctx context.Context) ([]byte, error)

	// ExportPDF writes the report document to path. It fails without
	// leaving a partial file if the journal is empty or the chart
	// cannot be rendered.
	ExportPDF(ctx context.Context, path string) error
}
