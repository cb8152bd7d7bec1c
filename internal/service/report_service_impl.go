package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/mindguard/internal/report"
	"github.com/alexanderramin/mindguard/internal/repository"
)

type reportService struct {
	journal repository.JournalRepo
}

// NewReportService wires the journal into the trend and export renderers.
func NewReportService(journal repository.JournalRepo) ReportService {
	return &reportService{journal: journal}
}

func (s *reportService) TrendPNG(ctx context.Context) ([]byte, error) {
	entries, err := s.journal.All(ctx)
	if err != nil {
		return nil, err
	}
	return report.RenderTrendPNG(entries)
}

func (s *reportService) ExportPDF(ctx context.Context, path string) error {
	entries, err := s.journal.All(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return report.ErrEmptyJournal
	}

	trendPNG, err := report.RenderTrendPNG(entries)
	if err != nil {
		return err
	}

	// Write through a temp file in the target directory so a failed
	// export never leaves a truncated report at the final path.
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".mindguard-export-*")
	if err != nil {
		return fmt.Errorf("creating export temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := report.WritePDF(tmp, entries, trendPNG); err != nil {
		tmp.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing export temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("moving report into place: %w", err)
	}
	return nil
}
