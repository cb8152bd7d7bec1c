package service

import (
	"context"

	"github.com/alexanderramin/mindguard/internal/domain"
	"github.com/alexanderramin/mindguard/internal/repository"
)

type journalService struct {
	journal repository.JournalRepo
}

// NewJournalService exposes the session journal to the UI layers.
func NewJournalService(journal repository.JournalRepo) JournalService {
	return &journalService{journal: journal}
}

func (s *journalService) All(ctx context.Context) ([]*domain.ReflectionEntry, error) {
	return s.journal.All(ctx)
}

func (s *journalService) IsEmpty(ctx context.Context) (bool, error) {
	n, err := s.journal.Count(ctx)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}
