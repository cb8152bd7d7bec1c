package repository

import (
	"context"

	"github.com/alexanderramin/mindguard/internal/domain"
)

// JournalRepo is the session journal: an ordered, append-only log of
// analyzed reflections. There is no update or delete; the journal grows
// monotonically and is discarded when the session ends.
type JournalRepo interface {
	// Append adds an entry at the end and fills in its Seq.
	Append(ctx context.Context, e *domain.ReflectionEntry) error

	// All returns every entry in insertion order. Trend rendering and
	// report export both read through this and must observe the same order.
	All(ctx context.Context) ([]*domain.ReflectionEntry, error)

	// Count returns the number of entries appended so far.
	Count(ctx context.Context) (int, error)
}
