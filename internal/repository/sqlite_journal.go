package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/mindguard/internal/domain"
)

// SQLiteJournalRepo implements JournalRepo over a SQLite database.
// Appends are single INSERTs, so a concurrent reader never observes a
// partially-written entry.
type SQLiteJournalRepo struct {
	db *sql.DB
}

// NewSQLiteJournalRepo creates a new SQLiteJournalRepo.
func NewSQLiteJournalRepo(db *sql.DB) *SQLiteJournalRepo {
	return &SQLiteJournalRepo{db: db}
}

func (r *SQLiteJournalRepo) Append(ctx context.Context, e *domain.ReflectionEntry) error {
	query := `INSERT INTO reflection_entries (id, text, risk_score, emotion, confidence, crisis, severity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Text,
		e.RiskScore,
		e.Emotion,
		e.Confidence,
		boolToInt(e.CrisisFlag),
		string(e.Severity),
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting reflection entry: %w", err)
	}

	seq, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading entry seq: %w", err)
	}
	// AUTOINCREMENT starts at 1; journal indices are 0-based.
	e.Seq = int(seq) - 1
	return nil
}

func (r *SQLiteJournalRepo) All(ctx context.Context) ([]*domain.ReflectionEntry, error) {
	query := `SELECT id, text, risk_score, emotion, confidence, crisis, severity, created_at
		FROM reflection_entries ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing reflection entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.ReflectionEntry
	for rows.Next() {
		var e domain.ReflectionEntry
		var crisis int
		var severity, createdAtStr string

		err := rows.Scan(&e.ID, &e.Text, &e.RiskScore, &e.Emotion, &e.Confidence, &crisis, &severity, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning reflection entry: %w", err)
		}

		e.Seq = len(entries)
		e.CrisisFlag = crisis != 0
		e.Severity = domain.Severity(severity)
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}

		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reflection entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteJournalRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reflection_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting reflection entries: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
