package history

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded calculation
type Entry struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Unit       string    `json:"unit"`
	Precision  int       `json:"precision"`
	Result     float64   `json:"result"`
	CreatedAt  time.Time `json:"created_at"`
}

// String renders the entry the way the history panel shows it
func (e Entry) String() string {
	return e.Expression + " = " + strconv.FormatFloat(e.Result, 'f', -1, 64)
}

// Store is an append-only calculation log in SQLite
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database that already carries the history table
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Append records a calculation, assigning its ID and timestamp
func (s *Store) Append(ctx context.Context, entry Entry) (Entry, error) {
	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history (id, expression, unit, precision, result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Expression, entry.Unit, entry.Precision, entry.Result,
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert history: %w", err)
	}
	return entry, nil
}

// List returns the most recent limit entries, oldest first. A limit of
// zero or less returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT id, expression, unit, precision, result, created_at FROM (
		SELECT rowid AS seq, * FROM history ORDER BY seq DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	query += `) ORDER BY seq ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e       Entry
			created string
		)
		if err := rows.Scan(&e.ID, &e.Expression, &e.Unit, &e.Precision, &e.Result, &created); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of recorded entries
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}
	return n, nil
}

// Clear removes every entry and returns how many were deleted
func (s *Store) Clear(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM history`)
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	return int(n), nil
}
