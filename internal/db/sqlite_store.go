// Package db persists rubric evaluations in SQLite.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/edugradeai/edugrade/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS evaluations (
	id                     TEXT PRIMARY KEY,
	app_name               TEXT NOT NULL,
	audience               TEXT,
	summary                TEXT,
	pedagogical_design     INTEGER NOT NULL,
	ui_ux                  INTEGER NOT NULL,
	engagement             INTEGER NOT NULL,
	technical_performance  INTEGER NOT NULL,
	learning_effectiveness INTEGER NOT NULL,
	quality_score          REAL NOT NULL,
	created_at             TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_evaluations_app_name ON evaluations(app_name);
`

// Store wraps a SQLite handle for evaluation records.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return NewStore(sqlDB)
}

// NewStore applies the runtime pragmas and schema to an existing handle.
func NewStore(sqlDB *sql.DB) (*Store, error) {
	if sqlDB == nil {
		return nil, errors.New("nil db")
	}
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := sqlDB.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: sqlDB}, nil
}

// Close releases the underlying handle.
func (s *Store) Close() error { return s.db.Close() }

// InsertEvaluation writes one record inside a transaction, so a failure
// never leaves a partial row committed.
func (s *Store) InsertEvaluation(ctx context.Context, e *models.Evaluation) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO evaluations (
			id, app_name, audience, summary,
			pedagogical_design, ui_ux, engagement, technical_performance, learning_effectiveness,
			quality_score, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.AppName, toNullString(e.Audience), toNullString(e.Summary),
		e.PedagogicalDesign, e.UIUX, e.Engagement, e.TechnicalPerformance, e.LearningEffectiveness,
		e.QualityScore, e.CreatedAt,
	)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert evaluation: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit evaluation: %w", err)
	}
	return nil
}

// GetEvaluation returns the record, or nil when it does not exist.
func (s *Store) GetEvaluation(ctx context.Context, id string) (*models.Evaluation, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	e, err := scanEvaluation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

// ListEvaluations returns all records, highest quality score first.
func (s *Store) ListEvaluations(ctx context.Context) ([]*models.Evaluation, error) {
	return s.queryEvaluations(ctx, selectColumns+` ORDER BY quality_score DESC, created_at DESC`)
}

// RecentEvaluations returns the latest records by creation time.
func (s *Store) RecentEvaluations(ctx context.Context, limit int) ([]*models.Evaluation, error) {
	return s.queryEvaluations(ctx, selectColumns+` ORDER BY created_at DESC LIMIT ?`, limit)
}

const selectColumns = `
	SELECT id, app_name, audience, summary,
	       pedagogical_design, ui_ux, engagement, technical_performance, learning_effectiveness,
	       quality_score, created_at
	FROM evaluations`

func (s *Store) queryEvaluations(ctx context.Context, query string, args ...any) ([]*models.Evaluation, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}
	defer rows.Close()
	var out []*models.Evaluation
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvaluation(r rowScanner) (*models.Evaluation, error) {
	var e models.Evaluation
	var audience, summary sql.NullString
	err := r.Scan(
		&e.ID, &e.AppName, &audience, &summary,
		&e.PedagogicalDesign, &e.UIUX, &e.Engagement, &e.TechnicalPerformance, &e.LearningEffectiveness,
		&e.QualityScore, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Audience = audience.String
	e.Summary = summary.String
	return &e, nil
}

func toNullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
