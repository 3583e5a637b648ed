package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	m "ifbound.dev/pkg/ifbound/internal/model"
)

// RecordStore keeps the boundary records of every scanned file in one place
// so tools can query them without reading companion files.
type RecordStore interface {
	// Save replaces the records stored for result.Source.
	Save(ctx context.Context, result m.TranslationUnitResult) error

	// Load returns the records stored for source in insertion order.
	Load(ctx context.Context, source m.Path) ([]m.BoundaryRecord, error)

	// Sources lists every source with stored records.
	Sources(ctx context.Context) ([]m.Path, error)

	Close() error
}

// SQLiteRecordStore implements RecordStore using SQLite.
type SQLiteRecordStore struct {
	db *sql.DB
}

// NewSQLiteRecordStore opens (or creates) the index at path.
// Use ":memory:" for an in-memory database.
func NewSQLiteRecordStore(ctx context.Context, path string) (*SQLiteRecordStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// a single connection keeps ":memory:" databases alive across calls
	db.SetMaxOpenConns(1)

	if err := createRecordSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteRecordStore{db: db}, nil
}

func createRecordSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS boundaries (
			source     TEXT    NOT NULL,
			seq        INTEGER NOT NULL,
			companion  TEXT    NOT NULL,
			file       TEXT    NOT NULL,
			start_line INTEGER NOT NULL,
			end_line   INTEGER NOT NULL,
			PRIMARY KEY (source, seq)
		)
	`)

	return err
}

// Save implements RecordStore.
func (s *SQLiteRecordStore) Save(ctx context.Context, result m.TranslationUnitResult) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM boundaries WHERE source = ?", string(result.Source)); err != nil {
		return fmt.Errorf("deleting records: %w", err)
	}

	companion := string(result.Companion())

	for i, r := range result.Records {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO boundaries (source, seq, companion, file, start_line, end_line)
			VALUES (?, ?, ?, ?, ?, ?)
		`, string(result.Source), i, companion, r.FilePath, r.StartLine, r.EndLine)
		if err != nil {
			return fmt.Errorf("inserting record: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// Load implements RecordStore.
func (s *SQLiteRecordStore) Load(ctx context.Context, source m.Path) ([]m.BoundaryRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT file, start_line, end_line FROM boundaries WHERE source = ? ORDER BY seq", string(source))
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []m.BoundaryRecord

	for rows.Next() {
		var r m.BoundaryRecord
		if err := rows.Scan(&r.FilePath, &r.StartLine, &r.EndLine); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}

		records = append(records, r)
	}

	return records, rows.Err()
}

// Sources implements RecordStore.
func (s *SQLiteRecordStore) Sources(ctx context.Context) ([]m.Path, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT source FROM boundaries ORDER BY source")
	if err != nil {
		return nil, fmt.Errorf("querying sources: %w", err)
	}
	defer rows.Close()

	var sources []m.Path

	for rows.Next() {
		var src string
		if err := rows.Scan(&src); err != nil {
			return nil, fmt.Errorf("scanning source: %w", err)
		}

		sources = append(sources, m.Path(src))
	}

	return sources, rows.Err()
}

// Close releases the database.
func (s *SQLiteRecordStore) Close() error {
	return s.db.Close()
}
