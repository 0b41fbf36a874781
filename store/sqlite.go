package store

import (
	"connectfour/game"
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// SQLiteStore keeps the value table in a SQLite database, one row per state.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS qvalues (state TEXT PRIMARY KEY, value REAL)`

	_, err := s.db.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, values map[game.StateID]float64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM qvalues`); err != nil {
		return fmt.Errorf("failed to clear value table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO qvalues (state, value) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for state, value := range values {
		if _, err = stmt.ExecContext(ctx, string(state), value); err != nil {
			return fmt.Errorf("failed to insert state value: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit value table: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (map[game.StateID]float64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT state, value FROM qvalues`)
	if err != nil {
		return nil, fmt.Errorf("failed to query value table: %w", err)
	}
	defer rows.Close()

	values := make(map[game.StateID]float64)
	for rows.Next() {
		var state string
		var value float64
		if err = rows.Scan(&state, &value); err != nil {
			return nil, fmt.Errorf("failed to scan state value: %w", err)
		}
		values[game.StateID(state)] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read value table: %w", err)
	}

	if len(values) == 0 {
		return nil, ErrNotFound
	}

	return values, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
