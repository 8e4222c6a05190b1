// Package store persists explored positions and their parent/child
// edges in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lgbarn/movegen-go/internal/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS positions (
	id  INTEGER PRIMARY KEY AUTOINCREMENT,
	fen TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS edges (
	parent_id INTEGER NOT NULL,
	child_id  INTEGER NOT NULL,
	FOREIGN KEY(parent_id) REFERENCES positions(id),
	FOREIGN KEY(child_id)  REFERENCES positions(id),
	PRIMARY KEY(parent_id, child_id)
);
CREATE INDEX IF NOT EXISTS idx_edges_parent ON edges(parent_id);
`

// Store is a SQLite-backed position store. Positions are keyed by
// their FEN encoding, so re-inserting a known position yields its
// existing row.
type Store struct {
	db       *sql.DB
	path     string
	maxBytes int64
}

// Child is the result of inserting one child position.
type Child struct {
	ID      int64
	Created bool // false if the position was already present
}

// Open opens (or creates) the database at path and prepares the
// schema. maxBytes caps the database size for SizeExceeded; 0 means
// unlimited.
func Open(path string, maxBytes int64) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &errors.StoreError{Err: err, Op: "open", Path: path}
	}

	// WAL keeps writers from blocking the readers the explorer uses
	// between batches.
	pragmas := `
		PRAGMA journal_mode=WAL;
		PRAGMA synchronous=NORMAL;
		PRAGMA temp_store=MEMORY;
	`
	if _, err := db.Exec(pragmas); err != nil {
		db.Close()
		return nil, &errors.StoreError{Err: err, Op: "set pragmas", Path: path}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &errors.StoreError{Err: err, Op: "create schema", Path: path}
	}

	return &Store{db: db, path: path, maxBytes: maxBytes}, nil
}

// InsertRoot inserts the starting position and returns its ID.
func (s *Store) InsertRoot(ctx context.Context, fen string) (int64, error) {
	id, _, err := s.insertPosition(ctx, s.db, fen)
	if err != nil {
		return 0, &errors.StoreError{Err: err, Op: "insert root", Path: s.path}
	}
	return id, nil
}

// InsertChildren inserts the successor positions of parentID in one
// transaction, recording a parent/child edge for each. Positions seen
// before are not duplicated; their Child entry reports Created=false.
func (s *Store) InsertChildren(ctx context.Context, parentID int64, fens []string) ([]Child, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &errors.StoreError{Err: err, Op: "begin batch", Path: s.path}
	}
	defer tx.Rollback() // Ignored once the transaction is committed

	children := make([]Child, 0, len(fens))
	for _, fen := range fens {
		id, created, err := s.insertPosition(ctx, tx, fen)
		if err != nil {
			return nil, &errors.StoreError{Err: err, Op: "insert position", Path: s.path}
		}

		_, err = tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO edges (parent_id, child_id) VALUES (?, ?)`,
			parentID, id)
		if err != nil {
			return nil, &errors.StoreError{Err: err, Op: "insert edge", Path: s.path}
		}

		children = append(children, Child{ID: id, Created: created})
	}

	if err := tx.Commit(); err != nil {
		return nil, &errors.StoreError{Err: err, Op: "commit batch", Path: s.path}
	}
	return children, nil
}

// querier covers both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// insertPosition inserts a position if it is new and returns its ID
// either way.
func (s *Store) insertPosition(ctx context.Context, q querier, fen string) (int64, bool, error) {
	res, err := q.ExecContext(ctx,
		`INSERT OR IGNORE INTO positions (fen) VALUES (?)`, fen)
	if err != nil {
		return 0, false, err
	}

	if n, err := res.RowsAffected(); err == nil && n > 0 {
		id, err := res.LastInsertId()
		if err != nil {
			return 0, false, err
		}
		return id, true, nil
	}

	var id int64
	err = q.QueryRowContext(ctx,
		`SELECT id FROM positions WHERE fen = ?`, fen).Scan(&id)
	if err != nil {
		return 0, false, err
	}
	return id, false, nil
}

// Position returns the FEN stored under id.
func (s *Store) Position(ctx context.Context, id int64) (string, error) {
	var fen string
	err := s.db.QueryRowContext(ctx,
		`SELECT fen FROM positions WHERE id = ?`, id).Scan(&fen)
	if err != nil {
		return "", &errors.StoreError{Err: err, Op: "select position", Path: s.path}
	}
	return fen, nil
}

// Children returns the IDs of the positions reachable from parentID.
func (s *Store) Children(ctx context.Context, parentID int64) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT child_id FROM edges WHERE parent_id = ? ORDER BY child_id`, parentID)
	if err != nil {
		return nil, &errors.StoreError{Err: err, Op: "select children", Path: s.path}
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, &errors.StoreError{Err: err, Op: "scan child", Path: s.path}
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, &errors.StoreError{Err: err, Op: "iterate children", Path: s.path}
	}
	return ids, nil
}

// Count returns the number of stored positions.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM positions`).Scan(&n)
	if err != nil {
		return 0, &errors.StoreError{Err: err, Op: "count positions", Path: s.path}
	}
	return n, nil
}

// SizeExceeded reports whether the database has grown past 90% of the
// configured size limit. The margin leaves room for the batch in
// flight when the check fires.
func (s *Store) SizeExceeded(ctx context.Context) (bool, error) {
	if s.maxBytes <= 0 {
		return false, nil
	}

	var size int64
	err := s.db.QueryRowContext(ctx,
		`SELECT page_count * page_size FROM pragma_page_count, pragma_page_size`).Scan(&size)
	if err != nil {
		return false, &errors.StoreError{Err: err, Op: "check size", Path: s.path}
	}

	margin := int64(float64(s.maxBytes) * 0.9)
	return size >= margin, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return &errors.StoreError{Err: err, Op: "close", Path: s.path}
	}
	return nil
}

// String describes the store for logs.
func (s *Store) String() string {
	return fmt.Sprintf("sqlite store at %s", s.path)
}
