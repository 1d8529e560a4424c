// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/winexplorer/backend/internal/domain/item"
)

const schema = `
CREATE TABLE IF NOT EXISTS items (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    type TEXT NOT NULL CHECK (type IN ('file', 'folder')),
    parent_id TEXT,
    size INTEGER,
    modified TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_parent ON items(parent_id);
`

// SQLiteStore keeps catalog records in a SQLite database file.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbPath, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dbPath, err)
	}

	return &SQLiteStore{db: db, path: dbPath}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load returns every record in the items table.
func (s *SQLiteStore) Load(ctx context.Context) ([]item.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, type, parent_id, size, modified FROM items ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	defer rows.Close()

	var items []item.Item
	for rows.Next() {
		var (
			it       item.Item
			kind     string
			parentID sql.NullString
			size     sql.NullInt64
			modified string
		)
		if err := rows.Scan(&it.ID, &it.Name, &kind, &parentID, &size, &modified); err != nil {
			return nil, fmt.Errorf("%s: %w", s.path, err)
		}
		it.Kind = item.Kind(kind)
		if parentID.Valid {
			it.ParentID = &parentID.String
		}
		if size.Valid {
			it.Size = &size.Int64
		}
		it.Modified, err = time.Parse(time.RFC3339Nano, modified)
		if err != nil {
			return nil, fmt.Errorf("%s: item %q has bad modified time: %w", s.path, it.ID, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return items, nil
}

// Save replaces the contents of the items table with items.
func (s *SQLiteStore) Save(ctx context.Context, items []item.Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM items"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO items (id, name, type, parent_id, size, modified) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, it := range items {
		var (
			parentID sql.NullString
			size     sql.NullInt64
		)
		if it.ParentID != nil {
			parentID = sql.NullString{String: *it.ParentID, Valid: true}
		}
		if it.Size != nil {
			size = sql.NullInt64{Int64: *it.Size, Valid: true}
		}
		_, err := stmt.ExecContext(ctx,
			it.ID, it.Name, string(it.Kind), parentID, size,
			it.Modified.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("insert %q: %w", it.ID, err)
		}
	}

	return tx.Commit()
}
