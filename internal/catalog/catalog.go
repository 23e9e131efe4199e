// Package catalog keeps a SQLite registry of indexed documents. The
// pipeline consults it to skip documents whose stored content has not
// changed since the last run, and the status endpoint reports its counts.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Record is one indexed document's bookkeeping entry.
type Record struct {
	Key          string
	Size         int64
	LastModified time.Time
	ChunkCount   int
	IndexedAt    time.Time
}

// Catalog tracks which documents have been indexed and at what version.
type Catalog struct {
	db *sql.DB
}

// Open opens or creates the catalog database at dbPath and initializes the
// schema. Parent directories are created if they do not exist.
func Open(dbPath string) (*Catalog, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create catalog directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize catalog schema: %w", err)
	}
	return &Catalog{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS indexed_documents (
		key TEXT PRIMARY KEY,
		size INTEGER NOT NULL,
		last_modified TIMESTAMP NOT NULL,
		chunk_count INTEGER NOT NULL,
		indexed_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_indexed_documents_indexed_at ON indexed_documents(indexed_at);
	`
	_, err := db.Exec(schema)
	return err
}

// Get returns the record for key, or nil when the document was never
// indexed.
func (c *Catalog) Get(ctx context.Context, key string) (*Record, error) {
	var r Record
	err := c.db.QueryRowContext(ctx,
		`SELECT key, size, last_modified, chunk_count, indexed_at
		 FROM indexed_documents WHERE key = ?`, key,
	).Scan(&r.Key, &r.Size, &r.LastModified, &r.ChunkCount, &r.IndexedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get catalog record %q: %w", key, err)
	}
	return &r, nil
}

// Put inserts or replaces the record for a freshly indexed document.
func (c *Catalog) Put(ctx context.Context, r Record) error {
	if r.IndexedAt.IsZero() {
		r.IndexedAt = time.Now()
	}
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO indexed_documents (key, size, last_modified, chunk_count, indexed_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
			size = excluded.size,
			last_modified = excluded.last_modified,
			chunk_count = excluded.chunk_count,
			indexed_at = excluded.indexed_at`,
		r.Key, r.Size, r.LastModified, r.ChunkCount, r.IndexedAt,
	)
	if err != nil {
		return fmt.Errorf("put catalog record %q: %w", r.Key, err)
	}
	return nil
}

// Delete removes the record for key. Deleting a missing key is not an
// error.
func (c *Catalog) Delete(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM indexed_documents WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete catalog record %q: %w", key, err)
	}
	return nil
}

// UpToDate reports whether the stored record for key matches the given
// size and modification time, meaning reindexing can be skipped.
func (c *Catalog) UpToDate(ctx context.Context, key string, size int64, lastModified time.Time) (bool, error) {
	r, err := c.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if r == nil {
		return false, nil
	}
	return r.Size == size && r.LastModified.Equal(lastModified), nil
}

// Stats summarizes the catalog for the status endpoint.
type Stats struct {
	Documents   int64
	TotalChunks int64
	LastIndexed time.Time
}

// Stats returns document and chunk counts plus the most recent index time.
func (c *Catalog) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	var last sql.NullTime
	err := c.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(chunk_count), 0), MAX(indexed_at) FROM indexed_documents`,
	).Scan(&s.Documents, &s.TotalChunks, &last)
	if err != nil {
		return Stats{}, fmt.Errorf("catalog stats: %w", err)
	}
	if last.Valid {
		s.LastIndexed = last.Time
	}
	return s, nil
}

// Close closes the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}
