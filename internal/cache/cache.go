// Package cache is a durable, content-addressed cache for normalized
// expressions. It plays the role funvibe-funxy's internal/ext.Cache plays
// for built host binaries — sha256 the input, reuse the output if the key
// is already present — made durable (sqlite instead of a directory of
// loose files, since a normalize cache is expected to hold many more, much
// smaller entries than a handful of compiled binaries) and safe under
// concurrent callers racing on the same key (singleflight instead of a
// bare os.Stat/os.WriteFile race).
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/singleflight"
	_ "modernc.org/sqlite"

	"github.com/vellum-lang/vellum/internal/ast"
	"github.com/vellum-lang/vellum/internal/wire"
)

// schemaVersion is bumped when the stored value's wire shape changes, the
// same role funxy's codegenVersion plays in its own cache key — so a stale
// database from an older build doesn't hand back entries in a shape the
// current code no longer expects.
const schemaVersion = "v1"

// Cache is a sha256(input expr) -> normalized expr store backed by sqlite.
type Cache struct {
	db    *sql.DB
	group singleflight.Group
}

// Open opens (creating if necessary) a cache database at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: opening %s: %w", path, err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS normalized (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			byte_size  INTEGER NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: creating schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key computes the cache key for e: the hex sha256 of its wire JSON
// encoding, namespaced by schemaVersion the way funxy's computeKey
// namespaces by codegenVersion.
func Key(e ast.Expr) (string, error) {
	data, err := wire.EncodeJSON(e)
	if err != nil {
		return "", fmt.Errorf("cache: encoding key input: %w", err)
	}
	h := sha256.New()
	h.Write([]byte(schemaVersion))
	h.Write([]byte{0})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Lookup returns the cached normalized form for key, if present.
func (c *Cache) Lookup(ctx context.Context, key string) (ast.Expr, bool, error) {
	var value []byte
	err := c.db.QueryRowContext(ctx, `SELECT value FROM normalized WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: lookup %s: %w", key, err)
	}
	e, err := wire.DecodeJSON(value)
	if err != nil {
		return nil, false, fmt.Errorf("cache: decoding cached value for %s: %w", key, err)
	}
	return e, true, nil
}

// Store persists the normalized form result under key, overwriting any
// prior entry (a key collision can only mean the same input normalized to
// the same output, since normalization is deterministic).
func (c *Cache) Store(ctx context.Context, key string, result ast.Expr) error {
	data, err := wire.EncodeJSON(result)
	if err != nil {
		return fmt.Errorf("cache: encoding value for %s: %w", key, err)
	}
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO normalized (key, value, byte_size) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, byte_size = excluded.byte_size
	`, key, data, len(data))
	if err != nil {
		return fmt.Errorf("cache: storing %s: %w", key, err)
	}
	return nil
}

// GetOrCompute returns the cached normalization of key if present, otherwise
// calls compute and stores its result. Concurrent calls for the same key are
// deduplicated via singleflight, so a cache stampede on an expensive
// normalization only runs compute once.
func (c *Cache) GetOrCompute(ctx context.Context, key string, compute func() (ast.Expr, error)) (ast.Expr, error) {
	if e, ok, err := c.Lookup(ctx, key); err != nil {
		return nil, err
	} else if ok {
		return e, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		if e, ok, err := c.Lookup(ctx, key); err != nil {
			return nil, err
		} else if ok {
			return e, nil
		}
		result, err := compute()
		if err != nil {
			return nil, err
		}
		if err := c.Store(ctx, key, result); err != nil {
			return nil, err
		}
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(ast.Expr), nil
}

// Stats summarizes the cache's on-disk footprint.
type Stats struct {
	Entries   int
	TotalSize int64
}

// String renders Stats with a human-readable byte size, the way funxy's own
// [ext] log lines report build artifact sizes.
func (s Stats) String() string {
	return fmt.Sprintf("%d entries, %s", s.Entries, humanize.Bytes(uint64(s.TotalSize)))
}

// Stats reports how many entries the cache holds and their total size.
func (c *Cache) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	err := c.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(SUM(byte_size), 0) FROM normalized`).Scan(&s.Entries, &s.TotalSize)
	if err != nil {
		return Stats{}, fmt.Errorf("cache: stats: %w", err)
	}
	return s, nil
}

// Clean removes every cached entry.
func (c *Cache) Clean(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM normalized`)
	if err != nil {
		return fmt.Errorf("cache: clean: %w", err)
	}
	return nil
}
