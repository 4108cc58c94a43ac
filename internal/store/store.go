// Package store persists tutor preferences and LLM request events in a
// single SQLite file.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"

	_ "modernc.org/sqlite"
)

// AppName names the data directory and default database file.
const AppName = "hemepath"

// pragmas are applied to every pooled connection through the DSN.
var pragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"foreign_keys(1)",
	"synchronous(NORMAL)",
}

type Store struct {
	db  *sql.DB
	drv *entsql.Driver
}

// Open connects to the database at path and brings its tables up to date.
// path may be a plain file path or a "file:" URI; the parent directory of a
// plain path is created.
func Open(ctx context.Context, path string) (*Store, error) {
	if !strings.HasPrefix(path, "file:") {
		if err := EnsureDir(path); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	m, err := schema.NewMigrate(drv, schema.WithForeignKeys(false))
	if err == nil {
		err = m.Create(ctx, Tables...)
	}
	if err != nil {
		_ = drv.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return &Store{db: db, drv: drv}, nil
}

// dsn appends the connection pragmas to path's query string.
func dsn(path string) string {
	q := url.Values{"_pragma": pragmas}.Encode()
	if strings.Contains(path, "?") {
		return path + "&" + q
	}
	return path + "?" + q
}

// DB exposes the connection pool for ad hoc queries.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.drv.Close() }

func (s *Store) PreferenceRepo() PreferenceRepo { return &preferenceRepo{drv: s.drv} }

func (s *Store) EventRepo() EventRepo { return &eventRepo{drv: s.drv} }

// DefaultDBPath is $HEMEPATH_DB, else hemepath.db under the XDG data home.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("HEMEPATH_DB"); p != "" {
		return p, nil
	}
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, AppName, AppName+".db"), nil
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
