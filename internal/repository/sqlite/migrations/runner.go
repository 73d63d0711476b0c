// Package migrations applies ordered SQL schema files to a SQLite database.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

// Migration is one schema file, identified by its file name.
type Migration struct {
	Name string
	SQL  string
}

// Load returns the *.sql files at the root of fsys ordered by name. An empty
// file is an error so that a truncated schema is never recorded as applied.
func Load(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	slices.Sort(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return nil, fmt.Errorf("migration %s is empty", name)
		}
		migrations = append(migrations, Migration{Name: name, SQL: string(data)})
	}
	return migrations, nil
}

// Run applies the migrations in fsys that schema_migrations does not list yet
// and returns how many it applied. A migration and its schema_migrations row
// commit together: when a file fails, neither its partial schema nor a record
// of it survives, and the migrations before it stay applied.
func Run(ctx context.Context, db *sql.DB, fsys fs.FS) (int, error) {
	migrations, err := Load(fsys)
	if err != nil {
		return 0, err
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			name       TEXT PRIMARY KEY,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	applied := 0
	for _, m := range migrations {
		ok, err := apply(ctx, db, m)
		if err != nil {
			return applied, fmt.Errorf("apply migration %s: %w", m.Name, err)
		}
		if ok {
			applied++
		}
	}
	return applied, nil
}

// apply runs m unless it is already recorded. The check, the schema change
// and the record share one transaction.
func apply(ctx context.Context, db *sql.DB, m Migration) (bool, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var recorded int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM schema_migrations WHERE name = ?`, m.Name,
	).Scan(&recorded); err != nil {
		return false, fmt.Errorf("check schema_migrations: %w", err)
	}
	if recorded > 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return false, fmt.Errorf("execute sql: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (name) VALUES (?)`, m.Name); err != nil {
		return false, fmt.Errorf("record migration: %w", err)
	}
	return true, tx.Commit()
}
