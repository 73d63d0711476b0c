// Package sqlite implements the repository interfaces on SQLite. The default
// DSN is an in-memory database, so data lives only as long as the process.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/msomdec/anime-service/internal/repository/sqlite/migrations"
)

//go:embed schema/*.sql
var schemaFiles embed.FS

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// DB wraps a SQLite connection and hands out the resource repositories.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given DSN and configures it for use.
func New(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A single connection keeps an in-memory database shared by every
	// repository and serializes writes.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies the pending files of the embedded schema.
func (d *DB) Migrate(ctx context.Context) error {
	schema, err := fs.Sub(schemaFiles, "schema")
	if err != nil {
		return fmt.Errorf("open schema: %w", err)
	}
	n, err := migrations.Run(ctx, d.SqlDB, schema)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "schema migrations applied", "count", n)
	return nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.SqlDB.Close()
}

func (d *DB) Animes() *AnimeRepository       { return NewAnimeRepository(d) }
func (d *DB) Producers() *ProducerRepository { return NewProducerRepository(d) }
func (d *DB) Users() *UserRepository         { return NewUserRepository(d) }

func nullID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
