package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Config holds SQLite connection settings.
type Config struct {
	// Path is the database file, created on first open when missing.
	Path string

	// MaxOpenConns caps the pool size. SQLite permits one writer at a time.
	MaxOpenConns int

	// ConnMaxLifetime bounds how long a pooled connection is reused.
	// Zero keeps connections open indefinitely.
	ConnMaxLifetime time.Duration

	// BusyTimeout is how long the driver retries a locked database
	// before returning SQLITE_BUSY.
	BusyTimeout time.Duration
}

// Store is a SQLite-backed store. The MVP only bootstraps the database
// file; it issues no DDL, so the file stays schema-less until domain
// features land.
type Store struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

// Open opens the database file at cfg.Path, creating it when missing,
// and verifies the connection before returning.
func Open(ctx context.Context, cfg Config, logger *zap.Logger) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", cfg.Path, cfg.BusyTimeout.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// The pool is lazy; ping forces the driver to create the file and
	// take a real connection.
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database file ready", zap.String("path", cfg.Path))

	return &Store{
		db:     db,
		path:   cfg.Path,
		logger: logger,
	}, nil
}

// Ping verifies the database connection is still usable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// DB exposes the underlying pool for future schema and query work.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close releases the connection pool.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	s.logger.Debug("database closed", zap.String("path", s.path))

	return nil
}
