package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jengzang/handover-backend-go/internal/logging"
	_ "modernc.org/sqlite"
)

// MemoryPath keeps the database in process memory only
const MemoryPath = ":memory:"

// Config holds database configuration
type Config struct {
	Path string
}

// DB wraps the sql handle shared by the repositories
type DB struct {
	*sql.DB
	path string
}

// Open opens the database, applies pragmas and runs the embedded migrations
func Open(ctx context.Context, cfg Config, log logging.Logger) (*DB, error) {
	if log == nil {
		log = logging.Noop()
	}
	path := cfg.Path
	if path == "" {
		path = MemoryPath
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if isMemory(path) {
		// Every connection to :memory: is a separate database
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		if _, err := sqlDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("failed to enable WAL: %w", err)
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := NewMigrationManager(sqlDB, log).RunMigrations(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}

	log.Info(ctx, "database initialized", logging.String("path", path))
	return &DB{DB: sqlDB, path: path}, nil
}

// Path returns the configured database location
func (db *DB) Path() string {
	return db.path
}

// Transaction executes fn within a database transaction
func (db *DB) Transaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return transaction(ctx, db.DB, fn)
}

func transaction(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func isMemory(path string) bool {
	return path == MemoryPath || strings.Contains(path, "mode=memory")
}
