package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/eslsoft/lingua/internal/infrastructure/config"
	entdb "github.com/eslsoft/lingua/internal/infrastructure/database/ent"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/upsert --target ./ent ./entschema

// NewEntClient opens the configured database and wraps it in an ent client.
// The returned closer releases the underlying connection pool.
func NewEntClient(cfg *config.Config) (*entdb.Client, func(), error) {
	driver, err := cfg.DatabaseDriver()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database driver: %w", err)
	}

	dsn, err := cfg.DatabaseURL()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database dsn: %w", err)
	}

	switch driver {
	case "postgres":
		return newPostgresEntClient(cfg, dsn)
	case "sqlite3":
		return newSQLiteEntClient(cfg, dsn)
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func newPostgresEntClient(cfg *config.Config, dsn string) (*entdb.Client, func(), error) {
	rawDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres db: %w", err)
	}

	if err := pingDB(rawDB); err != nil {
		rawDB.Close()
		return nil, nil, err
	}

	return wrapClient(cfg, dialect.Postgres, rawDB), func() { rawDB.Close() }, nil
}

func newSQLiteEntClient(cfg *config.Config, dsn string) (*entdb.Client, func(), error) {
	rawDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// sqlite handles one writer at a time; a larger pool just trades errors
	// for lock contention.
	rawDB.SetMaxOpenConns(1)
	rawDB.SetMaxIdleConns(1)

	if err := pingDB(rawDB); err != nil {
		rawDB.Close()
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rawDB.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		rawDB.Close()
		return nil, nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
	}

	return wrapClient(cfg, dialect.SQLite, rawDB), func() { rawDB.Close() }, nil
}

func pingDB(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}
	return nil
}

func wrapClient(cfg *config.Config, dialectName string, db *sql.DB) *entdb.Client {
	client := entdb.NewClient(entdb.Driver(entsql.OpenDB(dialectName, db)))
	if cfg.Database.LogSQL {
		client = client.Debug()
	}
	return client
}
