package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"
)

// Open opens (creating if necessary) the store file next to the binary.
// The connection pool is capped at one: SQLite has a single writer, and the
// service shares one logical connection across all request handlers.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	dsn := "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

func ReadyCheck(sqlDB *sql.DB) func(context.Context) error {
	return func(ctx context.Context) error {
		if sqlDB == nil {
			return errors.New("db not configured")
		}
		return sqlDB.PingContext(ctx)
	}
}
