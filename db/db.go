// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database and verifies the connection.
// databaseType is "postgres" or "sqlite".
func Open(databaseType, url string) (*sql.DB, error) {
	driver, err := driverName(databaseType)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == "sqlite" {
		// The modernc driver opens one database per connection for
		// plain :memory: URLs; a single connection also avoids
		// SQLITE_BUSY under concurrent writes.
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

func driverName(databaseType string) (string, error) {
	switch databaseType {
	case "postgres":
		return "postgres", nil
	case "sqlite", "":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database type %q", databaseType)
	}
}

// IsUniqueViolation reports whether err is a unique-constraint failure.
// Both supported engines are checked by message, the same way the insert
// paths distinguish conflicts from other failures.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
