// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Accounts
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Planet catalog (seeded once, read-only afterwards)
CREATE TABLE IF NOT EXISTS planets (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    mass TEXT NOT NULL,
    diameter TEXT NOT NULL,
    distance TEXT NOT NULL,
    temperature TEXT NOT NULL,
    moons TEXT NOT NULL,
    description TEXT
);

-- Votes. UNIQUE(voter) is the at-most-one-vote-per-voter guard: a
-- concurrent double submit loses the insert race at the constraint
-- instead of slipping past a check-then-insert.
CREATE TABLE IF NOT EXISTS votes (
    id TEXT PRIMARY KEY,
    voter TEXT NOT NULL UNIQUE REFERENCES users(username),
    planet_name TEXT NOT NULL REFERENCES planets(name),
    comment TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_votes_planet_name ON votes(planet_name);
`
