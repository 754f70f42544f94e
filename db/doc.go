// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types are "postgres" (github.com/lib/pq) and "sqlite"
(modernc.org/sqlite). The test suite runs on in-memory SQLite; production
deployments use PostgreSQL.

# Schema

CreateSchema creates the users, planets, and votes tables. It is
idempotent (IF NOT EXISTS) and safe to run on every startup.

The votes table carries UNIQUE(voter); the one-vote-per-user rule is
enforced by the database, not by application-level checks. Conflicting
inserts are detected with IsUniqueViolation, which understands both
engines' error messages.
*/
package db
