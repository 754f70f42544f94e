// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestOpen_UnsupportedType(t *testing.T) {
	if _, err := Open("oracle", "whatever"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestCreateSchemaIdempotent(t *testing.T) {
	conn := openTestDB(t)

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("First CreateSchema failed: %v", err)
	}
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}

	for _, table := range []string{"users", "planets", "votes"} {
		var count int
		if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count); err != nil {
			t.Errorf("Table %s missing: %v", table, err)
		}
	}
}

func TestVoterUniqueConstraint(t *testing.T) {
	conn := openTestDB(t)
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	insert := func(voter string) error {
		_, err := conn.Exec(`
			INSERT INTO votes (id, voter, planet_name, comment, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, uuid.NewString(), voter, "Earth", "", time.Now().UTC())
		return err
	}

	if err := insert("alice"); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	err := insert("alice")
	if err == nil {
		t.Fatal("Expected second insert for the same voter to fail")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("Expected a unique violation, got: %v", err)
	}

	if err := insert("bob"); err != nil {
		t.Errorf("Different voter must still be able to vote: %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{
			name:     "sqlite message",
			err:      errors.New("constraint failed: UNIQUE constraint failed: votes.voter (2067)"),
			expected: true,
		},
		{
			name:     "postgres message",
			err:      errors.New(`pq: duplicate key value violates unique constraint "votes_voter_key"`),
			expected: true,
		},
		{name: "other error", err: errors.New("connection refused"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
