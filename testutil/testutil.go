// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/planet-vote/auth"
	"github.com/danielhkuo/planet-vote/catalog"
	"github.com/danielhkuo/planet-vote/cliparse"
	"github.com/danielhkuo/planet-vote/db"
	"github.com/danielhkuo/planet-vote/models"
	"github.com/danielhkuo/planet-vote/session"
)

// TestSessionSecret signs session cookies in tests.
const TestSessionSecret = "test-session-secret"

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Each call gets its own database, so tests stay independent.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := db.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SeedTestCatalog loads the bundled planet dataset.
func SeedTestCatalog(t *testing.T, conn *sql.DB) {
	t.Helper()
	if err := catalog.Seed(context.Background(), conn); err != nil {
		t.Fatalf("Failed to seed catalog: %v", err)
	}
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		SessionSecret: TestSessionSecret,
	}
}

// CreateTestUser registers an account directly through the user store
// and returns it.
func CreateTestUser(t *testing.T, conn *sql.DB, username, password string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user, err := auth.NewStore(conn).Create(context.Background(), username, hash)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// CreateTestVote inserts a vote row directly.
func CreateTestVote(t *testing.T, conn *sql.DB, voter, planetName, comment string) string {
	t.Helper()

	voteID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO votes (id, voter, planet_name, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voteID, voter, planetName, comment, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
	return voteID
}

// SessionCookie returns a valid session cookie for username, signed
// with TestSessionSecret.
func SessionCookie(t *testing.T, username string) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	if err := session.NewManager(TestSessionSecret).Issue(rec, username); err != nil {
		t.Fatalf("Failed to issue session: %v", err)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("Session cookie not set")
	return nil
}

// MakeRequest creates an HTTP test request with a JSON body
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates an HTTP test request with a form-encoded body
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a redirect to the expected location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code < 300 || w.Code >= 400 {
		t.Errorf("Expected redirect, got status %d. Body: %s", w.Code, w.Body.String())
		return
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %s, got %s", location, got)
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
