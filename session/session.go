// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie; its value is a signed token, so the
// client can read but not forge it.
const CookieName = "planet_vote_session"

const sessionTTL = 24 * time.Hour

type contextKey string

const usernameContextKey contextKey = "planet_vote_username"

func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameContextKey, username)
}

func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameContextKey).(string)
	return username, ok
}

// Manager issues and verifies session cookies. Each client is either
// Anonymous (no cookie, or one that fails verification) or Authenticated
// (a valid cookie naming the logged-in user).
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Issue signs a session token for username and sets it as a cookie.
// Called only on successful login.
func (m *Manager) Issue(w http.ResponseWriter, username string) error {
	now := time.Now().UTC()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	})
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie. Idempotent: clearing with no active
// session is a no-op, not an error.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Username returns the logged-in username for the request. Any problem
// with the cookie (absent, expired, tampered, wrong algorithm) means the
// request is anonymous.
func (m *Manager) Username(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	token, err := jwt.ParseWithClaims(cookie.Value, &claims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", false
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid || c.Username == "" {
		return "", false
	}
	return c.Username, true
}

// RequireUser gates a page handler behind a valid session: anonymous
// requests are redirected to the landing page, authenticated ones get
// the username injected into the request context.
func (m *Manager) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := m.Username(r)
		if !ok {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next(w, r.WithContext(WithUsername(r.Context(), username)))
	}
}
