// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/planet-vote/auth"
	"github.com/danielhkuo/planet-vote/session"
	"github.com/danielhkuo/planet-vote/voting"
)

// PageHandler serves the rendered HTML pages. Business-rule failures
// become flash messages and redirects; only unexpected store failures
// surface as 500s.
type PageHandler struct {
	auth     *auth.Service
	votes    *voting.Service
	sessions *session.Manager
}

func NewPageHandler(authSvc *auth.Service, votes *voting.Service, sessions *session.Manager) *PageHandler {
	return &PageHandler{auth: authSvc, votes: votes, sessions: sessions}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	username, _ := h.sessions.Username(r)
	render(w, "index.html", pageData{
		Username: username,
		Flash:    session.TakeFlash(w, r),
	})
}

// RegisterForm handles GET /register
func (h *PageHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	render(w, "register.html", pageData{Flash: session.TakeFlash(w, r)})
}

// Register handles POST /register
func (h *PageHandler) Register(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	_, err := h.auth.Register(r.Context(), username, password)
	switch {
	case err == nil:
		slog.Info("user registered", "username", username)
		session.SetFlash(w, "Registered successfully. Please log in.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case errors.Is(err, auth.ErrValidation):
		session.SetFlash(w, "Username and password are required.")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
	case errors.Is(err, auth.ErrDuplicateAccount):
		session.SetFlash(w, "Username already exists.")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
	default:
		slog.Error("failed to register user", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// LoginForm handles GET /login
func (h *PageHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	render(w, "login.html", pageData{Flash: session.TakeFlash(w, r)})
}

// Login handles POST /login
func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.auth.Login(r.Context(), username, password)
	switch {
	case err == nil:
		if err := h.sessions.Issue(w, user.Username); err != nil {
			slog.Error("failed to issue session", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		slog.Info("user logged in", "username", user.Username)
		session.SetFlash(w, "Welcome, "+user.Username+"!")
		http.Redirect(w, r, "/planets", http.StatusSeeOther)
	case errors.Is(err, auth.ErrInvalidCredentials):
		session.SetFlash(w, "Invalid username or password.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	default:
		slog.Error("failed to log in user", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Logout handles GET /logout
func (h *PageHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	session.SetFlash(w, "Logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Planets handles GET /planets (session required)
func (h *PageHandler) Planets(w http.ResponseWriter, r *http.Request) {
	username, _ := session.UsernameFromContext(r.Context())

	planets, err := h.votes.ListPlanetsWithVoteCounts(r.Context())
	if err != nil {
		slog.Error("failed to list planets", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	render(w, "planets.html", pageData{
		Username: username,
		Flash:    session.TakeFlash(w, r),
		Planets:  planets,
	})
}

// VoteForm handles GET /vote (session required). Voters who already
// voted are sent back to the planet list.
func (h *PageHandler) VoteForm(w http.ResponseWriter, r *http.Request) {
	username, _ := session.UsernameFromContext(r.Context())

	voted, err := h.votes.HasVoted(r.Context(), username)
	if err != nil {
		slog.Error("failed to check vote", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if voted {
		session.SetFlash(w, "You have already voted.")
		http.Redirect(w, r, "/planets", http.StatusSeeOther)
		return
	}

	planets, err := h.votes.ListPlanetsWithVoteCounts(r.Context())
	if err != nil {
		slog.Error("failed to list planets", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	render(w, "vote.html", pageData{
		Username: username,
		Flash:    session.TakeFlash(w, r),
		Planets:  planets,
	})
}

// Vote handles POST /vote (session required)
func (h *PageHandler) Vote(w http.ResponseWriter, r *http.Request) {
	username, _ := session.UsernameFromContext(r.Context())
	planetName := r.FormValue("planet_name")
	comment := r.FormValue("comment")

	_, err := h.votes.CastVote(r.Context(), username, planetName, comment)
	switch {
	case err == nil:
		session.SetFlash(w, "Voted for "+planetName+".")
		http.Redirect(w, r, "/planets", http.StatusSeeOther)
	case errors.Is(err, voting.ErrValidation):
		session.SetFlash(w, "Pick a planet to vote for.")
		http.Redirect(w, r, "/vote", http.StatusSeeOther)
	case errors.Is(err, voting.ErrPlanetNotFound):
		session.SetFlash(w, "Planet not found.")
		http.Redirect(w, r, "/vote", http.StatusSeeOther)
	case errors.Is(err, voting.ErrAlreadyVoted):
		session.SetFlash(w, "You have already voted.")
		http.Redirect(w, r, "/planets", http.StatusSeeOther)
	default:
		slog.Error("failed to cast vote", "error", err, "voter", username)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
