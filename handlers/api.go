// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/planet-vote/catalog"
	"github.com/danielhkuo/planet-vote/middleware"
	"github.com/danielhkuo/planet-vote/models"
	"github.com/danielhkuo/planet-vote/session"
	"github.com/danielhkuo/planet-vote/voting"
)

// APIHandler serves the JSON endpoints.
type APIHandler struct {
	planets  *catalog.Store
	votes    *voting.Service
	sessions *session.Manager
}

func NewAPIHandler(planets *catalog.Store, votes *voting.Service, sessions *session.Manager) *APIHandler {
	return &APIHandler{planets: planets, votes: votes, sessions: sessions}
}

// ListPlanets handles GET /api/planets
func (h *APIHandler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := h.planets.GetAll(r.Context())
	if err != nil {
		slog.Error("failed to list planets", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if planets == nil {
		planets = []models.Planet{}
	}
	middleware.JSONResponse(w, http.StatusOK, planets)
}

// GetPlanet handles GET /api/planet/{name}
func (h *APIHandler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	planet, err := h.planets.GetByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			// Exact error body the frontend matches on
			middleware.JSONResponse(w, http.StatusNotFound, models.ErrorResponse{
				Error: "Planet not found",
			})
			return
		}
		slog.Error("failed to get planet", "error", err, "name", name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, planet)
}

// SetComment handles POST /api/comment. The comment attaches to the
// caller's own vote, so a session is required and a prior vote must
// exist.
func (h *APIHandler) SetComment(w http.ResponseWriter, r *http.Request) {
	username, ok := h.sessions.Username(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Login required")
		return
	}

	var req models.SetCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Comment == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "comment is required")
		return
	}

	err := h.votes.SetComment(r.Context(), username, req.Comment)
	if err != nil {
		if errors.Is(err, voting.ErrNoVote) {
			middleware.ErrorResponse(w, http.StatusConflict, "Vote before commenting")
			return
		}
		slog.Error("failed to set comment", "error", err, "voter", username)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("comment stored", "voter", username)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Comment stored successfully",
	})
}
