// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/planet-vote/auth"
	"github.com/danielhkuo/planet-vote/catalog"
	"github.com/danielhkuo/planet-vote/cliparse"
	"github.com/danielhkuo/planet-vote/handlers"
	"github.com/danielhkuo/planet-vote/middleware"
	"github.com/danielhkuo/planet-vote/session"
	"github.com/danielhkuo/planet-vote/voting"
)

func NewRouter(conn *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Stores and services, constructed once and injected down
	users := auth.NewStore(conn)
	authSvc := auth.NewService(users)
	planets := catalog.NewStore(conn)
	votes := voting.NewService(voting.NewStore(conn), planets)
	sessions := session.NewManager(cfg.SessionSecret)

	pageHandler := handlers.NewPageHandler(authSvc, votes, sessions)
	apiHandler := handlers.NewAPIHandler(planets, votes, sessions)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Index))
	mux.HandleFunc("GET /register", middleware.WithLogging(pageHandler.RegisterForm))
	mux.HandleFunc("POST /register", middleware.WithLogging(pageHandler.Register))
	mux.HandleFunc("GET /login", middleware.WithLogging(pageHandler.LoginForm))
	mux.HandleFunc("POST /login", middleware.WithLogging(pageHandler.Login))
	mux.HandleFunc("GET /logout", middleware.WithLogging(pageHandler.Logout))

	// Pages behind a session
	mux.HandleFunc("GET /planets", middleware.WithLogging(sessions.RequireUser(pageHandler.Planets)))
	mux.HandleFunc("GET /vote", middleware.WithLogging(sessions.RequireUser(pageHandler.VoteForm)))
	mux.HandleFunc("POST /vote", middleware.WithLogging(sessions.RequireUser(pageHandler.Vote)))

	// JSON API
	mux.HandleFunc("GET /api/planets", middleware.WithLogging(apiHandler.ListPlanets))
	mux.HandleFunc("GET /api/planet/{name}", middleware.WithLogging(apiHandler.GetPlanet))
	mux.HandleFunc("POST /api/comment", middleware.WithLogging(apiHandler.SetComment))

	return mux
}
