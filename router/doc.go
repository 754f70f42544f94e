// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method routing.

NewRouter wires the whole request path: it builds the stores and
services once from the database connection and config, injects them into
the handlers, and registers every route:

	mux := router.NewRouter(conn, cfg)

Page routes render HTML; /planets and /vote additionally require a valid
session (session.Manager.RequireUser redirects anonymous requests to the
landing page). The /api routes return JSON and are public except for
POST /api/comment.
*/
package router
