// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Planet Vote server.

Planet Vote is a small multi-user web app: visitors register, log in,
browse a fixed catalog of planets, and cast one vote each for a favorite
planet with an optional comment. The same data is exposed as rendered
pages and as a JSON API.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... SESSION_SECRET=... go run main.go

Or with flags:

	go run main.go -p 5000 -d "postgres://..." -session-secret "..."

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string
  - SESSION_SECRET (-session-secret): session cookie signing secret

Optional settings:

  - PORT (-p): server port (default: 5000)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (pages, JSON API)
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, JSON helpers
  - models: domain and API types
  - auth: registration and login (bcrypt password hashing)
  - session: signed session cookies and flash messages
  - catalog: the seeded planet catalog
  - voting: vote casting with the one-vote-per-user rule
  - db: connections and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
