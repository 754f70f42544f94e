// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers.

# Handler Types

Each handler is a struct with its service dependencies injected via a
constructor; there are no package-level stores:

  - PageHandler: rendered HTML pages (landing, register, login, planet
    list, vote form)
  - APIHandler: JSON endpoints (planet catalog, comments)

# Page Flow

Pages communicate outcomes with flash messages and redirects:

	GET  /          → Index (flash shown if pending)
	GET  /register  → RegisterForm   POST /register → Register
	GET  /login     → LoginForm      POST /login    → Login (issues session)
	GET  /logout    → Logout (clears session)
	GET  /planets   → Planets (session required)
	GET  /vote      → VoteForm (session required; redirects if already voted)
	POST /vote      → Vote (session required)

Business-rule failures (duplicate account, bad credentials, double vote,
unknown planet) are flashed back to the user; only unexpected store
failures return 500.

# JSON API

	GET  /api/planets       → ListPlanets (internal ids excluded)
	GET  /api/planet/{name} → GetPlanet (404 {"error": "Planet not found"})
	POST /api/comment       → SetComment (session required, vote must exist)

# Templates

Pages render from templates embedded in the binary (templates/*.html),
parsed once at startup.
*/
package handlers
