// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles server configuration from CLI flags and
environment variables.

# Configuration Sources

Flags take precedence; environment variables are the fallback:

  - -p / PORT: server port (default: 5000)
  - -d / DATABASE_URL: database connection string (required)
  - -t / DATABASE_TYPE: "sqlite" or "postgres" (default: sqlite)
  - -session-secret / SESSION_SECRET: session cookie signing secret (required)

Missing required settings are a startup error, never a per-request one:

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
*/
package cliparse
