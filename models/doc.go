// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and API types shared across the server.

# Domain Types

  - Planet: one catalog entry; capitalized JSON keys match the bundled
    dataset, and the internal row id is never serialized
  - PlanetVotes: Planet plus its vote_count, used by the planets listing
  - User: account record; the password hash is never serialized
  - Vote: one cast vote (voter, planet_name, optional comment)

# API Types

Request bodies and responses for the JSON endpoints, plus the shared
ErrorResponse envelope:

	{"error": "...", "message": "..."}
*/
package models
