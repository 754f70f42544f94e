// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog provides the fixed planet catalog.

# Seeding

The eight-planet dataset ships embedded in the binary (planets.yaml).
Seed loads it into the planets table on startup:

	if err := catalog.Seed(ctx, conn); err != nil { ... }

Seeding is idempotent - rows already present are skipped via the
UNIQUE(name) constraint - so restarting the server, or several
instances starting against a shared database, never duplicates
records or fails on the collision.

# Reads

The Store is read-only; the catalog never changes after seeding.
GetByName matches the stored Name exactly (case-sensitive) and returns
ErrNotFound for unknown planets, which the HTTP layer surfaces as 404.
*/
package catalog
