// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session manages login sessions carried in a signed cookie.

# Lifecycle

Each client moves Anonymous → Authenticated → Anonymous. Issue (on
successful login) sets an HS256-signed token naming the user; Clear (on
logout) expires the cookie and is a no-op when there is no session.

	mgr := session.NewManager(cfg.SessionSecret)
	mgr.Issue(w, user.Username)
	mgr.Clear(w)

Username verifies the cookie; absent, expired, or tampered cookies all
read as anonymous rather than as errors.

# Middleware

RequireUser protects page routes:

	mux.HandleFunc("GET /planets", mgr.RequireUser(handler))

Anonymous requests are redirected to the landing page. Downstream
handlers read the identity from the request context:

	username, ok := session.UsernameFromContext(r.Context())

# Flash Messages

SetFlash queues a one-shot notification before a redirect; TakeFlash
consumes it on the next rendered page.
*/
package session
