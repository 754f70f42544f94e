// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth implements account registration and login.

# Passwords

Passwords are stored as bcrypt hashes (salted, one-way):

	hash, err := auth.HashPassword(password)
	ok := auth.CheckPassword(hash, password)

Verification is constant-time inside bcrypt; raw passwords are never
stored or logged.

# Service

The Service wraps a user Store:

	svc := auth.NewService(auth.NewStore(db))

Register rejects empty fields (ErrValidation) and existing usernames
(ErrDuplicateAccount) - the duplicate check is backed by the unique
index on username, so racing registrations cannot create two accounts.
Registering does not start a session; the caller must log in explicitly.

Login returns ErrInvalidCredentials for both unknown usernames and wrong
passwords, revealing nothing about which field was wrong.
*/
package auth
