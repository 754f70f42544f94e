// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Domain types

// Planet is one catalog entry. The internal row id is never serialized;
// Name is the stable public key.
type Planet struct {
	ID          string `json:"-" yaml:"-"`
	Name        string `json:"Name" yaml:"name"`
	Mass        string `json:"Mass" yaml:"mass"`
	Diameter    string `json:"Diameter" yaml:"diameter"`
	Distance    string `json:"Distance" yaml:"distance"`
	Temperature string `json:"Temperature" yaml:"temperature"`
	Moons       string `json:"Moons" yaml:"moons"`
	Description string `json:"Description,omitempty" yaml:"description"`
}

// PlanetVotes is a Planet augmented with its current vote tally.
type PlanetVotes struct {
	Planet
	VoteCount int `json:"vote_count"`
}

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

type Vote struct {
	ID         string    `json:"id"`
	Voter      string    `json:"voter"`
	PlanetName string    `json:"planet_name"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Request types

type SetCommentRequest struct {
	Comment string `json:"comment"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
