// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements vote casting and tallying.

# The One-Vote Rule

Each voter gets at most one vote, ever. The rule is enforced by the
UNIQUE(voter) constraint on the votes table rather than by a lookup
before the insert, so two concurrent submissions from the same voter
cannot both succeed - the loser of the insert race gets ErrAlreadyVoted.

# Operations

	svc := voting.NewService(voting.NewStore(conn), catalogStore)

	svc.CastVote(ctx, voter, planetName, comment) // ErrValidation, ErrPlanetNotFound, ErrAlreadyVoted
	svc.HasVoted(ctx, voter)
	svc.SetComment(ctx, voter, comment)           // ErrNoVote without a prior vote
	svc.ListPlanetsWithVoteCounts(ctx)

Planet names are matched against the catalog exactly (case-sensitive)
before any write.
*/
package voting
