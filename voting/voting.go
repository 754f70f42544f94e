// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danielhkuo/planet-vote/catalog"
	"github.com/danielhkuo/planet-vote/models"
)

var (
	ErrValidation     = errors.New("planet name is required")
	ErrAlreadyVoted   = errors.New("voter has already voted")
	ErrPlanetNotFound = errors.New("planet not found")
	ErrNoVote         = errors.New("voter has not voted yet")
)

// Service enforces the voting rules: every vote names a real planet, and
// each voter gets at most one.
type Service struct {
	votes   *Store
	planets *catalog.Store
}

func NewService(votes *Store, planets *catalog.Store) *Service {
	return &Service{votes: votes, planets: planets}
}

// CastVote records a vote for planetName by voter. The comment is
// optional. There is no check-then-insert here: the one-vote rule rides
// on the store's unique constraint, so concurrent double submits cannot
// both land.
func (s *Service) CastVote(ctx context.Context, voter, planetName, comment string) (*models.Vote, error) {
	if planetName == "" {
		return nil, ErrValidation
	}

	if _, err := s.planets.GetByName(ctx, planetName); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, ErrPlanetNotFound
		}
		return nil, err
	}

	vote, err := s.votes.Insert(ctx, voter, planetName, comment)
	if err != nil {
		return nil, err
	}

	slog.Info("vote cast", "voter", voter, "planet", planetName)
	return vote, nil
}

// HasVoted reports whether voter has already cast a vote.
func (s *Service) HasVoted(ctx context.Context, voter string) (bool, error) {
	_, err := s.votes.GetByVoter(ctx, voter)
	if err != nil {
		if errors.Is(err, ErrVoteNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SetComment replaces the comment on the voter's existing vote; voters
// who have not voted get ErrNoVote.
func (s *Service) SetComment(ctx context.Context, voter, comment string) error {
	err := s.votes.UpdateComment(ctx, voter, comment)
	if errors.Is(err, ErrVoteNotFound) {
		return ErrNoVote
	}
	return err
}

// ListPlanetsWithVoteCounts returns the full catalog with current
// tallies. Read-only.
func (s *Service) ListPlanetsWithVoteCounts(ctx context.Context) ([]models.PlanetVotes, error) {
	return s.votes.ListPlanetCounts(ctx)
}
