// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/planet-vote/db"
	"github.com/danielhkuo/planet-vote/models"
)

var ErrVoteNotFound = errors.New("vote not found")

// Store persists votes.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Insert records a vote. The UNIQUE(voter) constraint makes this the
// atomic one-vote-per-voter check: a second vote by the same voter fails
// here with ErrAlreadyVoted no matter how the requests interleave.
func (s *Store) Insert(ctx context.Context, voter, planetName, comment string) (*models.Vote, error) {
	v := &models.Vote{
		ID:         uuid.NewString(),
		Voter:      voter,
		PlanetName: planetName,
		Comment:    comment,
		CreatedAt:  time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO votes (id, voter, planet_name, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, v.ID, v.Voter, v.PlanetName, v.Comment, v.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrAlreadyVoted
		}
		return nil, err
	}
	return v, nil
}

func (s *Store) GetByVoter(ctx context.Context, voter string) (*models.Vote, error) {
	v := &models.Vote{}
	var comment sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, voter, planet_name, comment FROM votes WHERE voter = $1
	`, voter).Scan(&v.ID, &v.Voter, &v.PlanetName, &comment)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVoteNotFound
		}
		return nil, err
	}
	v.Comment = comment.String
	return v, nil
}

// UpdateComment replaces the comment on an existing vote.
func (s *Store) UpdateComment(ctx context.Context, voter, comment string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE votes SET comment = $1 WHERE voter = $2
	`, comment, voter)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrVoteNotFound
	}
	return nil
}

// ListPlanetCounts returns every planet with its vote tally, including
// planets with no votes.
func (s *Store) ListPlanetCounts(ctx context.Context) ([]models.PlanetVotes, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.mass, p.diameter, p.distance, p.temperature, p.moons, p.description,
		       COUNT(v.id) AS vote_count
		FROM planets p
		LEFT JOIN votes v ON v.planet_name = p.name
		GROUP BY p.id, p.name, p.mass, p.diameter, p.distance, p.temperature, p.moons, p.description
		ORDER BY p.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var planets []models.PlanetVotes
	for rows.Next() {
		var pv models.PlanetVotes
		var description sql.NullString
		if err := rows.Scan(&pv.ID, &pv.Name, &pv.Mass, &pv.Diameter, &pv.Distance,
			&pv.Temperature, &pv.Moons, &description, &pv.VoteCount); err != nil {
			return nil, err
		}
		pv.Description = description.String
		planets = append(planets, pv)
	}
	return planets, rows.Err()
}
