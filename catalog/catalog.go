// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/planet-vote/db"
	"github.com/danielhkuo/planet-vote/models"
)

//go:embed planets.yaml
var planetsYAML []byte

var ErrNotFound = errors.New("planet not found")

type planetsFile struct {
	Planets []models.Planet `yaml:"planets"`
}

// Seed populates the planets table from the bundled dataset. Planets
// already present are left alone, so repeated or concurrent startups
// against a shared database converge on the same catalog.
func Seed(ctx context.Context, conn *sql.DB) error {
	var pf planetsFile
	if err := yaml.Unmarshal(planetsYAML, &pf); err != nil {
		return fmt.Errorf("failed to parse planet dataset: %w", err)
	}

	seeded := 0
	for _, p := range pf.Planets {
		_, err := conn.ExecContext(ctx, `
			INSERT INTO planets (id, name, mass, diameter, distance, temperature, moons, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, uuid.NewString(), p.Name, p.Mass, p.Diameter, p.Distance, p.Temperature, p.Moons, p.Description)
		if err != nil {
			// Another instance won the insert; its row is the catalog entry.
			if db.IsUniqueViolation(err) {
				continue
			}
			return fmt.Errorf("failed to seed planet %s: %w", p.Name, err)
		}
		seeded++
	}

	if seeded > 0 {
		slog.Info("planet catalog seeded", "planets", seeded)
	}
	return nil
}

// Store reads the planet catalog. The catalog is immutable after
// seeding; there are no write operations.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetAll(ctx context.Context) ([]models.Planet, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, mass, diameter, distance, temperature, moons, description
		FROM planets
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var planets []models.Planet
	for rows.Next() {
		var p models.Planet
		var description sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.Mass, &p.Diameter, &p.Distance, &p.Temperature, &p.Moons, &description); err != nil {
			return nil, err
		}
		p.Description = description.String
		planets = append(planets, p)
	}
	return planets, rows.Err()
}

// GetByName is an exact, case-sensitive lookup on the stored Name.
func (s *Store) GetByName(ctx context.Context, name string) (*models.Planet, error) {
	p := &models.Planet{}
	var description sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, mass, diameter, distance, temperature, moons, description
		FROM planets
		WHERE name = $1
	`, name).Scan(&p.ID, &p.Name, &p.Mass, &p.Diameter, &p.Distance, &p.Temperature, &p.Moons, &description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.Description = description.String
	return p, nil
}
