// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import "testing"

func TestParseFlags(t *testing.T) {
	// Keep the environment out of the picture
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("SESSION_SECRET", "")

	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "all flags provided",
			args: []string{"-p", "8080", "-d", "postgres://localhost/planets", "-t", "postgres", "-session-secret", "s3cret"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 8080 {
					t.Errorf("Expected port 8080, got %d", cfg.Port)
				}
				if cfg.DatabaseType != "postgres" {
					t.Errorf("Expected database type postgres, got %s", cfg.DatabaseType)
				}
			},
		},
		{
			name: "defaults applied",
			args: []string{"-d", "planets.db", "-session-secret", "s3cret"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 5000 {
					t.Errorf("Expected default port 5000, got %d", cfg.Port)
				}
				if cfg.DatabaseType != "sqlite" {
					t.Errorf("Expected default database type sqlite, got %s", cfg.DatabaseType)
				}
			},
		},
		{
			name:    "missing database URL",
			args:    []string{"-session-secret", "s3cret"},
			wantErr: true,
		},
		{
			name:    "missing session secret",
			args:    []string{"-d", "planets.db"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestParseFlags_EnvFallback(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("DATABASE_URL", "postgres://env/planets")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("SESSION_SECRET", "env-secret")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Port != 9001 {
		t.Errorf("Expected port 9001, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://env/planets" {
		t.Errorf("Unexpected database URL: %s", cfg.DatabaseURL)
	}
	if cfg.SessionSecret != "env-secret" {
		t.Errorf("Unexpected session secret: %s", cfg.SessionSecret)
	}
}
