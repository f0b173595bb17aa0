package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"github.com/borissavenets/RecoFilmBot/internal/config"
)

// NewPostgres creates a new PostgreSQL connection and runs migrations.
func NewPostgres(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)

	slog.Info("connected to PostgreSQL", "db", cfg.DBName)

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func runMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			telegram_id BIGINT PRIMARY KEY,
			language VARCHAR(5) NOT NULL DEFAULT 'uk',
			profile_completed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS taste_profiles (
			user_id BIGINT PRIMARY KEY REFERENCES users(telegram_id),
			emotions_like TEXT[] NOT NULL DEFAULT '{}',
			emotions_dislike TEXT[] NOT NULL DEFAULT '{}',
			complexity VARCHAR(20) NOT NULL DEFAULT 'any',
			favorite_movies TEXT NOT NULL DEFAULT '',
			disliked_movies TEXT NOT NULL DEFAULT '',
			genres_like TEXT[] NOT NULL DEFAULT '{}',
			genres_dislike TEXT[] NOT NULL DEFAULT '{}',
			visual_style TEXT[] NOT NULL DEFAULT '{}',
			characters_like TEXT[] NOT NULL DEFAULT '{}',
			characters_dislike TEXT[] NOT NULL DEFAULT '{}',
			taboo TEXT NOT NULL DEFAULT '',
			afterfeel TEXT[] NOT NULL DEFAULT '{}'
		)`,
		`CREATE TABLE IF NOT EXISTS recommendation_sessions (
			id SERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(telegram_id),
			mood VARCHAR(30) NOT NULL DEFAULT '',
			energy VARCHAR(30) NOT NULL DEFAULT '',
			company VARCHAR(30) NOT NULL DEFAULT '',
			available_time VARCHAR(30) NOT NULL DEFAULT '',
			seen_preference VARCHAR(30) NOT NULL DEFAULT '',
			specific_request TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS recommendations (
			id SERIAL PRIMARY KEY,
			session_id INTEGER NOT NULL REFERENCES recommendation_sessions(id),
			tmdb_id INTEGER NOT NULL,
			title VARCHAR(500) NOT NULL,
			shown_at TIMESTAMP NOT NULL DEFAULT NOW(),
			action VARCHAR(20) NOT NULL DEFAULT 'shown'
		)`,
		`CREATE TABLE IF NOT EXISTS saved_movies (
			id SERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(telegram_id),
			tmdb_id INTEGER NOT NULL,
			title VARCHAR(500) NOT NULL,
			poster_url VARCHAR(500) NOT NULL DEFAULT '',
			added_at TIMESTAMP NOT NULL DEFAULT NOW(),
			UNIQUE(user_id, tmdb_id)
		)`,
		// Indexes for common query patterns
		`CREATE INDEX IF NOT EXISTS idx_sessions_user ON recommendation_sessions(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_recommendations_session ON recommendations(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_recommendations_shown_at ON recommendations(shown_at)`,
		`CREATE INDEX IF NOT EXISTS idx_saved_movies_user ON saved_movies(user_id)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	slog.Info("database migrations completed")
	return nil
}
