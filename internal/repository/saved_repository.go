package repository

import (
	"database/sql"
	"fmt"

	"github.com/borissavenets/RecoFilmBot/internal/models"
)

// SavedRepository handles the per-user saved-movie list.
type SavedRepository struct {
	db *sql.DB
}

// NewSavedRepository creates a new SavedRepository.
func NewSavedRepository(db *sql.DB) *SavedRepository {
	return &SavedRepository{db: db}
}

// Save stores a movie in the user's list. Saving an already-saved movie
// replaces the row; two concurrent saves resolve through the store's
// conflict handling.
func (r *SavedRepository) Save(userID int64, tmdbID int, title, posterURL string) error {
	_, err := r.db.Exec(`
		INSERT INTO saved_movies (user_id, tmdb_id, title, poster_url, added_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, tmdb_id) DO UPDATE SET
			title = EXCLUDED.title,
			poster_url = EXCLUDED.poster_url,
			added_at = NOW()
	`, userID, tmdbID, title, posterURL)
	if err != nil {
		return fmt.Errorf("save movie: %w", err)
	}
	return nil
}

// List returns the user's saved movies, most recently added first.
func (r *SavedRepository) List(userID int64) ([]models.SavedMovie, error) {
	rows, err := r.db.Query(`
		SELECT user_id, tmdb_id, title, poster_url, added_at
		FROM saved_movies
		WHERE user_id = $1
		ORDER BY added_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved movies: %w", err)
	}
	defer rows.Close()

	var movies []models.SavedMovie
	for rows.Next() {
		var m models.SavedMovie
		if err := rows.Scan(&m.UserID, &m.TMDBID, &m.Title, &m.PosterURL, &m.AddedAt); err != nil {
			return nil, fmt.Errorf("scan saved movie: %w", err)
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// Delete removes a movie from the user's list.
func (r *SavedRepository) Delete(userID int64, tmdbID int) error {
	_, err := r.db.Exec(`
		DELETE FROM saved_movies WHERE user_id = $1 AND tmdb_id = $2
	`, userID, tmdbID)
	if err != nil {
		return fmt.Errorf("delete saved movie: %w", err)
	}
	return nil
}

// IsSaved reports whether the movie is in the user's list.
func (r *SavedRepository) IsSaved(userID int64, tmdbID int) (bool, error) {
	var one int
	err := r.db.QueryRow(`
		SELECT 1 FROM saved_movies WHERE user_id = $1 AND tmdb_id = $2
	`, userID, tmdbID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check saved movie: %w", err)
	}
	return true, nil
}

// CountSaved returns the total saved-movie count.
func (r *SavedRepository) CountSaved() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM saved_movies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count saved movies: %w", err)
	}
	return n, nil
}
