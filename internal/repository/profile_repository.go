package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/borissavenets/RecoFilmBot/internal/models"
)

// ProfileRepository handles database operations for taste profiles.
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Get returns the user's taste profile, or nil when none exists.
func (r *ProfileRepository) Get(userID int64) (*models.TasteProfile, error) {
	var p models.TasteProfile
	err := r.db.QueryRow(`
		SELECT user_id, emotions_like, emotions_dislike, complexity,
			favorite_movies, disliked_movies, genres_like, genres_dislike,
			visual_style, characters_like, characters_dislike, taboo, afterfeel
		FROM taste_profiles WHERE user_id = $1
	`, userID).Scan(
		&p.UserID,
		pq.Array(&p.EmotionsLike), pq.Array(&p.EmotionsDislike),
		&p.Complexity, &p.FavoriteMovies, &p.DislikedMovies,
		pq.Array(&p.GenresLike), pq.Array(&p.GenresDislike),
		pq.Array(&p.VisualStyle),
		pq.Array(&p.CharactersLike), pq.Array(&p.CharactersDislike),
		&p.Taboo, pq.Array(&p.Afterfeel),
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// Upsert writes the full profile row. Every field is rewritten on each save;
// partial updates are not supported.
func (r *ProfileRepository) Upsert(p *models.TasteProfile) error {
	_, err := r.db.Exec(`
		INSERT INTO taste_profiles (
			user_id, emotions_like, emotions_dislike, complexity,
			favorite_movies, disliked_movies, genres_like, genres_dislike,
			visual_style, characters_like, characters_dislike, taboo, afterfeel
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (user_id) DO UPDATE SET
			emotions_like = EXCLUDED.emotions_like,
			emotions_dislike = EXCLUDED.emotions_dislike,
			complexity = EXCLUDED.complexity,
			favorite_movies = EXCLUDED.favorite_movies,
			disliked_movies = EXCLUDED.disliked_movies,
			genres_like = EXCLUDED.genres_like,
			genres_dislike = EXCLUDED.genres_dislike,
			visual_style = EXCLUDED.visual_style,
			characters_like = EXCLUDED.characters_like,
			characters_dislike = EXCLUDED.characters_dislike,
			taboo = EXCLUDED.taboo,
			afterfeel = EXCLUDED.afterfeel
	`,
		p.UserID,
		pq.Array(p.EmotionsLike), pq.Array(p.EmotionsDislike),
		p.Complexity, p.FavoriteMovies, p.DislikedMovies,
		pq.Array(p.GenresLike), pq.Array(p.GenresDislike),
		pq.Array(p.VisualStyle),
		pq.Array(p.CharactersLike), pq.Array(p.CharactersDislike),
		p.Taboo, pq.Array(p.Afterfeel),
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
