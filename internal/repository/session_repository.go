package repository

import (
	"database/sql"
	"fmt"

	"github.com/borissavenets/RecoFilmBot/internal/models"
)

// SessionRepository handles recommendation sessions and the per-session
// shown-recommendation rows.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// CreateSession stores a contextual-survey completion and returns its id.
func (r *SessionRepository) CreateSession(userID int64, answers models.DynamicAnswers) (int64, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO recommendation_sessions
			(user_id, mood, energy, company, available_time, seen_preference, specific_request)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, userID, answers.Mood, answers.Energy, answers.Company,
		answers.Time, answers.SeenPreference, answers.SpecificRequest).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create session: %w", err)
	}
	return id, nil
}

// GetSession returns a session by id, or nil when unknown.
func (r *SessionRepository) GetSession(sessionID int64) (*models.Session, error) {
	var s models.Session
	err := r.db.QueryRow(`
		SELECT id, user_id, mood, energy, company, available_time,
			seen_preference, specific_request, created_at
		FROM recommendation_sessions WHERE id = $1
	`, sessionID).Scan(
		&s.ID, &s.UserID,
		&s.Answers.Mood, &s.Answers.Energy, &s.Answers.Company,
		&s.Answers.Time, &s.Answers.SeenPreference, &s.Answers.SpecificRequest,
		&s.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

// AddRecommendation records a movie surfaced to the session and returns the
// row id. Action starts as "shown".
func (r *SessionRepository) AddRecommendation(sessionID int64, tmdbID int, title string) (int64, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO recommendations (session_id, tmdb_id, title)
		VALUES ($1, $2, $3)
		RETURNING id
	`, sessionID, tmdbID, title).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("add recommendation: %w", err)
	}
	return id, nil
}

// UpdateRecommendationAction changes the action of a shown recommendation.
func (r *SessionRepository) UpdateRecommendationAction(recID int64, action string) error {
	_, err := r.db.Exec(`
		UPDATE recommendations SET action = $1 WHERE id = $2
	`, action, recID)
	if err != nil {
		return fmt.Errorf("update recommendation action: %w", err)
	}
	return nil
}

// ShownMovieIDs returns the distinct TMDB ids shown to the user across all
// their sessions, most recently shown first, capped at limit.
func (r *SessionRepository) ShownMovieIDs(userID int64, limit int) ([]int, error) {
	rows, err := r.db.Query(`
		SELECT r.tmdb_id
		FROM recommendations r
		JOIN recommendation_sessions s ON r.session_id = s.id
		WHERE s.user_id = $1
		GROUP BY r.tmdb_id
		ORDER BY MAX(r.shown_at) DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query shown movie ids: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan shown movie id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CountSessions returns the total session count.
func (r *SessionRepository) CountSessions() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM recommendation_sessions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}
