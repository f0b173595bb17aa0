package repository

import (
	"database/sql"
	"fmt"

	"github.com/borissavenets/RecoFilmBot/internal/models"
)

// UserRepository handles database operations for users.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetUser returns a user by Telegram id, or nil when unknown.
func (r *UserRepository) GetUser(telegramID int64) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(`
		SELECT telegram_id, language, profile_completed, created_at
		FROM users WHERE telegram_id = $1
	`, telegramID).Scan(&user.TelegramID, &user.Language, &user.ProfileCompleted, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// CreateUser inserts a user if absent and returns the stored row.
func (r *UserRepository) CreateUser(telegramID int64, language string) (*models.User, error) {
	_, err := r.db.Exec(`
		INSERT INTO users (telegram_id, language)
		VALUES ($1, $2)
		ON CONFLICT (telegram_id) DO NOTHING
	`, telegramID, language)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return r.GetUser(telegramID)
}

// UpdateLanguage changes the user's preferred language.
func (r *UserRepository) UpdateLanguage(telegramID int64, language string) error {
	_, err := r.db.Exec(`
		UPDATE users SET language = $1 WHERE telegram_id = $2
	`, language, telegramID)
	if err != nil {
		return fmt.Errorf("update language: %w", err)
	}
	return nil
}

// SetProfileCompleted marks the onboarding survey as finished.
func (r *UserRepository) SetProfileCompleted(telegramID int64, completed bool) error {
	_, err := r.db.Exec(`
		UPDATE users SET profile_completed = $1 WHERE telegram_id = $2
	`, completed, telegramID)
	if err != nil {
		return fmt.Errorf("set profile completed: %w", err)
	}
	return nil
}

// CountUsers returns the total user count.
func (r *UserRepository) CountUsers() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
