package models

import "time"

// User is a bot user keyed by their Telegram id.
type User struct {
	TelegramID       int64     `json:"telegram_id"`
	Language         string    `json:"language"`
	ProfileCompleted bool      `json:"profile_completed"`
	CreatedAt        time.Time `json:"created_at"`
}

// TasteProfile is the durable preference record collected by the base survey.
// One row per user, rewritten as a whole on every save.
type TasteProfile struct {
	UserID            int64    `json:"user_id"`
	EmotionsLike      []string `json:"emotions_like"`
	EmotionsDislike   []string `json:"emotions_dislike"`
	Complexity        string   `json:"complexity"`
	FavoriteMovies    string   `json:"favorite_movies"`
	DislikedMovies    string   `json:"disliked_movies"`
	GenresLike        []string `json:"genres_like"`
	GenresDislike     []string `json:"genres_dislike"`
	VisualStyle       []string `json:"visual_style"`
	CharactersLike    []string `json:"characters_like"`
	CharactersDislike []string `json:"characters_dislike"`
	Taboo             string   `json:"taboo"`
	Afterfeel         []string `json:"afterfeel"`
}

// DynamicAnswers holds the six contextual-survey answers for one request.
type DynamicAnswers struct {
	Mood            string `json:"mood"`
	Energy          string `json:"energy"`
	Company         string `json:"company"`
	Time            string `json:"time"`
	SeenPreference  string `json:"seen_preference"`
	SpecificRequest string `json:"specific_request"`
}

// Session is one contextual-survey completion. Immutable after creation.
type Session struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	Answers   DynamicAnswers `json:"answers"`
	CreatedAt time.Time      `json:"created_at"`
}

// Recommendation actions.
const (
	ActionShown   = "shown"
	ActionSaved   = "saved"
	ActionWatched = "watched"
)

// ShownRecommendation is one movie surfaced to a session.
type ShownRecommendation struct {
	ID        int64     `json:"id"`
	SessionID int64     `json:"session_id"`
	TMDBID    int       `json:"tmdb_id"`
	Title     string    `json:"title"`
	ShownAt   time.Time `json:"shown_at"`
	Action    string    `json:"action"`
}

// SavedMovie is an entry in a user's saved list, unique per (user, tmdb id).
type SavedMovie struct {
	UserID    int64     `json:"user_id"`
	TMDBID    int       `json:"tmdb_id"`
	Title     string    `json:"title"`
	PosterURL string    `json:"poster_url"`
	AddedAt   time.Time `json:"added_at"`
}

// MovieDetail is the render-ready TMDB movie record.
type MovieDetail struct {
	ID                  int      `json:"id"`
	Title               string   `json:"title"`
	OriginalTitle       string   `json:"original_title"`
	Overview            string   `json:"overview"`
	ReleaseDate         string   `json:"release_date"`
	Year                string   `json:"year"`
	Runtime             int      `json:"runtime"`
	VoteAverage         float64  `json:"vote_average"`
	PosterURL           string   `json:"poster_url"`
	Genres              []string `json:"genres"`
	Tagline             string   `json:"tagline"`
	Directors           []string `json:"directors"`
	Cast                []string `json:"cast"`
	ProductionCountries []string `json:"production_countries"`
}

// Candidate is one model-proposed movie title.
type Candidate struct {
	Title  string `json:"title"`
	Year   int    `json:"year,omitempty"`
	Reason string `json:"reason"`
}

// MovieCard is the composite record the transport renders to the user.
type MovieCard struct {
	Movie            *MovieDetail
	Reason           string
	TrailerURL       string
	Saved            bool
	RecommendationID int64
	SessionID        int64
}
