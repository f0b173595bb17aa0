package survey

import "github.com/borissavenets/RecoFilmBot/internal/models"

// BuildProfile assembles a taste profile from completed base-survey answers.
// The disliked-movies, disliked-genres, and disliked-characters fields are
// reserved: they exist in storage and prompts but no survey step fills them.
func BuildProfile(userID int64, answers map[string][]string) *models.TasteProfile {
	return &models.TasteProfile{
		UserID:            userID,
		EmotionsLike:      multi(answers, "emotions_like"),
		EmotionsDislike:   multi(answers, "emotions_dislike"),
		Complexity:        scalar(answers, "complexity", "any"),
		FavoriteMovies:    scalar(answers, "favorite_movies", ""),
		DislikedMovies:    "",
		GenresLike:        multi(answers, "genres_like"),
		GenresDislike:     []string{},
		VisualStyle:       multi(answers, "visual_style"),
		CharactersLike:    multi(answers, "characters_like"),
		CharactersDislike: []string{},
		Taboo:             scalar(answers, "taboo", ""),
		Afterfeel:         multi(answers, "afterfeel"),
	}
}

// BuildDynamicAnswers assembles the contextual answer set from completed
// dynamic-survey answers.
func BuildDynamicAnswers(answers map[string][]string) models.DynamicAnswers {
	return models.DynamicAnswers{
		Mood:            scalar(answers, "mood", ""),
		Energy:          scalar(answers, "energy", ""),
		Company:         scalar(answers, "company", ""),
		Time:            scalar(answers, "time", ""),
		SeenPreference:  scalar(answers, "seen_preference", ""),
		SpecificRequest: scalar(answers, "specific_request", ""),
	}
}

func multi(answers map[string][]string, key string) []string {
	if v, ok := answers[key]; ok && v != nil {
		return v
	}
	return []string{}
}

func scalar(answers map[string][]string, key, fallback string) string {
	if v, ok := answers[key]; ok && len(v) > 0 {
		return v[0]
	}
	return fallback
}
