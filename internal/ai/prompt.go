package ai

import (
	"fmt"
	"strings"

	"github.com/borissavenets/RecoFilmBot/internal/models"
)

// BuildPrompt serializes the full profile and contextual answers into the
// recommendation request. Free-text fields are passed through verbatim.
func BuildPrompt(profile *models.TasteProfile, answers models.DynamicAnswers, count int, lang string) string {
	language := "English"
	if lang == "uk" {
		language = "Ukrainian"
	}

	var b strings.Builder
	b.WriteString("You are a movie recommendation expert. Based on the user's profile and current state,\n")
	b.WriteString("suggest movies that would be perfect for them right now.\n\n")

	b.WriteString("User Base Profile:\n")
	fmt.Fprintf(&b, "- Emotions they like: %s\n", joinList(profile.EmotionsLike))
	fmt.Fprintf(&b, "- Emotions they dislike: %s\n", joinList(profile.EmotionsDislike))
	fmt.Fprintf(&b, "- Complexity preference: %s\n", profile.Complexity)
	fmt.Fprintf(&b, "- Favorite movies: %s\n", profile.FavoriteMovies)
	fmt.Fprintf(&b, "- Disliked movies: %s\n", profile.DislikedMovies)
	fmt.Fprintf(&b, "- Genres they like: %s\n", joinList(profile.GenresLike))
	fmt.Fprintf(&b, "- Genres they dislike: %s\n", joinList(profile.GenresDislike))
	fmt.Fprintf(&b, "- Visual style: %s\n", joinList(profile.VisualStyle))
	fmt.Fprintf(&b, "- Characters they like: %s\n", joinList(profile.CharactersLike))
	fmt.Fprintf(&b, "- Characters they dislike: %s\n", joinList(profile.CharactersDislike))
	fmt.Fprintf(&b, "- Taboos: %s\n", profile.Taboo)
	fmt.Fprintf(&b, "- Desired afterfeel: %s\n\n", joinList(profile.Afterfeel))

	b.WriteString("Current State:\n")
	fmt.Fprintf(&b, "- Mood: %s\n", answers.Mood)
	fmt.Fprintf(&b, "- Energy level: %s\n", answers.Energy)
	fmt.Fprintf(&b, "- Watching with: %s\n", answers.Company)
	fmt.Fprintf(&b, "- Available time: %s\n", answers.Time)
	fmt.Fprintf(&b, "- Preference for new/classic: %s\n", answers.SeenPreference)
	fmt.Fprintf(&b, "- Specific request: %s\n\n", answers.SpecificRequest)

	fmt.Fprintf(&b, "Please recommend %d movies. Language for reasons: %s.\n\n", count, language)

	b.WriteString("IMPORTANT: Return ONLY a valid JSON array. No additional text, no markdown, no explanation.\n")
	b.WriteString("Each movie should have: \"title\" (original English title), \"year\" (release year as number), \"reason\" (why you recommend it in user's language).\n\n")
	b.WriteString("Example format:\n")
	b.WriteString(`[{"title": "The Shawshank Redemption", "year": 1994, "reason": "..."}]`)

	return b.String()
}

func joinList(values []string) string {
	return strings.Join(values, ", ")
}
