package bot

import (
	"fmt"
	"strings"

	"github.com/borissavenets/RecoFilmBot/internal/locale"
	"github.com/borissavenets/RecoFilmBot/internal/models"
	"github.com/borissavenets/RecoFilmBot/internal/survey"
)

// formatMovieCard renders a movie record as the Markdown card body.
func formatMovieCard(movie *models.MovieDetail, reason, lang string) string {
	var lines []string

	if movie.OriginalTitle != "" && movie.OriginalTitle != movie.Title {
		lines = append(lines, fmt.Sprintf("*%s*\n_%s_", movie.Title, movie.OriginalTitle))
	} else {
		lines = append(lines, fmt.Sprintf("*%s*", movie.Title))
	}
	lines = append(lines, "")

	var info []string
	if movie.Year != "" {
		info = append(info, fmt.Sprintf("%s: %s", locale.Text(lang, "movie_year"), movie.Year))
	}
	if movie.VoteAverage > 0 {
		info = append(info, fmt.Sprintf("%s: %.1f/10", locale.Text(lang, "movie_rating"), movie.VoteAverage))
	}
	if movie.Runtime > 0 {
		info = append(info, fmt.Sprintf("%s: %d %s", locale.Text(lang, "movie_duration"), movie.Runtime, locale.Text(lang, "minutes")))
	}
	if len(info) > 0 {
		lines = append(lines, strings.Join(info, " | "))
	}

	if len(movie.Genres) > 0 {
		genres := movie.Genres
		if len(genres) > 4 {
			genres = genres[:4]
		}
		lines = append(lines, fmt.Sprintf("%s: %s", locale.Text(lang, "movie_genres"), strings.Join(genres, ", ")))
	}
	if len(movie.Directors) > 0 {
		directors := movie.Directors
		if len(directors) > 2 {
			directors = directors[:2]
		}
		lines = append(lines, fmt.Sprintf("%s: %s", locale.Text(lang, "movie_director"), strings.Join(directors, ", ")))
	}
	if len(movie.Cast) > 0 {
		cast := movie.Cast
		if len(cast) > 3 {
			cast = cast[:3]
		}
		lines = append(lines, fmt.Sprintf("%s: %s", locale.Text(lang, "movie_cast"), strings.Join(cast, ", ")))
	}

	lines = append(lines, "")

	if movie.Overview != "" {
		overview := movie.Overview
		// Truncate on rune boundaries: Cyrillic overviews are multi-byte
		// and Telegram rejects captions with broken UTF-8.
		if runes := []rune(overview); len(runes) > 400 {
			overview = string(runes[:397]) + "..."
		}
		lines = append(lines, overview)
	}

	if reason != "" {
		lines = append(lines, "", fmt.Sprintf("_%s: %s_", locale.Text(lang, "why_recommend"), reason))
	}

	return strings.Join(lines, "\n")
}

// stepPrompt renders the question text for a survey step, including the
// multi-select hint where applicable.
func stepPrompt(step *survey.Step, lang string) string {
	text := locale.Text(lang, step.PromptKey)
	if step.Kind == survey.StepMulti {
		text += "\n\n" + locale.Text(lang, "select_multiple")
	}
	return text
}

// formatProfile renders the user's taste profile, skipping empty fields.
// The visual style list joins per-value labels.
func formatProfile(profile *models.TasteProfile, lang string) string {
	lines := []string{fmt.Sprintf("*%s*", locale.Text(lang, "your_profile")), ""}

	appendTagged := func(titleKey, prefix string, values []string) {
		if len(values) == 0 {
			return
		}
		labels := make([]string, len(values))
		for i, v := range values {
			labels[i] = locale.Text(lang, prefix+v)
		}
		lines = append(lines,
			fmt.Sprintf("*%s:*", locale.Text(lang, titleKey)),
			strings.Join(labels, ", "),
			"")
	}
	appendText := func(titleKey, value string) {
		if value == "" {
			return
		}
		lines = append(lines,
			fmt.Sprintf("*%s:*", locale.Text(lang, titleKey)),
			value,
			"")
	}

	appendTagged("profile_emotions_like", "emo_", profile.EmotionsLike)
	appendTagged("profile_emotions_dislike", "emo_", profile.EmotionsDislike)
	if profile.Complexity != "" {
		lines = append(lines,
			fmt.Sprintf("*%s:*", locale.Text(lang, "profile_complexity")),
			locale.Text(lang, "complexity_"+profile.Complexity),
			"")
	}
	appendText("profile_favorite_movies", profile.FavoriteMovies)
	appendTagged("profile_genres_like", "genre_", profile.GenresLike)
	appendTagged("profile_genres_dislike", "genre_", profile.GenresDislike)
	appendTagged("profile_visual", "visual_", profile.VisualStyle)
	appendTagged("profile_characters_like", "char_", profile.CharactersLike)
	appendText("profile_taboo", profile.Taboo)
	appendTagged("profile_afterfeel", "after_", profile.Afterfeel)

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
