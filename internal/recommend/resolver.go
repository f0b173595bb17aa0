// Package recommend turns a taste profile and contextual answers into one
// concrete movie record. A model-guided stage proposes titles resolved
// against the catalog; a deterministic discover stage guarantees a result
// whenever the catalog is reachable.
package recommend

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/borissavenets/RecoFilmBot/internal/ai"
	"github.com/borissavenets/RecoFilmBot/internal/locale"
	"github.com/borissavenets/RecoFilmBot/internal/models"
	"github.com/borissavenets/RecoFilmBot/internal/repository"
	"github.com/borissavenets/RecoFilmBot/internal/tmdb"
)

// ErrNoRecommendation means neither resolution stage produced a record.
var ErrNoRecommendation = errors.New("no recommendation found")

// Discovery thresholds.
const (
	minVoteAverage  = 6.5
	maxFallbackGens = 3
	exclusionLimit  = 100
)

// Generator proposes candidate movie titles from a profile and context.
type Generator interface {
	GenerateCandidates(ctx context.Context, profile *models.TasteProfile, answers models.DynamicAnswers, count int, lang string) ([]models.Candidate, error)
}

// Catalog is the movie metadata service the resolver consumes.
type Catalog interface {
	SearchMovie(ctx context.Context, title, locale string) ([]tmdb.SearchMovie, error)
	GetMovieDetails(ctx context.Context, tmdbID int, locale string) (*models.MovieDetail, error)
	GetMovieTrailer(ctx context.Context, tmdbID int, locale string) (string, error)
	DiscoverMovies(ctx context.Context, genreIDs []int, minVoteAverage float64, locale string) ([]tmdb.SearchMovie, error)
	GetPopularMovies(ctx context.Context, locale string) ([]tmdb.SearchMovie, error)
}

// Resolver orchestrates the generator and the catalog.
type Resolver struct {
	generator Generator
	catalog   Catalog
	profiles  *repository.ProfileRepository
	sessions  *repository.SessionRepository
	saved     *repository.SavedRepository
}

// NewResolver creates a Resolver.
func NewResolver(
	generator Generator,
	catalog Catalog,
	profiles *repository.ProfileRepository,
	sessions *repository.SessionRepository,
	saved *repository.SavedRepository,
) *Resolver {
	return &Resolver{
		generator: generator,
		catalog:   catalog,
		profiles:  profiles,
		sessions:  sessions,
		saved:     saved,
	}
}

// resolved is an accepted movie with its attached reason.
type resolved struct {
	movie  *models.MovieDetail
	reason string
}

// Resolve produces one movie record not present in excluded, or
// ErrNoRecommendation. Stages run strictly in order: model-guided first,
// deterministic discovery second.
func (r *Resolver) Resolve(
	ctx context.Context,
	profile *models.TasteProfile,
	answers models.DynamicAnswers,
	excluded []int,
	lang string,
) (*models.MovieDetail, string, error) {
	excludedSet := make(map[int]bool, len(excluded))
	for _, id := range excluded {
		excludedSet[id] = true
	}
	tmdbLocale := locale.TMDBLocale(lang)

	if res := r.resolveFromModel(ctx, profile, answers, excludedSet, tmdbLocale, lang); res != nil {
		return res.movie, res.reason, nil
	}

	slog.Info("using catalog fallback for recommendation")
	if res := r.resolveFromDiscovery(ctx, profile, answers, excludedSet, tmdbLocale, lang); res != nil {
		return res.movie, res.reason, nil
	}

	return nil, "", ErrNoRecommendation
}

// resolveFromModel asks the generator for candidates and resolves them
// against catalog search in the model's order. The first candidate that
// yields a non-excluded, year-consistent full record wins; scanning stops
// there. Generator failures count as zero candidates.
func (r *Resolver) resolveFromModel(
	ctx context.Context,
	profile *models.TasteProfile,
	answers models.DynamicAnswers,
	excluded map[int]bool,
	tmdbLocale, lang string,
) *resolved {
	candidates, err := r.generator.GenerateCandidates(ctx, profile, answers, ai.DefaultCount, lang)
	if err != nil {
		slog.Error("model recommendation failed", "error", err)
		return nil
	}

	for _, cand := range candidates {
		results, err := r.catalog.SearchMovie(ctx, cand.Title, tmdbLocale)
		if err != nil {
			slog.Error("catalog search failed", "title", cand.Title, "error", err)
			continue
		}

		for _, result := range results {
			// Year mismatch rejects only when both sides have one.
			if cand.Year != 0 && result.Year() != "" && strconv.Itoa(cand.Year) != result.Year() {
				continue
			}
			if excluded[result.ID] {
				continue
			}

			movie, err := r.catalog.GetMovieDetails(ctx, result.ID, tmdbLocale)
			if err != nil {
				slog.Error("catalog details failed", "tmdb_id", result.ID, "error", err)
				continue
			}
			if movie != nil {
				return &resolved{movie: movie, reason: cand.Reason}
			}
		}
	}
	return nil
}

// resolveFromDiscovery queries discover filtered by the user's first mapped
// liked genres (or the popular listing when none map) and takes the first
// non-excluded movie whose detail fetch succeeds. The reason comes from the
// fixed mood table.
func (r *Resolver) resolveFromDiscovery(
	ctx context.Context,
	profile *models.TasteProfile,
	answers models.DynamicAnswers,
	excluded map[int]bool,
	tmdbLocale, lang string,
) *resolved {
	genreIDs := GenreIDsFromProfile(profile.GenresLike)
	if len(genreIDs) > maxFallbackGens {
		genreIDs = genreIDs[:maxFallbackGens]
	}

	var (
		listing []tmdb.SearchMovie
		err     error
	)
	if len(genreIDs) > 0 {
		listing, err = r.catalog.DiscoverMovies(ctx, genreIDs, minVoteAverage, tmdbLocale)
	} else {
		listing, err = r.catalog.GetPopularMovies(ctx, tmdbLocale)
	}
	if err != nil {
		slog.Error("catalog discovery failed", "error", err)
		return nil
	}

	for _, result := range listing {
		if excluded[result.ID] {
			continue
		}
		movie, err := r.catalog.GetMovieDetails(ctx, result.ID, tmdbLocale)
		if err != nil {
			slog.Error("catalog details failed", "tmdb_id", result.ID, "error", err)
			continue
		}
		if movie != nil {
			return &resolved{movie: movie, reason: MoodReason(answers.Mood, lang)}
		}
	}
	return nil
}

// GenreIDsFromProfile maps liked-genre tags to TMDB genre ids, keeping the
// stored order and dropping unknown tags.
func GenreIDsFromProfile(genres []string) []int {
	var ids []int
	for _, g := range genres {
		if id, ok := tmdb.GenreIDs[g]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// RecommendForSession runs the full pipeline for one session: load profile,
// recompute the exclusion set, resolve, record the shown movie, and build
// the render-ready card. Trailer lookup is best-effort.
func (r *Resolver) RecommendForSession(
	ctx context.Context,
	userID, sessionID int64,
	answers models.DynamicAnswers,
	lang string,
) (*models.MovieCard, error) {
	profile, err := r.profiles.Get(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNoRecommendation
	}

	excluded, err := r.sessions.ShownMovieIDs(userID, exclusionLimit)
	if err != nil {
		return nil, err
	}

	movie, reason, err := r.Resolve(ctx, profile, answers, excluded, lang)
	if err != nil {
		return nil, err
	}

	recID, err := r.sessions.AddRecommendation(sessionID, movie.ID, movie.Title)
	if err != nil {
		return nil, err
	}

	tmdbLocale := locale.TMDBLocale(lang)
	trailerURL, err := r.catalog.GetMovieTrailer(ctx, movie.ID, tmdbLocale)
	if err != nil {
		slog.Warn("trailer lookup failed", "tmdb_id", movie.ID, "error", err)
		trailerURL = ""
	}

	saved, err := r.saved.IsSaved(userID, movie.ID)
	if err != nil {
		slog.Warn("saved check failed", "tmdb_id", movie.ID, "error", err)
		saved = false
	}

	return &models.MovieCard{
		Movie:            movie,
		Reason:           reason,
		TrailerURL:       trailerURL,
		Saved:            saved,
		RecommendationID: recID,
		SessionID:        sessionID,
	}, nil
}
