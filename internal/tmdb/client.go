package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/borissavenets/RecoFilmBot/internal/models"
)

// Client is the TMDB API client.
type Client struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	http         *http.Client
}

// NewClient creates a new TMDB API client.
func NewClient(apiKey, baseURL, imageBaseURL string) *Client {
	return &Client{
		apiKey:       apiKey,
		baseURL:      strings.TrimRight(baseURL, "/"),
		imageBaseURL: strings.TrimRight(imageBaseURL, "/"),
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ---- TMDB response types (internal, not exposed to consumers) ----

type searchResponse struct {
	Page    int           `json:"page"`
	Results []SearchMovie `json:"results"`
}

// SearchMovie is a movie from TMDB search/discover results.
type SearchMovie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	Popularity  float64 `json:"popularity"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	GenreIDs    []int   `json:"genre_ids"`
}

// Year returns the movie's release year, or empty when unknown.
func (m SearchMovie) Year() string {
	if len(m.ReleaseDate) >= 4 {
		return m.ReleaseDate[:4]
	}
	return ""
}

type movieDetailResponse struct {
	ID                  int     `json:"id"`
	Title               string  `json:"title"`
	OriginalTitle       string  `json:"original_title"`
	Overview            string  `json:"overview"`
	ReleaseDate         string  `json:"release_date"`
	Runtime             int     `json:"runtime"`
	VoteAverage         float64 `json:"vote_average"`
	PosterPath          string  `json:"poster_path"`
	Tagline             string  `json:"tagline"`
	Genres              []genre `json:"genres"`
	ProductionCountries []struct {
		Name string `json:"name"`
	} `json:"production_countries"`
	Credits struct {
		Cast []struct {
			Name string `json:"name"`
		} `json:"cast"`
		Crew []struct {
			Name string `json:"name"`
			Job  string `json:"job"`
		} `json:"crew"`
	} `json:"credits"`
}

type genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type videosResponse struct {
	Results []video `json:"results"`
}

type video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// ---- Client methods ----

// SearchMovie searches movies by title in the given locale. Results come back
// in TMDB's relevance order.
func (c *Client) SearchMovie(ctx context.Context, title, locale string) ([]SearchMovie, error) {
	params := url.Values{}
	params.Set("query", title)
	params.Set("language", locale)

	var result searchResponse
	if err := c.get(ctx, "/search/movie", params, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// GetMovieDetails fetches a full movie record with credits. Returns nil when
// the movie cannot be fetched.
func (c *Client) GetMovieDetails(ctx context.Context, tmdbID int, locale string) (*models.MovieDetail, error) {
	params := url.Values{}
	params.Set("language", locale)
	params.Set("append_to_response", "credits")

	var data movieDetailResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", tmdbID), params, &data); err != nil {
		return nil, err
	}

	detail := &models.MovieDetail{
		ID:            data.ID,
		Title:         data.Title,
		OriginalTitle: data.OriginalTitle,
		Overview:      data.Overview,
		ReleaseDate:   data.ReleaseDate,
		Runtime:       data.Runtime,
		VoteAverage:   roundVote(data.VoteAverage),
		Tagline:       data.Tagline,
	}
	if len(data.ReleaseDate) >= 4 {
		detail.Year = data.ReleaseDate[:4]
	}
	if data.PosterPath != "" {
		detail.PosterURL = c.imageBaseURL + data.PosterPath
	}
	for _, g := range data.Genres {
		detail.Genres = append(detail.Genres, g.Name)
	}
	for _, country := range data.ProductionCountries {
		detail.ProductionCountries = append(detail.ProductionCountries, country.Name)
	}
	for _, crew := range data.Credits.Crew {
		if crew.Job == "Director" {
			detail.Directors = append(detail.Directors, crew.Name)
		}
	}
	for i, cast := range data.Credits.Cast {
		if i >= 5 {
			break
		}
		detail.Cast = append(detail.Cast, cast.Name)
	}

	return detail, nil
}

// GetMovieTrailer returns a YouTube trailer URL for a movie, or empty string
// when none is found. Falls back to en-US when the primary locale has no
// videos, and to any YouTube video when there is no proper trailer.
func (c *Client) GetMovieTrailer(ctx context.Context, tmdbID int, locale string) (string, error) {
	videos, err := c.movieVideos(ctx, tmdbID, locale)
	if err != nil {
		return "", err
	}
	if len(videos) == 0 && locale != "en-US" {
		videos, err = c.movieVideos(ctx, tmdbID, "en-US")
		if err != nil {
			return "", err
		}
	}

	for _, v := range videos {
		if v.Type == "Trailer" && v.Site == "YouTube" {
			return "https://www.youtube.com/watch?v=" + v.Key, nil
		}
	}
	for _, v := range videos {
		if v.Site == "YouTube" {
			return "https://www.youtube.com/watch?v=" + v.Key, nil
		}
	}
	return "", nil
}

func (c *Client) movieVideos(ctx context.Context, tmdbID int, locale string) ([]video, error) {
	params := url.Values{}
	params.Set("language", locale)

	var result videosResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/videos", tmdbID), params, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// DiscoverMovies queries the discover endpoint filtered by genres and a
// minimum vote average, sorted by popularity.
func (c *Client) DiscoverMovies(ctx context.Context, genreIDs []int, minVoteAverage float64, locale string) ([]SearchMovie, error) {
	params := url.Values{}
	params.Set("language", locale)
	params.Set("sort_by", "popularity.desc")
	params.Set("include_adult", "false")
	params.Set("page", "1")
	if len(genreIDs) > 0 {
		ids := make([]string, len(genreIDs))
		for i, id := range genreIDs {
			ids[i] = strconv.Itoa(id)
		}
		params.Set("with_genres", strings.Join(ids, ","))
	}
	if minVoteAverage > 0 {
		params.Set("vote_average.gte", strconv.FormatFloat(minVoteAverage, 'f', -1, 64))
	}

	var result searchResponse
	if err := c.get(ctx, "/discover/movie", params, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// GetPopularMovies returns TMDB's popular listing for the locale.
func (c *Client) GetPopularMovies(ctx context.Context, locale string) ([]SearchMovie, error) {
	params := url.Values{}
	params.Set("language", locale)
	params.Set("page", "1")

	var result searchResponse
	if err := c.get(ctx, "/movie/popular", params, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// GetGenreList returns the TMDB genre id to localized name mapping.
func (c *Client) GetGenreList(ctx context.Context, locale string) (map[int]string, error) {
	params := url.Values{}
	params.Set("language", locale)

	var result struct {
		Genres []genre `json:"genres"`
	}
	if err := c.get(ctx, "/genre/movie/list", params, &result); err != nil {
		return nil, err
	}

	genres := make(map[int]string, len(result.Genres))
	for _, g := range result.Genres {
		genres[g.ID] = g.Name
	}
	return genres, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	params.Set("api_key", c.apiKey)
	reqURL := c.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	slog.Debug("fetching TMDB", "endpoint", endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("TMDB API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode TMDB response: %w", err)
	}
	return nil
}

func roundVote(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
