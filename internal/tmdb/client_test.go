package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchMovie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("query") != "Inception" {
			t.Errorf("unexpected query %q", q.Get("query"))
		}
		if q.Get("language") != "uk-UA" {
			t.Errorf("unexpected language %q", q.Get("language"))
		}
		if q.Get("api_key") != "test-key" {
			t.Errorf("unexpected api_key %q", q.Get("api_key"))
		}
		w.Write([]byte(`{"page":1,"results":[{"id":27205,"title":"Inception","release_date":"2010-07-15"}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "https://img.example/w500")
	results, err := c.SearchMovie(context.Background(), "Inception", "uk-UA")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != 27205 {
		t.Fatalf("unexpected results %+v", results)
	}
	if results[0].Year() != "2010" {
		t.Errorf("expected year 2010, got %q", results[0].Year())
	}
}

func TestSearchMovieYearMissing(t *testing.T) {
	m := SearchMovie{ReleaseDate: ""}
	if m.Year() != "" {
		t.Errorf("expected empty year, got %q", m.Year())
	}
}

func TestGetMovieDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/27205" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("append_to_response") != "credits" {
			t.Error("expected credits appended")
		}
		w.Write([]byte(`{
			"id": 27205,
			"title": "Початок",
			"original_title": "Inception",
			"release_date": "2010-07-15",
			"runtime": 148,
			"vote_average": 8.37,
			"poster_path": "/poster.jpg",
			"genres": [{"id": 28, "name": "Бойовик"}, {"id": 878, "name": "Фантастика"}],
			"credits": {
				"cast": [{"name":"A"},{"name":"B"},{"name":"C"},{"name":"D"},{"name":"E"},{"name":"F"}],
				"crew": [{"name":"Christopher Nolan","job":"Director"},{"name":"Someone","job":"Producer"}]
			}
		}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "https://img.example/w500")
	movie, err := c.GetMovieDetails(context.Background(), 27205, "uk-UA")
	if err != nil {
		t.Fatalf("details failed: %v", err)
	}

	if movie.Year != "2010" {
		t.Errorf("expected year 2010, got %q", movie.Year)
	}
	if movie.VoteAverage != 8.4 {
		t.Errorf("expected rounded vote 8.4, got %v", movie.VoteAverage)
	}
	if movie.PosterURL != "https://img.example/w500/poster.jpg" {
		t.Errorf("unexpected poster url %q", movie.PosterURL)
	}
	if len(movie.Directors) != 1 || movie.Directors[0] != "Christopher Nolan" {
		t.Errorf("unexpected directors %v", movie.Directors)
	}
	if len(movie.Cast) != 5 {
		t.Errorf("expected cast capped at 5, got %d", len(movie.Cast))
	}
	if len(movie.Genres) != 2 {
		t.Errorf("unexpected genres %v", movie.Genres)
	}
}

func TestGetMovieTrailer(t *testing.T) {
	t.Run("prefers YouTube trailer", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results":[
				{"key":"clip1","site":"YouTube","type":"Clip"},
				{"key":"trailer1","site":"YouTube","type":"Trailer"}
			]}`))
		}))
		defer srv.Close()

		c := NewClient("k", srv.URL, "")
		url, err := c.GetMovieTrailer(context.Background(), 1, "en-US")
		if err != nil {
			t.Fatalf("trailer failed: %v", err)
		}
		if url != "https://www.youtube.com/watch?v=trailer1" {
			t.Errorf("unexpected url %q", url)
		}
	})

	t.Run("falls back to en-US when locale has no videos", func(t *testing.T) {
		var languages []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := r.URL.Query().Get("language")
			languages = append(languages, lang)
			if lang == "en-US" {
				w.Write([]byte(`{"results":[{"key":"t","site":"YouTube","type":"Trailer"}]}`))
				return
			}
			w.Write([]byte(`{"results":[]}`))
		}))
		defer srv.Close()

		c := NewClient("k", srv.URL, "")
		url, err := c.GetMovieTrailer(context.Background(), 1, "uk-UA")
		if err != nil {
			t.Fatalf("trailer failed: %v", err)
		}
		if url != "https://www.youtube.com/watch?v=t" {
			t.Errorf("unexpected url %q", url)
		}
		if len(languages) != 2 || languages[0] != "uk-UA" || languages[1] != "en-US" {
			t.Errorf("unexpected request order %v", languages)
		}
	})

	t.Run("no videos yields empty url", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results":[]}`))
		}))
		defer srv.Close()

		c := NewClient("k", srv.URL, "")
		url, err := c.GetMovieTrailer(context.Background(), 1, "en-US")
		if err != nil {
			t.Fatalf("trailer failed: %v", err)
		}
		if url != "" {
			t.Errorf("expected empty url, got %q", url)
		}
	})
}

func TestDiscoverMovies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("with_genres") != "28,35" {
			t.Errorf("unexpected with_genres %q", q.Get("with_genres"))
		}
		if q.Get("vote_average.gte") != "6.5" {
			t.Errorf("unexpected vote_average.gte %q", q.Get("vote_average.gte"))
		}
		if q.Get("sort_by") != "popularity.desc" {
			t.Errorf("unexpected sort_by %q", q.Get("sort_by"))
		}
		if q.Get("include_adult") != "false" {
			t.Errorf("unexpected include_adult %q", q.Get("include_adult"))
		}
		w.Write([]byte(`{"results":[{"id":1},{"id":2}]}`))
	}))
	defer srv.Close()

	c := NewClient("k", srv.URL, "")
	results, err := c.DiscoverMovies(context.Background(), []int{28, 35}, 6.5, "en-US")
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected two results, got %d", len(results))
	}
}

func TestAPIErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_message":"Invalid API key"}`))
	}))
	defer srv.Close()

	c := NewClient("bad", srv.URL, "")
	if _, err := c.SearchMovie(context.Background(), "x", "en-US"); err == nil {
		t.Error("expected error for non-200 status")
	}
}
