package survey

import "testing"

func TestBuildProfile(t *testing.T) {
	answers := map[string][]string{
		"emotions_like":    {"joy", "tension"},
		"emotions_dislike": {},
		"complexity":       {"complex"},
		"favorite_movies":  {"Inception, Whiplash"},
		"genres_like":      {"scifi", "drama"},
		"visual_style":     {"dark", "minimalist"},
		"characters_like":  {"genius"},
		"taboo":            {""},
		"afterfeel":        {"think"},
	}

	p := BuildProfile(99, answers)

	if p.UserID != 99 {
		t.Errorf("expected user id 99, got %d", p.UserID)
	}
	if len(p.EmotionsLike) != 2 || p.EmotionsLike[0] != "joy" {
		t.Errorf("unexpected emotions_like %v", p.EmotionsLike)
	}
	if len(p.EmotionsDislike) != 0 {
		t.Errorf("expected empty emotions_dislike, got %v", p.EmotionsDislike)
	}
	if p.Complexity != "complex" {
		t.Errorf("expected complexity complex, got %s", p.Complexity)
	}
	if len(p.VisualStyle) != 2 {
		t.Errorf("expected two visual styles, got %v", p.VisualStyle)
	}
	if p.Taboo != "" {
		t.Errorf("expected empty taboo, got %q", p.Taboo)
	}

	// Dislike-side fields have no collecting step and stay empty.
	if p.DislikedMovies != "" || len(p.GenresDislike) != 0 || len(p.CharactersDislike) != 0 {
		t.Error("expected reserved dislike fields to be empty")
	}
}

func TestBuildProfileDefaults(t *testing.T) {
	p := BuildProfile(1, map[string][]string{})

	if p.Complexity != "any" {
		t.Errorf("expected complexity default any, got %s", p.Complexity)
	}
	if p.EmotionsLike == nil || p.GenresLike == nil {
		t.Error("expected empty slices, not nil")
	}
}

func TestBuildDynamicAnswers(t *testing.T) {
	answers := map[string][]string{
		"mood":             {"bored"},
		"energy":           {"high"},
		"company":          {"friends"},
		"time":             {"long"},
		"seen_preference":  {"classic"},
		"specific_request": {""},
	}

	a := BuildDynamicAnswers(answers)

	if a.Mood != "bored" || a.Energy != "high" || a.Company != "friends" {
		t.Errorf("unexpected answers %+v", a)
	}
	if a.Time != "long" || a.SeenPreference != "classic" {
		t.Errorf("unexpected answers %+v", a)
	}
	if a.SpecificRequest != "" {
		t.Errorf("expected empty specific request, got %q", a.SpecificRequest)
	}
}
