package ai

import (
	"strings"
	"testing"

	"github.com/borissavenets/RecoFilmBot/internal/models"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare payload", `[{"title":"Heat"}]`, `[{"title":"Heat"}]`},
		{"plain fences", "```\n[1,2]\n```", "[1,2]"},
		{"json tagged fences", "```json\n[1,2]\n```", "[1,2]"},
		{"surrounding whitespace", "  ```json\n[]\n```  ", "[]"},
		{"leading fence only", "```json\n[]", "[]"},
		{"trailing fence only", "[1,2]\n```", "[1,2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCandidates(t *testing.T) {
	t.Run("valid array", func(t *testing.T) {
		content := "```json\n[{\"title\": \"Whiplash\", \"year\": 2014, \"reason\": \"intense\"}]\n```"

		candidates, err := ParseCandidates(content)
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if len(candidates) != 1 {
			t.Fatalf("expected one candidate, got %d", len(candidates))
		}
		if candidates[0].Title != "Whiplash" || candidates[0].Year != 2014 {
			t.Errorf("unexpected candidate %+v", candidates[0])
		}
	})

	t.Run("missing year decodes as zero", func(t *testing.T) {
		candidates, err := ParseCandidates(`[{"title": "Old Movie", "reason": "classic"}]`)
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if candidates[0].Year != 0 {
			t.Errorf("expected zero year, got %d", candidates[0].Year)
		}
	})

	t.Run("prose reply is an error", func(t *testing.T) {
		if _, err := ParseCandidates("Sure! Here are some movies you might like..."); err == nil {
			t.Error("expected error for non-JSON reply")
		}
	})
}

func TestBuildPrompt(t *testing.T) {
	profile := &models.TasteProfile{
		EmotionsLike:   []string{"joy", "tension"},
		Complexity:     "complex",
		FavoriteMovies: "Inception, Whiplash",
		GenresLike:     []string{"scifi"},
		Taboo:          "violence against animals",
	}
	answers := models.DynamicAnswers{
		Mood:            "thoughtful",
		Energy:          "low",
		SpecificRequest: "something with dragons",
	}

	prompt := BuildPrompt(profile, answers, 5, "uk")

	for _, want := range []string{
		"joy, tension",
		"complex",
		"Inception, Whiplash",
		"violence against animals",
		"thoughtful",
		"something with dragons",
		"recommend 5 movies",
		"Ukrainian",
		"Return ONLY a valid JSON array",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	if !strings.Contains(BuildPrompt(profile, answers, 3, "en"), "English") {
		t.Error("expected English reasons for en")
	}
}
