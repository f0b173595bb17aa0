package bot

import (
	"strings"
	"testing"

	"github.com/borissavenets/RecoFilmBot/internal/models"
	"github.com/borissavenets/RecoFilmBot/internal/survey"
)

func TestStepKeyboard(t *testing.T) {
	def := survey.BaseDefinition()

	t.Run("multi step marks selected options and has a done row", func(t *testing.T) {
		step := &def.Steps[0]
		kb := stepKeyboard(step, map[string]bool{"joy": true}, "en")

		if len(kb.InlineKeyboard) != len(step.Options)+1 {
			t.Fatalf("expected %d rows, got %d", len(step.Options)+1, len(kb.InlineKeyboard))
		}

		first := kb.InlineKeyboard[0][0]
		if !strings.HasPrefix(first.Text, "✅ ") {
			t.Errorf("expected checkbox prefix on selected option, got %q", first.Text)
		}
		if *first.CallbackData != "base_emo_like:joy" {
			t.Errorf("unexpected callback %q", *first.CallbackData)
		}

		last := kb.InlineKeyboard[len(kb.InlineKeyboard)-1][0]
		if *last.CallbackData != "base_emo_like:done" {
			t.Errorf("expected done row, got %q", *last.CallbackData)
		}
	})

	t.Run("text step renders only a skip row", func(t *testing.T) {
		var tabooStep *survey.Step
		for i := range def.Steps {
			if def.Steps[i].Key == "taboo" {
				tabooStep = &def.Steps[i]
			}
		}
		kb := stepKeyboard(tabooStep, nil, "en")

		if len(kb.InlineKeyboard) != 1 {
			t.Fatalf("expected one row, got %d", len(kb.InlineKeyboard))
		}
		if *kb.InlineKeyboard[0][0].CallbackData != "base_taboo:skip" {
			t.Errorf("unexpected callback %q", *kb.InlineKeyboard[0][0].CallbackData)
		}
	})
}

func TestSavedMoviesKeyboardPagination(t *testing.T) {
	movies := make([]models.SavedMovie, 12)
	for i := range movies {
		movies[i] = models.SavedMovie{TMDBID: i + 1, Title: "Movie"}
	}

	countRows := func(movies []models.SavedMovie, page int) (items, nav int) {
		kb := savedMoviesKeyboard(movies, "en", page)
		for _, row := range kb.InlineKeyboard {
			data := *row[0].CallbackData
			switch {
			case strings.HasPrefix(data, "saved:view:"):
				items++
			case strings.HasPrefix(data, "saved:page:"):
				nav++
			}
		}
		return items, nav
	}

	t.Run("first page has forward nav only", func(t *testing.T) {
		items, nav := countRows(movies, 0)
		if items != savedPerPage {
			t.Errorf("expected %d items, got %d", savedPerPage, items)
		}
		if nav != 1 {
			t.Errorf("expected one nav button, got %d", nav)
		}
	})

	t.Run("middle page has both directions", func(t *testing.T) {
		kb := savedMoviesKeyboard(movies, "en", 1)
		var navData []string
		for _, row := range kb.InlineKeyboard {
			for _, btn := range row {
				if strings.HasPrefix(*btn.CallbackData, "saved:page:") {
					navData = append(navData, *btn.CallbackData)
				}
			}
		}
		if len(navData) != 2 || navData[0] != "saved:page:0" || navData[1] != "saved:page:2" {
			t.Errorf("unexpected nav buttons %v", navData)
		}
	})

	t.Run("last page has back nav only", func(t *testing.T) {
		items, _ := countRows(movies, 2)
		if items != 2 {
			t.Errorf("expected 2 items on last page, got %d", items)
		}
	})

	t.Run("out of range page shows no items", func(t *testing.T) {
		items, _ := countRows(movies, 10)
		if items != 0 {
			t.Errorf("expected no items, got %d", items)
		}
	})
}

func TestRecommendationKeyboard(t *testing.T) {
	kb := recommendationKeyboard("en", 27205, 12, 7, false, "https://www.youtube.com/watch?v=t")

	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("expected two rows, got %d", len(kb.InlineKeyboard))
	}
	first := kb.InlineKeyboard[0]
	if len(first) != 2 {
		t.Fatalf("expected trailer and save buttons, got %d", len(first))
	}
	if first[0].URL == nil || *first[0].URL != "https://www.youtube.com/watch?v=t" {
		t.Error("expected trailer url button")
	}
	if *first[1].CallbackData != "rec:save:27205:12:7" {
		t.Errorf("unexpected save callback %q", *first[1].CallbackData)
	}

	// Without a trailer the first row only carries the save button.
	kb = recommendationKeyboard("en", 27205, 12, 7, true, "")
	if len(kb.InlineKeyboard[0]) != 1 {
		t.Errorf("expected single button row, got %d", len(kb.InlineKeyboard[0]))
	}
}
