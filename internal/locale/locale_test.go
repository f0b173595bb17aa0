package locale

import "testing"

func TestText(t *testing.T) {
	t.Run("returns localized text", func(t *testing.T) {
		if got := Text(LangEN, "btn_find_movie"); got != "Find a movie" {
			t.Errorf("unexpected text %q", got)
		}
		if got := Text(LangUK, "btn_find_movie"); got == "Find a movie" {
			t.Error("expected Ukrainian text to differ")
		}
	})

	t.Run("unknown language falls back to Ukrainian", func(t *testing.T) {
		if got := Text("de", "btn_find_movie"); got != Text(LangUK, "btn_find_movie") {
			t.Errorf("unexpected fallback %q", got)
		}
	})

	t.Run("unknown key returns the key itself", func(t *testing.T) {
		if got := Text(LangEN, "no_such_key"); got != "no_such_key" {
			t.Errorf("unexpected text %q", got)
		}
	})
}

func TestTMDBLocale(t *testing.T) {
	if got := TMDBLocale(LangUK); got != "uk-UA" {
		t.Errorf("unexpected locale %q", got)
	}
	if got := TMDBLocale(LangEN); got != "en-US" {
		t.Errorf("unexpected locale %q", got)
	}
	if got := TMDBLocale("de"); got != "uk-UA" {
		t.Errorf("expected uk-UA fallback, got %q", got)
	}
}

func TestLocaleTablesAligned(t *testing.T) {
	for key := range ukTexts {
		if _, ok := enTexts[key]; !ok {
			t.Errorf("key %q missing from English table", key)
		}
	}
	for key := range enTexts {
		if _, ok := ukTexts[key]; !ok {
			t.Errorf("key %q missing from Ukrainian table", key)
		}
	}
}
