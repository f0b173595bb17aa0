// Package locale holds the bot's string tables.
package locale

// Supported languages.
const (
	LangUK = "uk"
	LangEN = "en"
)

var locales = map[string]map[string]string{
	LangUK: ukTexts,
	LangEN: enTexts,
}

// Text returns the localized string for key. Unknown languages fall back to
// Ukrainian, unknown keys fall back to the key itself.
func Text(lang, key string) string {
	texts, ok := locales[lang]
	if !ok {
		texts = ukTexts
	}
	if s, ok := texts[key]; ok {
		return s
	}
	if s, ok := ukTexts[key]; ok {
		return s
	}
	return key
}

// TMDBLocale maps a bot language to a TMDB locale parameter.
func TMDBLocale(lang string) string {
	if lang == LangEN {
		return "en-US"
	}
	return "uk-UA"
}
