package recommend

// moodReasons maps the contextual mood answer to a fixed fallback reason,
// used when the recommendation comes from deterministic discovery rather
// than the model. Unknown moods get an empty reason.
var moodReasons = map[string]map[string]string{
	"uk": {
		"happy":       "Цей фільм підійде для гарного настрою!",
		"sad":         "Цей фільм допоможе відволіктися.",
		"stressed":    "Розслабся і насолоджуйся переглядом.",
		"bored":       "Цей фільм точно не дасть тобі нудьгувати!",
		"romantic":    "Ідеально для романтичного вечора.",
		"adventurous": "Приготуйся до пригод!",
		"thoughtful":  "Цей фільм дасть тобі про що подумати.",
		"tired":       "Легкий для перегляду після важкого дня.",
	},
	"en": {
		"happy":       "This movie is great for a good mood!",
		"sad":         "This movie will help distract you.",
		"stressed":    "Relax and enjoy watching.",
		"bored":       "This movie won't let you get bored!",
		"romantic":    "Perfect for a romantic evening.",
		"adventurous": "Get ready for adventure!",
		"thoughtful":  "This movie will give you something to think about.",
		"tired":       "Easy to watch after a hard day.",
	},
}

// MoodReason returns the fixed reason string for a mood, or empty string.
func MoodReason(mood, lang string) string {
	table, ok := moodReasons[lang]
	if !ok {
		table = moodReasons["uk"]
	}
	return table[mood]
}
