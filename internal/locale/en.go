package locale

var enTexts = map[string]string{
	// Start & language
	"welcome":         "Hi! I'm RecoFilm Bot - your personal movie advisor.",
	"choose_language": "Оберіть мову / Choose language:",
	"language_set":    "Language set: English",

	// Main menu
	"main_menu":           "Main menu",
	"btn_find_movie":      "Find a movie",
	"btn_my_profile":      "My profile",
	"btn_saved":           "Saved",
	"btn_update_profile":  "Update profile",
	"btn_change_language": "Change language",

	// Base survey
	"base_survey_intro":    "Let's create your movie profile first. This will help me understand your tastes better. Be honest!",
	"base_survey_complete": "Great! Your profile is created.",
	"try_find_movie":       "Now try clicking «Find a movie» - I'll pick something special for you!",

	"base_q_emotions_like":    "What emotions do you enjoy feeling most while watching a movie?",
	"base_q_emotions_dislike": "What emotions do you NOT want to feel?",
	"base_q_complexity":       "What level of plot complexity do you prefer?",
	"base_q_favorite_movies":  "Name 3-5 movies you really liked (comma separated):",
	"base_q_genres":           "What genres do you like?",
	"base_q_visual":           "What visual style do you prefer?",
	"base_q_characters_like":  "What types of characters do you like?",
	"base_q_taboo":            "Is there anything that should definitely NOT be in a movie? (type or 'nothing')",
	"base_q_afterfeel":        "What do you want to feel after watching?",

	// Emotion options
	"emo_joy":         "Joy",
	"emo_excitement":  "Excitement",
	"emo_tension":     "Tension",
	"emo_fear":        "Fear",
	"emo_sadness":     "Sadness",
	"emo_inspiration": "Inspiration",
	"emo_romance":     "Romance",
	"emo_nostalgia":   "Nostalgia",
	"emo_curiosity":   "Curiosity",
	"emo_relaxation":  "Relaxation",

	// Complexity options
	"complexity_simple":  "Simple (easy to watch)",
	"complexity_medium":  "Medium",
	"complexity_complex": "Complex (multiple storylines, symbolism)",
	"complexity_any":     "Any",

	// Genre options
	"genre_action":      "Action",
	"genre_comedy":      "Comedy",
	"genre_drama":       "Drama",
	"genre_horror":      "Horror",
	"genre_scifi":       "Sci-Fi",
	"genre_fantasy":     "Fantasy",
	"genre_thriller":    "Thriller",
	"genre_romance":     "Romance",
	"genre_animation":   "Animation",
	"genre_documentary": "Documentary",
	"genre_crime":       "Crime",
	"genre_mystery":     "Mystery",
	"genre_adventure":   "Adventure",
	"genre_family":      "Family",
	"genre_war":         "War",
	"genre_history":     "History",

	// Visual style options
	"visual_realistic":  "Realistic",
	"visual_stylized":   "Stylized",
	"visual_dark":       "Dark/gloomy",
	"visual_bright":     "Bright/colorful",
	"visual_minimalist": "Minimalist",
	"visual_any":        "Doesn't matter",

	// Character options
	"char_hero":     "Hero",
	"char_antihero": "Antihero",
	"char_villain":  "Villain",
	"char_ordinary": "Ordinary person",
	"char_genius":   "Genius",
	"char_rebel":    "Rebel",
	"char_romantic": "Romantic",
	"char_comic":    "Comic",

	// Afterfeel options
	"after_motivated": "Motivation to act",
	"after_think":     "Desire to think",
	"after_calm":      "Calmness",
	"after_discuss":   "Desire to discuss",
	"after_rewatch":   "Desire to rewatch",
	"after_nothing":   "Nothing special",

	// Dynamic survey
	"dynamic_intro":      "A few questions will help find the perfect movie for you right now:",
	"dynamic_q_mood":     "What's your mood right now?",
	"dynamic_q_energy":   "How much energy are you willing to spend on watching?",
	"dynamic_q_company":  "Who are you watching with?",
	"dynamic_q_time":     "How much time do you have?",
	"dynamic_q_seen":     "Want something new or proven?",
	"dynamic_q_specific": "Anything specific you want? (type or 'no')",

	// Mood options
	"mood_happy":       "Happy",
	"mood_sad":         "Sad",
	"mood_stressed":    "Stressed",
	"mood_bored":       "Bored",
	"mood_romantic":    "Romantic",
	"mood_adventurous": "Adventurous",
	"mood_thoughtful":  "Thoughtful",
	"mood_tired":       "Tired",

	// Energy options
	"energy_high":   "High (ready for intense)",
	"energy_medium": "Medium",
	"energy_low":    "Low (want to relax)",

	// Company options
	"company_alone":   "Alone",
	"company_partner": "With partner",
	"company_friends": "With friends",
	"company_family":  "With family",
	"company_kids":    "With kids",

	// Time options
	"time_short":  "Up to 1.5 hours",
	"time_medium": "1.5-2 hours",
	"time_long":   "More than 2 hours",
	"time_series": "Can watch a series",

	// New/known options
	"seen_new":     "Something new",
	"seen_classic": "Proven classic",
	"seen_any":     "Doesn't matter",

	// Recommendation
	"searching_movie":      "Looking for the perfect movie for you...",
	"recommendation_title": "I recommend:",
	"movie_year":           "Year",
	"movie_rating":         "Rating",
	"movie_duration":       "Duration",
	"movie_genres":         "Genres",
	"movie_director":       "Director",
	"movie_cast":           "Cast",
	"why_recommend":        "Why I recommend",
	"btn_trailer":          "Trailer",
	"btn_next":             "Next",
	"btn_save":             "Save",
	"btn_saved_mark":       "Saved",
	"btn_new_request":      "New request",
	"movie_saved":          "Movie saved!",

	// Profile
	"your_profile":             "Your profile:",
	"profile_emotions_like":    "Favorite emotions",
	"profile_emotions_dislike": "Unwanted emotions",
	"profile_complexity":       "Complexity",
	"profile_favorite_movies":  "Favorite movies",
	"profile_genres_like":      "Favorite genres",
	"profile_genres_dislike":   "Unwanted genres",
	"profile_visual":           "Visual style",
	"profile_taboo":            "Taboo",
	"profile_characters_like":  "Favorite characters",
	"profile_afterfeel":        "Afterfeel",

	// Saved movies
	"saved_movies_title": "Your saved movies:",
	"no_saved_movies":    "You don't have any saved movies yet.",
	"btn_delete":         "Delete",
	"movie_deleted":      "Movie removed from saved.",

	// Common
	"btn_back":        "Back",
	"btn_skip":        "Skip",
	"btn_done":        "Done",
	"select_multiple": "You can select multiple options:",
	"min_one_option":  "Select at least one option",
	"error_occurred":  "An error occurred. Please try again.",
	"minutes":         "min",
}
