package locale

var ukTexts = map[string]string{
	// Start & language
	"welcome":         "Привіт! Я RecoFilm Bot - твій персональний кіно-порадник.",
	"choose_language": "Оберіть мову / Choose language:",
	"language_set":    "Мову встановлено: Українська",

	// Main menu
	"main_menu":           "Головне меню",
	"btn_find_movie":      "Підібрати фільм",
	"btn_my_profile":      "Мій профіль",
	"btn_saved":           "Збережене",
	"btn_update_profile":  "Оновити профіль",
	"btn_change_language": "Змінити мову",

	// Base survey
	"base_survey_intro":    "Для початку давай створимо твій кінопрофіль. Це допоможе мені краще розуміти твої смаки. Відповідай чесно!",
	"base_survey_complete": "Чудово! Твій профіль створено.",
	"try_find_movie":       "Тепер спробуй натиснути «Підібрати фільм» - я знайду щось особливе для тебе!",

	"base_q_emotions_like":    "Які емоції ти найбільше любиш відчувати під час перегляду фільму?",
	"base_q_emotions_dislike": "Які емоції ти НЕ хочеш відчувати?",
	"base_q_complexity":       "Який рівень складності сюжету тобі подобається?",
	"base_q_favorite_movies":  "Назви 3-5 фільмів, які тобі дуже сподобались (через кому):",
	"base_q_genres":           "Які жанри тобі подобаються?",
	"base_q_visual":           "Який візуальний стиль тобі подобається?",
	"base_q_characters_like":  "Які типи персонажів тобі подобаються?",
	"base_q_taboo":            "Чи є щось, чого точно НЕ має бути у фільмі? (напиши або 'нічого')",
	"base_q_afterfeel":        "Що ти хочеш відчувати після перегляду?",

	// Emotion options
	"emo_joy":         "Радість",
	"emo_excitement":  "Захват",
	"emo_tension":     "Напруга",
	"emo_fear":        "Страх",
	"emo_sadness":     "Смуток",
	"emo_inspiration": "Натхнення",
	"emo_romance":     "Романтика",
	"emo_nostalgia":   "Ностальгія",
	"emo_curiosity":   "Цікавість",
	"emo_relaxation":  "Розслаблення",

	// Complexity options
	"complexity_simple":  "Простий (легкий для перегляду)",
	"complexity_medium":  "Середній",
	"complexity_complex": "Складний (багато ліній, символізм)",
	"complexity_any":     "Будь-який",

	// Genre options
	"genre_action":      "Бойовик",
	"genre_comedy":      "Комедія",
	"genre_drama":       "Драма",
	"genre_horror":      "Жахи",
	"genre_scifi":       "Фантастика",
	"genre_fantasy":     "Фентезі",
	"genre_thriller":    "Трилер",
	"genre_romance":     "Мелодрама",
	"genre_animation":   "Анімація",
	"genre_documentary": "Документальний",
	"genre_crime":       "Кримінал",
	"genre_mystery":     "Детектив",
	"genre_adventure":   "Пригоди",
	"genre_family":      "Сімейний",
	"genre_war":         "Воєнний",
	"genre_history":     "Історичний",

	// Visual style options
	"visual_realistic":  "Реалістичний",
	"visual_stylized":   "Стилізований",
	"visual_dark":       "Темний/похмурий",
	"visual_bright":     "Яскравий/барвистий",
	"visual_minimalist": "Мінімалістичний",
	"visual_any":        "Не має значення",

	// Character options
	"char_hero":     "Герой",
	"char_antihero": "Антигерой",
	"char_villain":  "Лиходій",
	"char_ordinary": "Звичайна людина",
	"char_genius":   "Геній",
	"char_rebel":    "Бунтар",
	"char_romantic": "Романтик",
	"char_comic":    "Комік",

	// Afterfeel options
	"after_motivated": "Мотивація діяти",
	"after_think":     "Бажання подумати",
	"after_calm":      "Спокій",
	"after_discuss":   "Бажання обговорити",
	"after_rewatch":   "Бажання переглянути ще раз",
	"after_nothing":   "Нічого особливого",

	// Dynamic survey
	"dynamic_intro":      "Відповідь на кілька питань допоможе підібрати ідеальний фільм саме зараз:",
	"dynamic_q_mood":     "Який у тебе зараз настрій?",
	"dynamic_q_energy":   "Скільки енергії ти готовий витратити на перегляд?",
	"dynamic_q_company":  "З ким плануєш дивитись?",
	"dynamic_q_time":     "Скільки часу маєш?",
	"dynamic_q_seen":     "Хочеш щось нове чи перевірене?",
	"dynamic_q_specific": "Є щось конкретне, чого хочеться? (напиши або 'ні')",

	// Mood options
	"mood_happy":       "Веселий",
	"mood_sad":         "Сумний",
	"mood_stressed":    "Напружений",
	"mood_bored":       "Нудьгую",
	"mood_romantic":    "Романтичний",
	"mood_adventurous": "Авантюрний",
	"mood_thoughtful":  "Задумливий",
	"mood_tired":       "Втомлений",

	// Energy options
	"energy_high":   "Багато (готовий до напруженого)",
	"energy_medium": "Середньо",
	"energy_low":    "Мало (хочу розслабитись)",

	// Company options
	"company_alone":   "Сам/сама",
	"company_partner": "З партнером",
	"company_friends": "З друзями",
	"company_family":  "З родиною",
	"company_kids":    "З дітьми",

	// Time options
	"time_short":  "До 1.5 години",
	"time_medium": "1.5-2 години",
	"time_long":   "Більше 2 годин",
	"time_series": "Можу серіал",

	// New/known options
	"seen_new":     "Щось нове",
	"seen_classic": "Перевірену класику",
	"seen_any":     "Не має значення",

	// Recommendation
	"searching_movie":      "Шукаю ідеальний фільм для тебе...",
	"recommendation_title": "Рекомендую тобі:",
	"movie_year":           "Рік",
	"movie_rating":         "Рейтинг",
	"movie_duration":       "Тривалість",
	"movie_genres":         "Жанри",
	"movie_director":       "Режисер",
	"movie_cast":           "Актори",
	"why_recommend":        "Чому рекомендую",
	"btn_trailer":          "Трейлер",
	"btn_next":             "Наступний",
	"btn_save":             "Зберегти",
	"btn_saved_mark":       "Збережено",
	"btn_new_request":      "Інший запит",
	"movie_saved":          "Фільм збережено!",

	// Profile
	"your_profile":             "Твій профіль:",
	"profile_emotions_like":    "Улюблені емоції",
	"profile_emotions_dislike": "Небажані емоції",
	"profile_complexity":       "Складність",
	"profile_favorite_movies":  "Улюблені фільми",
	"profile_genres_like":      "Улюблені жанри",
	"profile_genres_dislike":   "Небажані жанри",
	"profile_visual":           "Візуальний стиль",
	"profile_taboo":            "Табу",
	"profile_characters_like":  "Улюблені персонажі",
	"profile_afterfeel":        "Післясмак",

	// Saved movies
	"saved_movies_title": "Твої збережені фільми:",
	"no_saved_movies":    "У тебе поки немає збережених фільмів.",
	"btn_delete":         "Видалити",
	"movie_deleted":      "Фільм видалено зі збережених.",

	// Common
	"btn_back":        "Назад",
	"btn_skip":        "Пропустити",
	"btn_done":        "Готово",
	"select_multiple": "Можеш обрати кілька варіантів:",
	"min_one_option":  "Обери хоча б один варіант",
	"error_occurred":  "Сталася помилка. Спробуй ще раз.",
	"minutes":         "хв",
}
