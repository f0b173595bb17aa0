package survey

// Base survey name.
const BaseSurvey = "base"

var emotionOptions = options(
	[2]string{"joy", "emo_joy"},
	[2]string{"excitement", "emo_excitement"},
	[2]string{"tension", "emo_tension"},
	[2]string{"fear", "emo_fear"},
	[2]string{"sadness", "emo_sadness"},
	[2]string{"inspiration", "emo_inspiration"},
	[2]string{"romance", "emo_romance"},
	[2]string{"nostalgia", "emo_nostalgia"},
	[2]string{"curiosity", "emo_curiosity"},
	[2]string{"relaxation", "emo_relaxation"},
)

var complexityOptions = options(
	[2]string{"simple", "complexity_simple"},
	[2]string{"medium", "complexity_medium"},
	[2]string{"complex", "complexity_complex"},
	[2]string{"any", "complexity_any"},
)

var genreOptions = options(
	[2]string{"action", "genre_action"},
	[2]string{"comedy", "genre_comedy"},
	[2]string{"drama", "genre_drama"},
	[2]string{"horror", "genre_horror"},
	[2]string{"scifi", "genre_scifi"},
	[2]string{"fantasy", "genre_fantasy"},
	[2]string{"thriller", "genre_thriller"},
	[2]string{"romance", "genre_romance"},
	[2]string{"animation", "genre_animation"},
	[2]string{"documentary", "genre_documentary"},
	[2]string{"crime", "genre_crime"},
	[2]string{"mystery", "genre_mystery"},
	[2]string{"adventure", "genre_adventure"},
	[2]string{"family", "genre_family"},
	[2]string{"war", "genre_war"},
	[2]string{"history", "genre_history"},
)

var visualOptions = options(
	[2]string{"realistic", "visual_realistic"},
	[2]string{"stylized", "visual_stylized"},
	[2]string{"dark", "visual_dark"},
	[2]string{"bright", "visual_bright"},
	[2]string{"minimalist", "visual_minimalist"},
	[2]string{"any", "visual_any"},
)

var characterOptions = options(
	[2]string{"hero", "char_hero"},
	[2]string{"antihero", "char_antihero"},
	[2]string{"villain", "char_villain"},
	[2]string{"ordinary", "char_ordinary"},
	[2]string{"genius", "char_genius"},
	[2]string{"rebel", "char_rebel"},
	[2]string{"romantic", "char_romantic"},
	[2]string{"comic", "char_comic"},
)

var afterfeelOptions = options(
	[2]string{"motivated", "after_motivated"},
	[2]string{"think", "after_think"},
	[2]string{"calm", "after_calm"},
	[2]string{"discuss", "after_discuss"},
	[2]string{"rewatch", "after_rewatch"},
	[2]string{"nothing", "after_nothing"},
)

// tabooDenylist covers "nothing/no" answers in both supported languages.
var tabooDenylist = []string{"нічого", "nothing", "ні", "no", "пропустити", "skip"}

// BaseDefinition returns the onboarding survey.
func BaseDefinition() *Definition {
	return &Definition{
		Name: BaseSurvey,
		Steps: []Step{
			{
				Key:       "emotions_like",
				Namespace: "base_emo_like",
				Kind:      StepMulti,
				PromptKey: "base_q_emotions_like",
				Options:   emotionOptions,
			},
			{
				Key:        "emotions_dislike",
				Namespace:  "base_emo_dislike",
				Kind:       StepMulti,
				PromptKey:  "base_q_emotions_dislike",
				Options:    emotionOptions,
				AllowEmpty: true,
			},
			{
				Key:       "complexity",
				Namespace: "base_complexity",
				Kind:      StepSingle,
				PromptKey: "base_q_complexity",
				Options:   complexityOptions,
			},
			{
				Key:       "favorite_movies",
				Namespace: "base_favorite",
				Kind:      StepText,
				PromptKey: "base_q_favorite_movies",
			},
			{
				Key:       "genres_like",
				Namespace: "base_genre_like",
				Kind:      StepMulti,
				PromptKey: "base_q_genres",
				Options:   genreOptions,
			},
			{
				Key:       "visual_style",
				Namespace: "base_visual",
				Kind:      StepMulti,
				PromptKey: "base_q_visual",
				Options:   visualOptions,
			},
			{
				Key:       "characters_like",
				Namespace: "base_char_like",
				Kind:      StepMulti,
				PromptKey: "base_q_characters_like",
				Options:   characterOptions,
			},
			{
				Key:       "taboo",
				Namespace: "base_taboo",
				Kind:      StepText,
				PromptKey: "base_q_taboo",
				Denylist:  tabooDenylist,
			},
			{
				Key:       "afterfeel",
				Namespace: "base_afterfeel",
				Kind:      StepMulti,
				PromptKey: "base_q_afterfeel",
				Options:   afterfeelOptions,
			},
		},
	}
}
