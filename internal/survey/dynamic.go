package survey

// Dynamic survey name.
const DynamicSurvey = "dynamic"

var moodOptions = options(
	[2]string{"happy", "mood_happy"},
	[2]string{"sad", "mood_sad"},
	[2]string{"stressed", "mood_stressed"},
	[2]string{"bored", "mood_bored"},
	[2]string{"romantic", "mood_romantic"},
	[2]string{"adventurous", "mood_adventurous"},
	[2]string{"thoughtful", "mood_thoughtful"},
	[2]string{"tired", "mood_tired"},
)

var energyOptions = options(
	[2]string{"high", "energy_high"},
	[2]string{"medium", "energy_medium"},
	[2]string{"low", "energy_low"},
)

var companyOptions = options(
	[2]string{"alone", "company_alone"},
	[2]string{"partner", "company_partner"},
	[2]string{"friends", "company_friends"},
	[2]string{"family", "company_family"},
	[2]string{"kids", "company_kids"},
)

var timeOptions = options(
	[2]string{"short", "time_short"},
	[2]string{"medium", "time_medium"},
	[2]string{"long", "time_long"},
	[2]string{"series", "time_series"},
)

var seenOptions = options(
	[2]string{"new", "seen_new"},
	[2]string{"classic", "seen_classic"},
	[2]string{"any", "seen_any"},
)

var specificDenylist = []string{"ні", "no", "немає", "none"}

// DynamicDefinition returns the per-request contextual survey.
func DynamicDefinition() *Definition {
	return &Definition{
		Name: DynamicSurvey,
		Steps: []Step{
			{
				Key:       "mood",
				Namespace: "dyn_mood",
				Kind:      StepSingle,
				PromptKey: "dynamic_q_mood",
				Options:   moodOptions,
			},
			{
				Key:       "energy",
				Namespace: "dyn_energy",
				Kind:      StepSingle,
				PromptKey: "dynamic_q_energy",
				Options:   energyOptions,
			},
			{
				Key:       "company",
				Namespace: "dyn_company",
				Kind:      StepSingle,
				PromptKey: "dynamic_q_company",
				Options:   companyOptions,
			},
			{
				Key:       "time",
				Namespace: "dyn_time",
				Kind:      StepSingle,
				PromptKey: "dynamic_q_time",
				Options:   timeOptions,
			},
			{
				Key:       "seen_preference",
				Namespace: "dyn_seen",
				Kind:      StepSingle,
				PromptKey: "dynamic_q_seen",
				Options:   seenOptions,
			},
			{
				Key:       "specific_request",
				Namespace: "dyn_specific",
				Kind:      StepText,
				PromptKey: "dynamic_q_specific",
				Denylist:  specificDenylist,
			},
		},
	}
}
