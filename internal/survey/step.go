// Package survey drives the bot's two questionnaire state machines: the base
// (taste profile) survey and the per-request contextual survey. Both are
// described as ordered step tables walked by one generic engine.
package survey

// StepKind describes how a step collects its answer.
type StepKind int

const (
	// StepMulti presents options that toggle in and out of a working set;
	// a "done" press commits the set.
	StepMulti StepKind = iota
	// StepSingle commits on the first option press.
	StepSingle
	// StepText commits an arbitrary text message, or empty on "skip".
	StepText
)

// Option is one selectable answer value with its label locale key.
type Option struct {
	ID       string
	LabelKey string
}

// Step is one question in a survey definition.
type Step struct {
	// Key names the answer this step produces.
	Key string
	// Namespace is the callback-payload namespace the step listens on.
	Namespace string
	Kind      StepKind
	PromptKey string
	Options   []Option
	// AllowEmpty lets a multi-select commit an empty working set.
	AllowEmpty bool
	// Denylist values (lowercased) are normalized to an empty answer on
	// text steps.
	Denylist []string
}

// HasOption reports whether id is a valid option of the step.
func (s *Step) HasOption(id string) bool {
	for _, o := range s.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Definition is an ordered survey.
type Definition struct {
	Name  string
	Steps []Step
}

func options(pairs ...[2]string) []Option {
	opts := make([]Option, len(pairs))
	for i, p := range pairs {
		opts[i] = Option{ID: p[0], LabelKey: p[1]}
	}
	return opts
}
