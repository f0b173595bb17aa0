package survey

import (
	"context"
	"fmt"
	"strings"
)

// EffectKind tells the transport what to render after an event.
type EffectKind int

const (
	// EffectNone means the event did not match the current step and was
	// ignored.
	EffectNone EffectKind = iota
	// EffectWarn holds the current step and shows a transient warning.
	EffectWarn
	// EffectRerender re-renders the current step's keyboard (toggle).
	EffectRerender
	// EffectPrompt renders the next step's question.
	EffectPrompt
	// EffectComplete means the survey finished; Answers carries the result.
	EffectComplete
)

// Effect is the engine's instruction to the transport layer.
type Effect struct {
	Kind     EffectKind
	Survey   string
	Lang     string
	Step     *Step
	Selected map[string]bool
	WarnKey  string
	Answers  map[string][]string
}

// Engine walks survey definitions against per-chat conversation state. It is
// transport-agnostic: inbound events arrive as decoded callback or text
// events, outbound instructions leave as Effects.
type Engine struct {
	store StateStore
	defs  map[string]*Definition
}

// NewEngine creates an engine serving the given surveys.
func NewEngine(store StateStore, defs ...*Definition) *Engine {
	byName := make(map[string]*Definition, len(defs))
	for _, d := range defs {
		byName[d.Name] = d
	}
	return &Engine{store: store, defs: byName}
}

// Start begins (or restarts) a survey for the chat and returns the first
// step's prompt. Any in-progress survey state is discarded.
func (e *Engine) Start(ctx context.Context, chatID int64, surveyName, lang string) (*Effect, error) {
	def, ok := e.defs[surveyName]
	if !ok {
		return nil, fmt.Errorf("unknown survey %q", surveyName)
	}

	state := newState(surveyName, lang)
	if err := e.store.Set(ctx, chatID, state); err != nil {
		return nil, err
	}

	return &Effect{
		Kind:     EffectPrompt,
		Survey:   surveyName,
		Lang:     lang,
		Step:     &def.Steps[0],
		Selected: map[string]bool{},
	}, nil
}

// HandleCallback processes a button press carrying (namespace, action).
// Events that do not match the current step's namespace or option set are
// ignored.
func (e *Engine) HandleCallback(ctx context.Context, chatID int64, namespace, action string) (*Effect, error) {
	state, def, step, err := e.current(ctx, chatID)
	if err != nil || step == nil {
		return &Effect{Kind: EffectNone}, err
	}
	if step.Namespace != namespace {
		return &Effect{Kind: EffectNone}, nil
	}

	switch step.Kind {
	case StepMulti:
		if action == "done" {
			if len(state.Selected) == 0 && !step.AllowEmpty {
				return &Effect{
					Kind:    EffectWarn,
					Survey:  state.Survey,
					Lang:    state.Lang,
					Step:    step,
					WarnKey: "min_one_option",
				}, nil
			}
			return e.commit(ctx, chatID, state, def, step, state.Selected)
		}
		if !step.HasOption(action) {
			return &Effect{Kind: EffectNone}, nil
		}
		state.toggle(action)
		if err := e.store.Set(ctx, chatID, state); err != nil {
			return nil, err
		}
		return &Effect{
			Kind:     EffectRerender,
			Survey:   state.Survey,
			Lang:     state.Lang,
			Step:     step,
			Selected: state.selectedSet(),
		}, nil

	case StepSingle:
		if !step.HasOption(action) {
			return &Effect{Kind: EffectNone}, nil
		}
		return e.commit(ctx, chatID, state, def, step, []string{action})

	case StepText:
		if action != "skip" {
			return &Effect{Kind: EffectNone}, nil
		}
		return e.commit(ctx, chatID, state, def, step, []string{""})
	}

	return &Effect{Kind: EffectNone}, nil
}

// HandleText processes a free-text message. Only text steps accept one.
func (e *Engine) HandleText(ctx context.Context, chatID int64, text string) (*Effect, error) {
	state, def, step, err := e.current(ctx, chatID)
	if err != nil || step == nil {
		return &Effect{Kind: EffectNone}, err
	}
	if step.Kind != StepText {
		return &Effect{Kind: EffectNone}, nil
	}

	answer := strings.TrimSpace(text)
	lowered := strings.ToLower(answer)
	for _, deny := range step.Denylist {
		if lowered == deny {
			answer = ""
			break
		}
	}

	return e.commit(ctx, chatID, state, def, step, []string{answer})
}

// Active reports whether the chat has a survey in progress and its name.
func (e *Engine) Active(ctx context.Context, chatID int64) (string, bool, error) {
	state, err := e.store.Get(ctx, chatID)
	if err != nil || state == nil {
		return "", false, err
	}
	return state.Survey, true, nil
}

// Abort drops any in-progress survey state for the chat.
func (e *Engine) Abort(ctx context.Context, chatID int64) error {
	return e.store.Clear(ctx, chatID)
}

func (e *Engine) current(ctx context.Context, chatID int64) (*State, *Definition, *Step, error) {
	state, err := e.store.Get(ctx, chatID)
	if err != nil {
		return nil, nil, nil, err
	}
	if state == nil {
		return nil, nil, nil, nil
	}
	def, ok := e.defs[state.Survey]
	if !ok || state.Step >= len(def.Steps) {
		return nil, nil, nil, nil
	}
	return state, def, &def.Steps[state.Step], nil
}

// commit stores the step's answer, clears the working set, and advances.
// Finishing the last step clears conversation state and returns the
// accumulated answers.
func (e *Engine) commit(ctx context.Context, chatID int64, state *State, def *Definition, step *Step, answer []string) (*Effect, error) {
	state.Answers[step.Key] = answer
	state.Selected = nil
	state.Step++

	if state.Step >= len(def.Steps) {
		if err := e.store.Clear(ctx, chatID); err != nil {
			return nil, err
		}
		return &Effect{
			Kind:    EffectComplete,
			Survey:  state.Survey,
			Lang:    state.Lang,
			Answers: state.Answers,
		}, nil
	}

	if err := e.store.Set(ctx, chatID, state); err != nil {
		return nil, err
	}
	return &Effect{
		Kind:     EffectPrompt,
		Survey:   state.Survey,
		Lang:     state.Lang,
		Step:     &def.Steps[state.Step],
		Selected: map[string]bool{},
	}, nil
}
