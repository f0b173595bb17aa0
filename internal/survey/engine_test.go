package survey

import (
	"context"
	"testing"
)

func newTestEngine() *Engine {
	return NewEngine(NewMemoryStore(), BaseDefinition(), DynamicDefinition())
}

func TestEngineStart(t *testing.T) {
	ctx := context.Background()

	t.Run("returns first step prompt", func(t *testing.T) {
		e := newTestEngine()

		eff, err := e.Start(ctx, 1, BaseSurvey, "uk")
		if err != nil {
			t.Fatalf("start failed: %v", err)
		}
		if eff.Kind != EffectPrompt {
			t.Fatalf("expected prompt effect, got %v", eff.Kind)
		}
		if eff.Step.Key != "emotions_like" {
			t.Errorf("expected first step emotions_like, got %s", eff.Step.Key)
		}
	})

	t.Run("unknown survey is an error", func(t *testing.T) {
		e := newTestEngine()

		if _, err := e.Start(ctx, 1, "unknown", "uk"); err == nil {
			t.Error("expected error for unknown survey")
		}
	})

	t.Run("restart discards in-progress answers", func(t *testing.T) {
		e := newTestEngine()

		if _, err := e.Start(ctx, 1, BaseSurvey, "uk"); err != nil {
			t.Fatalf("start failed: %v", err)
		}
		if _, err := e.HandleCallback(ctx, 1, "base_emo_like", "joy"); err != nil {
			t.Fatalf("toggle failed: %v", err)
		}

		eff, err := e.Start(ctx, 1, BaseSurvey, "uk")
		if err != nil {
			t.Fatalf("restart failed: %v", err)
		}
		if eff.Step.Key != "emotions_like" {
			t.Errorf("expected restart at first step, got %s", eff.Step.Key)
		}
		if len(eff.Selected) != 0 {
			t.Errorf("expected empty selection after restart, got %v", eff.Selected)
		}
	})
}

func TestEngineMultiSelect(t *testing.T) {
	ctx := context.Background()

	t.Run("toggle flips selection and rerenders", func(t *testing.T) {
		e := newTestEngine()
		e.Start(ctx, 1, BaseSurvey, "uk")

		eff, err := e.HandleCallback(ctx, 1, "base_emo_like", "joy")
		if err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
		if eff.Kind != EffectRerender {
			t.Fatalf("expected rerender, got %v", eff.Kind)
		}
		if !eff.Selected["joy"] {
			t.Error("expected joy selected")
		}

		eff, _ = e.HandleCallback(ctx, 1, "base_emo_like", "joy")
		if eff.Selected["joy"] {
			t.Error("expected joy deselected after second toggle")
		}
	})

	t.Run("done with empty selection warns and holds the step", func(t *testing.T) {
		e := newTestEngine()
		e.Start(ctx, 1, BaseSurvey, "uk")

		eff, err := e.HandleCallback(ctx, 1, "base_emo_like", "done")
		if err != nil {
			t.Fatalf("done failed: %v", err)
		}
		if eff.Kind != EffectWarn {
			t.Fatalf("expected warn, got %v", eff.Kind)
		}
		if eff.WarnKey != "min_one_option" {
			t.Errorf("expected min_one_option, got %s", eff.WarnKey)
		}
		if eff.Step.Key != "emotions_like" {
			t.Errorf("expected to stay on emotions_like, got %s", eff.Step.Key)
		}
	})

	t.Run("done commits and advances", func(t *testing.T) {
		e := newTestEngine()
		e.Start(ctx, 1, BaseSurvey, "uk")

		e.HandleCallback(ctx, 1, "base_emo_like", "joy")
		e.HandleCallback(ctx, 1, "base_emo_like", "tension")
		eff, err := e.HandleCallback(ctx, 1, "base_emo_like", "done")
		if err != nil {
			t.Fatalf("done failed: %v", err)
		}
		if eff.Kind != EffectPrompt {
			t.Fatalf("expected next prompt, got %v", eff.Kind)
		}
		if eff.Step.Key != "emotions_dislike" {
			t.Errorf("expected emotions_dislike next, got %s", eff.Step.Key)
		}
	})

	t.Run("optional step accepts empty done", func(t *testing.T) {
		e := newTestEngine()
		e.Start(ctx, 1, BaseSurvey, "uk")
		e.HandleCallback(ctx, 1, "base_emo_like", "joy")
		e.HandleCallback(ctx, 1, "base_emo_like", "done")

		// emotions_dislike allows an empty answer.
		eff, err := e.HandleCallback(ctx, 1, "base_emo_dislike", "done")
		if err != nil {
			t.Fatalf("done failed: %v", err)
		}
		if eff.Kind != EffectPrompt {
			t.Fatalf("expected next prompt, got %v", eff.Kind)
		}
		if eff.Step.Key != "complexity" {
			t.Errorf("expected complexity next, got %s", eff.Step.Key)
		}
	})

	t.Run("unknown option is ignored", func(t *testing.T) {
		e := newTestEngine()
		e.Start(ctx, 1, BaseSurvey, "uk")

		eff, _ := e.HandleCallback(ctx, 1, "base_emo_like", "nonsense")
		if eff.Kind != EffectNone {
			t.Errorf("expected none, got %v", eff.Kind)
		}
	})
}

func TestEngineNamespaceMismatch(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine()
	e.Start(ctx, 1, BaseSurvey, "uk")

	// A stale button from a different step must not advance anything.
	eff, err := e.HandleCallback(ctx, 1, "base_genre_like", "comedy")
	if err != nil {
		t.Fatalf("callback failed: %v", err)
	}
	if eff.Kind != EffectNone {
		t.Errorf("expected none for mismatched namespace, got %v", eff.Kind)
	}
}

func TestEngineSingleSelect(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine()
	e.Start(ctx, 1, DynamicSurvey, "en")

	eff, err := e.HandleCallback(ctx, 1, "dyn_mood", "happy")
	if err != nil {
		t.Fatalf("callback failed: %v", err)
	}
	if eff.Kind != EffectPrompt {
		t.Fatalf("expected prompt, got %v", eff.Kind)
	}
	if eff.Step.Key != "energy" {
		t.Errorf("expected energy next, got %s", eff.Step.Key)
	}
}

func TestEngineTextStep(t *testing.T) {
	ctx := context.Background()

	walkToTaboo := func(t *testing.T, e *Engine) {
		t.Helper()
		e.Start(ctx, 1, BaseSurvey, "uk")
		e.HandleCallback(ctx, 1, "base_emo_like", "joy")
		e.HandleCallback(ctx, 1, "base_emo_like", "done")
		e.HandleCallback(ctx, 1, "base_emo_dislike", "done")
		e.HandleCallback(ctx, 1, "base_complexity", "simple")
		e.HandleText(ctx, 1, "Inception, Interstellar")
		e.HandleCallback(ctx, 1, "base_genre_like", "scifi")
		e.HandleCallback(ctx, 1, "base_genre_like", "done")
		e.HandleCallback(ctx, 1, "base_visual", "dark")
		e.HandleCallback(ctx, 1, "base_visual", "done")
		e.HandleCallback(ctx, 1, "base_char_like", "genius")
		e.HandleCallback(ctx, 1, "base_char_like", "done")
	}

	t.Run("text outside a text step is ignored", func(t *testing.T) {
		e := newTestEngine()
		e.Start(ctx, 1, BaseSurvey, "uk")

		eff, err := e.HandleText(ctx, 1, "hello")
		if err != nil {
			t.Fatalf("text failed: %v", err)
		}
		if eff.Kind != EffectNone {
			t.Errorf("expected none, got %v", eff.Kind)
		}
	})

	t.Run("denylisted answer stores empty", func(t *testing.T) {
		e := newTestEngine()
		walkToTaboo(t, e)

		eff, err := e.HandleText(ctx, 1, "  Nothing ")
		if err != nil {
			t.Fatalf("text failed: %v", err)
		}
		if eff.Kind != EffectPrompt {
			t.Fatalf("expected prompt, got %v", eff.Kind)
		}

		state, err := e.store.Get(ctx, 1)
		if err != nil {
			t.Fatalf("state load failed: %v", err)
		}
		if got := state.Answers["taboo"]; len(got) != 1 || got[0] != "" {
			t.Errorf("expected empty taboo answer, got %v", got)
		}
	})

	t.Run("skip button stores empty", func(t *testing.T) {
		e := newTestEngine()
		walkToTaboo(t, e)

		eff, err := e.HandleCallback(ctx, 1, "base_taboo", "skip")
		if err != nil {
			t.Fatalf("skip failed: %v", err)
		}
		if eff.Kind != EffectPrompt {
			t.Fatalf("expected prompt, got %v", eff.Kind)
		}
	})
}

func TestEngineFullDynamicWalk(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine()
	e.Start(ctx, 42, DynamicSurvey, "en")

	e.HandleCallback(ctx, 42, "dyn_mood", "sad")
	e.HandleCallback(ctx, 42, "dyn_energy", "low")
	e.HandleCallback(ctx, 42, "dyn_company", "alone")
	e.HandleCallback(ctx, 42, "dyn_time", "medium")
	e.HandleCallback(ctx, 42, "dyn_seen", "new")

	eff, err := e.HandleText(ctx, 42, "something with dragons")
	if err != nil {
		t.Fatalf("final answer failed: %v", err)
	}
	if eff.Kind != EffectComplete {
		t.Fatalf("expected complete, got %v", eff.Kind)
	}
	if eff.Survey != DynamicSurvey {
		t.Errorf("expected dynamic survey, got %s", eff.Survey)
	}

	answers := BuildDynamicAnswers(eff.Answers)
	if answers.Mood != "sad" {
		t.Errorf("expected mood sad, got %s", answers.Mood)
	}
	if answers.SpecificRequest != "something with dragons" {
		t.Errorf("unexpected specific request %q", answers.SpecificRequest)
	}

	// Completion clears conversation state.
	if _, active, _ := e.Active(ctx, 42); active {
		t.Error("expected no active survey after completion")
	}
}

func TestEngineAbort(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine()
	e.Start(ctx, 7, BaseSurvey, "uk")

	if err := e.Abort(ctx, 7); err != nil {
		t.Fatalf("abort failed: %v", err)
	}
	if _, active, _ := e.Active(ctx, 7); active {
		t.Error("expected no active survey after abort")
	}

	eff, _ := e.HandleCallback(ctx, 7, "base_emo_like", "joy")
	if eff.Kind != EffectNone {
		t.Errorf("expected none after abort, got %v", eff.Kind)
	}
}
