package bloom

import (
	"errors"
	"testing"
)

func runningAnimator(t *testing.T) *Animator {
	t.Helper()
	cfg := DefaultConfig()
	cfg.ParticleCount = 10
	a := newTestAnimator(cfg)
	a.Start(400, 300)
	return a
}

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "move", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "preset", "label": "Explosion"},
			{"action": "sweep", "fromX": 0, "fromY": 0, "toX": 40, "toY": 20, "frames": 4, "ease": "inOutQuad"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].Action != "move" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[4].Frames != 4 || runner.steps[4].Ease != "inOutQuad" {
		t.Error("step 4 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	if _, err := LoadScript([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := LoadScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("expected error for empty steps")
	}
	if _, err := LoadScript([]byte(`{"steps": [{"action": "teleport"}]}`)); err == nil {
		t.Error("expected error for unknown action")
	}
	if _, err := LoadScript([]byte(`{"steps": [{"action": "resize", "width": 0, "height": 10}]}`)); err == nil {
		t.Error("expected error for empty resize")
	}
	_, err := LoadScript([]byte(`{"steps": [{"action": "preset", "label": "Lava"}]}`))
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("err = %v, want ErrUnknownPreset", err)
	}
}

func TestRunnerStep_MoveLeave(t *testing.T) {
	a := runningAnimator(t)
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "move", "x": 10, "y": 20},
		{"action": "leave"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.Step(a)
	if pos, ok := a.Pointer(); !ok || pos != (Vec2{10, 20}) {
		t.Errorf("pointer = %v, %v", pos, ok)
	}
	if runner.Done() {
		t.Error("runner should not be done after first step")
	}

	runner.Step(a)
	if _, ok := a.Pointer(); ok {
		t.Error("pointer still known after leave step")
	}
	if !runner.Done() {
		t.Error("runner should be done after last step")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	a := runningAnimator(t)
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	var shots []string
	runner.Screenshot = func(label string) { shots = append(shots, label) }

	// Frame 1: execute wait (waitCount becomes 2).
	runner.Step(a)
	// Frames 2 and 3: count down.
	runner.Step(a)
	runner.Step(a)
	if runner.Done() || len(shots) != 0 {
		t.Fatal("screenshot step should not run during wait")
	}

	// Frame 4: execute screenshot step, runner finishes.
	runner.Step(a)
	if !runner.Done() {
		t.Error("runner should be done after screenshot step")
	}
	if len(shots) != 1 || shots[0] != "done" {
		t.Errorf("expected screenshot 'done', got %v", shots)
	}
}

func TestRunnerStep_ScreenshotWithoutHook(t *testing.T) {
	a := runningAnimator(t)
	runner, err := LoadScript([]byte(`{"steps": [{"action": "screenshot", "label": "x"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.Step(a)
	if !runner.Done() {
		t.Error("screenshot without a hook should still complete")
	}
}

func TestRunnerStep_LinearSweep(t *testing.T) {
	a := runningAnimator(t)
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "sweep", "fromX": 0, "fromY": 100, "toX": 40, "toY": 20, "frames": 4}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	want := []Vec2{{0, 100}, {10, 80}, {20, 60}, {30, 40}, {40, 20}}
	for i, w := range want {
		runner.Step(a)
		pos, ok := a.Pointer()
		if !ok {
			t.Fatalf("frame %d: no pointer", i)
		}
		assertNear(t, "x", pos.X, w.X)
		assertNear(t, "y", pos.Y, w.Y)
		if done := runner.Done(); done != (i == len(want)-1) {
			t.Fatalf("frame %d: Done = %v", i, done)
		}
	}
}

func TestRunnerStep_EasedSweepEndsOnTarget(t *testing.T) {
	a := runningAnimator(t)
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "sweep", "fromX": 10, "fromY": 10, "toX": 90, "toY": 50, "frames": 6, "ease": "outCubic"},
		{"action": "leave"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 7; i++ {
		runner.Step(a)
	}
	pos, _ := a.Pointer()
	if pos.X < 89.99 || pos.X > 90.01 || pos.Y < 49.99 || pos.Y > 50.01 {
		t.Errorf("sweep ended at %v, want (90, 50)", pos)
	}
	runner.Step(a)
	if _, ok := a.Pointer(); ok || !runner.Done() {
		t.Error("leave after sweep not applied")
	}
}

func TestRunnerStep_ResizeAndPreset(t *testing.T) {
	a := runningAnimator(t)
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "resize", "width": 120, "height": 90},
		{"action": "preset", "label": "bubblegum"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.Step(a)
	if w, h := a.Size(); w != 120 || h != 90 {
		t.Errorf("size = %vx%v", w, h)
	}
	runner.Step(a)
	if a.PresetName() != PresetBubblegum || len(a.Particles()) != 500 {
		t.Errorf("preset = %q particles = %d", a.PresetName(), len(a.Particles()))
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestEaseByNameFallback(t *testing.T) {
	if easeByName("nope")(1, 0, 10, 2) != 5 {
		t.Error("unknown easing should fall back to linear")
	}
}

func TestRunnerStep_BoundsReclampInPlace(t *testing.T) {
	a := runningAnimator(t)
	for i := range a.Particles() {
		a.particles[i].Size = 30
	}
	runner, err := LoadScript([]byte(`{"steps": [{"action": "bounds", "minSize": 5, "maxSize": 20}]}`))
	if err != nil {
		t.Fatal(err)
	}
	gen := a.Generation()
	runner.Step(a)

	if a.Generation() != gen {
		t.Error("bounds step rebuilt the population")
	}
	if cfg := a.Config(); cfg.MinSize != 5 || cfg.MaxSize != 20 {
		t.Errorf("bounds = [%v, %v]", cfg.MinSize, cfg.MaxSize)
	}
	for i, p := range a.Particles() {
		if p.Size != 20 || p.MinSize != 5 || p.MaxSize != 20 {
			t.Fatalf("particle %d = size %v in [%v, %v]", i, p.Size, p.MinSize, p.MaxSize)
		}
	}
}

func TestRunnerStep_Colors(t *testing.T) {
	a := runningAnimator(t)
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "colors", "highlight": "#ff0000"},
		{"action": "colors", "base": "#000000", "highlight": "#00ff00"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.Step(a)
	if cfg := a.Config(); cfg.BaseColor != fogBase || cfg.HighlightColor != (RGB{255, 0, 0}) {
		t.Errorf("after step 1: base %v highlight %v", cfg.BaseColor, cfg.HighlightColor)
	}
	runner.Step(a)
	if cfg := a.Config(); cfg.BaseColor != (RGB{}) || cfg.HighlightColor != (RGB{0, 255, 0}) {
		t.Errorf("after step 2: base %v highlight %v", cfg.BaseColor, cfg.HighlightColor)
	}
}

func TestLoadScript_InvalidBoundsAndColors(t *testing.T) {
	_, err := LoadScript([]byte(`{"steps": [{"action": "bounds", "minSize": 30, "maxSize": 10}]}`))
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
	if _, err := LoadScript([]byte(`{"steps": [{"action": "colors"}]}`)); err == nil {
		t.Error("expected error for colors without values")
	}
	if _, err := LoadScript([]byte(`{"steps": [{"action": "colors", "base": "teal"}]}`)); err == nil {
		t.Error("expected error for bad hex color")
	}
}
