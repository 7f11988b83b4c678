package main

import (
	"testing"
	"time"
)

func TestApplyPresetOverridesTuning(t *testing.T) {
	g := NewGame()

	if err := g.applyPreset("dense"); err != nil {
		t.Fatalf("applyPreset(dense) failed: %v", err)
	}
	if g.field.Tuning.Divisor != 12000 {
		t.Errorf("Divisor = %f, want 12000", g.field.Tuning.Divisor)
	}
	if g.field.Tuning.LinkDistance != 170 {
		t.Errorf("LinkDistance = %f, want 170", g.field.Tuning.LinkDistance)
	}
}

func TestApplyPresetRepopulatesForDensity(t *testing.T) {
	g := NewGame()
	before := len(g.field.Dots)

	if err := g.applyPreset("calm"); err != nil {
		t.Fatalf("applyPreset(calm) failed: %v", err)
	}
	// calm raises the divisor, so the population must shrink
	if got := len(g.field.Dots); got >= before {
		t.Errorf("dots after calm preset = %d, want fewer than %d", got, before)
	}
}

func TestApplyPresetSkipsUnchangedEvaluation(t *testing.T) {
	g := NewGame()
	if err := g.applyPreset("dense"); err != nil {
		t.Fatalf("applyPreset(dense) failed: %v", err)
	}
	before := g.field.Dots

	if err := g.applyPreset("dense"); err != nil {
		t.Fatalf("second applyPreset(dense) failed: %v", err)
	}
	if len(g.field.Dots) != len(before) || g.field.Dots[0] != before[0] {
		t.Error("unchanged preset evaluation should not repopulate")
	}
}

func TestActivePresetKeepsDotsOnContentGrowth(t *testing.T) {
	g := NewGame()
	g.settings.Preset = "dense"
	if err := g.applyPreset("dense"); err != nil {
		t.Fatalf("applyPreset(dense) failed: %v", err)
	}
	dotsBefore := g.field.Dots
	heightBefore := g.field.Height

	// Content grows below the fold; after the debounce the field is
	// resized and the active preset re-evaluated against the new
	// geometry. Height-only growth must still leave the dots alone.
	now := time.Now()
	g.addSection(now)
	g.applyPendingLayout(now.Add(ResizeDebounce))

	if g.field.Height <= heightBefore {
		t.Fatalf("field height = %f, want growth past %f", g.field.Height, heightBefore)
	}
	if len(g.field.Dots) != len(dotsBefore) || g.field.Dots[0] != dotsBefore[0] {
		t.Error("height-only growth under an active preset repopulated the field")
	}
	if g.field.Tuning.Divisor != 12000 {
		t.Errorf("Divisor = %f, want the preset's 12000 after re-evaluation", g.field.Tuning.Divisor)
	}
}

func TestApplyPresetUnknownName(t *testing.T) {
	g := NewGame()
	if err := g.applyPreset("no-such-preset"); err == nil {
		t.Fatal("expected an error for an unknown preset")
	}
}

func TestResolvePresetBuiltins(t *testing.T) {
	for _, name := range []string{"default", "dense", "calm"} {
		if _, err := resolvePreset(name); err != nil {
			t.Errorf("resolvePreset(%q) failed: %v", name, err)
		}
	}
}
