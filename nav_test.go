package main

import (
	"testing"
	"time"
)

func TestNavOpacityRamp(t *testing.T) {
	if got := navOpacity(0); got != 0 {
		t.Errorf("navOpacity(0) = %f, want 0", got)
	}
	if got := navOpacity(75); got != 0.5 {
		t.Errorf("navOpacity(75) = %f, want 0.5", got)
	}
	if got := navOpacity(150); got != 1 {
		t.Errorf("navOpacity(150) = %f, want 1", got)
	}
	if got := navOpacity(400); got != 1 {
		t.Errorf("navOpacity(400) = %f, want 1", got)
	}

	prev := -1.0
	for scroll := 0.0; scroll <= 300; scroll += 10 {
		if got := navOpacity(scroll); got < prev {
			t.Fatalf("navOpacity not monotonic at scroll %f", scroll)
		} else {
			prev = got
		}
	}
}

func TestScrollClampsToContent(t *testing.T) {
	g := NewGame()

	g.scrollBy(1e9)
	if want := g.contentHeight() - g.winH; g.scroll != want {
		t.Errorf("scroll = %f, want clamped to %f", g.scroll, want)
	}

	g.scrollBy(-1e9)
	if g.scroll != 0 {
		t.Errorf("scroll = %f, want 0", g.scroll)
	}
}

func TestRevealOnScrollIntoView(t *testing.T) {
	g := NewGame()
	now := time.Now()

	g.updateReveals(now)
	if !g.sections[0].Revealed {
		t.Error("first section should be revealed at the top of the page")
	}
	last := len(g.sections) - 1
	if g.sections[last].Revealed {
		t.Error("last section should not be revealed before scrolling")
	}

	g.scrollBy(g.contentHeight())
	g.updateReveals(now)
	if !g.sections[last].Revealed {
		t.Error("last section should be revealed after scrolling to the bottom")
	}

	// Revealed state is sticky: scrolling back does not undo it
	g.scroll = 0
	g.updateReveals(now)
	if !g.sections[last].Revealed {
		t.Error("reveal must be once-only")
	}
}

func TestRevealStopsObservingAfterDelay(t *testing.T) {
	g := NewGame()
	now := time.Now()

	g.updateReveals(now)
	if !g.sections[0].Observed {
		t.Fatal("section should still be observed right after reveal")
	}

	g.updateReveals(now.Add(RevealUnobserveDelay + time.Millisecond))
	if g.sections[0].Observed {
		t.Error("section should stop being observed after the delay")
	}
	if !g.sections[0].Revealed {
		t.Error("unobserving must not clear the revealed state")
	}
}

func TestContentGrowthResizesAfterDebounce(t *testing.T) {
	g := NewGame()
	now := time.Now()
	heightBefore := g.field.Height
	dotsBefore := g.field.Dots

	g.addSection(now)

	g.applyPendingLayout(now)
	if g.field.Height != heightBefore {
		t.Fatal("resize applied before the debounce elapsed")
	}

	g.applyPendingLayout(now.Add(ResizeDebounce))
	if g.field.Height <= heightBefore {
		t.Fatalf("field height = %f, want growth past %f", g.field.Height, heightBefore)
	}
	// Height-only growth must not scatter the existing dots
	if len(g.field.Dots) != len(dotsBefore) || g.field.Dots[0] != dotsBefore[0] {
		t.Error("content growth repopulated the field")
	}
}
