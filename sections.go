package main

import "time"

// Section is one panel of page content below the nav bar. Sections
// start invisible and are revealed once they scroll into view.
type Section struct {
	Title  string
	Body   string
	Height float64

	Revealed   bool
	RevealedAt time.Time
	Observed   bool // still being watched by the reveal pass

	alpha float64
}

func defaultSections() []*Section {
	mk := func(title, body string) *Section {
		return &Section{Title: title, Body: body, Height: SectionHeight, Observed: true}
	}
	return []*Section{
		mk("Constellation", "A field of drifting dots, joined by lines\nwhenever two of them wander close enough.\nScroll to explore the whole field."),
		mk("How it works", "Every frame each dot advances by its velocity\nand bounces off the edges. Pairs closer than\nthe link distance get a line, brightest when\nthey touch and gone at the threshold."),
		mk("Density", "The dot count follows the covered area divided\nby a density divisor, smaller on narrow windows\nso small screens still feel alive. A hard cap\nkeeps the pairwise scan cheap."),
		mk("Tuning", "Edit constellation.yaml to change the density,\nlink distance, speed and colors. Presets written\nin Starlark can derive tuning from the window\nsize. Press S to write the current settings."),
		mk("Keys", "F fullscreen, Space pause, N adds a section,\nP saves a screenshot, S saves settings,\narrows and the wheel scroll, Q quits."),
		mk("Colophon", "Built on Ebitengine. The window covers the\nwhole scrollable page, so the field follows\nyou all the way down."),
	}
}

// sectionTop returns the content-space y of section i.
func (g *Game) sectionTop(i int) float64 {
	top := NavBarHeight + SectionGap
	for j := 0; j < i; j++ {
		top += g.sections[j].Height + SectionGap
	}
	return top
}

// contentHeight is the full scrollable height of the page.
func (g *Game) contentHeight() float64 {
	h := NavBarHeight + SectionGap
	for _, s := range g.sections {
		h += s.Height + SectionGap
	}
	return h
}

// addSection appends a panel below the existing content. The field
// resize that follows goes through the usual debounce and, being a
// height-only change, never repopulates.
func (g *Game) addSection(now time.Time) {
	g.sections = append(g.sections, &Section{
		Title:    "Appendix",
		Body:     "Fresh content pushed below the fold.\nThe field grows to cover it without\nscattering the existing dots.",
		Height:   SectionHeight,
		Observed: true,
	})
	g.noteLayoutChange(now)
}

// updateReveals marks sections as revealed once their top edge enters
// the viewport with a margin, eases their panel alpha in, and stops
// observing each one a little after it has been revealed.
func (g *Game) updateReveals(now time.Time) {
	viewBottom := g.scroll + g.winH
	for i, s := range g.sections {
		if s.Observed && !s.Revealed && g.sectionTop(i) < viewBottom-RevealMargin {
			s.Revealed = true
			s.RevealedAt = now
		}
		if s.Revealed {
			if s.alpha < 1 {
				s.alpha += RevealFadeStep
				if s.alpha > 1 {
					s.alpha = 1
				}
			}
			if s.Observed && now.Sub(s.RevealedAt) >= RevealUnobserveDelay {
				s.Observed = false
			}
		}
	}
}
