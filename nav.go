package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// navOpacity ramps from 0 to 1 over the first NavRampDistance pixels of
// scroll, so the bar fades in as the page leaves the top.
func navOpacity(scroll float64) float64 {
	return clamp01(scroll / NavRampDistance)
}

// scrollBy moves the viewport and clamps it to the scrollable range.
func (g *Game) scrollBy(delta float64) {
	g.scroll += delta
	g.clampScroll()
}

func (g *Game) clampScroll() {
	maxScroll := g.contentHeight() - g.winH
	if maxScroll < 0 {
		maxScroll = 0
	}
	if g.scroll < 0 {
		g.scroll = 0
	}
	if g.scroll > maxScroll {
		g.scroll = maxScroll
	}
}

func (g *Game) drawNavBar(screen *ebiten.Image) {
	ramp := navOpacity(g.scroll)
	s := g.scale

	bar := ColorNavBar
	bar.A = uint8(ramp * NavMaxAlpha)
	vector.DrawFilledRect(screen, 0, 0, float32(g.winW*s), float32(NavBarHeight*s), bar, false)

	// The shadow band under the bar stands in for the blur; narrow
	// windows skip it, same as the original skips blur for performance.
	if ramp > 0 && !g.narrow() {
		shadow := ColorNavShadow
		shadow.A = uint8(ramp * float64(ColorNavShadow.A))
		vector.DrawFilledRect(screen, 0, float32(NavBarHeight*s), float32(g.winW*s), float32(4*s), shadow, false)
	}

	title := ColorNavTitle
	title.A = uint8(120 + ramp*135)
	DrawTextLines(screen, g.fontFace, "constellation", int(SectionPadding*s), int((NavBarHeight/2-10)*s), title)
}

func (g *Game) narrow() bool {
	return g.winW < g.field.Tuning.NarrowWidth
}
