package main

import (
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func (g *Game) Draw(screen *ebiten.Image) {
	if g.fontFace == nil {
		g.fontFace = LoadUIFont(g.scale)
	}

	screen.Fill(g.settings.Theme.Background.RGBA())
	g.drawSections(screen)
	g.drawField(screen)
	g.drawNavBar(screen)
	g.hud.Draw(screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"%.0f fps  dots: %d  links: %d  clusters: %d  scroll: %.0f/%.0f",
		ebiten.ActualFPS(), len(g.field.Dots), len(g.links), g.clusters,
		g.scroll, g.contentHeight()),
		10, int(g.winH*g.scale)-18)

	// --- Save Screenshot ---
	if g.screenshotRequested {
		g.screenshotRequested = false
		f, err := os.Create(ScreenshotFile)
		if err != nil {
			g.hud.Debug.SetError("screenshot: " + err.Error())
		} else {
			defer f.Close()
			if err := png.Encode(f, screen); err != nil {
				g.hud.Debug.SetError("screenshot: " + err.Error())
			} else {
				log.Println("screenshot saved as", ScreenshotFile)
			}
		}
	}
}

// drawField renders the dots and their links, shifted by the scroll
// offset. Elements fully above or below the window are skipped.
func (g *Game) drawField(screen *ebiten.Image) {
	s := g.scale
	dots := g.field.Dots

	dotColor := g.settings.Theme.Dot.RGBA()
	for _, d := range dots {
		y := d.Y - g.scroll
		if y < -d.Radius || y > g.winH+d.Radius {
			continue
		}
		vector.DrawFilledCircle(screen, float32(d.X*s), float32(y*s), float32(d.Radius*s), dotColor, false)
	}

	base := g.settings.Theme.Link.RGBA()
	for _, l := range g.links {
		a, b := dots[l.A], dots[l.B]
		ay := a.Y - g.scroll
		by := b.Y - g.scroll
		if (ay < 0 && by < 0) || (ay > g.winH && by > g.winH) {
			continue
		}
		lc := base
		lc.A = uint8(l.Alpha * 255)
		vector.StrokeLine(screen, float32(a.X*s), float32(ay*s), float32(b.X*s), float32(by*s), float32(s), lc, false)
	}
}

func (g *Game) drawSections(screen *ebiten.Image) {
	s := g.scale
	for i, sec := range g.sections {
		if sec.alpha <= 0 {
			continue
		}
		top := g.sectionTop(i) - g.scroll
		if top+sec.Height < 0 || top > g.winH {
			continue
		}

		x := SectionSideMargin
		w := g.winW - 2*SectionSideMargin
		if w < 160 {
			x = SectionPadding
			w = g.winW - 2*SectionPadding
		}

		panel := ColorSectionPanel
		panel.A = uint8(float64(panel.A) * sec.alpha)
		vector.DrawFilledRect(screen, float32(x*s), float32(top*s), float32(w*s), float32(sec.Height*s), panel, false)

		title := ColorSectionTitle
		title.A = uint8(float64(title.A) * sec.alpha)
		body := ColorSectionBody
		body.A = uint8(float64(body.A) * sec.alpha)
		DrawTextLines(screen, g.fontFace, sec.Title, int((x+SectionPadding)*s), int((top+SectionPadding)*s), title)
		DrawTextLines(screen, g.fontFace, sec.Body, int((x+SectionPadding)*s), int((top+SectionPadding+34)*s), body)
	}
}
