package main

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"constellation/field"
	"constellation/graph"
	"constellation/ui"
)

type Game struct {
	field    *field.Field
	settings Settings

	winW, winH float64 // logical window size
	scale      float64 // capped device pixel ratio

	// Trailing-edge debounce for window/content geometry changes
	layoutDirty bool
	layoutAt    time.Time

	scroll   float64
	sections []*Section

	links    []field.Link
	clusters int

	visible bool
	paused  bool

	fullscreen   *fullscreenProvider
	presetDigest string

	hud           *ui.System
	fullscreenBtn *ui.Button
	pauseBtn      *ui.Button
	fontFace      font.Face

	screenshotRequested bool
}

func NewGame() *Game {
	g := &Game{
		winW:    DefaultWindowWidth,
		winH:    DefaultWindowHeight,
		scale:   1,
		visible: true,
	}

	settings, err := LoadSettings(SettingsFile)
	g.settings = settings
	g.sections = defaultSections()
	g.fullscreen = detectFullscreen()

	// The field covers the whole scrollable page, not just the window
	g.field = field.New(g.winW, math.Max(g.contentHeight(), g.winH), settings.Tuning())

	g.hud = ui.NewSystem(
		func() font.Face { return g.fontFace },
		func() (int, int) { return int(g.winW * g.scale), int(g.winH * g.scale) },
		func() float64 { return g.scale },
		DrawTextLines,
	)
	g.fullscreenBtn = g.hud.AddButton("full", func() { g.fullscreen.Toggle() })
	g.pauseBtn = g.hud.AddButton("pause", func() { g.paused = !g.paused })

	if err != nil {
		g.hud.Debug.SetError("settings: " + err.Error())
	}
	if err := g.applyPreset(settings.Preset); err != nil {
		g.hud.Debug.SetError("preset: " + err.Error())
	}
	return g
}

func (g *Game) Update() error {
	g.visible = !ebiten.IsWindowMinimized()
	if !g.visible {
		// The tick keeps coming so resuming needs no rewiring; the
		// frame's work is simply skipped.
		return nil
	}

	if err := g.handleInput(); err != nil {
		return err
	}
	g.hud.Update()
	g.fullscreenBtn.Active = g.fullscreen.Active()
	g.pauseBtn.Active = g.paused

	now := time.Now()
	g.applyPendingLayout(now)

	if !g.paused {
		g.field.Step()
	}
	g.links = g.field.Links()
	g.clusters = graph.Clusters(len(g.field.Dots), linkEdges(g.links))
	g.updateReveals(now)
	return nil
}

func linkEdges(links []field.Link) []graph.Edge {
	edges := make([]graph.Edge, len(links))
	for i, l := range links {
		edges[i] = graph.Edge{A: l.A, B: l.B}
	}
	return edges
}

// noteLayoutChange records that window or content geometry moved. The
// field resize itself waits until the burst settles, so a live window
// drag or a run of content growth is applied once, at the end.
func (g *Game) noteLayoutChange(now time.Time) {
	g.layoutDirty = true
	g.layoutAt = now
}

func (g *Game) applyPendingLayout(now time.Time) {
	if !g.layoutDirty || now.Sub(g.layoutAt) < ResizeDebounce {
		return
	}
	g.layoutDirty = false

	g.field.Resize(g.winW, math.Max(g.contentHeight(), g.winH))
	g.clampScroll()
	if err := g.applyPreset(g.settings.Preset); err != nil {
		g.hud.Debug.SetError("preset: " + err.Error())
	}
}

// LayoutF keeps the backing store at logical size times the capped
// device scale. Drawing multiplies by the same scale, so everything
// else works in logical pixels.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.scale = math.Min(ebiten.Monitor().DeviceScaleFactor(), DeviceScaleCap)
	if outsideWidth != g.winW || outsideHeight != g.winH {
		g.winW = outsideWidth
		g.winH = outsideHeight
		g.noteLayoutChange(time.Now())
	}
	return outsideWidth * g.scale, outsideHeight * g.scale
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Ebitengine calls LayoutF when it exists; this satisfies the interface.
	panic("Layout is never called when LayoutF is implemented")
}
