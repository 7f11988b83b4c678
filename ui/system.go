package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// DrawTextFunc renders a string with (x, y) as the top of the first line.
type DrawTextFunc func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)

// Base button metrics in logical pixels; the layout pass multiplies
// them by the device scale since the HUD draws in backing-store pixels.
const (
	buttonWidth  = 46
	buttonHeight = 30
	buttonMargin = 10
	buttonTop    = 12
)

// System lays out the HUD buttons along the top-right edge and routes
// clicks to them. The game injects its font, screen size, device scale
// and text rendering so this package stays free of those concerns.
type System struct {
	buttons       []*Button
	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	getScale      func() float64
	drawText      DrawTextFunc
	Debug         *DebugPanel
}

func NewSystem(getFontFace func() font.Face, getScreenSize func() (int, int), getScale func() float64, drawText DrawTextFunc) *System {
	return &System{
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		getScale:      getScale,
		drawText:      drawText,
		Debug:         &DebugPanel{},
	}
}

// AddButton appends a button to the top-right row and returns it so the
// caller can keep updating its Active state.
func (s *System) AddButton(label string, onClick func()) *Button {
	b := &Button{Label: label, OnClick: onClick}
	s.buttons = append(s.buttons, b)
	return b
}

func (s *System) updateButtonPositions() {
	w, _ := s.getScreenSize()
	sc := float32(s.getScale())
	if sc <= 0 {
		sc = 1
	}
	x := float32(w) - buttonMargin*sc
	for _, b := range s.buttons {
		b.Scale = sc
		b.W = buttonWidth * sc
		b.H = buttonHeight * sc
		x -= b.W
		b.X = x
		b.Y = buttonTop * sc
		x -= buttonMargin * sc
	}
}

func (s *System) IsMouseOver(mx, my int) bool {
	s.updateButtonPositions()
	for _, b := range s.buttons {
		if b.IsMouseOver(mx, my) {
			return true
		}
	}
	return false
}

func (s *System) Update() {
	s.updateButtonPositions()
	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		for _, b := range s.buttons {
			if b.IsMouseOver(mx, my) {
				if b.OnClick != nil {
					b.OnClick()
				}
				break
			}
		}
	}
}

func (s *System) Draw(screen *ebiten.Image) {
	s.updateButtonPositions()
	for _, b := range s.buttons {
		b.Draw(screen, s.getFontFace, s.drawText)
	}
	s.Debug.Draw(screen, s.getScreenSize, s.getFontFace, s.drawText)
}
