package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

type Button struct {
	Label   string
	X, Y    float32
	W, H    float32
	Scale   float32 // device scale, set by the layout pass
	Active  bool    // highlighted, e.g. while fullscreen is on
	OnClick func()
}

func (b *Button) IsMouseOver(mx, my int) bool {
	return float32(mx) >= b.X && float32(mx) <= b.X+b.W &&
		float32(my) >= b.Y && float32(my) <= b.Y+b.H
}

func (b *Button) Draw(screen *ebiten.Image, getFace func() font.Face, drawText DrawTextFunc) {
	bg := color.RGBA{40, 48, 68, 200}
	if b.Active {
		bg = color.RGBA{70, 110, 190, 230}
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, false)
	if getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	sc := b.Scale
	if sc <= 0 {
		sc = 1
	}
	drawText(screen, face, b.Label, int(b.X+10*sc), int(b.Y+8*sc), color.White)
}
