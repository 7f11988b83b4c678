package ui

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// errorDisplayTime is how long a surfaced error stays on screen.
const errorDisplayTime = 6 * time.Second

// DebugPanel shows the most recent soft failure in a corner panel.
// Errors here never stop the animation; they just get seen.
type DebugPanel struct {
	Error string
	setAt time.Time
}

func (d *DebugPanel) SetError(msg string) {
	log.Println("debug panel:", msg)
	d.Error = msg
	d.setAt = time.Now()
}

func (d *DebugPanel) Clear() {
	d.Error = ""
}

func (d *DebugPanel) Draw(screen *ebiten.Image, getScreenSize func() (int, int), getFace func() font.Face, drawText DrawTextFunc) {
	if d == nil || d.Error == "" {
		return
	}
	if time.Since(d.setAt) > errorDisplayTime {
		d.Error = ""
		return
	}

	w, h := getScreenSize()
	pw, ph := 320, 72
	x := w - pw - 10
	y := h - ph - 10
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), color.RGBA{40, 30, 30, 225}, false)
	if getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	drawText(screen, face, d.Error, x+10, y+10, color.RGBA{255, 190, 80, 255})
}
