package main

import (
	"log"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
)

// fullscreenProvider resolves fullscreen capability once at startup so
// the toggle path never branches on the platform again.
type fullscreenProvider struct {
	supported bool
}

func detectFullscreen() *fullscreenProvider {
	switch runtime.GOOS {
	case "js", "ios":
		return &fullscreenProvider{supported: false}
	}
	return &fullscreenProvider{supported: true}
}

// Toggle flips the window's fullscreen state. When the platform can't
// do fullscreen it tells the user with a blocking dialog instead of
// failing silently.
func (p *fullscreenProvider) Toggle() {
	if !p.supported {
		if err := zenity.Error("Fullscreen is not supported on this platform.",
			zenity.Title("Constellation")); err != nil {
			log.Println("fullscreen dialog:", err)
		}
		return
	}
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
}

// Active reports the real window state, which keeps the HUD button's
// indicator honest even when fullscreen changed through the window
// manager rather than the toggle.
func (p *fullscreenProvider) Active() bool {
	return p.supported && ebiten.IsFullscreen()
}
