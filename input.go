package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fullscreen.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.addSection(time.Now())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.screenshotRequested = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.field.Populate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := SaveSettings(g.settings, SettingsFile); err != nil {
			g.hud.Debug.SetError("save settings: " + err.Error())
		} else {
			log.Println("settings written to", SettingsFile)
		}
	}

	// --- Scrolling ---
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		g.scrollBy(-wheelY * WheelScrollStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.scrollBy(KeyScrollStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.scrollBy(-KeyScrollStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		g.scrollBy(g.winH * 0.9)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.scrollBy(-g.winH * 0.9)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.scroll = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		g.scrollBy(g.contentHeight())
	}
	return nil
}
