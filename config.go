package main

import (
	"image/color"
	"time"
)

const (
	// --- Window ---
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 800
	DeviceScaleCap      = 2.0
	ResizeDebounce      = 150 * time.Millisecond

	// --- Scrolling ---
	WheelScrollStep = 40.0
	KeyScrollStep   = 24.0

	// --- Nav bar ---
	NavBarHeight    = 56.0
	NavRampDistance = 150.0
	NavMaxAlpha     = 235.0

	// --- Sections ---
	SectionHeight        = 240.0
	SectionGap           = 28.0
	SectionPadding       = 18.0
	SectionSideMargin    = 64.0
	RevealMargin         = 80.0
	RevealFadeStep       = 0.04
	RevealUnobserveDelay = 1200 * time.Millisecond

	// --- Files ---
	SettingsFile   = "constellation.yaml"
	ScreenshotFile = "screenshot.png"
	FontFile       = "fonts/SpaceGrotesk-Regular.ttf"
)

var (
	// --- Colors ---
	ColorBackground   = color.RGBA{13, 17, 30, 255}
	ColorDot          = color.RGBA{220, 225, 255, 255}
	ColorLink         = color.RGBA{150, 170, 230, 255}
	ColorNavBar       = color.RGBA{10, 14, 24, 255}
	ColorNavShadow    = color.RGBA{0, 0, 0, 90}
	ColorNavTitle     = color.RGBA{235, 238, 250, 255}
	ColorSectionPanel = color.RGBA{24, 30, 48, 200}
	ColorSectionTitle = color.RGBA{230, 235, 250, 255}
	ColorSectionBody  = color.RGBA{170, 178, 200, 255}
)
