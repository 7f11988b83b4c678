package main

import (
	"fmt"
	"os"
	"strings"

	"constellation/engine"
)

// Presets are Starlark scripts that derive field tuning from the window
// geometry. They see `width`, `height` and `narrow` and may assign any
// of: divisor, narrow_divisor, max_dots, link_distance, max_link_alpha,
// speed.
var builtinPresets = map[string]string{
	"default": `
# Stock tuning: whatever the settings file says stands.
`,
	"dense": `
divisor = 12000.0
narrow_divisor = 8000.0
max_dots = 150
link_distance = 170.0
`,
	"calm": `
divisor = 30000.0
speed = 0.15
max_link_alpha = 0.2
link_distance = 130.0
`,
}

// resolvePreset returns the script for a builtin name, or reads it from
// disk when the name points at a .star file.
func resolvePreset(name string) (string, error) {
	if script, ok := builtinPresets[name]; ok {
		return script, nil
	}
	if strings.HasSuffix(name, ".star") {
		data, err := os.ReadFile(name)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return "", fmt.Errorf("unknown preset %q", name)
}

// applyPreset evaluates the preset against the current field size and
// folds the knobs it assigned into the tuning, starting from the
// settings-file baseline. Density and speed knobs need a fresh
// population to take hold, but only when their value actually moved:
// a re-evaluation that lands on the same tuning (say, after a
// height-only content change) must leave the dots in place. Link knobs
// apply live. Re-evaluation is skipped when neither the script nor the
// geometry changed.
func (g *Game) applyPreset(name string) error {
	script, err := resolvePreset(name)
	if err != nil {
		return err
	}

	inputs := map[string]interface{}{
		"width":  g.field.Width,
		"height": g.field.Height,
		"narrow": g.field.Width < g.field.Tuning.NarrowWidth,
	}
	digest := engine.InputDigest(script, inputs)
	if digest == g.presetDigest {
		return nil
	}

	out, err := engine.RunScript("preset:"+name, script, inputs)
	if err != nil {
		return err
	}

	tun := g.settings.Tuning()
	if v, ok := floatKnob(out, "divisor"); ok {
		tun.Divisor = v
	}
	if v, ok := floatKnob(out, "narrow_divisor"); ok {
		tun.NarrowDivisor = v
	}
	if v, ok := out["max_dots"].(int); ok {
		tun.MaxDots = v
	}
	if v, ok := floatKnob(out, "speed"); ok {
		tun.Speed = v
	}
	if v, ok := floatKnob(out, "link_distance"); ok {
		tun.LinkDistance = v
	}
	if v, ok := floatKnob(out, "max_link_alpha"); ok {
		tun.MaxLinkAlpha = v
	}

	repopulate := tun.Divisor != g.field.Tuning.Divisor ||
		tun.NarrowDivisor != g.field.Tuning.NarrowDivisor ||
		tun.MaxDots != g.field.Tuning.MaxDots ||
		tun.Speed != g.field.Tuning.Speed

	g.field.Tuning = tun
	g.presetDigest = digest
	if repopulate {
		g.field.Populate()
	}
	return nil
}

// floatKnob accepts both Starlark floats and ints for numeric knobs.
func floatKnob(out map[string]interface{}, key string) (float64, bool) {
	switch v := out[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}
