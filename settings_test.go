package main

import (
	"os"
	"testing"
)

func TestSettingsRoundTrip(t *testing.T) {
	filename := "test_settings.yaml"
	defer os.Remove(filename)

	s := DefaultSettings()
	s.Field.Divisor = 17000
	s.Field.MaxDots = 120
	s.Theme.Dot = ColorSetting{R: 1, G: 2, B: 3, A: 4}
	s.Preset = "calm"

	if err := SaveSettings(s, filename); err != nil {
		t.Fatalf("Failed to save settings: %v", err)
	}

	loaded, err := LoadSettings(filename)
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}

	if loaded.Field.Divisor != 17000 {
		t.Errorf("Divisor = %f, want 17000", loaded.Field.Divisor)
	}
	if loaded.Field.MaxDots != 120 {
		t.Errorf("MaxDots = %d, want 120", loaded.Field.MaxDots)
	}
	if loaded.Theme.Dot != (ColorSetting{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("Dot color = %+v", loaded.Theme.Dot)
	}
	if loaded.Preset != "calm" {
		t.Errorf("Preset = %q, want calm", loaded.Preset)
	}
}

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	s, err := LoadSettings("does_not_exist.yaml")
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if s != DefaultSettings() {
		t.Error("missing file should yield the defaults")
	}
}

func TestLoadSettingsMalformedFileReportsError(t *testing.T) {
	filename := "test_broken.yaml"
	defer os.Remove(filename)
	if err := os.WriteFile(filename, []byte("field: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(filename)
	if err == nil {
		t.Fatal("expected an error for a malformed file")
	}
	if s != DefaultSettings() {
		t.Error("malformed file should still yield the defaults")
	}
}

func TestPartialSettingsKeepDefaults(t *testing.T) {
	filename := "test_partial.yaml"
	defer os.Remove(filename)
	if err := os.WriteFile(filename, []byte("field:\n  divisor: 25000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(filename)
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}
	if s.Field.Divisor != 25000 {
		t.Errorf("Divisor = %f, want 25000", s.Field.Divisor)
	}
	if s.Field.MaxDots != DefaultSettings().Field.MaxDots {
		t.Errorf("MaxDots = %d, want default %d", s.Field.MaxDots, DefaultSettings().Field.MaxDots)
	}
}
