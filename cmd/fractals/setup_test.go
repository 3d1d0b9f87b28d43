package main

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/fractals/internal/core"
	"github.com/vovakirdan/fractals/internal/palette"
)

func TestCaptionColor(t *testing.T) {
	tests := []struct {
		bg       color.RGBA
		expected color.RGBA
	}{
		{core.Black, core.White},
		{core.White, core.Black},
		{palette.BackgroundPresets["navy"], core.White},
		{palette.BackgroundPresets["light-gray"], core.Black},
	}
	for _, tt := range tests {
		if got := captionColor(tt.bg); got != tt.expected {
			t.Errorf("captionColor(%v) = %v, expected %v", tt.bg, got, tt.expected)
		}
	}
}

func TestOverridesPadding(t *testing.T) {
	if ov := overrides(showCmd); ov.Padding != nil {
		t.Errorf("unset --padding should not override, got %v", *ov.Padding)
	}
	if err := rootCmd.PersistentFlags().Set("padding", "0"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		flagPadding = 0
		rootCmd.PersistentFlags().Lookup("padding").Changed = false
	})

	ov := overrides(showCmd)
	if ov.Padding == nil || *ov.Padding != 0 {
		t.Errorf("explicit --padding 0 should override, got %v", ov.Padding)
	}
}

func TestMenuItemsCoverRegistry(t *testing.T) {
	items := menuItems()
	if len(items) != 7 {
		t.Fatalf("expected 7 curves, got %d", len(items))
	}
	for _, it := range items {
		if it.Level < 0 || it.Title == "" {
			t.Errorf("bad menu item %+v", it)
		}
	}
}
