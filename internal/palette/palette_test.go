package palette

import (
	"errors"
	"image/color"
	"testing"

	"github.com/vovakirdan/fractals/internal/core"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		presets map[string]color.RGBA
		want    color.RGBA
		wantErr bool
	}{
		{"background preset", "navy", BackgroundPresets, color.RGBA{10, 25, 47, 255}, false},
		{"line preset", "orange", LinePresets, color.RGBA{255, 165, 0, 255}, false},
		{"hex", "#1a1a2e", BackgroundPresets, color.RGBA{0x1a, 0x1a, 0x2e, 255}, false},
		{"hex uppercase", "#FF00aa", LinePresets, color.RGBA{255, 0, 170, 255}, false},
		{"short hex rejected", "#fff", LinePresets, color.RGBA{}, true},
		{"not hex", "#gggggg", LinePresets, color.RGBA{}, true},
		{"unknown name", "chartreuse", LinePresets, color.RGBA{}, true},
		{"preset from other table", "navy", LinePresets, color.RGBA{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseColor(tc.value, tc.presets)
			if tc.wantErr {
				if !errors.Is(err, core.ErrConfig) {
					t.Fatalf("ParseColor(%q) error = %v, expected config error", tc.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tc.value, err)
			}
			if got != tc.want {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestColormapEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		start, end color.RGBA
	}{
		{"gist_rainbow", color.RGBA{255, 0, 40, 255}, color.RGBA{255, 0, 191, 255}},
		{"viridis", color.RGBA{0x44, 0x01, 0x54, 255}, color.RGBA{0xfd, 0xe7, 0x25, 255}},
		{"gray", color.RGBA{0, 0, 0, 255}, color.RGBA{255, 255, 255, 255}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Lookup(tc.name)
			if err != nil {
				t.Fatal(err)
			}
			if got := m.At(0); got != tc.start {
				t.Errorf("At(0) = %v, expected %v", got, tc.start)
			}
			if got := m.At(1); got != tc.end {
				t.Errorf("At(1) = %v, expected %v", got, tc.end)
			}
			if m.At(-3) != m.At(0) || m.At(7) != m.At(1) {
				t.Error("At() should clamp t to [0, 1]")
			}
		})
	}
}

func TestGistRainbowMidStop(t *testing.T) {
	m, _ := Lookup("gist_rainbow")
	if got := m.At(0.4); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("At(0.4) = %v, expected pure green", got)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("nope"); !errors.Is(err, core.ErrConfig) {
		t.Errorf("Lookup() error = %v, expected config error", err)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("no colormaps registered")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names() not sorted: %v", names)
		}
	}
}

func TestColors(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	src, err := Resolve("viridis", &red)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range Colors(src, 5) {
		if c != red {
			t.Errorf("solid color %d = %v, expected red", i, c)
		}
	}

	src, _ = Resolve("gray", nil)
	cs := Colors(src, 4)
	if len(cs) != 4 {
		t.Fatalf("len = %d, expected 4", len(cs))
	}
	// i/n never reaches 1
	if cs[0] != (color.RGBA{0, 0, 0, 255}) || cs[3] != (color.RGBA{191, 191, 191, 255}) {
		t.Errorf("gray colors = %v", cs)
	}
}
