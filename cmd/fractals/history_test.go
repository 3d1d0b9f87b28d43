package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/fractals/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintStats(t *testing.T) {
	store := openTestStore(t)
	for _, r := range []storage.RenderRecord{
		{CurveID: "koch", Level: 3, Mode: storage.ModePNG, Edges: 256, Elapsed: 200 * time.Millisecond},
		{CurveID: "koch", Level: 5, Mode: storage.ModeWindow, Edges: 4096, Elapsed: 400 * time.Millisecond},
		{CurveID: "dragon", Level: 10, Mode: storage.ModeTerminal, Edges: 1024},
	} {
		if _, err := store.SaveRender(r); err != nil {
			t.Fatalf("SaveRender: %v", err)
		}
	}

	var all bytes.Buffer
	if err := printStats(&all, store, ""); err != nil {
		t.Fatalf("printStats: %v", err)
	}
	out := all.String()
	for _, want := range []string{"koch", "dragon", "4096", "300ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("all-curve stats missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "hilbert") {
		t.Errorf("curves without renders should be skipped:\n%s", out)
	}

	var one bytes.Buffer
	if err := printStats(&one, store, "dragon"); err != nil {
		t.Fatalf("printStats(dragon): %v", err)
	}
	if got := one.String(); !strings.Contains(got, "dragon") || strings.Contains(got, "koch") {
		t.Errorf("single-curve stats should list only dragon:\n%s", got)
	}

	var none bytes.Buffer
	if err := printStats(&none, store, "hilbert"); err != nil {
		t.Fatalf("printStats(hilbert): %v", err)
	}
	if lines := strings.Count(none.String(), "\n"); lines != 2 {
		t.Errorf("curve without renders should print only the header, got %d lines", lines)
	}
}
