package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	records := []RenderRecord{
		{CurveID: "koch", Level: 3, Mode: ModePNG, Edges: 8, Width: 900, Height: 900, Colors: "gist_rainbow", Output: "koch_level3.png"},
		{CurveID: "koch", Level: 5, Mode: ModeWindow, Edges: 32, Elapsed: 1500 * time.Millisecond},
		{CurveID: "dragon", Level: 10, Mode: ModeVideo, Edges: 1024, Output: "dragon_level10.mp4"},
	}
	for _, r := range records {
		if _, err := store.SaveRender(r); err != nil {
			t.Fatalf("SaveRender() failed: %v", err)
		}
	}

	koch, err := store.RendersByCurve("koch", 10)
	if err != nil {
		t.Fatalf("RendersByCurve() failed: %v", err)
	}
	if len(koch) != 2 {
		t.Fatalf("Expected 2 koch renders, got %d", len(koch))
	}
	// Newest first
	if koch[0].Level != 5 || koch[0].Elapsed != 1500*time.Millisecond {
		t.Errorf("Expected newest koch render first, got %+v", koch[0])
	}
	if koch[1].Output != "koch_level3.png" || koch[1].Colors != "gist_rainbow" || koch[1].Width != 900 {
		t.Errorf("Fields not round-tripped: %+v", koch[1])
	}
	if koch[1].CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}

	all, err := store.RecentRenders(2)
	if err != nil {
		t.Fatalf("RecentRenders() failed: %v", err)
	}
	if len(all) != 2 || all[0].CurveID != "dragon" {
		t.Errorf("RecentRenders(2) = %+v", all)
	}
}

func TestStoreCurveStats(t *testing.T) {
	store := openTestStore(t)

	for _, lvl := range []int{2, 6, 4} {
		if _, err := store.SaveRender(RenderRecord{CurveID: "hilbert", Level: lvl, Mode: ModeTerminal, Edges: 1 << (2 * lvl), Elapsed: 100 * time.Millisecond}); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.CurveStats("hilbert")
	if err != nil {
		t.Fatalf("CurveStats() failed: %v", err)
	}
	if stats.Renders != 3 || stats.MaxLevel != 6 || stats.MaxEdges != 4096 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalEdges != 16+4096+256 {
		t.Errorf("TotalEdges = %d", stats.TotalEdges)
	}
	if stats.AvgElapsed != 100*time.Millisecond {
		t.Errorf("AvgElapsed = %v", stats.AvgElapsed)
	}

	empty, err := store.CurveStats("moore")
	if err != nil {
		t.Fatalf("CurveStats() on empty curve failed: %v", err)
	}
	if empty.Renders != 0 || !empty.LastRendered.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.AllCurveStats()
	if err != nil {
		t.Fatalf("AllCurveStats() failed: %v", err)
	}
	if len(all) != 1 || all["hilbert"].Renders != 3 {
		t.Errorf("AllCurveStats() = %v", all)
	}
}

func TestStoreClearRenders(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"koch", "koch", "levy"} {
		if _, err := store.SaveRender(RenderRecord{CurveID: id, Mode: ModePNG}); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.ClearRenders("koch"); err != nil {
		t.Fatalf("ClearRenders() failed: %v", err)
	}
	recs, _ := store.RecentRenders(10)
	if len(recs) != 1 || recs[0].CurveID != "levy" {
		t.Errorf("after clearing koch: %+v", recs)
	}

	if err := store.ClearRenders(""); err != nil {
		t.Fatalf("ClearRenders(\"\") failed: %v", err)
	}
	recs, _ = store.RecentRenders(10)
	if len(recs) != 0 {
		t.Errorf("Expected empty history, got %d", len(recs))
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 30; i++ {
		if _, err := store.SaveRender(RenderRecord{CurveID: "gosper", Level: i % 5, Mode: ModeSSH}); err != nil {
			t.Fatal(err)
		}
	}

	recs, err := store.RecentRenders(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 20 {
		t.Errorf("Expected default limit of 20, got %d", len(recs))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
