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
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(RunResult{GameID: "coinquest", Coins: 5, Ticks: 900, Won: true}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	runs, err := store.TopRuns("coinquest", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected run to survive reopen, got %d runs", len(runs))
	}
}

func TestSaveRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunResult{GameID: "coinquest", Player: "theo", Coins: 3, Ticks: 400})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("Expected a UUID run id, got %q", id)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.Player != "theo" || got.Coins != 3 || got.Ticks != 400 || got.Won {
		t.Errorf("Unexpected run: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	missing, err := store.RunByID("no-such-run")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown run, got %+v", missing)
	}
}

func TestSaveRunDuplicateID(t *testing.T) {
	store := openTestStore(t)

	r := RunResult{RunID: "fixed-id", GameID: "coinquest"}
	if _, err := store.SaveRun(r); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(r); err == nil {
		t.Error("Expected error saving the same run id twice")
	}
}

func TestTopRunsOrdering(t *testing.T) {
	store := openTestStore(t)

	runs := []RunResult{
		{RunID: "lost-3", GameID: "coinquest", Coins: 3, Ticks: 100},
		{RunID: "won-slow", GameID: "coinquest", Coins: 5, Ticks: 2000, Won: true},
		{RunID: "lost-4", GameID: "coinquest", Coins: 4, Ticks: 5000},
		{RunID: "won-fast", GameID: "coinquest", Coins: 5, Ticks: 900, Won: true},
		{RunID: "other", GameID: "other", Coins: 5, Ticks: 1, Won: true},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%s) failed: %v", r.RunID, err)
		}
	}

	top, err := store.TopRuns("coinquest", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	want := []string{"won-fast", "won-slow", "lost-4", "lost-3"}
	if len(top) != len(want) {
		t.Fatalf("Expected %d runs, got %d", len(want), len(top))
	}
	for i, id := range want {
		if top[i].RunID != id {
			t.Errorf("rank %d: expected %s, got %s", i+1, id, top[i].RunID)
		}
	}

	limited, err := store.TopRuns("coinquest", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected limit of 2, got %d", len(limited))
	}
}

func TestBestRun(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun("coinquest")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no best run on empty store, got %+v", best)
	}

	store.SaveRun(RunResult{GameID: "coinquest", Coins: 2, Ticks: 50})
	store.SaveRun(RunResult{RunID: "winner", GameID: "coinquest", Coins: 5, Ticks: 1200, Won: true})

	best, err = store.BestRun("coinquest")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.RunID != "winner" {
		t.Errorf("Expected the won run to be best, got %+v", best)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunResult{GameID: "coinquest", Coins: 1})
	store.SaveRun(RunResult{GameID: "other", Coins: 1})

	if err := store.ClearRuns("coinquest"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("coinquest", 10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
	other, _ := store.TopRuns("other", 10)
	if len(other) != 1 {
		t.Errorf("Clearing one game should keep others, got %d", len(other))
	}
}

func TestRunDuration(t *testing.T) {
	e := RunEntry{Ticks: 90}
	if got := e.Duration(60); got != 1500*time.Millisecond {
		t.Errorf("Duration(60) = %v, want 1.5s", got)
	}
	if got := e.Duration(0); got != 0 {
		t.Errorf("Duration(0) = %v, want 0", got)
	}
}
