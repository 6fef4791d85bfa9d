package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenFileCreatesDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "runs.db")

	store, err := Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestMigrationsApplied(t *testing.T) {
	store := openTest(t)

	v, err := schemaVersion(context.Background(), store.db)
	if err != nil {
		t.Fatalf("schemaVersion() failed: %v", err)
	}
	if v != 1 {
		t.Errorf("schema version = %d, expected 1", v)
	}
}

func TestMemoryStoresAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := openTest(t)
	b := openTest(t)

	if _, err := a.SaveRun(ctx, Run{GameID: "drops", Score: 10}); err != nil {
		t.Fatal(err)
	}
	runs, err := b.TopRuns(ctx, "drops", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("separate in-memory stores share data: %+v", runs)
	}
}

func TestSaveAndTopRuns(t *testing.T) {
	ctx := context.Background()
	store := openTest(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	inputs := []Run{
		{GameID: "drops", Score: 100, CreatedAt: base},
		{GameID: "drops", Score: 50, CreatedAt: base.Add(time.Minute)},
		{GameID: "drops", Score: 200, CleanCollected: 22, BestStreak: 9, Character: "girl", Difficulty: "hard", Outcome: "time_expired", CreatedAt: base.Add(2 * time.Minute)},
		{GameID: "drops", Score: 100, CreatedAt: base.Add(3 * time.Minute)},
		{GameID: "quest", Score: 500, CreatedAt: base},
	}
	var saved []Run
	for _, r := range inputs {
		s, err := store.SaveRun(ctx, r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if _, err := uuid.Parse(s.ID); err != nil {
			t.Errorf("run id %q is not a uuid", s.ID)
		}
		saved = append(saved, s)
	}

	runs, err := store.TopRuns(ctx, "drops", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, expected 3", len(runs))
	}
	top, want := runs[0], saved[2]
	if top.ID != want.ID || top.Score != 200 || top.CleanCollected != 22 || top.BestStreak != 9 ||
		top.Character != "girl" || top.Difficulty != "hard" || top.Outcome != "time_expired" {
		t.Errorf("top run = %+v, expected %+v", top, want)
	}
	if !top.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("created at = %v, expected %v", top.CreatedAt, want.CreatedAt)
	}
	if runs[1].ID != saved[0].ID || runs[2].ID != saved[3].ID {
		t.Error("equal scores should keep the earlier run first")
	}
}

func TestSaveRunRequiresGame(t *testing.T) {
	store := openTest(t)
	if _, err := store.SaveRun(context.Background(), Run{Score: 1}); err == nil {
		t.Error("run without game id accepted")
	}
}

func TestHighScoreAndStats(t *testing.T) {
	ctx := context.Background()
	store := openTest(t)

	high, err := store.HighScore(ctx, "quest")
	if err != nil || high != 0 {
		t.Fatalf("empty HighScore = %d, %v", high, err)
	}
	empty, err := store.Stats(ctx, "quest")
	if err != nil {
		t.Fatal(err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, r := range []Run{
		{GameID: "quest", Score: 40, CleanCollected: 8, BestStreak: 5},
		{GameID: "quest", Score: 80, CleanCollected: 14, BestStreak: 3},
	} {
		if _, err := store.SaveRun(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	if high, _ := store.HighScore(ctx, "quest"); high != 80 {
		t.Errorf("HighScore = %d", high)
	}
	stats, err := store.Stats(ctx, "quest")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Runs != 2 || stats.AvgScore != 60 || stats.TotalClean != 22 || stats.BestStreak != 5 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played not set")
	}

	if err := store.Clear(ctx, "quest"); err != nil {
		t.Fatal(err)
	}
	if high, _ := store.HighScore(ctx, "quest"); high != 0 {
		t.Error("Clear left runs behind")
	}
}
