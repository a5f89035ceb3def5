package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/learning-adventure/internal/player"
	"github.com/vovakirdan/learning-adventure/internal/session"
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

var base = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func summary(p player.ID, activity string, score int, offset time.Duration) session.Summary {
	return session.Summary{
		ID:        session.NewID(),
		Player:    p,
		Activity:  activity,
		Score:     score,
		StartedAt: base.Add(offset),
		EndedAt:   base.Add(offset + 5*time.Minute),
	}
}

func TestStoreOpenCreatesNestedFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(summary(player.Ellie, "spelling", 3, 0))
	store.SaveSession(summary(player.Ellie, "spelling", 7, time.Hour))
	store.SaveSession(summary(player.Ellie, "math", 1, 2*time.Hour))
	store.SaveSession(summary(player.Vivi, "spelling", 9, 3*time.Hour))

	spelling, err := store.RecentSessions(player.Ellie, "spelling", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(spelling) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(spelling))
	}
	if spelling[0].Score != 7 || spelling[1].Score != 3 {
		t.Errorf("sessions not newest first: %+v", spelling)
	}
	if !spelling[0].EndedAt.Equal(base.Add(time.Hour + 5*time.Minute)) {
		t.Errorf("EndedAt = %v", spelling[0].EndedAt)
	}

	all, _ := store.RecentSessions(player.Ellie, "", 10)
	if len(all) != 3 {
		t.Errorf("empty activity should match all, got %d", len(all))
	}

	limited, _ := store.RecentSessions(player.Ellie, "", 1)
	if len(limited) != 1 || limited[0].Activity != "math" {
		t.Errorf("limit 1 should return the newest session, got %+v", limited)
	}
}

func TestStoreSaveSessionTwiceFails(t *testing.T) {
	store := openTestStore(t)
	sum := summary(player.Vivi, "spelling", 2, 0)

	if err := store.SaveSession(sum); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if err := store.SaveSession(sum); err == nil {
		t.Error("saving the same session twice should fail")
	}
}

func TestStoreBestSession(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestSession(player.Ellie, "spelling")
	if err != nil {
		t.Fatalf("BestSession() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for no sessions, got %d", best)
	}

	store.SaveSession(summary(player.Ellie, "spelling", 4, 0))
	store.SaveSession(summary(player.Ellie, "spelling", 11, time.Hour))
	store.SaveSession(summary(player.Vivi, "spelling", 20, 2*time.Hour))

	best, _ = store.BestSession(player.Ellie, "spelling")
	if best != 11 {
		t.Errorf("Expected best session 11, got %d", best)
	}
}

func TestStorePlayerStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(summary(player.Ellie, "spelling", 4, 0))
	store.SaveSession(summary(player.Ellie, "spelling", 6, time.Hour))
	store.SaveSession(summary(player.Ellie, "science", 0, 2*time.Hour))

	stats, err := store.PlayerStats(player.Ellie)
	if err != nil {
		t.Fatalf("PlayerStats() failed: %v", err)
	}

	sp := stats["spelling"]
	if sp == nil {
		t.Fatal("missing spelling stats")
	}
	if sp.Sessions != 2 || sp.BestSession != 6 || sp.TotalScore != 10 || sp.AvgScore != 5 {
		t.Errorf("unexpected spelling stats %+v", sp)
	}
	if stats["science"] == nil || stats["science"].Sessions != 1 {
		t.Error("science stats should count a zero-score session")
	}
}
