package storage

import (
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openStore(t)

	for _, s := range []struct {
		game  string
		score int
		level int
	}{
		{"grido", 100, 1},
		{"grido", 50, 0},
		{"grido", 700, 3},
		{"grido_small", 500, 2},
	} {
		if _, err := store.SaveScore("session-a", s.game, s.score, s.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("grido", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Check ordering (highest first)
	want := []int{700, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Level != 3 || scores[0].SessionID != "session-a" {
		t.Errorf("top entry = %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("created_at should be set")
	}
}

func TestStoreTopScoresAllGames(t *testing.T) {
	store := openStore(t)

	store.SaveScore("s1", "grido", 10, 0)
	store.SaveScore("s2", "grido_small", 30, 0)
	store.SaveScore("s3", "grido", 20, 0)

	scores, err := store.TopScores("", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(scores))
	}
	if scores[0].GameID != "grido_small" || scores[1].Score != 20 {
		t.Errorf("unexpected order: %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openStore(t)

	high, err := store.HighScore("grido")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty board, got %d", high)
	}

	store.SaveScore("s", "grido", 100, 1)
	store.SaveScore("s", "grido", 300, 2)

	high, err = store.HighScore("grido")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openStore(t)

	store.SaveScore("s", "grido", 100, 1)
	store.SaveScore("s", "grido", 300, 2)

	stats, err := store.GetGameStats("grido")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.BestLevel != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openStore(t)
	b := openStore(t)

	a.SaveScore("s", "grido", 100, 1)

	scores, err := b.TopScores("grido", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("a fresh store must be empty, got %d entries", len(scores))
	}
}
