package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
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

	// Save some scores
	if _, err := store.SaveScore("arkanoid", 1200, 2); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("arkanoid", 450, 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("arkanoid", 3100, 4); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game ID is isolated
	if _, err := store.SaveScore("other", 500, 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("arkanoid", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 3100 {
		t.Errorf("Expected highest score to be 3100, got %d", scores[0].Score)
	}
	if scores[1].Score != 1200 {
		t.Errorf("Expected second score to be 1200, got %d", scores[1].Score)
	}
	if scores[2].Score != 450 {
		t.Errorf("Expected third score to be 450, got %d", scores[2].Score)
	}

	// Round reached is stored alongside the score
	if scores[0].Round != 4 {
		t.Errorf("Expected best run to reach round 4, got %d", scores[0].Round)
	}

	otherScores, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(otherScores) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(otherScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("arkanoid", (i+1)*100, 1)
	}

	// Request only top 3
	scores, err := store.TopScores("arkanoid", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("arkanoid")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("arkanoid", 100, 1)
	store.SaveScore("arkanoid", 300, 2)
	store.SaveScore("arkanoid", 200, 1)

	high, err = store.HighScore("arkanoid")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("arkanoid", 100, 1)
	store.SaveScore("arkanoid", 200, 2)
	store.SaveScore("other", 300, 1)

	err := store.ClearScores("arkanoid")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores("arkanoid", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(cleared))
	}

	// Other game's scores are untouched
	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Error("Clearing one game must not affect another")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("arkanoid", i*10, 1)
	}

	scores, err := store.AllScores("arkanoid")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreSaveScoreClampsRound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("arkanoid", 50, 0); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("arkanoid", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Round != 1 {
		t.Errorf("Expected round clamped to 1, got %+v", scores)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("arkanoid", 100, 1)
	store.SaveScore("arkanoid", 300, 3)
	store.SaveScore("arkanoid", 200, 2)

	stats, err := store.GetGameStats("arkanoid")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.BestRound != 3 {
		t.Errorf("BestRound = %d, expected 3", stats.BestRound)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, expected 200", stats.AvgScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("TotalScore = %d, expected 600", stats.TotalScore)
	}
}

func TestStoreRoundStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("arkanoid", 100, 1)
	store.SaveScore("arkanoid", 150, 1)
	store.SaveScore("arkanoid", 900, 3)

	stats, err := store.GetRoundStats("arkanoid")
	if err != nil {
		t.Fatalf("GetRoundStats() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 rounds, got %d", len(stats))
	}
	if stats[0].Round != 1 || stats[0].Runs != 2 || stats[0].HighScore != 150 {
		t.Errorf("Round 1 stats = %+v", stats[0])
	}
	if stats[1].Round != 3 || stats[1].Runs != 1 || stats[1].HighScore != 900 {
		t.Errorf("Round 3 stats = %+v", stats[1])
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Nested directories are created on demand
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
