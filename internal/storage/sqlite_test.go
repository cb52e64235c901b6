package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/firetower-arcade/lookout/internal/game"
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreCreatesNestedDirectories(t *testing.T) {
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

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("lookout", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("lookout_endless", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("lookout", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}

	endless, err := store.TopScores("lookout_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("lookout", (i+1)*100)
	}

	scores, err := store.TopScores("lookout", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("lookout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("lookout", 100)
	store.SaveScore("lookout", 300)
	store.SaveScore("lookout", 200)

	high, err = store.HighScore("lookout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("lookout", 100)
	store.SaveScore("lookout", 200)
	store.SaveScore("lookout_endless", 300)

	if err := store.ClearScores("lookout"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("lookout", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	endless, _ := store.TopScores("lookout_endless", 10)
	if len(endless) != 1 {
		t.Errorf("Endless scores should not be affected by clearing the shift mode")
	}
}

func TestStoreReportJournal(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveReport("lookout", 1, 245, -3, "Windy"); err != nil {
		t.Fatalf("SaveReport() failed: %v", err)
	}
	if _, err := store.SaveReport("lookout", 2, 100.5, 4, "Clear"); err != nil {
		t.Fatalf("SaveReport() failed: %v", err)
	}

	reports, err := store.RecentReports(10)
	if err != nil {
		t.Fatalf("RecentReports() failed: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("Expected 2 reports, got %d", len(reports))
	}

	// Newest first.
	if reports[0].FireID != 2 || reports[0].Weather != "Clear" {
		t.Errorf("Unexpected newest report: %+v", reports[0])
	}
	if reports[1].Azimuth != 245 || reports[1].Declination != -3 {
		t.Errorf("Unexpected oldest report: %+v", reports[1])
	}
}

func TestStoreRecentReportsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 30; i++ {
		store.SaveReport("lookout", int64(i), float64(i), 0, "Clear")
	}

	reports, err := store.RecentReports(5)
	if err != nil {
		t.Fatalf("RecentReports() failed: %v", err)
	}
	if len(reports) != 5 {
		t.Errorf("Expected 5 reports with limit, got %d", len(reports))
	}
	if reports[0].FireID != 29 {
		t.Errorf("Expected newest report first, got fire %d", reports[0].FireID)
	}
}

func TestStoreActsAsReportSink(t *testing.T) {
	store := openTestStore(t)

	var sink game.ReportSink = store
	sink.FireReported(game.ReportRecord{
		FireID:      7,
		Azimuth:     310,
		Declination: 2,
		Weather:     game.WeatherHot,
		Mode:        "endless",
	})

	reports, err := store.RecentReports(10)
	if err != nil {
		t.Fatalf("RecentReports() failed: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("Expected 1 journaled report, got %d", len(reports))
	}
	r := reports[0]
	if r.GameID != "lookout_endless" || r.FireID != 7 || r.Weather != "Hot" {
		t.Errorf("Journaled report = %+v", r)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("lookout", 100)
	store.SaveScore("lookout", 300)
	store.SaveReport("lookout", 1, 10, 0, "Clear")

	stats, err := store.GetGameStats("lookout")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, expected 400", stats.TotalScore)
	}
	if stats.Reports != 1 {
		t.Errorf("Reports = %d, expected 1", stats.Reports)
	}
}
