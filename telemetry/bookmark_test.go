package telemetry

import "testing"

func hasBookmark(bookmarks []Bookmark, bt BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == bt {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_FishCrash(t *testing.T) {
	bd := NewBookmarkDetector(10)

	// Build up fish population
	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: i * 50, Fish: 100, Sharks: 10})
	}

	// Now crash fish population
	bookmarks := bd.Check(WindowStats{WindowEndTick: 300, Fish: 50, Sharks: 10})
	if !hasBookmark(bookmarks, BookmarkFishCrash) {
		t.Error("expected fish_crash bookmark")
	}
}

func TestBookmarkDetector_SharkRecovery(t *testing.T) {
	bd := NewBookmarkDetector(10)

	bd.Check(WindowStats{WindowEndTick: 50, Fish: 200, Sharks: 2})
	bd.Check(WindowStats{WindowEndTick: 100, Fish: 200, Sharks: 3})

	bookmarks := bd.Check(WindowStats{WindowEndTick: 150, Fish: 180, Sharks: 8})
	if !hasBookmark(bookmarks, BookmarkSharkRecovery) {
		t.Error("expected shark_recovery bookmark")
	}
}

func TestBookmarkDetector_ExtinctionOnce(t *testing.T) {
	bd := NewBookmarkDetector(10)

	first := bd.Check(WindowStats{WindowEndTick: 50, Fish: 0, Sharks: 0})
	if !hasBookmark(first, BookmarkFishExtinct) || !hasBookmark(first, BookmarkSharksExtinct) {
		t.Errorf("bookmarks = %+v, want both extinctions", first)
	}

	again := bd.Check(WindowStats{WindowEndTick: 100, Fish: 0, Sharks: 0})
	if hasBookmark(again, BookmarkFishExtinct) || hasBookmark(again, BookmarkSharksExtinct) {
		t.Error("extinction should be reported once")
	}
}

func TestBookmarkDetector_StableCoexistence(t *testing.T) {
	bd := NewBookmarkDetector(10)

	triggered := 0
	for i := 0; i < 12; i++ {
		// small wobble well under 20% variation
		fish := 500 + (i%2)*10
		bookmarks := bd.Check(WindowStats{WindowEndTick: i * 50, Fish: fish, Sharks: 40})
		if hasBookmark(bookmarks, BookmarkStableCoexistence) {
			triggered++
		}
	}

	if triggered != 1 {
		t.Errorf("stable_coexistence triggered %d times, want exactly 1", triggered)
	}
}

func TestBookmarkDetector_OscillationIsNotStable(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 12; i++ {
		fish := 100
		if i%2 == 0 {
			fish = 600
		}
		bookmarks := bd.Check(WindowStats{WindowEndTick: i * 50, Fish: fish, Sharks: 40})
		if hasBookmark(bookmarks, BookmarkStableCoexistence) {
			t.Fatalf("window %d: oscillating populations flagged as stable", i)
		}
	}
}
