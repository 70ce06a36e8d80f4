package telemetry

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFishExtinct       BookmarkType = "fish_extinct"
	BookmarkSharksExtinct     BookmarkType = "sharks_extinct"
	BookmarkSharkRecovery     BookmarkType = "shark_recovery"
	BookmarkFishCrash         BookmarkType = "fish_crash"
	BookmarkStableCoexistence BookmarkType = "stable_coexistence"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int          `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// stableWindows is how many consecutive calm windows make a stable bookmark.
const stableWindows = 5

// BookmarkDetector detects interesting moments in the simulation.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	// State tracking
	recentSharkMin     int  // minimum shark count since the last recovery
	recentFishPeak     int  // peak fish count since the last crash
	stableWindowsCount int  // consecutive windows with calm populations
	fishGone           bool // extinction already reported
	sharksGone         bool
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 4 {
		historySize = 4 // minimum for stability detection
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	bookmarks = append(bookmarks, bd.checkExtinction(stats)...)

	if bd.historyFull || bd.historyIdx > 0 {
		// Shark recovery: was <=3, now >=3x that
		if b := bd.checkSharkRecovery(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}

		// Fish crash: dropped >30% from recent peak
		if b := bd.checkFishCrash(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	// Update history
	bd.addToHistory(stats)

	// Stable coexistence: both species present with low variation
	if b := bd.checkStableCoexistence(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	if stats.Sharks < bd.recentSharkMin || bd.recentSharkMin == 0 {
		bd.recentSharkMin = stats.Sharks
	}
	if stats.Fish > bd.recentFishPeak {
		bd.recentFishPeak = stats.Fish
	}

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

// recent returns up to n of the latest windows, oldest first.
func (bd *BookmarkDetector) recent(n int) []WindowStats {
	count := bd.historyIdx
	if bd.historyFull {
		count = bd.historySize
	}
	if n > count {
		n = count
	}
	out := make([]WindowStats, n)
	for i := 0; i < n; i++ {
		out[i] = bd.history[(bd.historyIdx-n+i+bd.historySize)%bd.historySize]
	}
	return out
}

func (bd *BookmarkDetector) checkExtinction(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark
	if stats.Fish == 0 && !bd.fishGone {
		bd.fishGone = true
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkFishExtinct,
			Tick:        stats.WindowEndTick,
			Description: "Fish died out",
		})
	}
	if stats.Sharks == 0 && !bd.sharksGone {
		bd.sharksGone = true
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkSharksExtinct,
			Tick:        stats.WindowEndTick,
			Description: "Sharks died out",
		})
	}
	return bookmarks
}

func (bd *BookmarkDetector) checkSharkRecovery(stats WindowStats) *Bookmark {
	if bd.recentSharkMin == 0 || bd.recentSharkMin > 3 {
		return nil
	}

	threshold := bd.recentSharkMin * 3
	if stats.Sharks >= threshold && stats.Sharks >= 6 {
		// Reset the minimum after triggering
		oldMin := bd.recentSharkMin
		bd.recentSharkMin = stats.Sharks

		return &Bookmark{
			Type:        BookmarkSharkRecovery,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Shark population recovered from %d to %d", oldMin, stats.Sharks),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkFishCrash(stats WindowStats) *Bookmark {
	if bd.recentFishPeak == 0 {
		return nil
	}

	dropPercent := 1.0 - float64(stats.Fish)/float64(bd.recentFishPeak)
	if dropPercent > 0.30 && stats.Fish < bd.recentFishPeak-10 {
		// Reset peak after crash
		oldPeak := bd.recentFishPeak
		bd.recentFishPeak = stats.Fish

		return &Bookmark{
			Type:        BookmarkFishCrash,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Fish crashed %.0f%% from peak %d to %d", dropPercent*100, oldPeak, stats.Fish),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkStableCoexistence(stats WindowStats) *Bookmark {
	// Need both populations present
	if stats.Fish < 10 || stats.Sharks < 3 {
		bd.stableWindowsCount = 0
		return nil
	}

	window := bd.recent(4)
	if len(window) < 4 {
		return nil
	}

	fish := make([]float64, len(window))
	sharks := make([]float64, len(window))
	for i, w := range window {
		fish[i] = float64(w.Fish)
		sharks[i] = float64(w.Sharks)
	}

	// Low variation: coefficient of variation < 20%
	fishCV := stat.StdDev(fish, nil) / stat.Mean(fish, nil)
	sharkCV := stat.StdDev(sharks, nil) / stat.Mean(sharks, nil)

	if fishCV < 0.2 && sharkCV < 0.2 {
		bd.stableWindowsCount++
	} else {
		bd.stableWindowsCount = 0
	}

	if bd.stableWindowsCount == stableWindows { // trigger exactly once
		return &Bookmark{
			Type:        BookmarkStableCoexistence,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Stable coexistence with %d fish, %d sharks over %d+ windows", stats.Fish, stats.Sharks, stableWindows),
		}
	}

	return nil
}
