package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RunID formats t as YYYYMMDDhhmmsscc, where cc is hundredths of a second.
// It names run output directories.
func RunID(t time.Time) string {
	return fmt.Sprintf("%s%02d", t.Format("20060102150405"), t.Nanosecond()/int(10*time.Millisecond))
}

// UniqueRunID returns id, or id with a _2, _3, ... suffix when parent
// already holds an entry of that name.
func UniqueRunID(parent, id string) string {
	candidate := id
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(parent, candidate)); err != nil {
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d", id, n)
	}
}
