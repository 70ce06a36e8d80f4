package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestPanelRegistryDefaults(t *testing.T) {
	r := NewPanelRegistry()

	want := []PanelID{PanelPlayer, PanelBounds, PanelInspector}
	got := r.EnabledPanels()
	if len(got) != len(want) {
		t.Fatalf("enabled = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("enabled[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if cats := r.Categories(); len(cats) != 2 || cats[0] != "windows" || cats[1] != "view" {
		t.Errorf("categories = %v", cats)
	}
	if n := len(r.ByCategory("windows")); n != 4 {
		t.Errorf("windows = %d, want 4", n)
	}
}

func TestPanelRegistryKeyPress(t *testing.T) {
	r := NewPanelRegistry()

	id, on, ok := r.HandleKeyPress(rl.KeyT)
	if !ok || id != PanelStats || !on {
		t.Fatalf("HandleKeyPress(T) = %s, %v, %v", id, on, ok)
	}
	if !r.IsEnabled(PanelStats) {
		t.Error("stats should be enabled")
	}

	if _, _, ok := r.HandleKeyPress(rl.KeyZ); ok {
		t.Error("unbound key should not toggle")
	}

	if r.Toggle(PanelID("missing")) {
		t.Error("unknown panel should not toggle on")
	}
	if len(r.Keys()) != len(r.All()) {
		t.Errorf("keys = %d, panels = %d", len(r.Keys()), len(r.All()))
	}
}
