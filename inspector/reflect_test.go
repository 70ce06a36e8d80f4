package inspector

import (
	"testing"

	"github.com/pthm-cable/wator/components"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag     string
		widget  Widget
		options map[string]string
	}{
		{"", WidgetAuto, map[string]string{}},
		{"label", WidgetLabel, map[string]string{}},
		{"bar,max:200", WidgetBar, map[string]string{"max": "200"}},
		{"bar, max:Limit, warn:high", WidgetBar, map[string]string{"max": "Limit", "warn": "high"}},
		{"skip", WidgetSkip, map[string]string{}},
		{"unknown", WidgetAuto, map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			widget, options := ParseTag(tt.tag)
			if widget != tt.widget {
				t.Errorf("widget = %d, want %d", widget, tt.widget)
			}
			if len(options) != len(tt.options) {
				t.Fatalf("options = %v, want %v", options, tt.options)
			}
			for k, v := range tt.options {
				if options[k] != v {
					t.Errorf("options[%q] = %q, want %q", k, options[k], v)
				}
			}
		})
	}
}

func TestExtractFieldsResolvesSiblingMax(t *testing.T) {
	fields := ExtractFields(&components.Hunger{Timer: 30, Limit: 110})
	if len(fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(fields))
	}

	timer := fields[0]
	if timer.Name != "Timer" || timer.Widget != WidgetBar {
		t.Fatalf("first field = %+v, want Timer bar", timer)
	}
	if got := GetMax(timer.Options); got != 110 {
		t.Errorf("max = %v, want 110", got)
	}
	if got := Ratio(30, timer.Options); got < 0.27 || got > 0.28 {
		t.Errorf("ratio = %v, want about 0.273", got)
	}
}

func TestExtractFieldsSkipsAndDetects(t *testing.T) {
	type sample struct {
		Shown  int
		Hidden int `inspect:"skip"`
		Flag   bool
		secret int
	}
	fields := ExtractFields(sample{Shown: 1, Flag: true, secret: 2})
	if len(fields) != 2 {
		t.Fatalf("got %d fields, want 2: %+v", len(fields), fields)
	}
	if fields[0].Widget != WidgetLabel {
		t.Errorf("int widget = %d, want label", fields[0].Widget)
	}
	if fields[1].Widget != WidgetBool {
		t.Errorf("bool widget = %d, want bool", fields[1].Widget)
	}

	if ExtractFields(42) != nil {
		t.Error("non-struct should yield no fields")
	}
}

func TestDescribe(t *testing.T) {
	fish := components.Creature{Species: components.SpeciesFish, Life: components.Life{Age: 3, Maturity: 10}}
	if got := Describe(fish); len(got) != 1 || got[0].Title != "LIFE" {
		t.Errorf("fish sections = %+v, want LIFE only", got)
	}

	shark := components.Creature{Species: components.SpeciesShark, Hunger: components.Hunger{Timer: 5, Limit: 20}}
	got := Describe(shark)
	if len(got) != 2 || got[1].Title != "HUNGER" {
		t.Fatalf("shark sections = %+v, want LIFE and HUNGER", got)
	}
	if got[1].Fields[0].Value != 5 {
		t.Errorf("hunger timer = %v, want 5", got[1].Fields[0].Value)
	}
}

func TestGetMaxDefaults(t *testing.T) {
	tests := []struct {
		name    string
		options map[string]string
		want    float32
	}{
		{"missing", map[string]string{}, 1},
		{"numeric", map[string]string{"max": "50"}, 50},
		{"unresolved name", map[string]string{"max": "Limit"}, 1},
		{"zero", map[string]string{"max": "0"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetMax(tt.options); got != tt.want {
				t.Errorf("GetMax = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	if got := FormatValue(float32(1.234), ""); got != "1.23" {
		t.Errorf("float = %q", got)
	}
	if got := FormatValue(7, "%d ticks"); got != "7 ticks" {
		t.Errorf("fmt = %q", got)
	}
}
