package rng

import "testing"

func TestPick(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		n    int
		want int
	}{
		{"zero", 0, 6, 0},
		{"middle", 0.5, 6, 3},
		{"just below one", 0.9999, 6, 5},
		{"exactly one clamps", 1.0, 6, 5},
		{"empty list", 0.7, 0, 0},
		{"single", 0.99, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pick(NewScripted(tt.v), tt.n)
			if got != tt.want {
				t.Errorf("Pick(%v, %d) = %d, want %d", tt.v, tt.n, got, tt.want)
			}
		})
	}
}

func TestSourcesInUnitInterval(t *testing.T) {
	sources := map[string]Source{
		"default":  NewDefault(),
		"seeded":   NewSeeded(42),
		"xorshift": NewXorshift(12345),
		"lehmer":   NewLehmer(12345),
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 10000; i++ {
				v := src.Float64()
				if v < 0 || v >= 1 {
					t.Fatalf("value %d = %v, want [0,1)", i, v)
				}
			}
		})
	}
}

func TestSeededSourcesRepeat(t *testing.T) {
	pairs := map[string][2]Source{
		"seeded":   {NewSeeded(7), NewSeeded(7)},
		"xorshift": {NewXorshift(7), NewXorshift(7)},
		"lehmer":   {NewLehmer(7), NewLehmer(7)},
	}

	for name, p := range pairs {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				a, b := p[0].Float64(), p[1].Float64()
				if a != b {
					t.Fatalf("draw %d differs: %v vs %v", i, a, b)
				}
			}
		})
	}
}

func TestXorshiftZeroSeed(t *testing.T) {
	x := NewXorshift(0)
	if x.Float64() == 0 && x.Float64() == 0 {
		t.Error("zero seed should not lock the generator at zero")
	}
}

func TestXorshiftSequence(t *testing.T) {
	tests := []struct {
		name string
		seed uint32
		want []float64
	}{
		{"seed 12345", 12345, []float64{0.776938705239445, 0.3951726963277906, 0.6557702794671059, 0.45510494196787477}},
		{"zero seed replaced", 0, []float64{0.31659353361465037, 0.8755162502638996, 0.5401453890372068}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := NewXorshift(tt.seed)
			for i, want := range tt.want {
				if got := x.Float64(); got != want {
					t.Fatalf("draw %d = %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestCoinCoversBothFaces(t *testing.T) {
	src := NewSeeded(3)
	seen := [2]bool{}
	for i := 0; i < 100; i++ {
		seen[Coin(src)] = true
	}
	if !seen[0] || !seen[1] {
		t.Errorf("coin faces seen = %v, want both", seen)
	}
}

func TestScriptedCycles(t *testing.T) {
	s := NewScripted(0.1, 0.2)
	got := []float64{s.Float64(), s.Float64(), s.Float64()}
	want := []float64{0.1, 0.2, 0.1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("draw %d = %v, want %v", i, got[i], want[i])
		}
	}
	if s.Calls() != 3 {
		t.Errorf("Calls() = %d, want 3", s.Calls())
	}
}

func TestNewByName(t *testing.T) {
	tests := []struct {
		kind    string
		seed    int64
		wantErr bool
	}{
		{"", 0, false},
		{"pcg", 7, false},
		{"PCG", 7, false},
		{"xorshift", 7, false},
		{" lehmer ", 7, false},
		{"mersenne", 7, true},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			src, err := New(tt.kind, tt.seed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", tt.kind, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if v := src.Float64(); v < 0 || v >= 1 {
				t.Errorf("Float64() = %v, want [0, 1)", v)
			}
		})
	}
}

func TestNewSeededKindsRepeat(t *testing.T) {
	for _, kind := range []string{KindPCG, KindXorshift, KindLehmer} {
		a, _ := New(kind, 42)
		b, _ := New(kind, 42)
		for i := 0; i < 10; i++ {
			if x, y := a.Float64(), b.Float64(); x != y {
				t.Fatalf("%s: draw %d differs: %v vs %v", kind, i, x, y)
			}
		}
	}
}
