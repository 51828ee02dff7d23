package weight

import "testing"

func TestTablesAreMonotonic(t *testing.T) {
	pos, neg := Table(Positive), Table(Negative)
	if len(pos) != 21 || len(neg) != 21 {
		t.Fatalf("expected 21 levels, got %d and %d", len(pos), len(neg))
	}
	if pos[0] != 1.00 || neg[0] != 1.00 {
		t.Fatalf("level 0 must be neutral, got %v and %v", pos[0], neg[0])
	}
	for i := 1; i < len(pos); i++ {
		if pos[i] <= pos[i-1] {
			t.Fatalf("positive table not increasing at %d", i)
		}
		if neg[i] >= neg[i-1] {
			t.Fatalf("negative table not decreasing at %d", i)
		}
	}
}

func TestAtClamps(t *testing.T) {
	tests := []struct {
		level int
		sign  Sign
		want  float64
	}{
		{level: 0, sign: Positive, want: 1.00},
		{level: 9, sign: Positive, want: 1.55},
		{level: 20, sign: Positive, want: 2.65},
		{level: 25, sign: Positive, want: 2.65},
		{level: -3, sign: Positive, want: 1.00},
		{level: 1, sign: Negative, want: 0.95},
		{level: 40, sign: Negative, want: 0.38},
	}
	for _, tt := range tests {
		if got := At(tt.level, tt.sign); got != tt.want {
			t.Errorf("At(%d, %s) = %v, want %v", tt.level, tt.sign, got, tt.want)
		}
	}
}

func TestLevelForExactOnly(t *testing.T) {
	if lvl, ok := LevelFor(1.55, Positive); !ok || lvl != 9 {
		t.Fatalf("LevelFor(1.55) = %d, %v; want 9, true", lvl, ok)
	}
	if lvl, ok := LevelFor(1.5500001, Positive); !ok || lvl != 9 {
		t.Fatalf("rounding to two digits should match level 9, got %d, %v", lvl, ok)
	}
	if _, ok := LevelFor(1.50, Positive); ok {
		t.Fatalf("1.50 has no exact level")
	}
	if lvl, ok := LevelFor(0.64, Negative); !ok || lvl != 9 {
		t.Fatalf("LevelFor(0.64, Negative) = %d, %v", lvl, ok)
	}
	if _, ok := LevelFor(1.55, Negative); ok {
		t.Fatalf("1.55 is not in the negative table")
	}
}

func TestFormat(t *testing.T) {
	for in, want := range map[float64]string{
		1:      "1.00",
		1.3:    "1.30",
		0.384:  "0.38",
		2.6549: "2.65",
	} {
		if got := Format(in); got != want {
			t.Errorf("Format(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestInRange(t *testing.T) {
	for w, want := range map[float64]bool{
		0:     true,
		1.55:  true,
		Max:   true,
		-0.01: false,
		1e10:  false,
		1e20:  false,
	} {
		if got := InRange(w); got != want {
			t.Errorf("InRange(%v) = %v, want %v", w, got, want)
		}
	}
	if Format(Max) != "1000000000.00" {
		t.Fatalf("Format(Max) = %q", Format(Max))
	}
}
