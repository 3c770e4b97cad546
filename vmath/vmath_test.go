package vmath

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		expected  float64
	}{
		{"inside", 5, 2, 8, 5},
		{"below", 1, 2, 8, 2},
		{"above", 9, 2, 8, 8},
		{"on lower bound", 2, 2, 8, 2},
		{"inverted range pins to lo", 5, 4, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.v, tt.lo, tt.hi)
			if got != tt.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tt.v, tt.lo, tt.hi, got, tt.expected)
			}
			if again := Clamp(got, tt.lo, tt.hi); again != got {
				t.Errorf("Clamp not idempotent: %v then %v", got, again)
			}
		})
	}
}

func TestApproachNeverOvershoots(t *testing.T) {
	v := 0.0
	for i := 0; i < 10; i++ {
		v = Approach(v, 1, 0.3)
		if v > 1 {
			t.Fatalf("overshoot at step %d: %v", i, v)
		}
	}
	if v != 1 {
		t.Errorf("Expected to reach target, got %v", v)
	}

	v = Approach(1, 0, 0.4)
	if v != 0.6 {
		t.Errorf("Expected 0.6 moving down, got %v", v)
	}
}

func TestEllipseContains(t *testing.T) {
	if !EllipseContains(0, 0, 8, 4) {
		t.Error("Expected centre inside")
	}
	if !EllipseContains(8, 0, 8, 4) {
		t.Error("Expected horizontal edge on boundary")
	}
	if EllipseContains(8, 4, 8, 4) {
		t.Error("Expected bounding-box corner outside")
	}
	if EllipseContains(1, 1, 0, 4) {
		t.Error("Expected degenerate ellipse to contain nothing")
	}
}

func TestAreaContains(t *testing.T) {
	a := Area{X: 2, Y: 3, Width: 4, Height: 2}
	if !a.Contains(2, 3) || !a.Contains(5, 4) {
		t.Error("Expected corners inside")
	}
	if a.Contains(6, 3) || a.Contains(2, 5) {
		t.Error("Expected far edges exclusive")
	}
	if a.Origin() != (Vec2{2, 3}) {
		t.Errorf("Unexpected origin %v", a.Origin())
	}
}

func TestAreaUnion(t *testing.T) {
	a := Area{X: 0, Y: 0, Width: 2, Height: 1}
	b := Area{X: 4, Y: 2, Width: 1, Height: 1}
	u := a.Union(b)
	expected := Area{X: 0, Y: 0, Width: 5, Height: 3}
	if u != expected {
		t.Errorf("Expected %v, got %v", expected, u)
	}
	if (Area{}).Union(b) != b {
		t.Error("Expected empty union to return other")
	}
}
