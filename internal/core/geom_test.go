package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestCircleIntersectsBox(t *testing.T) {
	player := Box{X: 100, Y: 100, W: 75, H: 75}

	tests := []struct {
		name     string
		c        Circle
		expected bool
	}{
		{"center inside box", Circle{X: 137.5, Y: 137.5, R: 20}, true},
		{"center on top-left corner", Circle{X: 100, Y: 100, R: 20}, true},
		{"far away", Circle{X: 300, Y: 300, R: 20}, false},
		{"left of box touching edge", Circle{X: 80, Y: 137.5, R: 20}, true},
		{"left of box just outside", Circle{X: 79.9, Y: 137.5, R: 20}, false},
		{"above box in edge band", Circle{X: 120, Y: 85, R: 20}, true},
		{"diagonal inside corner radius", Circle{X: 90, Y: 90, R: 15}, true},
		{"diagonal outside corner radius", Circle{X: 88, Y: 88, R: 15}, false},
		{"below box too far", Circle{X: 137.5, Y: 230, R: 20}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CircleIntersectsBox(tc.c, player); got != tc.expected {
				t.Errorf("CircleIntersectsBox(%+v) = %v, expected %v", tc.c, got, tc.expected)
			}
		})
	}
}

func TestCircleIntersectsBoxCenterAlwaysHits(t *testing.T) {
	for _, size := range []float64{1, 10, 75, 200} {
		for _, r := range []float64{0, 1, 20, 49.9} {
			b := Box{X: -30, Y: 12, W: size, H: size / 2}
			cx, cy := b.Center()
			if !CircleIntersectsBox(Circle{X: cx, Y: cy, R: r}, b) {
				t.Errorf("circle r=%v at center of %+v should collide", r, b)
			}
		}
	}
}

func TestCircleIntersectsBoxBeyondHalfDiagonalNeverHits(t *testing.T) {
	b := Box{X: 0, Y: 0, W: 75, H: 40}
	cx, cy := b.Center()
	halfDiag := math.Hypot(b.W/2, b.H/2)
	r := 20.0

	for deg := 0; deg < 360; deg += 15 {
		a := float64(deg) * math.Pi / 180
		d := halfDiag + r + 0.01
		c := Circle{X: cx + d*math.Cos(a), Y: cy + d*math.Sin(a), R: r}
		if CircleIntersectsBox(c, b) {
			t.Errorf("circle at angle %d beyond half-diagonal should not collide", deg)
		}
	}
}

func TestBoxCenterOn(t *testing.T) {
	b := Box{W: 50, H: 30}
	b.CenterOn(100, 60)
	if b.X != 75 || b.Y != 45 {
		t.Errorf("CenterOn(100, 60) = (%v, %v), expected (75, 45)", b.X, b.Y)
	}
	if cx, cy := b.Center(); cx != 100 || cy != 60 {
		t.Errorf("Center() = (%v, %v), expected (100, 60)", cx, cy)
	}
	if b.Bottom() != 75 {
		t.Errorf("Bottom() = %v, expected 75", b.Bottom())
	}
}
