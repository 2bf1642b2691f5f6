package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 3, true},
		{"inside", 4, 4, true},
		{"right edge excluded", 6, 3, false},
		{"bottom edge excluded", 2, 5, false},
		{"left of rect", 1, 3, false},
		{"above rect", 2, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
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
	if x, y := r.Center(); x != 15 || y != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", x, y)
	}
}

func TestRectCenterIn(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)

	got := outer.CenterIn(20, 10)
	if got != NewRect(30, 7, 20, 10) {
		t.Errorf("CenterIn = %+v", got)
	}

	tooBig := outer.CenterIn(100, 30)
	if tooBig.X != 0 || tooBig.Y != 0 {
		t.Errorf("oversized rect should clamp to origin, got %+v", tooBig)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min failed")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max failed")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs failed")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.SetClick(3, 4)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Has returned wrong result")
	}

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear should drop actions and click")
	}
	if !clone.Has(ActionLeft) || clone.Click == nil || *clone.Click != (Point{X: 3, Y: 4}) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionSelect) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionSelect)
	if !zero.Has(ActionSelect) {
		t.Error("Set should allocate on a zero frame")
	}
}

func TestActionString(t *testing.T) {
	if ActionHint.String() != "Hint" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
