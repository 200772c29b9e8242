package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)
	if c.SubWidth() != 8 || c.SubHeight() != 8 {
		t.Fatalf("sub-pixel size %dx%d, want 8x8", c.SubWidth(), c.SubHeight())
	}

	c.Set(0, 0)
	c.Set(1, 3)
	if c.Grid[0][0] != rune(blank|0x1|0x80) {
		t.Errorf("cell = %U, want %U", c.Grid[0][0], rune(blank|0x1|0x80))
	}
	if !c.IsSet(1, 3) || c.IsSet(1, 2) {
		t.Error("IsSet disagrees with Set")
	}

	// Out of range points are dropped.
	c.Set(-1, 0)
	c.Set(100, 100)

	c.Clear()
	for _, row := range c.Grid {
		for _, r := range row {
			if r != blank {
				t.Fatalf("cell not cleared: %U", r)
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 3)
	c.DrawLine(0, 5, 19, 5)
	for x := 0; x < 20; x++ {
		if !c.IsSet(x, 5) {
			t.Fatalf("pixel %d not set on horizontal line", x)
		}
	}

	c.Clear()
	c.DrawLine(3, 0, 3, 11)
	for y := 0; y < 12; y++ {
		if !c.IsSet(3, y) {
			t.Fatalf("pixel %d not set on vertical line", y)
		}
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillCircle(10, 10, 3)

	if !c.IsSet(10, 10) || !c.IsSet(13, 10) || !c.IsSet(10, 7) {
		t.Error("circle centre or rim missing")
	}
	if c.IsSet(13, 13) || c.IsSet(14, 10) {
		t.Error("circle spilled outside radius")
	}

	c.Clear()
	c.FillCircle(2, 2, 0)
	if !c.IsSet(2, 2) {
		t.Error("zero radius should light the centre")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, l := range lines {
		if len([]rune(l)) != 3 {
			t.Errorf("line %q has wrong width", l)
		}
	}
}
