package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative sizes should clamp to zero, got %dx%d", s.Width(), s.Height())
	}
	s.Set(0, 0, 'x') // must not panic
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '●', ColorWater)
	c := s.GetCell(5, 5)
	if c.Rune != '●' || c.Color != ColorWater {
		t.Errorf("GetCell(5, 5) = %+v, expected water drop", c)
	}

	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)
	if s.Get(-1, 0) != ' ' || s.GetCell(100, 0).Color != ColorDefault {
		t.Error("out of bounds reads should return a blank cell")
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.FillColored('~', ColorBlue)
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if s.GetCell(x, y) != blank {
				t.Fatalf("after Clear cell (%d, %d) = %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Drop", ColorCyan)

	for i, ch := range "Drop" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorCyan {
			t.Errorf("cell %d = %+v, expected %q in cyan", 2+i, c, ch)
		}
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "ÀB")

	x := (20 - 2) / 2
	if s.Get(x, 1) != 'À' || s.Get(x+1, 1) != 'B' {
		t.Errorf("centered text misplaced: row = %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBoxColored(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		c := s.GetCell(pos[0], pos[1])
		if c.Rune != want || c.Color != ColorGray {
			t.Errorf("corner %v = %+v, expected %q", pos, c, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}

	// Degenerate boxes draw nothing.
	s.Clear()
	s.DrawBox(NewRect(0, 0, 1, 5))
	if s.Get(0, 0) != ' ' {
		t.Error("1-wide box should not be drawn")
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawHLine(2, 2, 5, '=', ColorGreen)
	s.DrawVLine(3, 4, 3, '|', ColorDefault)

	if got := s.Row(2); got != "  =====   " {
		t.Errorf("Row(2) = %q", got)
	}
	for y := 4; y < 7; y++ {
		if s.Get(3, y) != '|' {
			t.Errorf("vertical line missing at y=%d", y)
		}
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorYellow)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content lost, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if s.GetCell(0, 0).Color != ColorYellow {
		t.Error("color should survive resize")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q", got)
	}
	if got := s.Row(-1); got != "   " {
		t.Errorf("out of bounds Row = %q", got)
	}
}
