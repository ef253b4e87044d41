package core

import (
	"strings"
	"testing"
)

// rows returns the screen split into its text rows.
func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func assertRows(t *testing.T, s *Screen, want ...string) {
	t.Helper()
	got := rows(s)
	if len(got) != len(want) {
		t.Fatalf("screen has %d rows, want %d:\n%s", len(got), len(want), s.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(4, 2)

	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", s.Width(), s.Height())
	}
	assertRows(t, s, "    ", "    ")
}

func TestScreenClipsOutOfBounds(t *testing.T) {
	s := NewScreen(3, 2)

	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 2}} {
		s.SetColor(p[0], p[1], 'X', ColorRed)
		if got := s.GetCell(p[0], p[1]); got != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, want blank", p[0], p[1], got)
		}
	}
	s.DrawText(1, 1, "abcdef")

	assertRows(t, s, "   ", " ab")
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.SetColor(0, 0, '@', ColorYellow)
	s.Fill('#')
	assertRows(t, s, "###", "###")
	if s.GetCell(0, 0).Color != ColorDefault {
		t.Error("Fill should reset colors")
	}

	s.SetColor(1, 1, '@', ColorYellow)
	s.Clear()
	if s.GetCell(1, 1) != blankCell {
		t.Errorf("after Clear cell = %+v, want blank", s.GetCell(1, 1))
	}
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want []string
	}{
		{
			name: "text",
			draw: func(s *Screen) { s.DrawText(1, 0, "hi") },
			want: []string{" hi   ", "      ", "      "},
		},
		{
			name: "centered",
			draw: func(s *Screen) { s.DrawTextCentered(1, "ok") },
			want: []string{"      ", "  ok  ", "      "},
		},
		{
			name: "rect",
			draw: func(s *Screen) { s.DrawRect(NewRect(1, 1, 2, 2), '#') },
			want: []string{"      ", " ##   ", " ##   "},
		},
		{
			name: "box",
			draw: func(s *Screen) { s.DrawBox(NewRect(0, 0, 4, 3)) },
			want: []string{"┌──┐  ", "│  │  ", "└──┘  "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(6, 3)
			tt.draw(s)
			assertRows(t, s, tt.want...)
		})
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawTextColor(0, 0, "ab", ColorRed)
	s.Set(2, 0, 'c')

	if got := s.GetCell(1, 0); got != (Cell{Rune: 'b', Color: ColorRed}) {
		t.Errorf("GetCell(1, 0) = %+v, want red 'b'", got)
	}
	if got := s.GetCell(2, 0).Color; got != ColorDefault {
		t.Errorf("Set should use the default color, got %v", got)
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{Color(200), ""},
	}
	for _, tt := range tests {
		if got := tt.c.ANSI(); got != tt.want {
			t.Errorf("Color(%d).ANSI() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestScreenDrawOverlay(t *testing.T) {
	s := NewScreen(16, 7)
	s.Fill('.')
	s.DrawOverlay("PAUSED", "P: resume")

	assertRows(t, s,
		"................",
		".┌───────────┐..",
		".│   PAUSED  │..",
		".│           │..",
		".│ P: resume │..",
		".└───────────┘..",
		"................",
	)
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 2, "World")

	s.Resize(4, 2)
	assertRows(t, s, "Hell", "    ")

	s.Resize(6, 3)
	assertRows(t, s, "Hell  ", "      ", "      ")
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawText(0, 1, "Test")

	if got := s.Row(1); got != "Test " {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.Row(-1); got != "     " {
		t.Errorf("Row(-1) = %q, want spaces", got)
	}
}
