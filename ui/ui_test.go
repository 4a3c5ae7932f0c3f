package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

// rowText returns the visible text of screen row y with trailing spaces trimmed
func rowText(s tcell.SimulationScreen, y int) string {
	s.Show()
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func TestSubClipsToParent(t *testing.T) {
	s := newScreen(t, 20, 10)
	root := Root(s)

	sub := root.Sub(15, 8, 10, 10)
	if sub.W != 5 || sub.H != 2 {
		t.Errorf("Expected clipped 5x2, got %dx%d", sub.W, sub.H)
	}
	neg := root.Sub(-3, -2, 6, 6)
	if neg.X != 0 || neg.Y != 0 || neg.W != 3 || neg.H != 4 {
		t.Errorf("Expected negative origin clipped, got %+v", neg)
	}
	if !root.Inset(10).Empty() {
		t.Error("Expected over-inset region to be empty")
	}
}

func TestTextTruncatesAtEdge(t *testing.T) {
	s := newScreen(t, 20, 3)
	r := Root(s).Sub(2, 1, 5, 1)

	n := r.Text(0, 0, "abcdefgh", tcell.StyleDefault)
	if n != 5 {
		t.Errorf("Expected 5 columns written, got %d", n)
	}
	if got := rowText(s, 1); got != "  abcde" {
		t.Errorf("row = %q", got)
	}
}

func TestTextAlignment(t *testing.T) {
	s := newScreen(t, 10, 2)
	root := Root(s)

	root.TextCenter(0, "ab", tcell.StyleDefault)
	root.TextRight(1, "xyz", tcell.StyleDefault)

	if got := rowText(s, 0); got != "    ab" {
		t.Errorf("center row = %q", got)
	}
	if got := rowText(s, 1); got != "       xyz" {
		t.Errorf("right row = %q", got)
	}
}

func TestCard(t *testing.T) {
	s := newScreen(t, 12, 4)
	inner := Root(s).Card("Res", LineSingle, tcell.StyleDefault)

	if inner.X != 1 || inner.Y != 1 || inner.W != 10 || inner.H != 2 {
		t.Errorf("inner = %+v", inner)
	}
	if got := rowText(s, 0); got != "┌── Res ───┐" {
		t.Errorf("top = %q", got)
	}
	if got := rowText(s, 3); got != "└──────────┘" {
		t.Errorf("bottom = %q", got)
	}
}

func TestWidgets(t *testing.T) {
	s := newScreen(t, 40, 4)
	root := Root(s)
	st := tcell.StyleDefault

	cb := root.Checkbox(0, 0, true, "Verbal", st, st)
	if cb.W != 10 {
		t.Errorf("checkbox width = %d", cb.W)
	}
	root.Checkbox(12, 0, false, "Somatic", st, st)
	if got := rowText(s, 0); got != "[x] Verbal  [ ] Somatic" {
		t.Errorf("checkbox row = %q", got)
	}

	chip := root.Chip(0, 1, "+", true, st, st.Reverse(true))
	if chip.W != 3 || !chip.Contains(1, 1) || chip.Contains(3, 1) {
		t.Errorf("chip region = %+v", chip)
	}

	root.Stepper(0, 2, "11", st, st)
	if got := rowText(s, 2); got != "◂ 11 ▸" {
		t.Errorf("stepper row = %q", got)
	}
}

func TestMenuList(t *testing.T) {
	s := newScreen(t, 20, 6)
	rows := Root(s).MenuList(1, 1, []string{"Language", "Quit"}, 1, tcell.StyleDefault, tcell.StyleDefault, tcell.StyleDefault)

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[1].Y != 3 || !rows[1].Contains(3, 3) {
		t.Errorf("second row = %+v", rows[1])
	}
	if got := rowText(s, 3); got != " │ Quit     │" {
		t.Errorf("item row = %q", got)
	}
}

func TestStatusBarDropsLowPriority(t *testing.T) {
	s := newScreen(t, 24, 1)
	st := tcell.StyleDefault

	Root(s).StatusBar(0,
		[]BarSection{{Text: "v0.1.0", Style: st}},
		[]BarSection{
			{Text: "hint text here", Style: st, Priority: 0},
			{Text: "en-US", Style: st, Priority: 10},
		},
		st, "")

	got := rowText(s, 0)
	if !strings.HasPrefix(got, " v0.1.0") || !strings.HasSuffix(got, "en-US") {
		t.Errorf("status row = %q", got)
	}
	if strings.Contains(got, "hint") {
		t.Errorf("Expected low-priority section dropped, got %q", got)
	}
}

func TestSplitsAndRows(t *testing.T) {
	s := newScreen(t, 30, 10)
	root := Root(s)

	top, bottom := SplitVFixed(root, 1)
	if top.H != 1 || bottom.Y != 1 || bottom.H != 9 {
		t.Errorf("SplitVFixed = %+v / %+v", top, bottom)
	}
	rows := NewRows(root)
	a := rows.Next(2)
	b := rows.Next(1)
	if a.Y != 0 || a.H != 2 || b.Y != 2 || rows.Rest().Y != 3 || rows.Rest().H != 7 {
		t.Errorf("rows = %+v %+v %+v", a, b, rows.Rest())
	}

	c := Center(root, 10, 2)
	if c.X != 10 || c.Y != 4 {
		t.Errorf("Center = %+v", c)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Additional", 5); got != "Addi…" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("ok", 5); got != "ok" {
		t.Errorf("Truncate short = %q", got)
	}
}

func TestWideRunesUseTwoCells(t *testing.T) {
	if w := Width("日本"); w != 4 {
		t.Errorf("Width = %d, want 4", w)
	}

	s := newScreen(t, 10, 1)
	r := Root(s).Sub(0, 0, 5, 1)
	if n := r.Text(0, 0, "日本語", tcell.StyleDefault); n != 4 {
		t.Errorf("Expected 4 columns written, got %d", n)
	}
	if got := Truncate("日本語", 5); Width(got) > 5 {
		t.Errorf("Truncate width %d exceeds 5", Width(got))
	}
}
