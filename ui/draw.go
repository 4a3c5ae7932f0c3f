package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
)

var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

const (
	boxTL = 0
	boxH  = 1
	boxTR = 2
	boxV  = 3
	boxBL = 4
	boxBR = 5
)

// Width returns the display width of s in cells
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Text renders text at position, truncates at region edge, returns columns written
func (r Region) Text(x, y int, s string, st tcell.Style) int {
	if y < 0 || y >= r.H {
		return 0
	}
	col := 0
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+col+w > r.W {
			break
		}
		r.Cell(x+col, y, ch, st)
		col += w
	}
	return col
}

// TextRight renders text right-aligned on row
func (r Region) TextRight(y int, s string, st tcell.Style) {
	r.Text(r.W-Width(s), y, s, st)
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, st tcell.Style) {
	r.Text((r.W-Width(s))/2, y, s, st)
}

// HLine draws a horizontal rule across the region on row y
func (r Region) HLine(y int, line LineType, st tcell.Style) {
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	ch := boxChars[line][boxH]
	for x := 0; x < r.W; x++ {
		r.Cell(x, y, ch, st)
	}
}

// Box draws border around region edge
func (r Region) Box(line LineType, st tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]

	r.Cell(0, 0, chars[boxTL], st)
	r.Cell(r.W-1, 0, chars[boxTR], st)
	r.Cell(0, r.H-1, chars[boxBL], st)
	r.Cell(r.W-1, r.H-1, chars[boxBR], st)

	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, chars[boxH], st)
		r.Cell(x, r.H-1, chars[boxH], st)
	}
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, chars[boxV], st)
		r.Cell(r.W-1, y, chars[boxV], st)
	}
}

// Card draws titled border and returns inner content region
func (r Region) Card(title string, line LineType, st tcell.Style) Region {
	r.Box(line, st)

	if title != "" && r.W > 4 {
		t := Truncate(title, r.W-4)
		x := (r.W - Width(t) - 2) / 2
		r.Text(x, 0, " "+t+" ", st.Bold(true))
	}
	return r.Inset(1)
}

// Truncate shortens s to max cells, marking the cut with an ellipsis
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	return runewidth.Truncate(s, max, "…")
}
