package ui

import "github.com/gdamore/tcell/v2"

// BarSection is one segment of a status bar
type BarSection struct {
	Text     string
	Style    tcell.Style
	Priority int // Higher survives truncation
}

// StatusBar renders left sections packed from the left and right sections packed
// from the right on row y. Low-priority right sections are dropped when both sides
// would overlap.
func (r Region) StatusBar(y int, left, right []BarSection, bg tcell.Style, sep string) {
	if y < 0 || y >= r.H {
		return
	}
	if sep == "" {
		sep = " │ "
	}
	row := r.Row(y)
	row.Fill(bg)

	x := 1
	for i, sec := range left {
		if i > 0 {
			x += row.Text(x, 0, sep, bg)
		}
		x += row.Text(x, 0, sec.Text, sec.Style)
	}

	right = fitSections(right, row.W-x-2, Width(sep))
	end := row.W - 1
	for i := len(right) - 1; i >= 0; i-- {
		end -= Width(right[i].Text)
		row.Text(end, 0, right[i].Text, right[i].Style)
		if i > 0 {
			end -= Width(sep)
			row.Text(end, 0, sep, bg)
		}
	}
}

// fitSections drops the lowest-priority sections until the rest fit in avail columns
func fitSections(sections []BarSection, avail, sepLen int) []BarSection {
	out := append([]BarSection(nil), sections...)
	for len(out) > 0 && sectionsWidth(out, sepLen) > avail {
		low := 0
		for i, s := range out {
			if s.Priority < out[low].Priority {
				low = i
			}
		}
		out = append(out[:low], out[low+1:]...)
	}
	return out
}

func sectionsWidth(sections []BarSection, sepLen int) int {
	w := 0
	for i, s := range sections {
		if i > 0 {
			w += sepLen
		}
		w += Width(s.Text)
	}
	return w
}
