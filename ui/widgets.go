package ui

import "github.com/gdamore/tcell/v2"

// Checkbox draws "[x] label" and returns the covered region
func (r Region) Checkbox(x, y int, checked bool, label string, box, text tcell.Style) Region {
	ch := ' '
	if checked {
		ch = 'x'
	}
	r.Cell(x, y, '[', box)
	r.Cell(x+1, y, ch, box)
	r.Cell(x+2, y, ']', box)
	n := r.Text(x+4, y, label, text)
	return r.Sub(x, y, 4+n, 1)
}

// Chip draws a selectable value, padded by one space on each side
func (r Region) Chip(x, y int, label string, selected bool, normal, sel tcell.Style) Region {
	st := normal
	if selected {
		st = sel
	}
	n := r.Text(x, y, " "+label+" ", st)
	return r.Sub(x, y, n, 1)
}

// Stepper draws "◂ value ▸" with the arrows in arrow style
func (r Region) Stepper(x, y int, value string, arrow, text tcell.Style) Region {
	n := r.Text(x, y, "◂ ", arrow)
	n += r.Text(x+n, y, value, text)
	n += r.Text(x+n, y, " ▸", arrow)
	return r.Sub(x, y, n, 1)
}

// MenuList draws a dropdown of items at (x, y) with a border, highlighting sel.
// Returns the row regions of each item for hit testing.
func (r Region) MenuList(x, y int, items []string, sel int, border, item, hi tcell.Style) []Region {
	w := 0
	for _, it := range items {
		if n := Width(it); n > w {
			w = n
		}
	}
	w += 4
	box := r.Sub(x, y, w, len(items)+2)
	box.Fill(item)
	box.Box(LineSingle, border)

	rows := make([]Region, len(items))
	for i, it := range items {
		row := box.Sub(1, 1+i, w-2, 1)
		st := item
		if i == sel {
			st = hi
		}
		row.Fill(st)
		row.Text(1, 0, it, st)
		rows[i] = row
	}
	return rows
}
