package ui

// Center returns a centered region of given size within outer
func Center(outer Region, w, h int) Region {
	x := (outer.W - w) / 2
	y := (outer.H - h) / 2
	return outer.Sub(x, y, w, h)
}

// SplitVFixed splits at a fixed row: top gets h rows, bottom gets the rest
func SplitVFixed(r Region, h int) (top, bottom Region) {
	if h > r.H {
		h = r.H
	}
	if h < 0 {
		h = 0
	}
	return r.Sub(0, 0, r.W, h), r.Sub(0, h, r.W, r.H-h)
}

// Rows hands out consecutive rows from the top of a region
type Rows struct {
	r Region
	y int
}

// NewRows starts a row cursor at the top of r
func NewRows(r Region) *Rows {
	return &Rows{r: r}
}

// Next returns the next region of h rows and advances the cursor
func (rs *Rows) Next(h int) Region {
	out := rs.r.Sub(0, rs.y, rs.r.W, h)
	rs.y += h
	return out
}

// Rest returns everything below the cursor
func (rs *Rows) Rest() Region {
	return rs.r.Sub(0, rs.y, rs.r.W, rs.r.H-rs.y)
}
