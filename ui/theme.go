package ui

import "github.com/gdamore/tcell/v2"

// Theme collects the styles used by the form
type Theme struct {
	Bg       tcell.Style
	Label    tcell.Style
	Dim      tcell.Style
	Focus    tcell.Style // Focused row label
	Chip     tcell.Style
	ChipSel  tcell.Style
	Value    tcell.Style
	Rule     tcell.Style
	Border   tcell.Style
	Result   tcell.Style
	MenuBar  tcell.Style
	MenuItem tcell.Style
	MenuSel  tcell.Style
	Status   tcell.Style
	Warn     tcell.Style
}

var (
	bgColor     = tcell.NewRGBColor(25, 25, 35)
	fgColor     = tcell.NewRGBColor(210, 210, 210)
	dimColor    = tcell.NewRGBColor(110, 110, 120)
	accentColor = tcell.NewRGBColor(100, 200, 220)
	borderColor = tcell.NewRGBColor(80, 100, 140)
	chipBg      = tcell.NewRGBColor(45, 45, 60)
	selBg       = tcell.NewRGBColor(60, 90, 140)
	barBg       = tcell.NewRGBColor(40, 50, 70)
	warnColor   = tcell.NewRGBColor(255, 180, 100)
)

// DefaultTheme returns the dark theme
func DefaultTheme() Theme {
	base := tcell.StyleDefault.Background(bgColor).Foreground(fgColor)
	return Theme{
		Bg:       base,
		Label:    base,
		Dim:      base.Foreground(dimColor),
		Focus:    base.Foreground(accentColor).Bold(true),
		Chip:     base.Background(chipBg),
		ChipSel:  base.Background(selBg).Foreground(tcell.ColorWhite).Bold(true),
		Value:    base.Foreground(accentColor),
		Rule:     base.Foreground(borderColor),
		Border:   base.Foreground(borderColor),
		Result:   base.Foreground(tcell.ColorWhite).Bold(true),
		MenuBar:  base.Background(barBg),
		MenuItem: base.Background(chipBg),
		MenuSel:  base.Background(selBg).Foreground(tcell.ColorWhite),
		Status:   base.Background(barBg).Foreground(dimColor),
		Warn:     base.Foreground(warnColor).Bold(true),
	}
}
