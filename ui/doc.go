// Package ui provides immediate-mode drawing primitives over a tcell.Screen.
//
// Region is a small value type describing a rectangle of the screen. All
// drawing is relative to the region and clipped to it. Nothing is retained
// between frames: the caller redraws the whole form every frame.
//
//	root := ui.Root(screen)
//	root.Fill(theme.Bg)
//	_, body := ui.SplitVFixed(root, 1)
//	content := body.Card("Result", ui.LineRounded, theme.Border)
//	content.TextCenter(0, "3600", theme.Result)
//	screen.Show()
package ui
