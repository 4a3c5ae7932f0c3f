package app

import (
	"log"

	"github.com/gdamore/tcell/v2"
)

// MenuLevel is how deep the File menu is open
type MenuLevel uint8

const (
	MenuClosed MenuLevel = iota
	MenuFile
	MenuLanguage
)

// File menu entries
const (
	fileItemLanguage = iota
	fileItemQuit
	fileItemCount
)

// MenuState tracks the open menu and the highlighted entry per level
type MenuState struct {
	Level   MenuLevel
	FileSel int
	LangSel int
}

// Open reports whether any menu is showing
func (m *MenuState) Open() bool {
	return m.Level != MenuClosed
}

// Toggle opens the File menu or closes all menus
func (m *MenuState) Toggle() {
	if m.Open() {
		m.Close()
		return
	}
	m.Level = MenuFile
	m.FileSel = 0
}

// Close hides all menus
func (m *MenuState) Close() {
	m.Level = MenuClosed
}

func (s *State) handleMenuKey(ev *tcell.EventKey) {
	switch s.Menu.Level {
	case MenuFile:
		switch ev.Key() {
		case tcell.KeyEscape:
			s.Menu.Close()
		case tcell.KeyUp:
			s.Menu.FileSel = (s.Menu.FileSel + fileItemCount - 1) % fileItemCount
		case tcell.KeyDown:
			s.Menu.FileSel = (s.Menu.FileSel + 1) % fileItemCount
		case tcell.KeyRight:
			if s.Menu.FileSel == fileItemLanguage {
				s.openLanguageMenu()
			}
		case tcell.KeyEnter:
			s.selectFileItem(s.Menu.FileSel)
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				s.selectFileItem(fileItemQuit)
			}
		}

	case MenuLanguage:
		n := len(s.bundle.Locales())
		switch ev.Key() {
		case tcell.KeyEscape:
			s.Menu.Close()
		case tcell.KeyLeft:
			s.Menu.Level = MenuFile
		case tcell.KeyUp:
			s.Menu.LangSel = (s.Menu.LangSel + n - 1) % n
		case tcell.KeyDown:
			s.Menu.LangSel = (s.Menu.LangSel + 1) % n
		case tcell.KeyEnter:
			s.selectLanguage(s.Menu.LangSel)
		}
	}
}

func (s *State) selectFileItem(idx int) {
	switch idx {
	case fileItemLanguage:
		s.openLanguageMenu()
	case fileItemQuit:
		log.Printf("quit requested from menu")
		s.Menu.Close()
		s.RequestQuit()
	}
}

func (s *State) openLanguageMenu() {
	s.Menu.Level = MenuLanguage
	s.Menu.FileSel = fileItemLanguage
	s.Menu.LangSel = 0
	for i, loc := range s.bundle.Locales() {
		if loc == s.Locale() {
			s.Menu.LangSel = i
		}
	}
}

func (s *State) selectLanguage(idx int) {
	locales := s.bundle.Locales()
	if idx < 0 || idx >= len(locales) {
		return
	}
	s.SetLocale(locales[idx])
	s.Menu.Close()
}

// languageLabel renders a locale as "<native name> (<tag>)"
func (s *State) languageLabel(loc string) string {
	name, ok := s.bundle.Message(loc, "language.name")
	if !ok {
		return loc
	}
	return name + " (" + loc + ")"
}
