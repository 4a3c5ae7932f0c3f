package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/energy-calculator/audio"
	"github.com/lixenwraith/energy-calculator/calc"
	"github.com/lixenwraith/energy-calculator/constants"
)

// HandleEvent applies one terminal event to the state, returns false once the app should exit
func (s *State) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKey(ev)
	case *tcell.EventMouse:
		s.handleMouse(ev)
	}
	return !s.quit
}

func (s *State) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && ev.Rune() == 'c') {
		s.RequestQuit()
		return
	}
	if ev.Key() == tcell.KeyF10 || (ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModAlt != 0 && (ev.Rune() == 'f' || ev.Rune() == 'F')) {
		s.Menu.Toggle()
		return
	}
	if s.Menu.Open() {
		s.handleMenuKey(ev)
		return
	}

	switch ev.Key() {
	case tcell.KeyTab, tcell.KeyDown:
		s.focusNext()
	case tcell.KeyBacktab, tcell.KeyUp:
		s.focusPrev()
	case tcell.KeyLeft:
		s.Adjust(s.Focus, -1)
	case tcell.KeyRight:
		s.Adjust(s.Focus, 1)
	case tcell.KeyPgUp:
		s.Adjust(s.Focus, constants.StepLarge)
	case tcell.KeyPgDn:
		s.Adjust(s.Focus, -constants.StepLarge)
	case tcell.KeyEnter:
		s.Activate(s.Focus)
	case tcell.KeyRune:
		s.handleRune(ev.Rune())
	}
}

func (s *State) handleRune(r rune) {
	switch r {
	case 'j':
		s.focusNext()
	case 'k':
		s.focusPrev()
	case 'h', '-':
		s.Adjust(s.Focus, -1)
	case 'l', '+', '=':
		s.Adjust(s.Focus, 1)
	case ' ':
		s.Activate(s.Focus)
	case 'r':
		s.Reset()
		s.player.Play(audio.CueToggle)
	case 'p':
		s.SetPolicy(calc.NextPolicy(s.Policy))
		s.player.Play(audio.CueToggle)
	}
}

func (s *State) handleMouse(ev *tcell.EventMouse) {
	buttons := uint16(ev.Buttons())
	pressed := buttons&uint16(tcell.Button1) != 0 && s.lastButtons&uint16(tcell.Button1) == 0
	s.lastButtons = buttons
	if !pressed {
		return
	}

	x, y := ev.Position()
	menuOpen := s.Menu.Open()
	for i := len(s.hits) - 1; i >= 0; i-- {
		h := s.hits[i]
		if h.overlay != menuOpen {
			continue
		}
		if h.r.Contains(x, y) {
			h.act()
			return
		}
	}
	if menuOpen {
		s.Menu.Close()
	}
}

func (s *State) focusNext() {
	s.Focus = (s.Focus + 1) % fieldCount
}

func (s *State) focusPrev() {
	s.Focus = (s.Focus + fieldCount - 1) % fieldCount
}

// Adjust steps field by delta: numeric fields add with clamping, enum fields
// cycle in the direction of delta, boolean and sign fields toggle
func (s *State) Adjust(f Field, delta int) {
	in := &s.Input
	switch f {
	case FieldLevel:
		s.step(&in.Level, delta, s.Policy.MinLevel, s.Policy.MaxLevel)
	case FieldMaterial:
		s.step(&in.Material.Amount, delta, 0, constants.MaxCount)
	case FieldBonus:
		s.step(&in.Bonus.Amount, delta, 0, constants.MaxCount)
	case FieldDiceCount:
		s.step(&in.DiceCount, delta, 0, constants.MaxCount)
	case FieldAction:
		s.SetAction(cycle(calc.Actions(), in.Action, delta))
	case FieldDiceKind:
		in.Dice = cycle(calc.DiceKinds(), in.Dice, delta)
		s.player.Play(audio.CueToggle)
	default:
		s.Activate(f)
	}
}

// SetAction selects the action type, playing the toggle cue on change
func (s *State) SetAction(a calc.ActionKind) {
	if s.Input.Action == a {
		return
	}
	s.Input.Action = a
	s.player.Play(audio.CueToggle)
}

// Activate toggles checkbox and sign fields and advances enum fields
func (s *State) Activate(f Field) {
	in := &s.Input
	switch f {
	case FieldVerbal:
		in.Verbal = !in.Verbal
	case FieldSomatic:
		in.Somatic = !in.Somatic
	case FieldMaterialSign:
		in.Material.Sign = in.Material.Sign.Toggle()
	case FieldBonusSign:
		in.Bonus.Sign = in.Bonus.Sign.Toggle()
	case FieldAction, FieldDiceKind:
		s.Adjust(f, 1)
		return
	default:
		return
	}
	s.player.Play(audio.CueToggle)
}

// step adds delta to *v clamped into [lo, hi]
func (s *State) step(v *int, delta, lo, hi int) {
	var next int
	switch {
	case delta > 0 && delta > hi-*v:
		next = hi
	case delta < 0 && delta < lo-*v:
		next = lo
	default:
		next = *v + delta
	}
	if next == *v {
		s.player.Play(audio.CueLimit)
		return
	}
	*v = next
	s.player.Play(audio.CueStep)
}

// cycle moves from cur by the sign of delta through values, wrapping around
func cycle[T comparable](values []T, cur T, delta int) T {
	idx := 0
	for i, v := range values {
		if v == cur {
			idx = i
			break
		}
	}
	switch {
	case delta > 0:
		idx = (idx + 1) % len(values)
	case delta < 0:
		idx = (idx - 1 + len(values)) % len(values)
	}
	return values[idx]
}
