package app

import (
	"log"

	"github.com/lixenwraith/energy-calculator/audio"
	"github.com/lixenwraith/energy-calculator/calc"
	"github.com/lixenwraith/energy-calculator/constants"
	"github.com/lixenwraith/energy-calculator/locale"
	"github.com/lixenwraith/energy-calculator/ui"
)

// Field identifies a focusable control of the form, in focus order
type Field uint8

const (
	FieldLevel Field = iota
	FieldAction
	FieldVerbal
	FieldSomatic
	FieldMaterialSign
	FieldMaterial
	FieldDiceCount
	FieldDiceKind
	FieldBonusSign
	FieldBonus
	fieldCount
)

// Options configures a new State
type Options struct {
	Bundle  *locale.Bundle
	Locale  string
	Policy  calc.Policy
	Player  audio.Player
	Theme   *ui.Theme
	Version string
}

// State is the single owned application state: the calculation input plus
// everything the controller and render pass need between frames
type State struct {
	Input  calc.Input
	Policy calc.Policy
	Focus  Field
	Menu   MenuState

	bundle  *locale.Bundle
	tr      *locale.Translator
	player  audio.Player
	theme   ui.Theme
	version string

	hits        []hit
	lastButtons uint16
	quit        bool
}

// New creates the state with default input under opts.Policy
func New(opts Options) *State {
	policy := opts.Policy
	if policy.Name == "" {
		policy = calc.DefaultPolicy
	}
	player := opts.Player
	if player == nil {
		player = audio.Silent{}
	}
	theme := ui.DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	bundle := opts.Bundle
	if bundle == nil {
		bundle = locale.MustLoadEmbedded()
	}
	version := opts.Version
	if version == "" {
		version = constants.Version
	}

	s := &State{
		Input:   calc.DefaultInput().Clamp(policy),
		Policy:  policy,
		bundle:  bundle,
		tr:      bundle.Translator(opts.Locale),
		player:  player,
		theme:   theme,
		version: version,
	}
	return s
}

// Result evaluates the current input
func (s *State) Result() float64 {
	return calc.Evaluate(s.Input, s.Policy)
}

// ResultText is the display string of the current result
func (s *State) ResultText() string {
	return calc.Format(s.Result(), s.Policy)
}

// Locale returns the active locale identifier
func (s *State) Locale() string {
	return s.tr.Locale()
}

// SetLocale swaps the label translator; the input is untouched
func (s *State) SetLocale(loc string) {
	s.tr = s.bundle.Translator(loc)
	log.Printf("locale switched to %s", s.tr.Locale())
}

// SetPolicy switches the evaluation policy and re-clamps the level into its range
func (s *State) SetPolicy(p calc.Policy) {
	s.Policy = p
	s.Input = s.Input.Clamp(p)
	log.Printf("policy switched to %s", p.Name)
}

// Reset restores the default input, keeping policy and locale
func (s *State) Reset() {
	s.Input = calc.DefaultInput().Clamp(s.Policy)
}

// RequestQuit marks the state done; the loop exits after the current event
func (s *State) RequestQuit() {
	s.quit = true
}

// Done reports whether quit was requested
func (s *State) Done() bool {
	return s.quit
}
