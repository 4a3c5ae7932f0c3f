package calc

import (
	"fmt"
	"strings"
)

// ActionKind selects the casting time multiplier
type ActionKind uint8

const (
	Action ActionKind = iota
	BonusAction
	Reaction
)

var actionNames = [...]string{
	Action:      "action",
	BonusAction: "bonus-action",
	Reaction:    "reaction",
}

// Actions returns all action kinds in display order
func Actions() []ActionKind {
	return []ActionKind{Action, BonusAction, Reaction}
}

// Multiplier returns the fixed factor contributed by the action kind
func (a ActionKind) Multiplier() float64 {
	switch a {
	case BonusAction:
		return 2
	case Reaction:
		return 0.5
	default:
		return 6
	}
}

func (a ActionKind) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("ActionKind(%d)", a)
}

// ParseActionKind maps a name produced by String back to its ActionKind
func ParseActionKind(s string) (ActionKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range actionNames {
		if n == name {
			return ActionKind(i), nil
		}
	}
	return Action, fmt.Errorf("unknown action kind %q", s)
}

// Sign selects how an adjustment is folded into the running result
type Sign uint8

const (
	Multiplicative Sign = iota
	Additive
)

// Apply combines amount into r according to the sign
func (s Sign) Apply(r float64, amount int) float64 {
	if s == Additive {
		return r + float64(amount)
	}
	return r * float64(amount)
}

// Symbol returns the operator shown on the form
func (s Sign) Symbol() string {
	if s == Additive {
		return "+"
	}
	return "*"
}

// Toggle returns the other sign
func (s Sign) Toggle() Sign {
	if s == Additive {
		return Multiplicative
	}
	return Additive
}

func (s Sign) String() string {
	switch s {
	case Multiplicative:
		return "multiplicative"
	case Additive:
		return "additive"
	}
	return fmt.Sprintf("Sign(%d)", s)
}

// ParseSign accepts the sign name or its operator symbol
func ParseSign(s string) (Sign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "*", "x", "multiplicative":
		return Multiplicative, nil
	case "+", "additive":
		return Additive, nil
	}
	return Multiplicative, fmt.Errorf("unknown sign %q", s)
}

// DiceKind is a die size; None is the neutral divisor
type DiceKind uint8

const (
	None DiceKind = iota
	D4
	D6
	D8
	D10
	D12
	D20
	D100
)

// Face counts indexed by DiceKind, None divides by one
var diceFaces = [...]int{
	None: 1,
	D4:   4,
	D6:   6,
	D8:   8,
	D10:  10,
	D12:  12,
	D20:  20,
	D100: 100,
}

// DiceKinds returns all dice kinds in display order
func DiceKinds() []DiceKind {
	return []DiceKind{None, D4, D6, D8, D10, D12, D20, D100}
}

// Faces returns the face count of the die, 1 for None
func (d DiceKind) Faces() int {
	if int(d) < len(diceFaces) {
		return diceFaces[d]
	}
	return 1
}

func (d DiceKind) String() string {
	if d == None {
		return "None"
	}
	if int(d) < len(diceFaces) {
		return fmt.Sprintf("D%d", diceFaces[d])
	}
	return fmt.Sprintf("DiceKind(%d)", d)
}

// ParseDiceKind accepts "None" or "dN" notation, case-insensitive
func ParseDiceKind(s string) (DiceKind, error) {
	name := strings.TrimSpace(s)
	for _, d := range DiceKinds() {
		if strings.EqualFold(d.String(), name) {
			return d, nil
		}
	}
	return None, fmt.Errorf("unknown dice kind %q", s)
}

// Adjustment is a non-negative amount combined into the result by Sign
type Adjustment struct {
	Amount int
	Sign   Sign
}

// Input holds every user-controlled parameter of the calculation
type Input struct {
	Level     int
	Action    ActionKind
	Verbal    bool
	Somatic   bool
	Material  Adjustment
	Bonus     Adjustment
	DiceCount int
	Dice      DiceKind
}

// DefaultInput returns the state the form starts with
func DefaultInput() Input {
	return Input{
		Level:     1,
		Action:    Action,
		Verbal:    true,
		Somatic:   true,
		Material:  Adjustment{Amount: 1, Sign: Multiplicative},
		Bonus:     Adjustment{Amount: 1, Sign: Multiplicative},
		DiceCount: 0,
		Dice:      None,
	}
}

// Clamp returns a copy with level inside the policy range and no negative counts
func (in Input) Clamp(p Policy) Input {
	in.Level = clampInt(in.Level, p.MinLevel, p.MaxLevel)
	in.Material.Amount = max(in.Material.Amount, 0)
	in.Bonus.Amount = max(in.Bonus.Amount, 0)
	in.DiceCount = max(in.DiceCount, 0)
	return in
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
