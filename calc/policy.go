package calc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned by LookupPolicy for names not in Policies
var ErrUnknownPolicy = errors.New("unknown evaluation policy")

// Ordering selects when the dice term is applied relative to the adjustments
type Ordering uint8

const (
	// OrderBonusesFirst applies material and bonus, then the dice term
	OrderBonusesFirst Ordering = iota
	// OrderDiceFirst applies the dice term, then material and bonus
	OrderDiceFirst
)

func (o Ordering) String() string {
	if o == OrderDiceFirst {
		return "dice-first"
	}
	return "bonuses-first"
}

// Rounding selects how a result is rendered for display
type Rounding uint8

const (
	// RoundNone renders the shortest exact representation
	RoundNone Rounding = iota
	// RoundWhole renders zero decimal places
	RoundWhole
)

func (r Rounding) String() string {
	if r == RoundWhole {
		return "whole"
	}
	return "none"
}

// Policy fixes ordering, display rounding and the level range of an evaluation
type Policy struct {
	Name     string
	Ordering Ordering
	Rounding Rounding
	MinLevel int
	MaxLevel int
}

// BonusFirst starts levels at 1 and applies dice after the adjustments
var BonusFirst = Policy{
	Name:     "bonus-first",
	Ordering: OrderBonusesFirst,
	Rounding: RoundNone,
	MinLevel: 1,
	MaxLevel: 11,
}

// DiceFirst allows level 0 (base 0.5) and applies dice before the adjustments
var DiceFirst = Policy{
	Name:     "dice-first",
	Ordering: OrderDiceFirst,
	Rounding: RoundWhole,
	MinLevel: 0,
	MaxLevel: 11,
}

// DefaultPolicy is used when no policy is configured
var DefaultPolicy = BonusFirst

// Policies returns the named policies in cycle order
func Policies() []Policy {
	return []Policy{BonusFirst, DiceFirst}
}

// LookupPolicy finds a named policy, case-insensitive
func LookupPolicy(name string) (Policy, error) {
	n := strings.TrimSpace(name)
	for _, p := range Policies() {
		if strings.EqualFold(p.Name, n) {
			return p, nil
		}
	}
	return Policy{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// NextPolicy returns the policy following p in Policies, wrapping around
func NextPolicy(p Policy) Policy {
	all := Policies()
	for i, candidate := range all {
		if candidate.Name == p.Name {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
