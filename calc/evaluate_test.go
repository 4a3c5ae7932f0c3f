package calc

import (
	"math"
	"testing"
)

// TestEvaluateBonusFirstFixtures checks the reference values of the bonus-first formula
func TestEvaluateBonusFirstFixtures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		want   float64
	}{
		{"defaults", func(*Input) {}, 3600},
		{"reaction", func(in *Input) { in.Action = Reaction }, 300},
		{"bonus action", func(in *Input) { in.Action = BonusAction }, 1200},
		{"two d6", func(in *Input) { in.Dice = D6; in.DiceCount = 2 }, 1200},
		{"additive material", func(in *Input) { in.Material = Adjustment{Amount: 5, Sign: Additive} }, 3605},
		{"no components", func(in *Input) { in.Verbal = false; in.Somatic = false }, 6},
		{"level 11", func(in *Input) { in.Level = 11 }, 39600},
		{
			"bonus then dice",
			func(in *Input) {
				in.Bonus = Adjustment{Amount: 4, Sign: Additive}
				in.Dice = D8
				in.DiceCount = 3
			},
			(3600 + 4) * 3.0 / 8.0,
		},
		{"zero dice count", func(in *Input) { in.Dice = D20 }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := DefaultInput()
			tt.mutate(&in)
			if got := Evaluate(in, BonusFirst); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestEvaluateDiceFirstFixtures checks zero-level handling and dice-before-bonus ordering
func TestEvaluateDiceFirstFixtures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		want   float64
	}{
		{"defaults", func(*Input) {}, 3600},
		{"level zero", func(in *Input) { in.Level = 0 }, 1800},
		{"level zero reaction", func(in *Input) { in.Level = 0; in.Action = Reaction }, 150},
		{
			"dice then bonus",
			func(in *Input) {
				in.Bonus = Adjustment{Amount: 4, Sign: Additive}
				in.Dice = D8
				in.DiceCount = 3
			},
			3600*3.0/8.0 + 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := DefaultInput()
			tt.mutate(&in)
			if got := Evaluate(in, DiceFirst); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestEvaluateLevelZeroBonusFirst keeps level 0 literal when the policy does not special-case it
func TestEvaluateLevelZeroBonusFirst(t *testing.T) {
	in := DefaultInput()
	in.Level = 0
	in.Material = Adjustment{Amount: 7, Sign: Additive}
	if got := Evaluate(in, BonusFirst); got != 7 {
		t.Errorf("Expected 0 base plus 7, got %v", got)
	}
}

// TestEvaluateOrderingsDiffer shows the two policies disagree once both bonus and dice are present
func TestEvaluateOrderingsDiffer(t *testing.T) {
	in := DefaultInput()
	in.Material = Adjustment{Amount: 10, Sign: Additive}
	in.Dice = D4
	in.DiceCount = 1

	a := Evaluate(in, BonusFirst)
	b := Evaluate(in, DiceFirst)
	if a == b {
		t.Fatalf("Expected orderings to differ, both gave %v", a)
	}
	if a != 902.5 {
		t.Errorf("bonus-first = %v, want 902.5", a)
	}
	if b != 910 {
		t.Errorf("dice-first = %v, want 910", b)
	}
}

// TestDiceNoneIsNeutral verifies the dice count is ignored without a die
func TestDiceNoneIsNeutral(t *testing.T) {
	for _, p := range Policies() {
		neutral := DefaultInput()
		neutral.DiceCount = 1
		want := Evaluate(neutral, p)

		for _, count := range []int{0, 1, 2, 7, 1000} {
			in := DefaultInput()
			in.DiceCount = count
			if got := Evaluate(in, p); got != want {
				t.Errorf("%s: dice count %d with None gave %v, want %v", p.Name, count, got, want)
			}
		}
	}
}

// TestEvaluateLinearInLevel checks that the base term scales with level
func TestEvaluateLinearInLevel(t *testing.T) {
	one := DefaultInput()
	unit := Evaluate(one, BonusFirst)

	for level := BonusFirst.MinLevel; level <= BonusFirst.MaxLevel; level++ {
		in := DefaultInput()
		in.Level = level
		if got := Evaluate(in, BonusFirst); got != unit*float64(level) {
			t.Errorf("level %d: got %v, want %v", level, got, unit*float64(level))
		}
	}
}

// TestSignSemantics compares additive and multiplicative adjustments with equal amounts
func TestSignSemantics(t *testing.T) {
	for _, amount := range []int{2, 5, 100} {
		mul := DefaultInput()
		mul.Material = Adjustment{Amount: amount, Sign: Multiplicative}
		add := DefaultInput()
		add.Material = Adjustment{Amount: amount, Sign: Additive}

		for _, p := range Policies() {
			if Evaluate(add, p) >= Evaluate(mul, p) {
				t.Errorf("%s amount %d: additive %v should be below multiplicative %v",
					p.Name, amount, Evaluate(add, p), Evaluate(mul, p))
			}
		}
	}

	// Multiplying by zero wipes the result, adding zero leaves it
	zeroMul := DefaultInput()
	zeroMul.Bonus = Adjustment{Amount: 0, Sign: Multiplicative}
	if got := Evaluate(zeroMul, BonusFirst); got != 0 {
		t.Errorf("Expected 0 with multiplicative zero bonus, got %v", got)
	}
	zeroAdd := DefaultInput()
	zeroAdd.Bonus = Adjustment{Amount: 0, Sign: Additive}
	if got := Evaluate(zeroAdd, BonusFirst); got != 3600 {
		t.Errorf("Expected 3600 with additive zero bonus, got %v", got)
	}
}

// TestEvaluateAlwaysFinite sweeps the bounded input space for NaN and Inf
func TestEvaluateAlwaysFinite(t *testing.T) {
	amounts := []int{0, 1, 3, 1000}
	for _, p := range Policies() {
		for level := p.MinLevel; level <= p.MaxLevel; level++ {
			for _, action := range Actions() {
				for _, dice := range DiceKinds() {
					for _, amount := range amounts {
						for _, sign := range []Sign{Additive, Multiplicative} {
							in := Input{
								Level:     level,
								Action:    action,
								Verbal:    level%2 == 0,
								Somatic:   level%3 == 0,
								Material:  Adjustment{Amount: amount, Sign: sign},
								Bonus:     Adjustment{Amount: amount, Sign: sign.Toggle()},
								DiceCount: amount,
								Dice:      dice,
							}
							r := Evaluate(in, p)
							if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
								t.Fatalf("%s: %+v gave %v", p.Name, in, r)
							}
						}
					}
				}
			}
		}
	}
}

// TestEvaluateIdempotent verifies repeated evaluation is bit-identical
func TestEvaluateIdempotent(t *testing.T) {
	in := DefaultInput()
	in.Action = Reaction
	in.Dice = D12
	in.DiceCount = 5
	in.Bonus = Adjustment{Amount: 3, Sign: Additive}

	for _, p := range Policies() {
		first := Evaluate(in, p)
		second := Evaluate(in, p)
		if math.Float64bits(first) != math.Float64bits(second) {
			t.Errorf("%s: %v != %v", p.Name, first, second)
		}
	}
}

// TestFormat checks both display roundings
func TestFormat(t *testing.T) {
	tests := []struct {
		value float64
		p     Policy
		want  string
	}{
		{3600, BonusFirst, "3600"},
		{1202.5, BonusFirst, "1202.5"},
		{0.125, BonusFirst, "0.125"},
		{1e21, BonusFirst, "1000000000000000000000"},
		{3600, DiceFirst, "3600"},
		{1202.4, DiceFirst, "1202"},
		{1202.6, DiceFirst, "1203"},
		{0.5, DiceFirst, "0"},
		{2.5, DiceFirst, "2"},
	}

	for _, tt := range tests {
		if got := Format(tt.value, tt.p); got != tt.want {
			t.Errorf("Format(%v, %s) = %q, want %q", tt.value, tt.p.Name, got, tt.want)
		}
	}
}

// TestFormatLeavesValueUnrounded checks that formatting does not feed back into evaluation
func TestFormatLeavesValueUnrounded(t *testing.T) {
	in := DefaultInput()
	in.Dice = D8
	in.DiceCount = 3
	in.Bonus = Adjustment{Amount: 1, Sign: Additive}

	r := Evaluate(in, DiceFirst)
	_ = Format(r, DiceFirst)
	if r != 1351 {
		t.Errorf("Expected unrounded 1351, got %v", r)
	}

	in.Material = Adjustment{Amount: 0, Sign: Additive}
	in.Dice = D100
	in.DiceCount = 1
	r = Evaluate(in, DiceFirst)
	if r != 37 {
		t.Errorf("Expected 37, got %v", r)
	}
	if r2 := Evaluate(in, BonusFirst); r2 != 36.01 {
		t.Errorf("Expected 36.01, got %v", r2)
	}
}
