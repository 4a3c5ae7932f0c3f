package calc

import "strconv"

// Component factors
const (
	verbalFactor  = 20
	somaticFactor = 30
	zeroLevelBase = 0.5
)

// Evaluate computes the energy cost of in under policy p.
// Pure and idempotent; dice None contributes a neutral factor.
func Evaluate(in Input, p Policy) float64 {
	r := base(in, p)

	if p.Ordering == OrderDiceFirst {
		r = applyDice(r, in)
		r = in.Material.Sign.Apply(r, in.Material.Amount)
		r = in.Bonus.Sign.Apply(r, in.Bonus.Amount)
		return r
	}

	r = in.Material.Sign.Apply(r, in.Material.Amount)
	r = in.Bonus.Sign.Apply(r, in.Bonus.Amount)
	return applyDice(r, in)
}

func base(in Input, p Policy) float64 {
	r := float64(in.Level)
	if in.Level == 0 && p.Ordering == OrderDiceFirst {
		r = zeroLevelBase
	}
	if in.Verbal {
		r *= verbalFactor
	}
	if in.Somatic {
		r *= somaticFactor
	}
	return r * in.Action.Multiplier()
}

func applyDice(r float64, in Input) float64 {
	if in.Dice == None {
		return r
	}
	return r * float64(in.DiceCount) / float64(in.Dice.Faces())
}

// Format renders a result for display; the value itself is never rounded
func Format(result float64, p Policy) string {
	if p.Rounding == RoundWhole {
		return strconv.FormatFloat(result, 'f', 0, 64)
	}
	return strconv.FormatFloat(result, 'f', -1, 64)
}
