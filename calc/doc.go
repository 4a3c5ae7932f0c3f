// Package calc holds the energy cost input record and its fixed formula.
//
// Evaluate is a pure function of Input and Policy. Two policies exist because
// the formula shipped in two orderings: BonusFirst applies the material and
// bonus adjustments before the dice term, DiceFirst applies the dice term first
// and treats level 0 as half a level. Format only affects the display string.
package calc
