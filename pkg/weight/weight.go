// Package weight holds the fixed emphasis tables that map a bracket nesting
// level to a prompt weight.
package weight

import (
	"math"
	"strconv"
)

// Sign selects the positive ({}) or negative ([]) table.
type Sign int

const (
	// Positive is curly-brace emphasis.
	Positive Sign = iota
	// Negative is square-bracket de-emphasis.
	Negative
)

func (s Sign) String() string {
	if s == Negative {
		return "negative"
	}
	return "positive"
}

// MaxLevel is the highest level with a defined weight.
const MaxLevel = 20

// Neutral is the weight of an unweighted tag.
const Neutral = 1.00

// Max is the largest weight that can be stored. Larger values do not fit the
// two-digit fixed point used by Cents.
const Max = 1e9

var (
	positive = [MaxLevel + 1]float64{
		1.00, 1.05, 1.10, 1.16, 1.22, 1.28, 1.34, 1.41, 1.48, 1.55,
		1.63, 1.71, 1.80, 1.89, 1.98, 2.08, 2.18, 2.29, 2.41, 2.53, 2.65,
	}
	negative = [MaxLevel + 1]float64{
		1.00, 0.95, 0.91, 0.86, 0.82, 0.78, 0.75, 0.71, 0.68, 0.64,
		0.61, 0.58, 0.56, 0.53, 0.51, 0.48, 0.46, 0.44, 0.42, 0.40, 0.38,
	}
)

func table(sign Sign) *[MaxLevel + 1]float64 {
	if sign == Negative {
		return &negative
	}
	return &positive
}

// At returns the weight for level. Out of range levels saturate.
func At(level int, sign Sign) float64 {
	return table(sign)[Clamp(level)]
}

// Clamp bounds level into [0, MaxLevel].
func Clamp(level int) int {
	switch {
	case level < 0:
		return 0
	case level > MaxLevel:
		return MaxLevel
	default:
		return level
	}
}

// LevelFor finds the level whose weight equals w at two fraction digits.
// ok is false when no level matches exactly.
func LevelFor(w float64, sign Sign) (level int, ok bool) {
	target := Cents(w)
	for i, v := range table(sign) {
		if Cents(v) == target {
			return i, true
		}
	}
	return 0, false
}

// Table returns a copy of the table for sign.
func Table(sign Sign) []float64 {
	t := table(sign)
	out := make([]float64, len(t))
	copy(out, t[:])
	return out
}

// InRange reports whether w is a finite weight in [0, Max].
func InRange(w float64) bool {
	return !math.IsNaN(w) && w >= 0 && w <= Max
}

// Cents is w rounded to two fraction digits, as an integer count of 0.01.
func Cents(w float64) int64 {
	return int64(math.Round(w * 100))
}

// Round2 rounds w to two fraction digits.
func Round2(w float64) float64 {
	return float64(Cents(w)) / 100
}

// Equal2 compares a and b at two fraction digits.
func Equal2(a, b float64) bool {
	return Cents(a) == Cents(b)
}

// IsNeutral reports whether w is 1.00 at two fraction digits.
func IsNeutral(w float64) bool {
	return Equal2(w, Neutral)
}

// Format renders w with exactly two fraction digits.
func Format(w float64) string {
	return strconv.FormatFloat(Round2(w), 'f', 2, 64)
}
