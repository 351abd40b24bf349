package fishing

import (
	"math"

	"github.com/osse101/AnglerBot_Go/internal/domain"
)

// normalizedDifficulty returns t in [0,1]: how far above the trivial floor
// the fish sits, relative to the expected difficulty range.
func normalizedDifficulty(difficulty int) float64 {
	t := (float64(difficulty) - MinDifficulty) / difficultySpan
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// successCap is the difficulty-dependent ceiling on success probability.
func successCap(difficulty int) float64 {
	if difficulty <= MinDifficulty {
		return successCapBase
	}
	t := normalizedDifficulty(difficulty)
	return successCapBase - successCapSlope*t*t
}

// perfectCap decays much faster than successCap: perfection stays rare
// against hard fish even when the catch itself is nearly guaranteed.
func perfectCap(difficulty int) float64 {
	if difficulty <= MinDifficulty {
		return perfectCapBase
	}
	t := normalizedDifficulty(difficulty)
	return perfectCapBase - perfectCapSlope*t*t
}

func treasureCap(difficulty int) float64 {
	if difficulty <= MinDifficulty {
		return treasureCapBase
	}
	t := normalizedDifficulty(difficulty)
	return treasureCapBase - treasureCapSlope*t*t
}

// capped clamps raw into [0, min(1, limit)].
func capped(raw, limit float64) float64 {
	if raw > 1 {
		raw = 1
	}
	if raw > limit {
		raw = limit
	}
	if raw < 0 {
		raw = 0
	}
	return raw
}

// perfectBarFactor punishes undersized bars, increasingly hard on tough
// fish: the exponent grows with difficulty, so a weak rod's perfection
// odds collapse much faster than its success odds.
func perfectBarFactor(strength float64, difficulty int) float64 {
	if strength >= ReferenceStrength {
		return 1.0
	}
	t := normalizedDifficulty(difficulty)
	power := perfectPowerBase + perfectPowerLinear*t + perfectPowerQuad*t*t
	return math.Pow(strength/ReferenceStrength, power)
}

// Probabilities maps (strength, difficulty) to the three independent
// per-attempt probabilities. Difficulty at or below zero is the
// auto-success domain: everything is certain and nothing divides by zero.
func Probabilities(strength, difficulty int, hasTreasure bool) domain.ProbabilitySet {
	if difficulty <= 0 {
		return domain.ProbabilitySet{Success: 1, Perfect: 1, TreasureCapture: 1}
	}

	s := float64(strength)
	d := float64(difficulty)

	success := capped(s/(d*successDivisor), successCap(difficulty))
	treasure := capped(s/(d*treasureDivisor), treasureCap(difficulty))

	perfect := perfectBarFactor(s, difficulty) * perfectCap(difficulty)
	if hasTreasure {
		// Chasing the chest competes with a flawless reel-in.
		perfect *= treasureChasePenalty
	}

	return domain.ProbabilitySet{
		Success:         success,
		Perfect:         perfect,
		TreasureCapture: treasure,
	}
}

// ScaledSuccess applies the configured success multiplier. The product is
// deliberately not re-clamped: a multiplier above 1 can push the value
// past 1, and the sampler treats any probability >= 1 as a guaranteed
// catch since every draw lands in [0,1).
func ScaledSuccess(ps domain.ProbabilitySet, multiplier float64) float64 {
	return ps.Success * multiplier
}
