package fishing

import "github.com/osse101/AnglerBot_Go/internal/domain"

// QualityFor derives the tier of a landed fish.
//
// Two rules are preserved as explicit steps because they are easy to lose
// in a rewrite: the output domain has no tier 3 (anything landing there
// snaps to iridium), and a perfect catch never promotes a normal-quality
// fish (tier 0 stays tier 0; only the perfect flag itself records it).
func QualityFor(strength, difficulty, qualityBobbers int, perfect bool, hint domain.QualityTier, trainingRod bool) domain.QualityTier {
	// The training rod hard-caps quality regardless of everything else.
	if trainingRod {
		return domain.QualityNormal
	}

	// Zero difficulty counts as the best ratio bucket.
	ratio := 2.0
	if difficulty > 0 {
		ratio = float64(strength) / float64(difficulty)
	}

	tier := domain.QualityNormal
	switch {
	case ratio >= 2:
		tier = domain.QualityGold
	case ratio >= 1.33:
		tier = domain.QualitySilver
	}

	// An externally supplied baseline can only raise the tier.
	if hint > tier {
		tier = hint
	}

	// Each quality bobber adds a full tier step.
	tier += domain.QualityTier(qualityBobbers)
	tier = skipGap(tier)

	// Perfection bumps a non-top, non-zero tier by one step.
	if perfect && tier >= domain.QualitySilver && tier < domain.QualityIridium {
		tier = skipGap(tier + 1)
	}

	return tier.Clamp()
}

// skipGap snaps tier 3 to iridium; there is no tier 3 in the output
// domain.
func skipGap(tier domain.QualityTier) domain.QualityTier {
	if tier > domain.QualityGold && tier < domain.QualityIridium {
		return domain.QualityIridium
	}
	return tier
}
