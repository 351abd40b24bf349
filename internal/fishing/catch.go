package fishing

import (
	"github.com/osse101/AnglerBot_Go/internal/domain"
	"github.com/osse101/AnglerBot_Go/internal/rng"
)

// sampled bundles the raw roll results for one attempt, before the
// result-assembly invariants are applied.
type sampled struct {
	success  bool
	perfect  bool
	treasure bool
}

// sampleCatch rolls the attempt against the computed probabilities.
//
// Draw order is fixed - success, then perfect, then treasure - and later
// draws are skipped when their preconditions fail, so a seeded source
// replays an attempt stream exactly. The success probability arrives
// unclamped; any value >= 1 wins every draw.
func sampleCatch(ps domain.ProbabilitySet, ov domain.CatchOverrides, hasTreasure bool, src rng.Source) sampled {
	var out sampled

	out.success = ov.AlwaysSuccess || src.Float64() < ScaledSuccess(ps, ov.SuccessMultiplier)

	out.perfect = ov.AlwaysPerfect || (out.success && src.Float64() < ps.Perfect)

	if out.success && hasTreasure {
		out.treasure = src.Float64() < ps.TreasureCapture
	}

	return out
}
