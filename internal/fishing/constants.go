package fishing

import "time"

// ============================================================================
// Strength (catch-bar size, in pixels)
// ============================================================================

const (
	// BaseStrength is the bar size of a bare rod at level 0. An absent
	// tackle profile resolves to exactly this value.
	BaseStrength = 96

	// StrengthPerLevel is the bar growth per fishing level.
	StrengthPerLevel = 8

	// CorkBobberBonus is added once per cork bobber attachment slot.
	CorkBobberBonus = 24

	// LeadLureBonus is added once per lead lure attachment slot.
	LeadLureBonus = 12

	// MasterCastBonus is added once when the master cast flag is set.
	// It does not stack.
	MasterCastBonus = 8

	// TrainingRodLevelFloor is the guaranteed effective level of the
	// training rod. Lower actual levels are raised to it.
	TrainingRodLevelFloor = 5
)

// ============================================================================
// Difficulty normalization
// ============================================================================

const (
	// MinDifficulty is the trivial floor. Fish at or below it use the
	// base probability caps unmodified.
	MinDifficulty = 15

	// MaxDifficulty is the top of the expected range. Higher values are
	// tolerated; the normalized difficulty just saturates at 1.
	MaxDifficulty = 100

	difficultySpan = float64(MaxDifficulty - MinDifficulty)
)

// ============================================================================
// Probability caps
// ============================================================================

// Each cap is base − slope·t² where t is the normalized difficulty.
// The caps are the central balance mechanism: no bar size pushes a
// probability past them. The perfect cap's slope is much steeper, so
// perfection decays far faster than success against hard fish.
const (
	successCapBase   = 0.99
	successCapSlope  = 0.16
	perfectCapBase   = 0.99
	perfectCapSlope  = 0.77
	treasureCapBase  = 0.95
	treasureCapSlope = 0.22
)

// ============================================================================
// Raw probability curves
// ============================================================================

const (
	successDivisor  = 2.5
	treasureDivisor = 3.0

	// ReferenceStrength is the bar size at fishing level 10 with no
	// tackle. Bars at or above it take the full perfect cap.
	ReferenceStrength = 176

	// Exponent of the undersized-bar penalty: base + linear·t + quad·t².
	perfectPowerBase   = 2.0
	perfectPowerLinear = 1.1
	perfectPowerQuad   = 2.0

	// treasureChasePenalty scales perfection down when the attempt is
	// also chasing a treasure chest.
	treasureChasePenalty = 0.65
)

// ============================================================================
// Probability memo cache
// ============================================================================

const (
	probCacheSize = 512
	probCacheTTL  = 10 * time.Minute
)
