package fishing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/AnglerBot_Go/internal/domain"
)

func TestQualityForRatioBuckets(t *testing.T) {
	tests := []struct {
		name       string
		strength   int
		difficulty int
		expected   domain.QualityTier
	}{
		{"ratio two is gold", 200, 100, domain.QualityGold},
		{"ratio above two is gold", 300, 100, domain.QualityGold},
		{"ratio one point four is silver", 140, 100, domain.QualitySilver},
		{"ratio one is normal", 100, 100, domain.QualityNormal},
		{"ratio just under silver cutoff is normal", 132, 100, domain.QualityNormal},
		{"zero difficulty counts as best bucket", 96, 0, domain.QualityGold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QualityFor(tt.strength, tt.difficulty, 0, false, domain.QualityNormal, false)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestQualityForTrainingRodCapsToNormal(t *testing.T) {
	// Training rod wins over everything, including perfection, hints and
	// quality bobbers.
	got := QualityFor(400, 20, 3, true, domain.QualityIridium, true)
	assert.Equal(t, domain.QualityNormal, got)
}

func TestQualityForHintOnlyRaises(t *testing.T) {
	// Base would be gold; a lower hint must not pull it down.
	got := QualityFor(200, 100, 0, false, domain.QualitySilver, false)
	assert.Equal(t, domain.QualityGold, got)

	// Base would be normal; a higher hint lifts it.
	got = QualityFor(100, 100, 0, false, domain.QualityGold, false)
	assert.Equal(t, domain.QualityGold, got)
}

func TestQualityForGapSkip(t *testing.T) {
	// Gold plus one bobber lands on 3, which snaps to iridium.
	got := QualityFor(200, 100, 1, false, domain.QualityNormal, false)
	assert.Equal(t, domain.QualityIridium, got)

	// Normal plus three bobbers also lands on 3.
	got = QualityFor(100, 100, 3, false, domain.QualityNormal, false)
	assert.Equal(t, domain.QualityIridium, got)
}

func TestQualityForBobberOverflowClamps(t *testing.T) {
	got := QualityFor(100, 100, 9, false, domain.QualityNormal, false)
	assert.Equal(t, domain.QualityIridium, got)
}

func TestQualityForPerfectBump(t *testing.T) {
	tests := []struct {
		name       string
		strength   int
		difficulty int
		expected   domain.QualityTier
	}{
		// Perfection bumps silver to gold.
		{"silver bumps to gold", 140, 100, domain.QualityGold},
		// Gold plus one step lands on the gap and snaps to iridium.
		{"gold bumps past the gap to iridium", 200, 100, domain.QualityIridium},
		// Normal is never promoted by perfection.
		{"normal stays normal", 100, 100, domain.QualityNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QualityFor(tt.strength, tt.difficulty, 0, true, domain.QualityNormal, false)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestQualityForPerfectDoesNotBumpIridium(t *testing.T) {
	got := QualityFor(200, 100, 2, true, domain.QualityNormal, false)
	assert.Equal(t, domain.QualityIridium, got)
}

func TestQualityForAlwaysInDomain(t *testing.T) {
	// Tier 3 must never come out of the model, only {0,1,2,4}.
	for strength := 50; strength <= 400; strength += 25 {
		for difficulty := 0; difficulty <= 120; difficulty += 10 {
			for bobbers := 0; bobbers <= 4; bobbers++ {
				for _, perfect := range []bool{false, true} {
					for _, hint := range []domain.QualityTier{domain.QualityNormal, domain.QualitySilver, domain.QualityGold, domain.QualityIridium} {
						got := QualityFor(strength, difficulty, bobbers, perfect, hint, false)
						assert.True(t, got.Valid(),
							"tier %d out of domain for strength=%d difficulty=%d bobbers=%d perfect=%v hint=%d",
							got, strength, difficulty, bobbers, perfect, hint)
					}
				}
			}
		}
	}
}
