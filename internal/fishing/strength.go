package fishing

import "github.com/osse101/AnglerBot_Go/internal/domain"

// EstimateStrength derives the catch-bar size from a tackle profile.
// Pure arithmetic: the same profile always yields the same strength, and
// every level and modifier only ever raises it. A nil profile resolves to
// the bare-rod floor.
func EstimateStrength(p *domain.TackleProfile) int {
	if p == nil {
		return BaseStrength
	}

	level := p.FishingLevel
	if level < 0 {
		level = 0
	}
	// The training rod casts at least as well as a level-5 rod.
	if p.TrainingRod && level < TrainingRodLevelFloor {
		level = TrainingRodLevelFloor
	}

	strength := BaseStrength + StrengthPerLevel*level

	// Attachment slots contribute independently, so duplicates stack.
	strength += CorkBobberBonus * p.CountAttachment(domain.AttachmentCorkBobber)
	strength += LeadLureBonus * p.CountAttachment(domain.AttachmentLeadLure)

	if p.MasterCast {
		strength += MasterCastBonus
	}

	return strength
}
