package domain

// QualityTier grades a landed fish. The tier scale intentionally skips 3:
// gold jumps straight to iridium, mirroring the game's item quality values.
type QualityTier int

const (
	QualityNormal  QualityTier = 0
	QualitySilver  QualityTier = 1
	QualityGold    QualityTier = 2
	QualityIridium QualityTier = 4
)

// QualityAuto disables the configured quality override.
const QualityAuto = -1

// String returns the display name for the tier.
func (q QualityTier) String() string {
	switch q {
	case QualityNormal:
		return "normal"
	case QualitySilver:
		return "silver"
	case QualityGold:
		return "gold"
	case QualityIridium:
		return "iridium"
	default:
		return "unknown"
	}
}

// Valid reports whether q is one of the four producible tiers.
func (q QualityTier) Valid() bool {
	switch q {
	case QualityNormal, QualitySilver, QualityGold, QualityIridium:
		return true
	}
	return false
}

// Clamp forces q into [0,4]. It does not close the gap at 3; only an
// explicit override can force that value.
func (q QualityTier) Clamp() QualityTier {
	if q < QualityNormal {
		return QualityNormal
	}
	if q > QualityIridium {
		return QualityIridium
	}
	return q
}

// Attachment identifies what a rod attachment slot holds. Slots are
// independent: the same attachment in two slots counts twice.
type Attachment string

const (
	// AttachmentCorkBobber widens the catch bar.
	AttachmentCorkBobber Attachment = "cork_bobber"
	// AttachmentLeadLure steadies the catch bar, a smaller bonus.
	AttachmentLeadLure Attachment = "lead_lure"
	// AttachmentQualityBobber raises the quality of a landed fish by one
	// tier per bobber.
	AttachmentQualityBobber Attachment = "quality_bobber"
)

// TackleProfile is the equipment snapshot for a single catch attempt,
// assembled by the caller from its live inventory model. The calculator
// never inspects host state directly, so this struct is the whole of what
// equipment can contribute.
type TackleProfile struct {
	FishingLevel int          `json:"fishing_level" validate:"gte=0"`
	Attachments  []Attachment `json:"attachments,omitempty"`
	MasterCast   bool         `json:"master_cast,omitempty"`
	TrainingRod  bool         `json:"training_rod,omitempty"`
}

// CountAttachment returns how many slots hold the given attachment.
// Safe on a nil profile.
func (p *TackleProfile) CountAttachment(a Attachment) int {
	if p == nil {
		return 0
	}
	count := 0
	for _, att := range p.Attachments {
		if att == a {
			count++
		}
	}
	return count
}

// ProbabilitySet holds the three independent per-attempt probabilities,
// each in [0,1]. Recomputed every attempt and never mutated.
type ProbabilitySet struct {
	Success         float64 `json:"success"`
	Perfect         float64 `json:"perfect"`
	TreasureCapture float64 `json:"treasure_capture"`
}

// CatchRequest describes one attempt. FishID and Size are opaque
// passthrough values the host wants echoed back with the outcome.
type CatchRequest struct {
	FishID      string         `json:"fish_id" validate:"required,max=64"`
	Size        int            `json:"size" validate:"gte=0"`
	Difficulty  int            `json:"difficulty" validate:"gte=0,lte=200"`
	HasTreasure bool           `json:"has_treasure"`
	QualityHint QualityTier    `json:"quality_hint" validate:"gte=0,lte=4"`
	Tackle      *TackleProfile `json:"tackle"`
}

// CatchResult is the resolved outcome of an attempt. Perfect and
// TreasureCaught are only ever true when Success is true.
type CatchResult struct {
	FishID          string      `json:"fish_id"`
	Size            int         `json:"size"`
	Success         bool        `json:"success"`
	Quality         QualityTier `json:"quality"`
	Perfect         bool        `json:"perfect"`
	TreasureCaught  bool        `json:"treasure_caught"`
	DeferToMinigame bool        `json:"defer_to_minigame"`
	Message         string      `json:"message"`
}

// CatchPreview exposes the probability model without consuming entropy.
type CatchPreview struct {
	Strength      int            `json:"strength"`
	Probabilities ProbabilitySet `json:"probabilities"`
	ScaledSuccess float64        `json:"scaled_success"`
}

// CatchOverrides is user configuration that bends the pipeline. It is
// supplied by the host, not computed.
type CatchOverrides struct {
	AlwaysSuccess     bool    `json:"always_success"`
	AlwaysPerfect     bool    `json:"always_perfect"`
	SuccessMultiplier float64 `json:"success_multiplier" validate:"gte=0"`
	QualityOverride   int     `json:"quality_override" validate:"gte=-1,lte=4"`
	RetryOnFailure    bool    `json:"retry_on_failure"`
}

// DefaultOverrides returns the no-op override set.
func DefaultOverrides() CatchOverrides {
	return CatchOverrides{
		SuccessMultiplier: 1.0,
		QualityOverride:   QualityAuto,
	}
}
