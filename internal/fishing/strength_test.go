package fishing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/AnglerBot_Go/internal/domain"
)

func TestEstimateStrength(t *testing.T) {
	tests := []struct {
		name     string
		profile  *domain.TackleProfile
		expected int
	}{
		{
			name:     "nil profile yields bare-rod floor",
			profile:  nil,
			expected: 96,
		},
		{
			name:     "level zero no tackle",
			profile:  &domain.TackleProfile{FishingLevel: 0},
			expected: 96,
		},
		{
			name:     "level ten no tackle equals reference strength",
			profile:  &domain.TackleProfile{FishingLevel: 10},
			expected: ReferenceStrength,
		},
		{
			name:     "negative level treated as zero",
			profile:  &domain.TackleProfile{FishingLevel: -3},
			expected: 96,
		},
		{
			name:     "training rod raises low level to floor",
			profile:  &domain.TackleProfile{FishingLevel: 2, TrainingRod: true},
			expected: 96 + 8*5,
		},
		{
			name:     "training rod keeps higher level",
			profile:  &domain.TackleProfile{FishingLevel: 7, TrainingRod: true},
			expected: 96 + 8*7,
		},
		{
			name: "cork bobbers stack per slot",
			profile: &domain.TackleProfile{
				FishingLevel: 0,
				Attachments:  []domain.Attachment{domain.AttachmentCorkBobber, domain.AttachmentCorkBobber},
			},
			expected: 96 + 24 + 24,
		},
		{
			name: "lead lures stack per slot",
			profile: &domain.TackleProfile{
				FishingLevel: 0,
				Attachments:  []domain.Attachment{domain.AttachmentLeadLure},
			},
			expected: 96 + 12,
		},
		{
			name: "quality bobbers add no strength",
			profile: &domain.TackleProfile{
				FishingLevel: 0,
				Attachments:  []domain.Attachment{domain.AttachmentQualityBobber, domain.AttachmentQualityBobber},
			},
			expected: 96,
		},
		{
			name:     "master cast adds once",
			profile:  &domain.TackleProfile{FishingLevel: 0, MasterCast: true},
			expected: 96 + 8,
		},
		{
			name: "everything combined",
			profile: &domain.TackleProfile{
				FishingLevel: 10,
				Attachments: []domain.Attachment{
					domain.AttachmentCorkBobber,
					domain.AttachmentCorkBobber,
					domain.AttachmentLeadLure,
				},
				MasterCast: true,
			},
			expected: 176 + 48 + 12 + 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EstimateStrength(tt.profile))
		})
	}
}

func TestEstimateStrengthPure(t *testing.T) {
	profile := &domain.TackleProfile{
		FishingLevel: 6,
		Attachments:  []domain.Attachment{domain.AttachmentCorkBobber},
		MasterCast:   true,
	}

	first := EstimateStrength(profile)
	second := EstimateStrength(profile)

	assert.Equal(t, first, second, "same profile must yield same strength")
}

func TestEstimateStrengthMonotonicInLevel(t *testing.T) {
	prev := EstimateStrength(&domain.TackleProfile{FishingLevel: 0})
	for level := 1; level <= 20; level++ {
		cur := EstimateStrength(&domain.TackleProfile{FishingLevel: level})
		assert.Greater(t, cur, prev, "strength must grow with level")
		prev = cur
	}
}
