package fishing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AnglerBot_Go/internal/domain"
	"github.com/osse101/AnglerBot_Go/internal/rng"
)

func TestServiceResolveNilRequest(t *testing.T) {
	svc := NewService(domain.DefaultOverrides(), rng.Seeded(1))

	result, err := svc.Resolve(context.Background(), nil)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrNilRequest)
}

func TestServiceResolvePassthrough(t *testing.T) {
	ov := domain.DefaultOverrides()
	ov.AlwaysSuccess = true
	svc := NewService(ov, rng.Seeded(1))

	req := &domain.CatchRequest{
		FishID:     "largemouth_bass",
		Size:       31,
		Difficulty: 28,
	}

	result, err := svc.Resolve(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "largemouth_bass", result.FishID, "fish identity is opaque passthrough")
	assert.Equal(t, 31, result.Size, "size is opaque passthrough")
	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "Largemouth Bass")
}

func TestServiceResolveFailureZeroesFlags(t *testing.T) {
	// alwaysPerfect with a guaranteed miss: the raw perfect roll is set
	// but the assembled result must not carry it.
	ov := domain.DefaultOverrides()
	ov.AlwaysPerfect = true
	ov.SuccessMultiplier = 0

	svc := NewService(ov, rng.Seeded(1))

	result, err := svc.Resolve(context.Background(), &domain.CatchRequest{
		FishID:      "carp",
		Difficulty:  50,
		HasTreasure: true,
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.False(t, result.Perfect, "failure must zero the perfect flag")
	assert.False(t, result.TreasureCaught, "failure must zero the treasure flag")
}

func TestServiceResolveRetryOnFailure(t *testing.T) {
	ov := domain.DefaultOverrides()
	ov.SuccessMultiplier = 0

	t.Run("defers to minigame when retry is configured", func(t *testing.T) {
		withRetry := ov
		withRetry.RetryOnFailure = true
		svc := NewService(withRetry, rng.Seeded(1))

		result, err := svc.Resolve(context.Background(), &domain.CatchRequest{FishID: "carp", Difficulty: 50})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.True(t, result.DeferToMinigame)
	})

	t.Run("ends the attempt when retry is off", func(t *testing.T) {
		svc := NewService(ov, rng.Seeded(1))

		result, err := svc.Resolve(context.Background(), &domain.CatchRequest{FishID: "carp", Difficulty: 50})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.False(t, result.DeferToMinigame)
	})
}

func TestServiceResolveTrainingRodQuality(t *testing.T) {
	ov := domain.DefaultOverrides()
	ov.AlwaysSuccess = true
	ov.AlwaysPerfect = true
	svc := NewService(ov, rng.Seeded(1))

	result, err := svc.Resolve(context.Background(), &domain.CatchRequest{
		FishID:      "sturgeon",
		Difficulty:  20,
		QualityHint: domain.QualityGold,
		Tackle: &domain.TackleProfile{
			FishingLevel: 10,
			TrainingRod:  true,
			Attachments:  []domain.Attachment{domain.AttachmentQualityBobber},
		},
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, domain.QualityNormal, result.Quality, "training rod caps quality at normal")
}

func TestServiceResolveQualityOverride(t *testing.T) {
	ov := domain.DefaultOverrides()
	ov.AlwaysSuccess = true
	ov.QualityOverride = 3 // only an explicit override can force the gap tier
	svc := NewService(ov, rng.Seeded(1))

	result, err := svc.Resolve(context.Background(), &domain.CatchRequest{FishID: "carp", Difficulty: 50})

	require.NoError(t, err)
	assert.Equal(t, domain.QualityTier(3), result.Quality)
}

func TestServiceResolveQualityOverrideClamped(t *testing.T) {
	ov := domain.DefaultOverrides()
	ov.AlwaysSuccess = true
	ov.QualityOverride = 9
	svc := NewService(ov, rng.Seeded(1))

	result, err := svc.Resolve(context.Background(), &domain.CatchRequest{FishID: "carp", Difficulty: 50})

	require.NoError(t, err)
	assert.Equal(t, domain.QualityIridium, result.Quality)
}

func TestServiceResolveTreasureRequiresCondition(t *testing.T) {
	ov := domain.DefaultOverrides()
	ov.AlwaysSuccess = true
	svc := NewService(ov, rng.Seeded(1))

	for i := 0; i < 500; i++ {
		result, err := svc.Resolve(context.Background(), &domain.CatchRequest{
			FishID:      "carp",
			Difficulty:  30,
			HasTreasure: false,
		})

		require.NoError(t, err)
		assert.False(t, result.TreasureCaught, "no treasure condition, no capture")
	}
}

func TestServiceResolveInvariantsUnderRandomInputs(t *testing.T) {
	svc := NewService(domain.DefaultOverrides(), rng.Seeded(1234))

	for i := 0; i < 2000; i++ {
		req := &domain.CatchRequest{
			FishID:      "carp",
			Difficulty:  i % 130,
			HasTreasure: i%3 == 0,
			QualityHint: domain.QualityTier(i % 3),
			Tackle: &domain.TackleProfile{
				FishingLevel: i % 15,
				TrainingRod:  i%7 == 0,
			},
		}

		result, err := svc.Resolve(context.Background(), req)
		require.NoError(t, err)

		assert.True(t, result.Quality.Valid(), "quality %d outside {0,1,2,4}", result.Quality)
		if result.TreasureCaught {
			assert.True(t, result.Success)
			assert.True(t, req.HasTreasure)
		}
		if !result.Success {
			assert.False(t, result.Perfect)
			assert.False(t, result.TreasureCaught)
		}
	}
}

func TestServicePreview(t *testing.T) {
	ov := domain.DefaultOverrides()
	ov.SuccessMultiplier = 2.0
	svc := NewService(ov, rng.Seeded(1))

	preview := svc.Preview(context.Background(), nil, 40, false)

	assert.Equal(t, 96, preview.Strength)
	assert.InDelta(t, 0.96, preview.Probabilities.Success, 1e-12)
	assert.InDelta(t, 1.92, preview.ScaledSuccess, 1e-12, "scaled success reported unclamped")
}

func TestServiceResolveUsesDefaultSourceWhenNil(t *testing.T) {
	svc := NewService(domain.DefaultOverrides(), nil)

	result, err := svc.Resolve(context.Background(), &domain.CatchRequest{FishID: "carp", Difficulty: 40})

	require.NoError(t, err)
	assert.NotNil(t, result)
}
