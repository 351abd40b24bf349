package fishing

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/AnglerBot_Go/internal/domain"
	"github.com/osse101/AnglerBot_Go/internal/logger"
	"github.com/osse101/AnglerBot_Go/internal/metrics"
	"github.com/osse101/AnglerBot_Go/internal/rng"
)

// Service defines the interface for catch resolution
type Service interface {
	Resolve(ctx context.Context, req *domain.CatchRequest) (*domain.CatchResult, error)
	Preview(ctx context.Context, tackle *domain.TackleProfile, difficulty int, hasTreasure bool) *domain.CatchPreview
}

type service struct {
	overrides domain.CatchOverrides
	src       rng.Source // Injectable for testing
	cache     *probCache
	titler    cases.Caser
}

// NewService creates a new catch service. Overrides come from persisted
// user configuration; src may be nil, in which case the crypto-backed
// default is used. Pass a seeded source for deterministic tests.
func NewService(overrides domain.CatchOverrides, src rng.Source) Service {
	if src == nil {
		src = rng.Default()
	}
	return &service{
		overrides: overrides,
		src:       src,
		cache:     newProbCache(),
		titler:    cases.Title(language.English),
	}
}

// Resolve runs the full pipeline for one attempt: strength, probabilities,
// sampling, quality, result assembly. The pipeline is strictly linear and
// consumes at most three draws from the random source.
func (s *service) Resolve(ctx context.Context, req *domain.CatchRequest) (*domain.CatchResult, error) {
	if req == nil {
		return nil, domain.ErrNilRequest
	}

	log := logger.FromContext(ctx)

	strength := EstimateStrength(req.Tackle)

	ps, ok := s.cache.get(strength, req.Difficulty, req.HasTreasure)
	if !ok {
		ps = Probabilities(strength, req.Difficulty, req.HasTreasure)
		s.cache.set(strength, req.Difficulty, req.HasTreasure, ps)
	}

	roll := sampleCatch(ps, s.overrides, req.HasTreasure, s.src)

	// Failure zeroes both flags: alwaysPerfect can set the raw roll even
	// when the catch itself failed.
	success := roll.success
	perfect := success && roll.perfect
	treasure := success && req.HasTreasure && roll.treasure

	trainingRod := req.Tackle != nil && req.Tackle.TrainingRod
	bobbers := req.Tackle.CountAttachment(domain.AttachmentQualityBobber)

	quality := QualityFor(strength, req.Difficulty, bobbers, perfect, req.QualityHint.Clamp(), trainingRod)
	if s.overrides.QualityOverride != domain.QualityAuto {
		quality = domain.QualityTier(s.overrides.QualityOverride).Clamp()
	}

	result := &domain.CatchResult{
		FishID:         req.FishID,
		Size:           req.Size,
		Success:        success,
		Quality:        quality,
		Perfect:        perfect,
		TreasureCaught: treasure,
	}
	if !success {
		result.DeferToMinigame = s.overrides.RetryOnFailure
	}
	result.Message = s.formatMessage(result)

	s.recordMetrics(result)

	log.Debug("Catch resolved",
		"fish_id", req.FishID,
		"difficulty", req.Difficulty,
		"strength", strength,
		"success", result.Success,
		"quality", result.Quality.String(),
		"perfect", result.Perfect,
		"treasure", result.TreasureCaught)

	return result, nil
}

// Preview computes strength and probabilities without consuming entropy.
func (s *service) Preview(ctx context.Context, tackle *domain.TackleProfile, difficulty int, hasTreasure bool) *domain.CatchPreview {
	strength := EstimateStrength(tackle)
	ps := Probabilities(strength, difficulty, hasTreasure)
	return &domain.CatchPreview{
		Strength:      strength,
		Probabilities: ps,
		ScaledSuccess: ScaledSuccess(ps, s.overrides.SuccessMultiplier),
	}
}

// formatMessage creates a user-facing message for the result
func (s *service) formatMessage(r *domain.CatchResult) string {
	name := s.titler.String(strings.ReplaceAll(r.FishID, "_", " "))

	if !r.Success {
		if r.DeferToMinigame {
			return fmt.Sprintf("The %s is fighting back - reeling in by hand!", name)
		}
		return fmt.Sprintf("The %s got away!", name)
	}

	msg := fmt.Sprintf("Landed a %s quality %s!", r.Quality, name)
	if r.Perfect {
		msg = "Perfect catch! " + msg
	}
	if r.TreasureCaught {
		msg += " Treasure chest recovered!"
	}
	return msg
}

// recordMetrics tracks outcome counters for this attempt
func (s *service) recordMetrics(r *domain.CatchResult) {
	metrics.CatchAttempts.Inc()
	if !r.Success {
		metrics.CatchFailures.Inc()
		return
	}
	metrics.CatchSuccesses.Inc()
	metrics.CatchQuality.WithLabelValues(r.Quality.String()).Inc()
	if r.Perfect {
		metrics.PerfectCatches.Inc()
	}
	if r.TreasureCaught {
		metrics.TreasureCaptures.Inc()
	}
}
