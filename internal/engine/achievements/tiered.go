// Package achievements computes achievement tiers from character progress.
// Every achievement is a Tiered definition: a progress metric, a threshold
// per tier and the rewards a tier pays out.
package achievements

import (
	"context"
	"math"

	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
	"github.com/KirkDiggler/rpg-combat/internal/telemetry"
)

// Threshold returns the metric value needed for tier
type Threshold func(tier int) float64

// Linear thresholds grow as base*tier
func Linear(base float64) Threshold {
	return func(tier int) float64 {
		return base * float64(tier)
	}
}

// Exponential thresholds grow as base*factor^(tier-1)
func Exponential(base, factor float64) Threshold {
	return func(tier int) float64 {
		return base * math.Pow(factor, float64(tier-1))
	}
}

// TierFor returns the largest tier whose threshold metric meets. maxTier
// caps the result when positive.
func TierFor(metric float64, threshold Threshold, maxTier int) int {
	tier := 0
	for maxTier <= 0 || tier < maxTier {
		if metric < threshold(tier+1) {
			break
		}
		tier++
	}
	return tier
}

// Metric reads a character's progress
type Metric func(ctx context.Context, c *entities.Character, counters telemetry.Counters) (float64, error)

// CounterValue reads a single counter
func CounterValue(path string) Metric {
	return func(ctx context.Context, _ *entities.Character, counters telemetry.Counters) (float64, error) {
		return counters.GetCounterValue(ctx, path)
	}
}

// ChildCount counts the distinct counters directly below prefix
func ChildCount(prefix string) Metric {
	return func(ctx context.Context, _ *entities.Character, counters telemetry.Counters) (float64, error) {
		n, err := counters.CountChildCounters(ctx, prefix)
		return float64(n), err
	}
}

// CollectibleCount counts held collectibles
func CollectibleCount() Metric {
	return func(_ context.Context, c *entities.Character, _ telemetry.Counters) (float64, error) {
		return float64(c.Collectibles.Total()), nil
	}
}

// Tiered is a tiered-threshold achievement
type Tiered struct {
	Name      string
	Type      entities.AchievementType
	Metric    Metric
	Threshold Threshold

	// MaxTier caps the tier when positive
	MaxTier int

	// Stats builds the stat reward of a tier, nil for none
	Stats func(tier int) map[string]entities.Contribution

	// Display describes scaled stats for a tier, for example "3%"
	Display func(tier int) map[string]string

	Describe func(tier int) string

	// Title is unlocked at TitleTier and above
	Title     string
	TitleTier int
}

// Validate checks the definition once at registration
func (a *Tiered) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("Name", a.Name, vb)
	if a.Metric == nil {
		vb.RequiredField("Metric")
	}
	if a.Threshold == nil {
		vb.RequiredField("Threshold")
	} else {
		if a.Threshold(1) <= 0 {
			vb.Field("Threshold", "tier 1 threshold must be positive")
		}
		if a.MaxTier != 1 && a.Threshold(2) <= a.Threshold(1) {
			vb.Field("Threshold", "thresholds must increase with tier")
		}
	}
	if a.Stats == nil && a.Title == "" {
		vb.Field("Rewards", "stats or title is required")
	}
	if a.Title != "" && a.TitleTier < 1 {
		vb.Field("TitleTier", "must be at least 1")
	}

	return vb.Build()
}

// Evaluate computes the record c has earned. ok is false at tier 0.
func (a *Tiered) Evaluate(ctx context.Context, c *entities.Character, counters telemetry.Counters) (entities.AchievementRecord, bool, error) {
	metric, err := a.Metric(ctx, c, counters)
	if err != nil {
		return entities.AchievementRecord{}, false, errors.Wrapf(err, "failed to read progress for %s", a.Name)
	}

	tier := TierFor(metric, a.Threshold, a.MaxTier)
	if tier == 0 {
		return entities.AchievementRecord{}, false, nil
	}

	return a.Record(tier), true, nil
}

// Record builds the record for tier
func (a *Tiered) Record(tier int) entities.AchievementRecord {
	record := entities.AchievementRecord{
		Name: a.Name,
		Tier: tier,
		Type: a.Type,
	}
	if a.Describe != nil {
		record.Description = a.Describe(tier)
	}

	if a.Stats != nil {
		reward := entities.Reward{Type: entities.RewardTypeStats, Stats: a.Stats(tier)}
		if a.Display != nil {
			reward.Display = a.Display(tier)
		}
		record.Rewards = append(record.Rewards, reward)
	}
	if a.Title != "" && tier >= a.TitleTier {
		record.Rewards = append(record.Rewards, entities.Reward{Type: entities.RewardTypeTitle, Title: a.Title})
	}

	return record
}
