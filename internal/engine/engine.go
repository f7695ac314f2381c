package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
)

// DefaultStunMessage is reported when a stunning effect carries no message
const DefaultStunMessage = "NO STUN MESSAGE"

// ReductionDefaults are the settings baselines for reduction-style values
type ReductionDefaults struct {
	ItemValueMultiplier             float64
	ItemFindRange                   float64
	ItemFindRangeMultiplier         float64
	MerchantItemGeneratorBonus      float64
	MerchantCostReductionMultiplier float64
}

// DefaultReductionDefaults returns the stock baselines
func DefaultReductionDefaults() ReductionDefaults {
	return ReductionDefaults{
		ItemValueMultiplier:             1,
		ItemFindRange:                   200,
		ItemFindRangeMultiplier:         0,
		MerchantItemGeneratorBonus:      0,
		MerchantCostReductionMultiplier: 1,
	}
}

type engine struct {
	reductions ReductionDefaults
	adjuster   Adjuster
}

// Config configures the stat engine
type Config struct {
	Reductions ReductionDefaults

	// Adjuster hooks reduction values. Defaults to IdentityAdjuster.
	Adjuster Adjuster
}

// Validate checks the reduction baselines
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("Reductions.ItemValueMultiplier", cfg.Reductions.ItemValueMultiplier, vb)
	errors.ValidateNonNegative("Reductions.ItemFindRange", cfg.Reductions.ItemFindRange, vb)
	errors.ValidateNonNegative("Reductions.MerchantCostReductionMultiplier",
		cfg.Reductions.MerchantCostReductionMultiplier, vb)
	return vb.Build()
}

// New creates a stat engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	adjuster := cfg.Adjuster
	if adjuster == nil {
		adjuster = IdentityAdjuster{}
	}

	return &engine{
		reductions: cfg.Reductions,
		adjuster:   adjuster,
	}, nil
}

// Stat resolves stat for c: the floored sum of the base pass and every
// scaled contribution evaluated against it. The base pass includes the
// character's own Stats value on top of the class curve, effects, equipment,
// and the flat profession, achievement and personality contributions.
func (e *engine) Stat(c *entities.Character, stat string) int {
	base := e.BaseStat(c, stat)

	mods := 0.0
	for _, contribution := range scaledContributions(c, stat) {
		mods += contribution.Apply(c, base)
	}

	return int(math.Floor(base + mods))
}

// BaseStat is the unrounded additive pass
func (e *engine) BaseStat(c *entities.Character, stat string) float64 {
	return basePass(c, stat)
}

// basePass starts from the intrinsic Stats entry, which is 0 for characters
// built without one.
func basePass(c *entities.Character, stat string) float64 {
	return c.BaseStat(stat) +
		classCurve(c, stat) +
		c.Effects.Stat(stat) +
		equipmentStat(c, stat) +
		professionFlat(c, stat) +
		achievementFlat(c, stat) +
		personalityFlat(c, stat)
}

func classCurve(c *entities.Character, stat string) float64 {
	return float64(c.Level) * c.Profession.PerLevelRate(stat)
}

func equipmentStat(c *entities.Character, stat string) float64 {
	var total float64
	for _, item := range c.Equipment {
		if item == nil {
			continue
		}
		total += item.NumericValue(stat)
	}
	return total
}

func professionFlat(c *entities.Character, stat string) float64 {
	contribution, ok := c.Profession.ClassStat(stat)
	if !ok {
		return 0
	}
	return contribution.FlatValue()
}

func achievementFlat(c *entities.Character, stat string) float64 {
	var total float64
	for _, reward := range statRewards(c) {
		if contribution, ok := reward.Stats[stat]; ok {
			total += contribution.FlatValue()
		}
	}
	return total
}

func personalityFlat(c *entities.Character, stat string) float64 {
	var total float64
	for _, trait := range c.Personalities {
		if contribution, ok := trait.Stats[stat]; ok {
			total += contribution.FlatValue()
		}
	}
	return total
}

func statRewards(c *entities.Character) []entities.Reward {
	var rewards []entities.Reward
	for _, record := range c.Achievements {
		for _, reward := range record.Rewards {
			if reward.Type == entities.RewardTypeStats {
				rewards = append(rewards, reward)
			}
		}
	}
	return rewards
}

// scaledContributions collects the modifier pass in its fixed order:
// profession, then achievements, then personalities.
func scaledContributions(c *entities.Character, stat string) []entities.Contribution {
	var out []entities.Contribution

	if contribution, ok := c.Profession.ClassStat(stat); ok && contribution.IsScaled() {
		out = append(out, contribution)
	}
	for _, reward := range statRewards(c) {
		if contribution, ok := reward.Stats[stat]; ok && contribution.IsScaled() {
			out = append(out, contribution)
		}
	}
	for _, trait := range c.Personalities {
		if contribution, ok := trait.Stats[stat]; ok && contribution.IsScaled() {
			out = append(out, contribution)
		}
	}

	return out
}

func (e *engine) Gold(c *entities.Character) float64 {
	return e.BaseStat(c, entities.StatGold)
}

func (e *engine) XP(c *entities.Character) float64 {
	return e.BaseStat(c, entities.StatXP)
}

// IsStunned returns the message of the first stunning effect
func (e *engine) IsStunned(c *entities.Character) (string, bool) {
	message, stunned := c.Effects.Stunned()
	if !stunned {
		return "", false
	}
	if message == "" {
		message = DefaultStunMessage
	}
	return message, true
}
