package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-combat/internal/entities"
)

// Reduction names, also used as stat names by ContributionAdjuster
const (
	ReductionItemValueMultiplier             = "itemValueMultiplier"
	ReductionItemFindRange                   = "itemFindRange"
	ReductionItemFindRangeMultiplier         = "itemFindRangeMultiplier"
	ReductionMerchantItemGeneratorBonus      = "merchantItemGeneratorBonus"
	ReductionMerchantCostReductionMultiplier = "merchantCostReductionMultiplier"
)

// Adjuster is the extension point for reduction-style values. Perks and items
// hook here without touching the resolver.
type Adjuster interface {
	Adjust(name string, c *entities.Character, baseline float64) float64
}

// IdentityAdjuster returns the baseline unchanged
type IdentityAdjuster struct{}

// Adjust returns baseline
func (IdentityAdjuster) Adjust(_ string, _ *entities.Character, baseline float64) float64 {
	return baseline
}

// ContributionAdjuster adds the base pass of the stat named after the
// reduction, so equipment or effects carrying e.g. "itemFindRange" apply
type ContributionAdjuster struct{}

// Adjust returns baseline plus the same-named base stat
func (ContributionAdjuster) Adjust(name string, c *entities.Character, baseline float64) float64 {
	return baseline + basePass(c, name)
}

// AdjusterFunc adapts a function to Adjuster
type AdjusterFunc func(name string, c *entities.Character, baseline float64) float64

// Adjust calls f
func (f AdjusterFunc) Adjust(name string, c *entities.Character, baseline float64) float64 {
	return f(name, c, baseline)
}

func (e *engine) ItemValueMultiplier(c *entities.Character) float64 {
	return e.adjuster.Adjust(ReductionItemValueMultiplier, c, e.reductions.ItemValueMultiplier)
}

// ItemFindRange scales with level and is multiplied by ItemFindRangeMultiplier
func (e *engine) ItemFindRange(c *entities.Character) float64 {
	baseline := float64(c.Level+1) * e.reductions.ItemFindRange
	reduced := e.adjuster.Adjust(ReductionItemFindRange, c, baseline)
	return reduced * e.ItemFindRangeMultiplier(c)
}

// ItemFindRangeMultiplier grows by 0.2 every ten levels
func (e *engine) ItemFindRangeMultiplier(c *entities.Character) float64 {
	baseline := 1 + 0.2*math.Floor(float64(c.Level)/10) + e.reductions.ItemFindRangeMultiplier
	return e.adjuster.Adjust(ReductionItemFindRangeMultiplier, c, baseline)
}

func (e *engine) MerchantItemGeneratorBonus(c *entities.Character) float64 {
	return e.adjuster.Adjust(ReductionMerchantItemGeneratorBonus, c, e.reductions.MerchantItemGeneratorBonus)
}

func (e *engine) MerchantCostReductionMultiplier(c *entities.Character) float64 {
	return e.adjuster.Adjust(ReductionMerchantCostReductionMultiplier, c,
		e.reductions.MerchantCostReductionMultiplier)
}
