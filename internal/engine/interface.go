// Package engine resolves character stats from their contribution sources
package engine

import (
	"context"

	"github.com/KirkDiggler/rpg-combat/internal/entities"
)

// Engine resolves stats and the combat numbers derived from them. All reads
// are pure; only Recalculate mutates, and only resource maxima.
type Engine interface {
	// Stat resolution
	Stat(c *entities.Character, stat string) int
	BaseStat(c *entities.Character, stat string) float64

	// Resources
	HP(c *entities.Character) int
	MP(c *entities.Character) int
	Recalculate(c *entities.Character)

	// Combat numbers
	OvercomeDodge(c *entities.Character) int
	Dodge(c *entities.Character) float64
	Hit(c *entities.Character) float64
	AvoidHit(c *entities.Character) float64
	Deflect(c *entities.Character) int
	IsStunned(c *entities.Character) (string, bool)

	// Reductions
	ItemValueMultiplier(c *entities.Character) float64
	ItemFindRange(c *entities.Character) float64
	ItemFindRangeMultiplier(c *entities.Character) float64
	MerchantItemGeneratorBonus(c *entities.Character) float64
	MerchantCostReductionMultiplier(c *entities.Character) float64

	// Bonuses
	Gold(c *entities.Character) float64
	XP(c *entities.Character) float64

	CalculateCharacterStats(
		ctx context.Context,
		input *CalculateCharacterStatsInput,
	) (*CalculateCharacterStatsOutput, error)
}
