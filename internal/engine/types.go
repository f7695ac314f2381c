package engine

import "github.com/KirkDiggler/rpg-combat/internal/entities"

// CalculateCharacterStatsInput contains the character to resolve
type CalculateCharacterStatsInput struct {
	Character *entities.Character

	// Stats limits resolution to these names. Empty means every base,
	// special and attack stat.
	Stats []string
}

// CalculateCharacterStatsOutput is a snapshot of every resolved number
type CalculateCharacterStatsOutput struct {
	Stats map[string]int

	MaxHP int
	MaxMP int

	OvercomeDodge int
	Dodge         float64
	Hit           float64
	AvoidHit      float64
	Deflect       int

	ItemValueMultiplier             float64
	ItemFindRange                   float64
	ItemFindRangeMultiplier         float64
	MerchantItemGeneratorBonus      float64
	MerchantCostReductionMultiplier float64

	Gold float64
	XP   float64

	Stunned     bool
	StunMessage string
}
