package engine

import (
	"context"

	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
)

// CalculateCharacterStats resolves a full stat sheet for one character
func (e *engine) CalculateCharacterStats(
	_ context.Context,
	input *CalculateCharacterStatsInput,
) (*CalculateCharacterStatsOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	c := input.Character
	if c.Level < 1 {
		return nil, errors.InvalidArgumentf("level must be at least 1, got %d", c.Level)
	}

	names := input.Stats
	if len(names) == 0 {
		names = append(names, entities.BaseStats()...)
		names = append(names, entities.SpecialStats()...)
		names = append(names, entities.AttackStats()...)
	}

	stats := make(map[string]int, len(names))
	for _, name := range names {
		stats[name] = e.Stat(c, name)
	}

	stunMessage, stunned := e.IsStunned(c)

	return &CalculateCharacterStatsOutput{
		Stats:                           stats,
		MaxHP:                           e.HP(c),
		MaxMP:                           e.MP(c),
		OvercomeDodge:                   e.OvercomeDodge(c),
		Dodge:                           e.Dodge(c),
		Hit:                             e.Hit(c),
		AvoidHit:                        e.AvoidHit(c),
		Deflect:                         e.Deflect(c),
		ItemValueMultiplier:             e.ItemValueMultiplier(c),
		ItemFindRange:                   e.ItemFindRange(c),
		ItemFindRangeMultiplier:         e.ItemFindRangeMultiplier(c),
		MerchantItemGeneratorBonus:      e.MerchantItemGeneratorBonus(c),
		MerchantCostReductionMultiplier: e.MerchantCostReductionMultiplier(c),
		Gold:                            e.Gold(c),
		XP:                              e.XP(c),
		Stunned:                         stunned,
		StunMessage:                     stunMessage,
	}, nil
}
