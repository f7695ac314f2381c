package testutils

import (
	"github.com/KirkDiggler/rpg-combat/internal/engine/professions"
	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/testutils/builders"
)

// Parties used by fixtures
const (
	PartyHeroes   = "heroes"
	PartyMonsters = "monsters"
)

// CreateTestCleric creates a level 1 Cleric whose int resolves to 20 (16 base
// plus 4 from the level curve), with 100/100 mp and full hp
func CreateTestCleric() *entities.Character {
	return builders.NewCharacterBuilder().
		WithID("cleric-1").
		WithName("Ada").
		WithProfession(professions.Cleric()).
		WithStat(entities.StatInt, 16).
		WithHP(50, 50).
		WithMP(100, 100).
		InParty(PartyHeroes).
		AsPlayer().
		Build()
}

// CreateTestFighter creates a level 1 Fighter ally
func CreateTestFighter() *entities.Character {
	return builders.NewCharacterBuilder().
		WithID("fighter-1").
		WithName("Bram").
		WithProfession(professions.Fighter()).
		WithStat(entities.StatStr, 10).
		WithStat(entities.StatDex, 10).
		WithHP(80, 80).
		WithMP(10, 10).
		InParty(PartyHeroes).
		AsPlayer().
		Build()
}

// CreateTestMonster creates a monster in the opposing party
func CreateTestMonster(id string, hp int) *entities.Character {
	return builders.NewCharacterBuilder().
		WithID(id).
		WithName("Goblin "+id).
		WithProfession(professions.Monster()).
		WithHP(hp, hp).
		WithMP(0, 0).
		InParty(PartyMonsters).
		Build()
}
