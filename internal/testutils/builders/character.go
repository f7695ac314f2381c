// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-combat/internal/engine/professions"
	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/entities/equipment"
)

// CharacterBuilder provides a fluent interface for building test characters
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder creates a level 1 Base character with 10/10 hp and
// 10/10 mp
func NewCharacterBuilder() *CharacterBuilder {
	c := entities.NewCharacter("char-test-1", "Tester", professions.Base())
	c.HP = entities.NewResource(0, 10, 10)
	c.MP = entities.NewResource(0, 10, 10)
	return &CharacterBuilder{character: c}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithLevel sets the level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithProfession sets the primary profession
func (b *CharacterBuilder) WithProfession(p *entities.Profession) *CharacterBuilder {
	b.character.Profession = p
	return b
}

// WithSecondaryProfessions sets the secondary professions
func (b *CharacterBuilder) WithSecondaryProfessions(names ...string) *CharacterBuilder {
	b.character.SecondaryProfessions = names
	return b
}

// WithStat sets an intrinsic base stat
func (b *CharacterBuilder) WithStat(stat string, value float64) *CharacterBuilder {
	b.character.Stats[stat] = value
	return b
}

// InParty sets the party
func (b *CharacterBuilder) InParty(party string) *CharacterBuilder {
	b.character.Party = party
	return b
}

// AsPlayer marks the character as player controlled
func (b *CharacterBuilder) AsPlayer() *CharacterBuilder {
	b.character.IsPlayer = true
	return b
}

// WithHP sets the hp pool
func (b *CharacterBuilder) WithHP(current, maximum int) *CharacterBuilder {
	b.character.HP = entities.NewResource(0, maximum, current)
	return b
}

// WithMP sets the mp pool
func (b *CharacterBuilder) WithMP(current, maximum int) *CharacterBuilder {
	b.character.MP = entities.NewResource(0, maximum, current)
	return b
}

// WithItem equips an item
func (b *CharacterBuilder) WithItem(slot equipment.Slot, attributes map[string]any) *CharacterBuilder {
	b.character.Equip(&equipment.Item{
		ID:         string(slot),
		Name:       string(slot),
		Slot:       slot,
		Attributes: attributes,
	})
	return b
}

// WithEffect attaches an effect without running its hooks
func (b *CharacterBuilder) WithEffect(e *entities.StatusEffect) *CharacterBuilder {
	b.character.Effects.Add(e)
	return b
}

// WithAchievement stores an achievement record
func (b *CharacterBuilder) WithAchievement(record entities.AchievementRecord) *CharacterBuilder {
	b.character.SetAchievement(record)
	return b
}

// WithPersonality activates a personality trait
func (b *CharacterBuilder) WithPersonality(trait entities.PersonalityTrait) *CharacterBuilder {
	b.character.Personalities = append(b.character.Personalities, trait)
	return b
}

// WithCollectibles adds collectibles
func (b *CharacterBuilder) WithCollectibles(names ...string) *CharacterBuilder {
	for _, n := range names {
		b.character.Collectibles.Add(n)
	}
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character
}
