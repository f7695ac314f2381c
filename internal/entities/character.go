package entities

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-combat/internal/entities/equipment"
)

// Entity types reported through core.Entity
const (
	EntityTypePlayer  = "player"
	EntityTypeMonster = "monster"
)

// ResourceKind names a character resource pool
type ResourceKind string

// Resource pools
const (
	ResourceHP ResourceKind = "hp"
	ResourceMP ResourceKind = "mp"
)

// Character is a combatant. It exclusively owns its effects and resource
// state; the profession is a shared reference.
type Character struct {
	ID                   string
	Name                 string
	Title                string
	Level                int
	Profession           *Profession
	SecondaryProfessions []string
	IsPlayer             bool
	Party                string

	// Stats holds the character's intrinsic base stat values
	Stats map[string]float64

	Equipment     map[equipment.Slot]*equipment.Item
	Effects       *Effects
	Achievements  []AchievementRecord
	Personalities []PersonalityTrait
	Collectibles  *Collectibles

	HP *Resource
	MP *Resource
}

// NewCharacter creates a level 1 character with empty collections
func NewCharacter(id, name string, profession *Profession) *Character {
	return &Character{
		ID:           id,
		Name:         name,
		Level:        1,
		Profession:   profession,
		Stats:        map[string]float64{},
		Equipment:    map[equipment.Slot]*equipment.Item{},
		Effects:      NewEffects(),
		Collectibles: NewCollectibles(),
		HP:           NewResource(0, 1, 1),
		MP:           NewResource(0, 0, 0),
	}
}

var _ core.Entity = (*Character)(nil)

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	if c.IsPlayer {
		return EntityTypePlayer
	}
	return EntityTypeMonster
}

// FullName returns the name with the chosen title
func (c *Character) FullName() string {
	if c.Title != "" {
		return fmt.Sprintf("%s, the %s", c.Name, c.Title)
	}
	return c.Name
}

// ProfessionName returns the primary profession's name
func (c *Character) ProfessionName() string {
	if c.Profession == nil {
		return ""
	}
	return c.Profession.Name
}

// HasProfession reports whether name is the primary or a secondary profession
func (c *Character) HasProfession(name string) bool {
	if c.ProfessionName() == name {
		return true
	}
	for _, p := range c.SecondaryProfessions {
		if p == name {
			return true
		}
	}
	return false
}

// Resource returns the pool for kind
func (c *Character) Resource(kind ResourceKind) *Resource {
	switch kind {
	case ResourceHP:
		return c.HP
	case ResourceMP:
		return c.MP
	default:
		return nil
	}
}

// IsAlive reports whether the character has hp left
func (c *Character) IsAlive() bool {
	return c.HP != nil && c.HP.Current() > 0
}

// BaseStat returns the intrinsic base value for stat
func (c *Character) BaseStat(stat string) float64 {
	return c.Stats[stat]
}

// Equip places an item in its slot, replacing what was there
func (c *Character) Equip(item *equipment.Item) {
	if c.Equipment == nil {
		c.Equipment = map[equipment.Slot]*equipment.Item{}
	}
	c.Equipment[item.Slot] = item
}

// EquippedItems returns equipped items in slot order
func (c *Character) EquippedItems() []*equipment.Item {
	items := make([]*equipment.Item, 0, len(c.Equipment))
	for _, slot := range equipment.AllSlots() {
		if item, ok := c.Equipment[slot]; ok && item != nil {
			items = append(items, item)
		}
	}
	return items
}

// Achievement returns the stored record for name
func (c *Character) Achievement(name string) (AchievementRecord, bool) {
	for _, a := range c.Achievements {
		if a.Name == name {
			return a, true
		}
	}
	return AchievementRecord{}, false
}

// SetAchievement stores or replaces a record, keeping records sorted by name
func (c *Character) SetAchievement(record AchievementRecord) {
	for i, a := range c.Achievements {
		if a.Name == record.Name {
			c.Achievements[i] = record
			return
		}
	}
	c.Achievements = append(c.Achievements, record)
	sort.Slice(c.Achievements, func(i, j int) bool {
		return c.Achievements[i].Name < c.Achievements[j].Name
	})
}

// Titles returns every title unlocked through achievements
func (c *Character) Titles() []string {
	var titles []string
	for _, a := range c.Achievements {
		for _, r := range a.Rewards {
			if r.Type == RewardTypeTitle && r.Title != "" {
				titles = append(titles, r.Title)
			}
		}
	}
	return titles
}

// Collectibles is the set of unlockables a character holds
type Collectibles struct {
	names map[string]struct{}
}

// NewCollectibles creates a set holding names
func NewCollectibles(names ...string) *Collectibles {
	c := &Collectibles{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		c.Add(n)
	}
	return c
}

// Add inserts a collectible
func (c *Collectibles) Add(name string) {
	c.names[name] = struct{}{}
}

// Has reports whether the collectible is held
func (c *Collectibles) Has(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.names[name]
	return ok
}

// Total returns the number of held collectibles
func (c *Collectibles) Total() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}
