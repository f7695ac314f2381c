// Package professions holds the profession catalog
package professions

import (
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
)

// Profession names
const (
	NameBase           = "Base"
	NameFighter        = "Fighter"
	NameBard           = "Bard"
	NameCleric         = "Cleric"
	NameMage           = "Mage"
	NameMagicalMonster = "MagicalMonster"
	NameMonster        = "Monster"
)

// Base growth every profession starts from
const (
	baseHPPerLevel = 10
	baseMPPerLevel = 1
)

// Registry maps profession names to their shared definitions
type Registry struct {
	mu          sync.RWMutex
	professions map[string]*entities.Profession
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{professions: make(map[string]*entities.Profession)}
}

// Register adds a profession. Names are unique.
func (r *Registry) Register(p *entities.Profession) error {
	if p == nil || p.Name == "" {
		return errors.InvalidArgument("profession name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.professions[p.Name]; exists {
		return errors.AlreadyExistsf("profession %s already registered", p.Name)
	}
	r.professions[p.Name] = p
	return nil
}

// Get returns the shared definition for name
func (r *Registry) Get(name string) (*entities.Profession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.professions[name]
	if !ok {
		return nil, errors.NotFoundf("profession %s not found", name)
	}
	return p, nil
}

// Names returns the registered names in order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.professions))
	for name := range r.professions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns a registry holding the full catalog
func Default() *Registry {
	r := NewRegistry()
	for _, p := range []*entities.Profession{
		Base(), Fighter(), Bard(), Cleric(), Mage(), MagicalMonster(), Monster(),
	} {
		// catalog names are unique
		_ = r.Register(p)
	}
	return r
}

func perLevel(hp, mp float64, stats map[string]float64) map[string]float64 {
	out := map[string]float64{
		entities.StatHP: hp,
		entities.StatMP: mp,
	}
	for k, v := range stats {
		out[k] = v
	}
	return out
}

func maxHPPercent(percent float64) entities.Contribution {
	return entities.Scaled(func(c *entities.Character, _ float64) float64 {
		if c.HP == nil {
			return 0
		}
		return float64(c.HP.Maximum()) * percent
	})
}

func maxMPPercent(percent float64) entities.Contribution {
	return entities.Scaled(func(c *entities.Character, _ float64) float64 {
		if c.MP == nil {
			return 0
		}
		return float64(c.MP.Maximum()) * percent
	})
}

// Base is the profession every character starts in
func Base() *entities.Profession {
	return &entities.Profession{
		Name: NameBase,
		PerLevel: perLevel(baseHPPerLevel, baseMPPerLevel, map[string]float64{
			entities.StatStr: 1,
			entities.StatCon: 1,
			entities.StatDex: 1,
			entities.StatInt: 1,
			entities.StatAgi: 1,
			entities.StatLuk: 0.5,
		}),
		HPPer: map[string]float64{entities.StatCon: 3},
		MPPer: map[string]float64{entities.StatInt: 1},
	}
}

// Fighter trades mp for hp and knocks targets prone
func Fighter() *entities.Profession {
	return &entities.Profession{
		Name: NameFighter,
		PerLevel: perLevel(baseHPPerLevel+25, baseMPPerLevel+3, map[string]float64{
			entities.StatCon: 2,
			entities.StatDex: 4,
			entities.StatAgi: 3,
			entities.StatStr: 5,
			entities.StatInt: 1,
		}),
		HPPer: map[string]float64{entities.StatCon: 3},
		MPPer: map[string]float64{
			entities.StatStr: 1,
			entities.StatInt: 1,
		},
		ClassStats: map[string]entities.Contribution{
			entities.StatHPRegen: maxHPPercent(0.075),
			entities.StatProne:   entities.Flat(1),
		},
	}
}

// Bard grows mp and regenerates it
func Bard() *entities.Profession {
	return &entities.Profession{
		Name: NameBard,
		PerLevel: perLevel(baseHPPerLevel-5, baseMPPerLevel+5, map[string]float64{
			entities.StatCon: 1,
			entities.StatDex: 1,
			entities.StatAgi: 3,
			entities.StatStr: 2,
			entities.StatInt: 3,
		}),
		HPPer: map[string]float64{entities.StatCon: 2},
		MPPer: map[string]float64{entities.StatInt: 5},
		ClassStats: map[string]entities.Contribution{
			entities.StatMPRegen: maxMPPercent(0.005),
		},
	}
}

// Cleric heals
func Cleric() *entities.Profession {
	return &entities.Profession{
		Name: NameCleric,
		PerLevel: perLevel(baseHPPerLevel+5, baseMPPerLevel+10, map[string]float64{
			entities.StatCon: 2,
			entities.StatDex: 1,
			entities.StatAgi: 1,
			entities.StatStr: 1,
			entities.StatInt: 4,
			entities.StatLuk: 1,
		}),
		HPPer: map[string]float64{entities.StatCon: 3},
		MPPer: map[string]float64{entities.StatInt: 3},
		ClassStats: map[string]entities.Contribution{
			entities.StatMPRegen: maxMPPercent(0.01),
		},
	}
}

// Mage deals elemental damage
func Mage() *entities.Profession {
	return &entities.Profession{
		Name: NameMage,
		PerLevel: perLevel(baseHPPerLevel-3, baseMPPerLevel+12, map[string]float64{
			entities.StatCon: 1,
			entities.StatDex: 1,
			entities.StatAgi: 2,
			entities.StatStr: 1,
			entities.StatInt: 6,
		}),
		HPPer: map[string]float64{entities.StatCon: 2},
		MPPer: map[string]float64{entities.StatInt: 4},
		ClassStats: map[string]entities.Contribution{
			entities.StatMPRegen: maxMPPercent(0.02),
		},
	}
}

// MagicalMonster is a monster with spell access
func MagicalMonster() *entities.Profession {
	return &entities.Profession{
		Name: NameMagicalMonster,
		PerLevel: perLevel(baseHPPerLevel, baseMPPerLevel+5, map[string]float64{
			entities.StatCon: 1,
			entities.StatDex: 1,
			entities.StatAgi: 1,
			entities.StatStr: 1,
			entities.StatInt: 3,
		}),
		HPPer: map[string]float64{entities.StatCon: 2},
		MPPer: map[string]float64{entities.StatInt: 2},
	}
}

// Monster is the plain monster archetype
func Monster() *entities.Profession {
	return &entities.Profession{
		Name: NameMonster,
		PerLevel: perLevel(baseHPPerLevel+10, 0, map[string]float64{
			entities.StatCon: 2,
			entities.StatDex: 2,
			entities.StatAgi: 2,
			entities.StatStr: 3,
		}),
		HPPer: map[string]float64{entities.StatCon: 2},
		ClassStats: map[string]entities.Contribution{
			entities.StatDamageReduction: entities.Flat(1),
		},
	}
}
