package spells

import (
	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
)

// Element tags a spell for utilize and effect counters
type Element string

// Elements
const (
	ElementPhysical Element = "Physical"
	ElementBuff     Element = "Buff"
	ElementDebuff   Element = "Debuff"
	ElementHeal     Element = "Heal"
	ElementDigital  Element = "Digital"
	ElementEnergy   Element = "Energy"
	ElementHoly     Element = "Holy"
	ElementThunder  Element = "Thunder"
	ElementFire     Element = "Fire"
	ElementWater    Element = "Water"
	ElementIce      Element = "Ice"
)

// Operation is how a spell's cost is applied to its pool
type Operation string

// Operations
const (
	OperationSub Operation = "sub"
	OperationAdd Operation = "add"
)

// Tier is one leveled variant of a spell
type Tier struct {
	Name       string
	SpellPower float64
	Weight     int
	Cost       int
	Level      int

	// Professions may use the tier as primary or secondary profession
	Professions []string

	// Collectibles must all be held by the caster
	Collectibles []string
}

// Eligible reports whether c passes the tier's gates
func (t *Tier) Eligible(c *entities.Character) bool {
	if c.Level < t.Level {
		return false
	}

	allowed := false
	for _, p := range t.Professions {
		if c.HasProfession(p) {
			allowed = true
			break
		}
	}
	if !allowed {
		return false
	}

	for _, name := range t.Collectibles {
		if !c.Collectibles.Has(name) {
			return false
		}
	}
	return true
}

// Definition is the static description of a spell. Tiers are authored in
// ascending order of power; Validate enforces ascending level per profession.
type Definition struct {
	Name    string
	Element Element

	// Pool and Operation default to mp and sub
	Pool      entities.ResourceKind
	Operation Operation

	Tiers []Tier

	// Effects lists every status effect the spell may apply
	Effects []string
}

// BestTier returns the last tier c is eligible for
func (d *Definition) BestTier(c *entities.Character) (*Tier, bool) {
	var best *Tier
	for i := range d.Tiers {
		if d.Tiers[i].Eligible(c) {
			best = &d.Tiers[i]
		}
	}
	return best, best != nil
}

// PoolKind returns the resource pool the cost is paid from
func (d *Definition) PoolKind() entities.ResourceKind {
	if d.Pool == "" {
		return entities.ResourceMP
	}
	return d.Pool
}

// CostOperation returns how the cost is applied
func (d *Definition) CostOperation() Operation {
	if d.Operation == "" {
		return OperationSub
	}
	return d.Operation
}

// Validate checks the definition once at registration
func (d *Definition) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("Name", d.Name, vb)
	errors.ValidateRequired("Element", string(d.Element), vb)
	errors.ValidateEnum("Pool", string(d.PoolKind()),
		[]string{string(entities.ResourceHP), string(entities.ResourceMP)}, vb)
	errors.ValidateEnum("Operation", string(d.CostOperation()),
		[]string{string(OperationSub), string(OperationAdd)}, vb)

	if len(d.Tiers) == 0 {
		vb.Field("Tiers", "at least one tier is required")
	}

	lastLevel := make(map[string]int)
	for i, t := range d.Tiers {
		if t.Name == "" {
			vb.Fieldf("Tiers", "tier %d has no name", i)
		}
		if t.Level < 1 {
			vb.Fieldf("Tiers", "tier %s has level %d", t.Name, t.Level)
		}
		if t.Cost < 0 {
			vb.Fieldf("Tiers", "tier %s has negative cost", t.Name)
		}
		if t.Weight < 0 {
			vb.Fieldf("Tiers", "tier %s has negative weight", t.Name)
		}
		if len(t.Professions) == 0 {
			vb.Fieldf("Tiers", "tier %s has no profession", t.Name)
		}
		for _, p := range t.Professions {
			if prev, ok := lastLevel[p]; ok && t.Level < prev {
				vb.Fieldf("Tiers", "tier %s (level %d) follows level %d for %s", t.Name, t.Level, prev, p)
			}
			lastLevel[p] = t.Level
		}
	}

	return vb.Build()
}
