package spells

import (
	"context"

	"github.com/KirkDiggler/rpg-combat/internal/engine/effects"
	"github.com/KirkDiggler/rpg-combat/internal/engine/professions"
	"github.com/KirkDiggler/rpg-combat/internal/engine/targeting"
	"github.com/KirkDiggler/rpg-combat/internal/entities"
)

// Spell names
const (
	NameAttack       = "Attack"
	NameCure         = "Cure"
	NameMagicMissile = "MagicMissile"
	NameShatter      = "Shatter"
	NameVenomBolt    = "VenomBolt"
	NameGlitch       = "Glitch"
	NameRegenerate   = "Regenerate"
	NameRevive       = "Revive"
)

// Catalog returns a fresh instance of every built-in spell
func Catalog() []Spell {
	return []Spell{
		NewAttack(),
		NewCure(),
		NewMagicMissile(),
		NewShatter(),
		NewVenomBolt(),
		NewGlitch(),
		NewRegenerate(),
		NewRevive(),
	}
}

type spellBase struct {
	def *Definition
}

func (b spellBase) Definition() *Definition {
	return b.def
}

func intStat(inv *Invocation) float64 {
	return float64(inv.Stat(entities.StatInt))
}

// roll is MinMax scaled by the tier's spell power
func roll(inv *Invocation, minValue, maxValue float64) (float64, error) {
	v, err := inv.MinMax(minValue, maxValue)
	if err != nil {
		return 0, err
	}
	return float64(v) * inv.Tier.SpellPower, nil
}

// Cure heals one wounded ally
type Cure struct {
	spellBase
}

// NewCure creates the Cure spell
func NewCure() *Cure {
	return &Cure{spellBase{&Definition{
		Name:    NameCure,
		Element: ElementHeal,
		Tiers: []Tier{
			{Name: "cure", SpellPower: 1.0, Weight: 40, Cost: 10, Level: 1, Professions: []string{professions.NameCleric}},
			{Name: "heal", SpellPower: 1.5, Weight: 40, Cost: 450, Level: 25, Professions: []string{professions.NameCleric}},
			{Name: "restore", SpellPower: 2.5, Weight: 40, Cost: 2300, Level: 65, Professions: []string{professions.NameCleric}},
			{Name: "revitalize", SpellPower: 5.5, Weight: 40, Cost: 7300, Level: 115, Professions: []string{professions.NameCleric},
				Collectibles: []string{"Strand of Fate"}},
			{Name: "mini cure", SpellPower: 1.0, Weight: 35, Cost: 100, Level: 15, Professions: []string{professions.NameMagicalMonster},
				Collectibles: []string{"Cleric's Text"}},
		},
	}}}
}

const (
	cureMessage         = "%player cast %spellName at %targetName and healed %healed hp!"
	cureNoTargetMessage = "%player cast %spellName but no one needed healing."
)

// ShouldCast is true while an ally is hurt
func (s *Cure) ShouldCast(inv *Invocation) (bool, error) {
	return inv.Check(targeting.AllyBelowMaxHealth, "")
}

func (s *Cure) damage(inv *Invocation) (float64, error) {
	v, err := roll(inv, intStat(inv)/4, intStat(inv))
	return -v, err
}

// Resolve heals each selected ally with its own roll
func (s *Cure) Resolve(ctx context.Context, inv *Invocation) error {
	targets, err := inv.Targets(targeting.RandomAllyBelowMaxHealth, "")
	if err != nil {
		return err
	}

	if len(targets) == 0 {
		damage, err := s.damage(inv)
		if err != nil {
			return err
		}
		return inv.Cast(ctx, CastOptions{
			Damage:          damage,
			Message:         cureMessage,
			NoTargetMessage: cureNoTargetMessage,
		})
	}

	for _, target := range targets {
		damage, err := s.damage(inv)
		if err != nil {
			return err
		}
		err = inv.Cast(ctx, CastOptions{
			Damage:  damage,
			Message: cureMessage,
			Targets: []*entities.Character{target},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Attack is the physical attack every profession knows. Hits that land
// apply the caster's attack stats as status effects.
type Attack struct {
	spellBase
}

// NewAttack creates the Attack spell
func NewAttack() *Attack {
	return &Attack{spellBase{&Definition{
		Name:    NameAttack,
		Element: ElementPhysical,
		Tiers: []Tier{
			{Name: "attack", SpellPower: 1, Weight: 10, Level: 1, Professions: professions.Default().Names()},
		},
		Effects: entities.AttackStats(),
	}}}
}

const (
	attackMessage        = "%player attacked %targetName for %damage damage!"
	attackCritMessage    = "%player critically hit %targetName for %damage damage!"
	attackDodgeMessage   = "%player attacked %targetName, but %targetName dodged!"
	attackDeflectMessage = "%player attacked %targetName, but %targetName deflected it and took %damage damage!"
)

// ShouldCast is always true
func (s *Attack) ShouldCast(inv *Invocation) (bool, error) {
	return inv.Check(targeting.Yes, "")
}

// Resolve swings at one living enemy
func (s *Attack) Resolve(ctx context.Context, inv *Invocation) error {
	targets, err := inv.Targets(targeting.RandomEnemy, "")
	if err != nil {
		return err
	}

	for _, target := range targets {
		damage, message, err := s.swing(inv, target)
		if err != nil {
			return err
		}

		err = inv.Cast(ctx, CastOptions{
			Damage:  damage,
			Message: message,
			Targets: []*entities.Character{target},
		})
		if err != nil {
			return err
		}

		if damage <= 0 {
			continue
		}

		var procs []string
		for _, stat := range entities.AttackStats() {
			if inv.Stat(stat) > 0 {
				procs = append(procs, stat)
			}
		}
		if err := inv.ApplyCombatEffects(ctx, procs, target); err != nil {
			return err
		}
	}
	return nil
}

// swing rolls dodge, then deflect, then crit
func (s *Attack) swing(inv *Invocation, target *entities.Character) (float64, string, error) {
	eng := inv.Engine()

	str := float64(inv.Stat(entities.StatStr))
	damage, err := roll(inv, str*0.35, str)
	if err != nil {
		return 0, "", err
	}

	dodgeRoll, err := inv.Roll(eng.OvercomeDodge(inv.Caster))
	if err != nil {
		return 0, "", err
	}
	if float64(dodgeRoll) <= eng.Dodge(target) {
		return 0, attackDodgeMessage, nil
	}

	hitRoll, err := inv.Roll(int(eng.Hit(inv.Caster)))
	if err != nil {
		return 0, "", err
	}
	if float64(hitRoll) <= eng.AvoidHit(target) {
		return max(0, damage-float64(eng.Deflect(target))), attackDeflectMessage, nil
	}

	if crit := inv.Stat(entities.StatCrit); crit > 0 {
		critRoll, err := inv.Roll(100)
		if err != nil {
			return 0, "", err
		}
		if critRoll <= crit {
			return damage * 1.5, attackCritMessage, nil
		}
	}

	return damage, attackMessage, nil
}

// MagicMissile is raw energy damage on one enemy
type MagicMissile struct {
	spellBase
}

// NewMagicMissile creates the MagicMissile spell
func NewMagicMissile() *MagicMissile {
	return &MagicMissile{spellBase{&Definition{
		Name:    NameMagicMissile,
		Element: ElementEnergy,
		Tiers: []Tier{
			{Name: "magic missile", SpellPower: 1, Weight: 30, Cost: 5, Level: 1, Professions: []string{professions.NameMage}},
			{Name: "mana spark", SpellPower: 1, Weight: 25, Cost: 10, Level: 1, Professions: []string{professions.NameMagicalMonster}},
			{Name: "magic bolt", SpellPower: 2, Weight: 30, Cost: 40, Level: 10, Professions: []string{professions.NameMage}},
			{Name: "astral arrow", SpellPower: 3.5, Weight: 30, Cost: 200, Level: 35, Professions: []string{professions.NameMage}},
		},
	}}}
}

// ShouldCast is always true
func (s *MagicMissile) ShouldCast(inv *Invocation) (bool, error) {
	return inv.Check(targeting.Yes, "")
}

// Resolve hits one random enemy
func (s *MagicMissile) Resolve(ctx context.Context, inv *Invocation) error {
	targets, err := inv.Targets(targeting.RandomEnemy, "")
	if err != nil {
		return err
	}

	damage, err := roll(inv, intStat(inv)/5, intStat(inv))
	if err != nil {
		return err
	}

	return inv.Cast(ctx, CastOptions{
		Damage:          damage,
		Targets:         targets,
		Message:         "%player cast %spellName at %targetName for %damage damage!",
		NoTargetMessage: "%player cast %spellName into the void.",
	})
}

// Shatter weakens an enemy's defenses
type Shatter struct {
	spellBase
}

// NewShatter creates the Shatter spell
func NewShatter() *Shatter {
	return &Shatter{spellBase{&Definition{
		Name:    NameShatter,
		Element: ElementDebuff,
		Tiers: []Tier{
			{Name: "shatter", SpellPower: 1, Weight: 20, Cost: 10, Level: 10, Professions: []string{professions.NameFighter}},
			{Name: "shatter", SpellPower: 1, Weight: 15, Cost: 25, Level: 15, Professions: []string{professions.NameMage}},
			{Name: "demolish", SpellPower: 2.5, Weight: 20, Cost: 60, Level: 40, Professions: []string{professions.NameFighter}},
		},
		Effects: []string{effects.NameShatter},
	}}}
}

// ShouldCast is true while an enemy is not shattered
func (s *Shatter) ShouldCast(inv *Invocation) (bool, error) {
	return inv.Check(targeting.EnemyWithoutEffect, effects.NameShatter)
}

// Potency scales with strength
func (s *Shatter) Potency(inv *Invocation) int {
	return max(1, int(float64(inv.Stat(entities.StatStr))/10*inv.Tier.SpellPower))
}

// Duration is three ticks
func (s *Shatter) Duration(_ *Invocation) int {
	return 3
}

// Resolve shatters one enemy
func (s *Shatter) Resolve(ctx context.Context, inv *Invocation) error {
	targets, err := inv.Targets(targeting.RandomEnemyWithoutEffect, effects.NameShatter)
	if err != nil {
		return err
	}

	return inv.Cast(ctx, CastOptions{
		Targets: targets,
		Message: "%player cast %spellName at %targetName, cracking their defenses!",
		Effect:  effects.NameShatter,
	})
}

// VenomBolt deals water damage and leaves venom behind
type VenomBolt struct {
	spellBase
}

// NewVenomBolt creates the VenomBolt spell
func NewVenomBolt() *VenomBolt {
	return &VenomBolt{spellBase{&Definition{
		Name:    NameVenomBolt,
		Element: ElementWater,
		Tiers: []Tier{
			{Name: "venom bolt", SpellPower: 1, Weight: 20, Cost: 15, Level: 5, Professions: []string{professions.NameMage}},
			{Name: "spit", SpellPower: 0.5, Weight: 20, Cost: 20, Level: 10, Professions: []string{professions.NameMagicalMonster}},
		},
		Effects: []string{effects.NameVenom},
	}}}
}

// ShouldCast is always true
func (s *VenomBolt) ShouldCast(inv *Invocation) (bool, error) {
	return inv.Check(targeting.Yes, "")
}

// Potency scales with intelligence
func (s *VenomBolt) Potency(inv *Invocation) int {
	return max(1, int(intStat(inv)/10*inv.Tier.SpellPower))
}

// Duration is three ticks
func (s *VenomBolt) Duration(_ *Invocation) int {
	return 3
}

// Resolve hits one random enemy
func (s *VenomBolt) Resolve(ctx context.Context, inv *Invocation) error {
	targets, err := inv.Targets(targeting.RandomEnemy, "")
	if err != nil {
		return err
	}

	damage, err := roll(inv, intStat(inv)/8, intStat(inv)/3)
	if err != nil {
		return err
	}

	return inv.Cast(ctx, CastOptions{
		Damage:  damage,
		Targets: targets,
		Message: "%player cast %spellName at %targetName for %damage damage!",
		Effect:  effects.NameVenom,
	})
}

// Glitch is a digital attack that blinds
type Glitch struct {
	spellBase
}

// NewGlitch creates the Glitch spell
func NewGlitch() *Glitch {
	return &Glitch{spellBase{&Definition{
		Name:    NameGlitch,
		Element: ElementDigital,
		Tiers: []Tier{
			{Name: "glitch", SpellPower: 1, Weight: 25, Cost: 8, Level: 1, Professions: []string{professions.NameBard}},
			{Name: "system crash", SpellPower: 2, Weight: 25, Cost: 120, Level: 30, Professions: []string{professions.NameBard}},
		},
		Effects: []string{effects.NameBlind},
	}}}
}

// ShouldCast is true while an enemy can still be blinded
func (s *Glitch) ShouldCast(inv *Invocation) (bool, error) {
	return inv.Check(targeting.EnemyWithoutEffect, effects.NameBlind)
}

// Potency scales with intelligence
func (s *Glitch) Potency(inv *Invocation) int {
	return max(1, int(intStat(inv)/8*inv.Tier.SpellPower))
}

// Resolve glitches one enemy that is not blind yet
func (s *Glitch) Resolve(ctx context.Context, inv *Invocation) error {
	targets, err := inv.Targets(targeting.RandomEnemyWithoutEffect, effects.NameBlind)
	if err != nil {
		return err
	}

	damage, err := roll(inv, intStat(inv)/6, intStat(inv)/2)
	if err != nil {
		return err
	}

	return inv.Cast(ctx, CastOptions{
		Damage:  damage,
		Targets: targets,
		Message: "%player cast %spellName at %targetName for %damage damage!",
		Effect:  effects.NameBlind,
	})
}

// Regenerate heals an ally over time
type Regenerate struct {
	spellBase
}

// NewRegenerate creates the Regenerate spell
func NewRegenerate() *Regenerate {
	return &Regenerate{spellBase{&Definition{
		Name:    NameRegenerate,
		Element: ElementBuff,
		Tiers: []Tier{
			{Name: "regenerate", SpellPower: 1, Weight: 20, Cost: 30, Level: 10, Professions: []string{professions.NameCleric}},
			{Name: "soothing song", SpellPower: 0.5, Weight: 15, Cost: 40, Level: 20, Professions: []string{professions.NameBard}},
			{Name: "rejuvenate", SpellPower: 2, Weight: 20, Cost: 300, Level: 45, Professions: []string{professions.NameCleric}},
		},
		Effects: []string{effects.NameRegenerate},
	}}}
}

// ShouldCast is true when a hurt ally has no regeneration yet
func (s *Regenerate) ShouldCast(inv *Invocation) (bool, error) {
	hurt, err := inv.Check(targeting.AllyBelowMaxHealth, "")
	if err != nil || !hurt {
		return false, err
	}
	return inv.Check(targeting.AllyWithoutEffect, effects.NameRegenerate)
}

// Potency scales with intelligence
func (s *Regenerate) Potency(inv *Invocation) int {
	return max(1, int(intStat(inv)/5*inv.Tier.SpellPower))
}

// Duration grows with spell power
func (s *Regenerate) Duration(inv *Invocation) int {
	return 3 + int(inv.Tier.SpellPower)
}

// Resolve buffs one ally
func (s *Regenerate) Resolve(ctx context.Context, inv *Invocation) error {
	targets, err := inv.Targets(targeting.RandomAllyWithoutEffect, effects.NameRegenerate)
	if err != nil {
		return err
	}

	return inv.Cast(ctx, CastOptions{
		Targets: targets,
		Message: "%player cast %spellName on %targetName!",
		Effect:  effects.NameRegenerate,
	})
}

// Revive brings a dead ally back
type Revive struct {
	spellBase
}

// NewRevive creates the Revive spell
func NewRevive() *Revive {
	return &Revive{spellBase{&Definition{
		Name:    NameRevive,
		Element: ElementHoly,
		Tiers: []Tier{
			{Name: "revive", SpellPower: 1, Weight: 50, Cost: 100, Level: 20, Professions: []string{professions.NameCleric}},
			{Name: "resurrect", SpellPower: 3, Weight: 50, Cost: 1000, Level: 75, Professions: []string{professions.NameCleric}},
		},
	}}}
}

// ShouldCast is true while an ally is dead
func (s *Revive) ShouldCast(inv *Invocation) (bool, error) {
	return inv.Check(targeting.AnyAllyDead, "")
}

// Resolve revives one dead ally with a share of their max hp
func (s *Revive) Resolve(ctx context.Context, inv *Invocation) error {
	targets, err := inv.Targets(targeting.RandomDeadAlly, "")
	if err != nil {
		return err
	}

	for _, target := range targets {
		heal := float64(target.HP.Maximum()) * 0.25 * inv.Tier.SpellPower
		err := inv.Cast(ctx, CastOptions{
			Damage:  -max(1, heal),
			Message: "%player cast %spellName on %targetName, who rises with %healed hp!",
			Targets: []*entities.Character{target},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
