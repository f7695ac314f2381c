package effects

import (
	"github.com/KirkDiggler/rpg-combat/internal/entities"
)

// Effect names
const (
	NameProne      = "prone"
	NameStun       = "stun"
	NamePoison     = "poison"
	NameVenom      = "venom"
	NameShatter    = "shatter"
	NameVampire    = "vampire"
	NameRegenerate = "regenerate"
	NameBlind      = "blind"
)

// NoHooks does nothing on apply, tick or expire
type NoHooks struct{}

// Affect does nothing
func (NoHooks) Affect(_ *entities.Character, _ *entities.StatusEffect) {}

// Tick does nothing
func (NoHooks) Tick(_ *entities.Character, _ *entities.StatusEffect) {}

// Unaffect does nothing
func (NoHooks) Unaffect(_ *entities.Character, _ *entities.StatusEffect) {}

// damageOverTime takes potency hp every tick
type damageOverTime struct {
	NoHooks
}

func (damageOverTime) Tick(target *entities.Character, e *entities.StatusEffect) {
	target.HP.Sub(e.Potency)
}

// healOverTime restores potency hp every tick
type healOverTime struct {
	NoHooks
}

func (healOverTime) Tick(target *entities.Character, e *entities.StatusEffect) {
	if !target.IsAlive() {
		return
	}
	target.HP.Add(e.Potency)
}

// drain moves potency hp from the target to the caster every tick
type drain struct {
	NoHooks
}

func (drain) Tick(target *entities.Character, e *entities.StatusEffect) {
	before := target.HP.Current()
	target.HP.Sub(e.Potency)
	taken := before - target.HP.Current()

	if caster := e.Origin.Ref; caster != nil && caster.IsAlive() {
		caster.HP.Add(taken)
	}
}

// Default returns a registry holding the full catalog
func Default() *Registry {
	r := NewRegistry()
	for _, d := range Catalog() {
		// catalog names are unique
		_ = r.Register(d)
	}
	return r
}

// Catalog lists every built-in effect
func Catalog() []Descriptor {
	return []Descriptor{
		{
			Name:    NameProne,
			Instant: true,
			New: func(_ int) *entities.StatusEffect {
				return &entities.StatusEffect{Stun: true, StunMessage: "is knocked prone"}
			},
		},
		{
			Name:            NameStun,
			DefaultDuration: 2,
			New: func(_ int) *entities.StatusEffect {
				return &entities.StatusEffect{Stun: true, StunMessage: "is stunned"}
			},
		},
		{
			Name:            NamePoison,
			DefaultDuration: 3,
			New: func(_ int) *entities.StatusEffect {
				return &entities.StatusEffect{Hooks: damageOverTime{}}
			},
		},
		{
			Name:            NameVenom,
			DefaultDuration: 3,
			New: func(potency int) *entities.StatusEffect {
				return &entities.StatusEffect{
					Stats: map[string]float64{entities.StatCon: -float64(potency)},
					Hooks: damageOverTime{},
				}
			},
		},
		{
			Name:            NameShatter,
			DefaultDuration: 3,
			New: func(potency int) *entities.StatusEffect {
				return &entities.StatusEffect{
					Stats: map[string]float64{
						entities.StatCon:             -float64(potency),
						entities.StatDex:             -float64(potency),
						entities.StatDamageReduction: -float64(potency),
					},
				}
			},
		},
		{
			Name:            NameVampire,
			DefaultDuration: 3,
			New: func(_ int) *entities.StatusEffect {
				return &entities.StatusEffect{Hooks: drain{}}
			},
		},
		{
			Name:            NameRegenerate,
			DefaultDuration: 5,
			New: func(_ int) *entities.StatusEffect {
				return &entities.StatusEffect{Hooks: healOverTime{}}
			},
		},
		{
			Name:            NameBlind,
			DefaultDuration: 2,
			New: func(potency int) *entities.StatusEffect {
				return &entities.StatusEffect{
					Stats: map[string]float64{
						entities.StatDex: -float64(potency),
						entities.StatAgi: -float64(potency),
					},
				}
			},
		},
	}
}
