package entities

// EffectHooks is the behavior of a status effect. Implementations live in
// engine/effects.
type EffectHooks interface {
	// Affect runs once when the effect is attached to target
	Affect(target *Character, e *StatusEffect)

	// Tick runs once per tick before the duration is decremented
	Tick(target *Character, e *StatusEffect)

	// Unaffect runs when the effect expires or is cleared
	Unaffect(target *Character, e *StatusEffect)
}

// EffectOrigin attributes an effect to the caster and spell that created it.
// It is not an ownership edge.
type EffectOrigin struct {
	CasterID string
	Name     string
	Spell    string
	Ref      *Character
}

// StatusEffect is a timed modifier owned by exactly one character
type StatusEffect struct {
	ID       string
	Name     string
	Potency  int
	Duration int
	Origin   EffectOrigin

	// Stats holds per-stat deltas summed into the base pass
	Stats map[string]float64

	Stun        bool
	StunMessage string

	Extra map[string]any
	Hooks EffectHooks
}

// Stat returns the effect's delta for stat
func (e *StatusEffect) Stat(stat string) float64 {
	return e.Stats[stat]
}

// Effects is a character's active status effects, in application order
type Effects struct {
	effects []*StatusEffect
}

// NewEffects creates an empty collection
func NewEffects() *Effects {
	return &Effects{}
}

// Add attaches an effect. The caller runs the on-apply hook.
func (es *Effects) Add(e *StatusEffect) {
	es.effects = append(es.effects, e)
}

// List returns the active effects
func (es *Effects) List() []*StatusEffect {
	if es == nil {
		return nil
	}
	return es.effects
}

// Len returns the number of active effects
func (es *Effects) Len() int {
	if es == nil {
		return 0
	}
	return len(es.effects)
}

// HasEffect reports whether an effect with the given name is active
func (es *Effects) HasEffect(name string) bool {
	if es == nil {
		return false
	}
	for _, e := range es.effects {
		if e.Name == name {
			return true
		}
	}
	return false
}

// Stat sums every active effect's delta for stat
func (es *Effects) Stat(stat string) float64 {
	if es == nil {
		return 0
	}
	var total float64
	for _, e := range es.effects {
		total += e.Stat(stat)
	}
	return total
}

// Stunned returns the message of the first stunning effect
func (es *Effects) Stunned() (string, bool) {
	if es == nil {
		return "", false
	}
	for _, e := range es.effects {
		if e.Stun {
			return e.StunMessage, true
		}
	}
	return "", false
}

// Remove clears every effect with the given name from target
func (es *Effects) Remove(target *Character, name string) int {
	if es == nil {
		return 0
	}
	removed := 0
	kept := es.effects[:0]
	for _, e := range es.effects {
		if e.Name == name {
			unaffect(target, e)
			removed++
			continue
		}
		kept = append(kept, e)
	}
	es.effects = kept
	return removed
}

// Clear removes every effect from target
func (es *Effects) Clear(target *Character) {
	if es == nil {
		return
	}
	for _, e := range es.effects {
		unaffect(target, e)
	}
	es.effects = nil
}

// Tick advances every effect by one tick. Effects whose duration reaches zero
// are removed and returned.
func (es *Effects) Tick(target *Character) []*StatusEffect {
	if es == nil {
		return nil
	}

	var expired []*StatusEffect
	kept := make([]*StatusEffect, 0, len(es.effects))
	for _, e := range es.effects {
		if e.Hooks != nil {
			e.Hooks.Tick(target, e)
		}
		e.Duration--
		if e.Duration <= 0 {
			unaffect(target, e)
			expired = append(expired, e)
			continue
		}
		kept = append(kept, e)
	}
	es.effects = kept

	return expired
}

func unaffect(target *Character, e *StatusEffect) {
	if e.Hooks != nil {
		e.Hooks.Unaffect(target, e)
	}
}
