package spells

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-combat/internal/battle"
	"github.com/KirkDiggler/rpg-combat/internal/engine"
	"github.com/KirkDiggler/rpg-combat/internal/engine/effects"
	"github.com/KirkDiggler/rpg-combat/internal/engine/targeting"
	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
	"github.com/KirkDiggler/rpg-combat/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-combat/internal/telemetry"
)

// Caster runs spells inside a battle
type Caster struct {
	engine                engine.Engine
	effects               *effects.Registry
	roller                dice.Roller
	idGenerator           idgen.Generator
	requireAffordableCost bool
}

// Config holds the dependencies of a Caster
type Config struct {
	Engine      engine.Engine
	Effects     *effects.Registry
	Roller      dice.Roller
	IDGenerator idgen.Generator

	// RequireAffordableCost makes an unaffordable cast a no-op instead of
	// paying the pool into debt
	RequireAffordableCost bool
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Engine == nil {
		vb.RequiredField("Engine")
	}
	if cfg.Effects == nil {
		vb.RequiredField("Effects")
	}
	if cfg.Roller == nil {
		vb.RequiredField("Roller")
	}
	if cfg.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// NewCaster creates a Caster
func NewCaster(cfg *Config) (*Caster, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Caster{
		engine:                cfg.Engine,
		effects:               cfg.Effects,
		roller:                cfg.Roller,
		idGenerator:           cfg.IDGenerator,
		requireAffordableCost: cfg.RequireAffordableCost,
	}, nil
}

// Prepare binds spell to caster inside b. It returns false when the caster
// has no eligible tier.
func (cs *Caster) Prepare(b *battle.Battle, caster *entities.Character, spell Spell) (*Invocation, bool, error) {
	tier, ok := spell.Definition().BestTier(caster)
	if !ok {
		return nil, false, nil
	}

	selector, err := targeting.NewSelector(&targeting.Config{Roster: b, Roller: cs.roller})
	if err != nil {
		return nil, false, err
	}

	return &Invocation{
		Battle:   b,
		Caster:   caster,
		Spell:    spell,
		Tier:     tier,
		caster:   cs,
		selector: selector,
		result:   &CastResult{Spell: spell.Definition().Name, Tier: tier.Name},
	}, true, nil
}

// CanCast reports whether caster has a tier, can afford it and the spell
// has something useful to do
func (cs *Caster) CanCast(b *battle.Battle, caster *entities.Character, spell Spell) (bool, error) {
	inv, ok, err := cs.Prepare(b, caster, spell)
	if err != nil || !ok {
		return false, err
	}
	if !inv.Affordable() {
		return false, nil
	}
	return spell.ShouldCast(inv)
}

// Invoke casts spell. Missing tiers, targets or resources produce a result
// with Cast false and no error.
func (cs *Caster) Invoke(ctx context.Context, b *battle.Battle, caster *entities.Character, spell Spell) (*CastResult, error) {
	inv, ok, err := cs.Prepare(b, caster, spell)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &CastResult{Spell: spell.Definition().Name}, nil
	}

	if err := spell.Resolve(ctx, inv); err != nil {
		return inv.result, err
	}
	return inv.result, nil
}

// CastResult summarizes one invocation
type CastResult struct {
	Spell string
	Tier  string

	// Cast is true once a cost has been paid
	Cast  bool
	Casts int

	Targets  []string
	Kills    int
	Messages []string
	Effects  []string
}

// CastOptions is one pass of the cast protocol
type CastOptions struct {
	// Damage is the signed magnitude, negative heals
	Damage  float64
	Targets []*entities.Character

	Message string

	// NoTargetMessage is emitted instead of Message when Targets is empty
	NoTargetMessage string
	MessageData     battle.MessageData

	// Effect names a status effect to attach to every target
	Effect string

	// EffectPotency and EffectDuration override the spell formulas when > 0
	EffectPotency  int
	EffectDuration int
	EffectExtra    map[string]any

	// EffectSource is recorded as the origin spell, defaults to the tier name
	EffectSource string
}

// Invocation is a spell bound to a caster, a tier and a battle
type Invocation struct {
	Battle *battle.Battle
	Caster *entities.Character
	Spell  Spell
	Tier   *Tier

	caster   *Caster
	selector *targeting.Selector
	result   *CastResult
}

// Engine returns the stat engine
func (inv *Invocation) Engine() engine.Engine {
	return inv.caster.engine
}

// Stat resolves a stat of the caster
func (inv *Invocation) Stat(stat string) int {
	return inv.caster.engine.Stat(inv.Caster, stat)
}

// Check evaluates a target predicate for the caster
func (inv *Invocation) Check(p targeting.Predicate, param string) (bool, error) {
	return inv.selector.Check(inv.Caster, p, param)
}

// Targets resolves a target set for the caster
func (inv *Invocation) Targets(n targeting.Name, param string) ([]*entities.Character, error) {
	return inv.selector.Select(inv.Caster, n, param)
}

// Roll rolls a die of size
func (inv *Invocation) Roll(size int) (int, error) {
	return inv.caster.roller.Roll(size)
}

// MinMax rolls uniformly in [min, max(min+1, max)] and never returns less
// than 1
func (inv *Invocation) MinMax(minValue, maxValue float64) (int, error) {
	lo := int(minValue)
	hi := max(lo+1, int(maxValue))

	roll, err := inv.caster.roller.Roll(hi - lo + 1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll magnitude")
	}
	return max(1, lo+roll-1), nil
}

// Affordable reports whether the tier cost can be paid
func (inv *Invocation) Affordable() bool {
	if !inv.caster.requireAffordableCost {
		return true
	}

	def := inv.Spell.Definition()
	if def.CostOperation() == OperationAdd || inv.Tier.Cost == 0 {
		return true
	}

	pool := inv.Caster.Resource(def.PoolKind())
	return pool != nil && pool.Current() >= inv.Tier.Cost
}

// Result returns the accumulated result
func (inv *Invocation) Result() *CastResult {
	return inv.result
}

// Cast runs the protocol: pay, record, then apply to each target in order.
// Nothing is refunded once the cost is paid.
func (inv *Invocation) Cast(ctx context.Context, opts CastOptions) error {
	if inv.Tier == nil {
		return nil
	}

	if !inv.Affordable() {
		slog.Debug("Spell skipped, cost not affordable",
			"battle_id", inv.Battle.ID,
			"caster_id", inv.Caster.ID,
			"spell", inv.Tier.Name,
			"cost", inv.Tier.Cost,
		)
		return nil
	}

	def := inv.Spell.Definition()
	inv.payCost(def)
	inv.result.Cast = true
	inv.result.Casts++

	damage := roundHalfUp(opts.Damage)
	inv.Battle.TryIncrement(ctx, inv.Caster, telemetry.Path(telemetry.PathUtilize, string(def.Element)), 1)
	inv.Battle.TryIncrement(ctx, inv.Caster, telemetry.PathGiveDamage, float64(damage))

	data := opts.MessageData.Clone()
	data[battle.FieldSpellName] = inv.Tier.Name

	if len(opts.Targets) == 0 {
		message := opts.NoTargetMessage
		if message == "" {
			message = opts.Message
		}
		if message != "" {
			inv.result.Messages = append(inv.result.Messages, inv.Battle.EmitMessage(message, inv.Caster, data))
		}
		return nil
	}

	for _, target := range opts.Targets {
		inv.Battle.TryIncrement(ctx, target, telemetry.PathReceiveDamage, float64(damage))
		inv.Battle.EmitEvents(ctx, inv.Caster, target)
		inv.result.Targets = append(inv.result.Targets, target.ID)

		if damage != 0 {
			wasAlive := target.IsAlive()
			damage = inv.Battle.DealDamage(target, damage)

			if wasAlive && target.HP.Current() == 0 {
				inv.recordKill(ctx, target)
			}
		}

		data[battle.FieldTargetName] = target.FullName()
		data[battle.FieldDamage] = damage
		data[battle.FieldHealed] = abs(damage)

		if opts.Message != "" {
			inv.result.Messages = append(inv.result.Messages, inv.Battle.EmitMessage(opts.Message, inv.Caster, data))
		}

		if opts.Effect != "" {
			if err := inv.applyEffect(ctx, target, opts); err != nil {
				return err
			}
		}
	}

	return nil
}

// ApplyCombatEffects casts each named effect on target with no damage and
// no message. Potency is the caster's stat of the same name rather than the
// spell's potency formula, so attack stats such as venom scale the effect.
func (inv *Invocation) ApplyCombatEffects(ctx context.Context, names []string, target *entities.Character) error {
	for _, name := range names {
		err := inv.Cast(ctx, CastOptions{
			Targets:       []*entities.Character{target},
			Effect:        name,
			EffectSource:  name,
			EffectPotency: inv.Stat(name),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (inv *Invocation) payCost(def *Definition) {
	pool := inv.Caster.Resource(def.PoolKind())
	if pool == nil {
		return
	}

	switch def.CostOperation() {
	case OperationAdd:
		pool.Add(inv.Tier.Cost)
	default:
		pool.Sub(inv.Tier.Cost)
	}
}

func (inv *Invocation) recordKill(ctx context.Context, target *entities.Character) {
	inv.result.Kills++

	inv.Battle.TryIncrement(ctx, inv.Caster,
		telemetry.Path(telemetry.PathKills, telemetry.ControllerOf(target.IsPlayer)), 1)
	inv.Battle.TryIncrement(ctx, target,
		telemetry.Path(telemetry.PathDeaths, telemetry.ControllerOf(inv.Caster.IsPlayer)), 1)
	inv.Battle.EmitKill(ctx, inv.Caster, target)
}

func (inv *Invocation) applyEffect(ctx context.Context, target *entities.Character, opts CastOptions) error {
	potency := opts.EffectPotency
	if potency <= 0 {
		if f, ok := inv.Spell.(PotencyFormula); ok {
			potency = f.Potency(inv)
		}
	}

	var fallback int
	if opts.EffectDuration <= 0 {
		if f, ok := inv.Spell.(DurationFormula); ok {
			fallback = f.Duration(inv)
		}
	}

	source := opts.EffectSource
	if source == "" {
		source = inv.Tier.Name
	}

	effect, err := inv.caster.effects.Build(&effects.BuildInput{
		Name:     opts.Effect,
		ID:       inv.caster.idGenerator.Generate(),
		Potency:  potency,
		Duration: opts.EffectDuration,
		Fallback: fallback,
		Origin: entities.EffectOrigin{
			CasterID: inv.Caster.ID,
			Name:     inv.Caster.FullName(),
			Spell:    source,
			Ref:      inv.Caster,
		},
		Extra: opts.EffectExtra,
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to build effect").
			WithMeta("spell", inv.Spell.Definition().Name).
			WithMeta("effect", opts.Effect)
	}

	if target.Effects == nil {
		target.Effects = entities.NewEffects()
	}
	target.Effects.Add(effect)
	effect.Hooks.Affect(target, effect)
	inv.result.Effects = append(inv.result.Effects, effect.Name)

	element := string(inv.Spell.Definition().Element)
	inv.Battle.TryIncrement(ctx, inv.Caster, telemetry.Path(telemetry.PathGiveEffect, element), 1)
	inv.Battle.TryIncrement(ctx, target, telemetry.Path(telemetry.PathReceiveEffect, element), 1)

	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// roundHalfUp rounds halves toward positive infinity, so -7.5 becomes -7.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
