// Package combat is the turn-processing boundary. It owns battle lifecycles,
// holds each battle's lock for the length of a cast, turn or round, and logs
// internal errors before returning them.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/rpg-combat/internal/orchestrators/combat Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-combat/internal/battle"
	"github.com/KirkDiggler/rpg-combat/internal/engine"
	"github.com/KirkDiggler/rpg-combat/internal/engine/achievements"
	"github.com/KirkDiggler/rpg-combat/internal/engine/spells"
	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
	"github.com/KirkDiggler/rpg-combat/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-combat/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-combat/internal/repositories/battles"
	"github.com/KirkDiggler/rpg-combat/internal/telemetry"
)

// Service defines the interface for combat operations
type Service interface {
	// StartBattle creates a battle from a roster
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)

	// GetBattle returns a snapshot of a battle
	GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error)

	// Cast casts a named spell for one combatant
	Cast(ctx context.Context, input *CastInput) (*CastOutput, error)

	// TakeTurn lets one combatant pick and cast a spell
	TakeTurn(ctx context.Context, input *TakeTurnInput) (*TakeTurnOutput, error)

	// RunRound runs one turn for every combatant
	RunRound(ctx context.Context, input *RunRoundInput) (*RunRoundOutput, error)

	// EndBattle drops a battle
	EndBattle(ctx context.Context, input *EndBattleInput) (*EndBattleOutput, error)

	// CheckAchievements stores newly earned achievements on a combatant
	CheckAchievements(ctx context.Context, input *CheckAchievementsInput) (*CheckAchievementsOutput, error)

	// CalculateStats returns a combatant's stat sheet
	CalculateStats(ctx context.Context, input *CalculateStatsInput) (*CalculateStatsOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	Engine       engine.Engine
	Caster       *spells.Caster
	Book         *spells.Book
	Achievements *achievements.Registry
	Telemetry    *telemetry.Sink
	Repository   battles.Repository
	EventBus     events.EventBus
	Roller       dice.Roller
	IDGenerator  idgen.Generator
	Clock        clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Caster == nil {
		vb.RequiredField("Caster")
	}
	if c.Book == nil {
		vb.RequiredField("Book")
	}
	if c.Achievements == nil {
		vb.RequiredField("Achievements")
	}
	if c.Telemetry == nil {
		vb.RequiredField("Telemetry")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	engine       engine.Engine
	caster       *spells.Caster
	book         *spells.Book
	achievements *achievements.Registry
	telemetry    *telemetry.Sink
	repo         battles.Repository
	eventBus     events.EventBus
	roller       dice.Roller
	idGen        idgen.Generator
	clock        clock.Clock
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		engine:       cfg.Engine,
		caster:       cfg.Caster,
		book:         cfg.Book,
		achievements: cfg.Achievements,
		telemetry:    cfg.Telemetry,
		repo:         cfg.Repository,
		eventBus:     cfg.EventBus,
		roller:       cfg.Roller,
		idGen:        cfg.IDGenerator,
		clock:        c,
	}, nil
}

// StartBattle creates a battle from a roster
func (o *orchestrator) StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	for _, c := range input.Combatants {
		if c == nil {
			return nil, errors.InvalidArgument("combatant is required")
		}
		if c.Level < 1 {
			return nil, errors.InvalidArgumentf("combatant %s has level %d", c.ID, c.Level)
		}
		o.engine.Recalculate(c)
		if input.Restore {
			c.HP.ToMaximum()
			c.MP.ToMaximum()
		}
	}

	b, err := battle.New(&battle.Config{
		ID:         o.idGen.Generate(),
		Combatants: input.Combatants,
		Engine:     o.engine,
		Telemetry:  o.telemetry,
		EventBus:   o.eventBus,
		Clock:      o.clock,
	})
	if err != nil {
		return nil, err
	}

	if _, err := o.repo.Save(ctx, &battles.SaveInput{Battle: b}); err != nil {
		return nil, errors.Wrap(err, "failed to save battle")
	}

	slog.Info("Battle started",
		"battle_id", b.ID,
		"combatant_count", len(input.Combatants),
		"parties", b.Parties(),
	)

	return &StartBattleOutput{BattleID: b.ID, Parties: b.Parties()}, nil
}

// GetBattle returns a snapshot of a battle
func (o *orchestrator) GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	b, err := o.load(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}

	b.Lock()
	defer b.Unlock()

	out := &GetBattleOutput{
		BattleID: b.ID,
		Round:    b.Round(),
		Messages: append([]battle.LogEntry(nil), b.Messages()...),
		Over:     b.IsOver(),
		Winner:   b.Winner(),
	}
	for _, c := range b.Combatants() {
		out.Combatants = append(out.Combatants, summarize(c))
	}

	return out, nil
}

// Cast casts a named spell for one combatant
func (o *orchestrator) Cast(ctx context.Context, input *CastInput) (*CastOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Spell == "" {
		return nil, errors.InvalidArgument("spell is required")
	}

	spell, err := o.book.Get(input.Spell)
	if err != nil {
		return nil, err
	}

	b, err := o.load(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}

	b.Lock()
	defer b.Unlock()

	caster, err := b.Combatant(input.CasterID)
	if err != nil {
		return nil, err
	}
	if !caster.IsAlive() {
		return nil, errors.FailedPreconditionf("combatant %s is dead", caster.ID)
	}

	result, err := o.invoke(ctx, b, caster, spell)
	if err != nil {
		return nil, err
	}

	return &CastOutput{Result: result}, nil
}

// TakeTurn lets one combatant pick and cast a spell
func (o *orchestrator) TakeTurn(ctx context.Context, input *TakeTurnInput) (*TakeTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	b, err := o.load(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}

	b.Lock()
	defer b.Unlock()

	c, err := b.Combatant(input.CombatantID)
	if err != nil {
		return nil, err
	}

	turn, err := o.takeTurn(ctx, b, c)
	if err != nil {
		return nil, err
	}

	return &TakeTurnOutput{Turn: turn}, nil
}

// RunRound runs one turn for every combatant. Each living combatant
// regenerates, acts, then ticks its effects.
func (o *orchestrator) RunRound(ctx context.Context, input *RunRoundInput) (*RunRoundOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	b, err := o.load(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}

	b.Lock()
	defer b.Unlock()

	if b.IsOver() {
		return nil, errors.FailedPreconditionf("battle %s is over", b.ID).WithMeta("winner", b.Winner())
	}

	round := b.Round()
	out := &RunRoundOutput{Round: round}

	for _, c := range b.Combatants() {
		if b.IsOver() {
			break
		}
		if !c.IsAlive() {
			continue
		}

		o.regenerate(c)

		turn, err := o.takeTurn(ctx, b, c)
		if err != nil {
			return nil, err
		}
		out.Turns = append(out.Turns, turn)

		o.tickEffects(b, c)
	}

	b.NextRound()
	out.Over = b.IsOver()
	out.Winner = b.Winner()

	slog.Debug("Round finished",
		"battle_id", b.ID,
		"round", round,
		"turns", len(out.Turns),
		"over", out.Over,
	)
	if out.Over {
		slog.Info("Battle over",
			"battle_id", b.ID,
			"round", round,
			"winner", out.Winner,
		)
	}

	return out, nil
}

// EndBattle drops a battle
func (o *orchestrator) EndBattle(ctx context.Context, input *EndBattleInput) (*EndBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	b, err := o.load(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}

	b.Lock()
	winner := b.Winner()
	b.Unlock()

	if _, err := o.repo.Delete(ctx, &battles.DeleteInput{BattleID: b.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete battle")
	}

	slog.Info("Battle ended", "battle_id", b.ID, "winner", winner)

	return &EndBattleOutput{Winner: winner}, nil
}

// CheckAchievements stores newly earned achievements on a combatant
func (o *orchestrator) CheckAchievements(ctx context.Context, input *CheckAchievementsInput) (*CheckAchievementsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	b, err := o.load(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}

	b.Lock()
	defer b.Unlock()

	c, err := b.Combatant(input.CharacterID)
	if err != nil {
		return nil, err
	}

	unlocked, err := o.achievements.Check(ctx, c, b.Counters(c))
	if err != nil {
		slog.Error("Failed to check achievements",
			"battle_id", b.ID,
			"character_id", c.ID,
			"error", err,
		)
		return nil, err
	}

	for _, record := range unlocked {
		c.SetAchievement(record)
		slog.Info("Achievement unlocked",
			"battle_id", b.ID,
			"character_id", c.ID,
			"achievement", record.Name,
			"tier", record.Tier,
		)
	}
	if len(unlocked) > 0 {
		o.engine.Recalculate(c)
	}

	return &CheckAchievementsOutput{Unlocked: unlocked}, nil
}

// CalculateStats returns a combatant's stat sheet
func (o *orchestrator) CalculateStats(ctx context.Context, input *CalculateStatsInput) (*CalculateStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	b, err := o.load(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}

	b.Lock()
	defer b.Unlock()

	c, err := b.Combatant(input.CharacterID)
	if err != nil {
		return nil, err
	}

	sheet, err := o.engine.CalculateCharacterStats(ctx, &engine.CalculateCharacterStatsInput{Character: c})
	if err != nil {
		return nil, err
	}

	return &CalculateStatsOutput{Sheet: sheet}, nil
}

func (o *orchestrator) load(ctx context.Context, battleID string) (*battle.Battle, error) {
	if battleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	out, err := o.repo.Get(ctx, &battles.GetInput{BattleID: battleID})
	if err != nil {
		return nil, err
	}
	return out.Battle, nil
}

// takeTurn runs with the battle lock held
func (o *orchestrator) takeTurn(ctx context.Context, b *battle.Battle, c *entities.Character) (TurnSummary, error) {
	turn := TurnSummary{CombatantID: c.ID}

	if !c.IsAlive() {
		turn.Skipped = true
		return turn, nil
	}

	if message, stunned := o.engine.IsStunned(c); stunned {
		turn.Stunned = true
		turn.StunMessage = message
		b.Log(fmt.Sprintf("%s %s.", c.FullName(), message))
		return turn, nil
	}

	spell, err := o.chooseSpell(b, c)
	if err != nil {
		slog.Error("Failed to choose spell",
			"battle_id", b.ID,
			"combatant_id", c.ID,
			"error", err,
		)
		return turn, err
	}
	if spell == nil {
		turn.Skipped = true
		return turn, nil
	}

	result, err := o.invoke(ctx, b, c, spell)
	if err != nil {
		return turn, err
	}

	turn.Spell = spell.Definition().Name
	turn.Result = result
	return turn, nil
}

// chooseSpell picks among castable spells weighted by their active tier
func (o *orchestrator) chooseSpell(b *battle.Battle, c *entities.Character) (spells.Spell, error) {
	var (
		candidates []spells.Spell
		weights    []int
		total      int
	)
	for _, spell := range o.book.List() {
		ok, err := o.caster.CanCast(b, c, spell)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		tier, _ := spell.Definition().BestTier(c)
		candidates = append(candidates, spell)
		weights = append(weights, tier.Weight)
		total += tier.Weight
	}

	switch {
	case len(candidates) == 0:
		return nil, nil
	case len(candidates) == 1 || total == 0:
		return candidates[0], nil
	}

	roll, err := o.roller.Roll(total)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll spell choice")
	}
	for i, w := range weights {
		if roll <= w {
			return candidates[i], nil
		}
		roll -= w
	}
	return candidates[len(candidates)-1], nil
}

func (o *orchestrator) invoke(ctx context.Context, b *battle.Battle, c *entities.Character, spell spells.Spell) (*spells.CastResult, error) {
	result, err := o.caster.Invoke(ctx, b, c, spell)
	if err != nil {
		code := errors.GetCode(err)
		logFn := slog.Error
		if code.IsCallerFault() {
			logFn = slog.Warn
		}
		logFn("Spell failed",
			"battle_id", b.ID,
			"caster_id", c.ID,
			"spell", spell.Definition().Name,
			"code", code,
			"error", err,
		)
		return nil, errors.Wrapf(err, "failed to cast %s", spell.Definition().Name)
	}

	if result.Cast {
		slog.Debug("Spell cast",
			"battle_id", b.ID,
			"caster_id", c.ID,
			"spell", result.Spell,
			"tier", result.Tier,
			"targets", result.Targets,
			"kills", result.Kills,
		)
	}
	return result, nil
}

func (o *orchestrator) regenerate(c *entities.Character) {
	if hp := o.engine.Stat(c, entities.StatHPRegen); hp > 0 {
		c.HP.Add(hp)
	}
	if mp := o.engine.Stat(c, entities.StatMPRegen); mp > 0 {
		c.MP.Add(mp)
	}
}

func (o *orchestrator) tickEffects(b *battle.Battle, c *entities.Character) {
	for _, expired := range c.Effects.Tick(c) {
		slog.Debug("Effect expired",
			"battle_id", b.ID,
			"combatant_id", c.ID,
			"effect", expired.Name,
		)
	}
}

func summarize(c *entities.Character) CombatantSummary {
	s := CombatantSummary{
		ID:         c.ID,
		Name:       c.FullName(),
		Party:      c.Party,
		Profession: c.ProfessionName(),
		Level:      c.Level,
		HP:         c.HP.Current(),
		MaxHP:      c.HP.Maximum(),
		MP:         c.MP.Current(),
		MaxMP:      c.MP.Maximum(),
	}
	for _, e := range c.Effects.List() {
		s.Effects = append(s.Effects, e.Name)
	}
	return s
}
