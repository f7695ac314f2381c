// Package battle is the explicit context a cast runs in: the roster, party
// affiliation, damage application, counters, events and the message log.
package battle

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-combat/internal/engine"
	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
	"github.com/KirkDiggler/rpg-combat/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-combat/internal/telemetry"
)

// Combat log event types published on the event bus
const (
	EventAttack   = "combat.attack"
	EventAttacked = "combat.attacked"
	EventKill     = "combat.kill"
	EventKilled   = "combat.killed"
)

// LogEntry is one formatted message
type LogEntry struct {
	Time    time.Time
	Round   int
	Message string
}

// Battle holds one fight. Callers hold Lock for the whole of a cast, turn or
// round; Battle methods do not lock on their own.
type Battle struct {
	ID string

	mu         sync.Mutex
	combatants []*entities.Character
	index      map[string]*entities.Character

	engine    engine.Engine
	telemetry *telemetry.Sink
	eventBus  events.EventBus
	clock     clock.Clock

	round    int
	messages []LogEntry
}

// Config holds the dependencies of a battle
type Config struct {
	ID         string
	Combatants []*entities.Character
	Engine     engine.Engine
	Telemetry  *telemetry.Sink
	EventBus   events.EventBus
	Clock      clock.Clock
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("ID", cfg.ID, vb)
	if len(cfg.Combatants) == 0 {
		vb.RequiredField("Combatants")
	}
	if cfg.Engine == nil {
		vb.RequiredField("Engine")
	}
	if cfg.Telemetry == nil {
		vb.RequiredField("Telemetry")
	}
	if cfg.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	seen := make(map[string]bool, len(cfg.Combatants))
	for i, c := range cfg.Combatants {
		switch {
		case c == nil:
			vb.Fieldf("Combatants", "entry %d is nil", i)
		case c.ID == "":
			vb.Fieldf("Combatants", "entry %d has no ID", i)
		case seen[c.ID]:
			vb.Fieldf("Combatants", "duplicate ID %s", c.ID)
		default:
			seen[c.ID] = true
		}
	}

	return vb.Build()
}

// New creates a battle
func New(cfg *Config) (*Battle, error) {
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

	b := &Battle{
		ID:         cfg.ID,
		combatants: cfg.Combatants,
		index:      make(map[string]*entities.Character, len(cfg.Combatants)),
		engine:     cfg.Engine,
		telemetry:  cfg.Telemetry,
		eventBus:   cfg.EventBus,
		clock:      c,
		round:      1,
	}
	for _, combatant := range cfg.Combatants {
		b.index[combatant.ID] = combatant
	}

	return b, nil
}

// Lock takes exclusive access to the battle state
func (b *Battle) Lock() {
	b.mu.Lock()
}

// Unlock releases Lock
func (b *Battle) Unlock() {
	b.mu.Unlock()
}

// Combatants returns the roster in turn order
func (b *Battle) Combatants() []*entities.Character {
	return b.combatants
}

// Combatant returns the combatant with id
func (b *Battle) Combatant(id string) (*entities.Character, error) {
	c, ok := b.index[id]
	if !ok {
		return nil, errors.NotFoundf("combatant %s not in battle", id).WithMeta("battle_id", b.ID)
	}
	return c, nil
}

// Parties returns every party in roster order
func (b *Battle) Parties() []string {
	return b.parties(func(*entities.Character) bool { return true })
}

// LivingParties returns the parties that still have a living member
func (b *Battle) LivingParties() []string {
	return b.parties((*entities.Character).IsAlive)
}

func (b *Battle) parties(include func(*entities.Character) bool) []string {
	var out []string
	seen := make(map[string]bool)
	for _, c := range b.combatants {
		if !include(c) || seen[c.Party] {
			continue
		}
		seen[c.Party] = true
		out = append(out, c.Party)
	}
	return out
}

// IsOver reports whether at most one party is left standing
func (b *Battle) IsOver() bool {
	return len(b.LivingParties()) <= 1
}

// Winner returns the last party standing, empty while the battle runs or
// when everyone is dead
func (b *Battle) Winner() string {
	living := b.LivingParties()
	if len(living) != 1 {
		return ""
	}
	return living[0]
}

// Round returns the current round number, starting at 1
func (b *Battle) Round() int {
	return b.round
}

// NextRound advances the round counter
func (b *Battle) NextRound() int {
	b.round++
	return b.round
}

// Engine returns the stat engine the battle resolves with
func (b *Battle) Engine() engine.Engine {
	return b.engine
}

// Counters returns the counter view of a combatant
func (b *Battle) Counters(c *entities.Character) telemetry.Counters {
	return b.telemetry.Counters(c.ID)
}

// TryIncrement adds amount to a counter. Failures are logged and dropped.
func (b *Battle) TryIncrement(ctx context.Context, c *entities.Character, path string, amount float64) {
	if err := b.Counters(c).IncrementCounter(ctx, path, amount); err != nil {
		slog.Warn("Failed to record counter",
			"battle_id", b.ID,
			"character_id", c.ID,
			"path", path,
			"error", err,
		)
	}
}

// TryBatchIncrement adds 1 to each path. Failures are logged and dropped.
func (b *Battle) TryBatchIncrement(ctx context.Context, c *entities.Character, paths []string) {
	if err := b.Counters(c).BatchIncrement(ctx, paths); err != nil {
		slog.Warn("Failed to record counters",
			"battle_id", b.ID,
			"character_id", c.ID,
			"paths", paths,
			"error", err,
		)
	}
}

// EmitEvents publishes the attack pair for caster hitting target
func (b *Battle) EmitEvents(ctx context.Context, caster, target *entities.Character) {
	b.publish(ctx, events.NewGameEvent(EventAttack, caster, target))
	b.publish(ctx, events.NewGameEvent(EventAttacked, target, caster))
}

// EmitKill publishes the kill pair
func (b *Battle) EmitKill(ctx context.Context, killer, victim *entities.Character) {
	b.publish(ctx, events.NewGameEvent(EventKill, killer, victim))
	b.publish(ctx, events.NewGameEvent(EventKilled, victim, killer))
}

func (b *Battle) publish(ctx context.Context, event events.Event) {
	if err := b.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish combat event",
			"battle_id", b.ID,
			"event_type", event.Type(),
			"error", err,
		)
	}
}

// DealDamage applies a magnitude to target hp. Positive damage is reduced by
// the target's damageReduction, never below 0; negative magnitudes heal.
// Returns the magnitude actually applied.
func (b *Battle) DealDamage(target *entities.Character, damage int) int {
	if damage > 0 {
		reduction := b.engine.Stat(target, entities.StatDamageReduction)
		if reduction > 0 {
			damage = max(0, damage-reduction)
		}
		target.HP.Sub(damage)
		return damage
	}

	target.HP.Add(-damage)
	return damage
}

// EmitMessage formats template for caster and appends it to the log
func (b *Battle) EmitMessage(template string, caster *entities.Character, data MessageData) string {
	message := FormatMessage(template, caster, data)
	b.messages = append(b.messages, LogEntry{
		Time:    b.clock.Now(),
		Round:   b.round,
		Message: message,
	})
	return message
}

// Log appends an already formatted line
func (b *Battle) Log(message string) {
	b.messages = append(b.messages, LogEntry{
		Time:    b.clock.Now(),
		Round:   b.round,
		Message: message,
	})
}

// Messages returns the log
func (b *Battle) Messages() []LogEntry {
	return b.messages
}
