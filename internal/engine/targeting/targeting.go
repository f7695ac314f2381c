// Package targeting answers which combatants a spell may target. Predicates
// answer whether at least one eligible target exists; names return the
// target set itself.
package targeting

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
)

// Roster exposes the combatants of one battle
type Roster interface {
	Combatants() []*entities.Character
}

// Predicate names a boolean eligibility check
type Predicate string

// Predicates
const (
	Yes                      Predicate = "yes"
	EnemyHasMP               Predicate = "enemyHasMp"
	MoreThanOneEnemy         Predicate = "moreThanOneEnemy"
	EnemyNotProfession       Predicate = "enemyNotProfession"
	AnyEnemyDead             Predicate = "anyEnemyDead"
	AllyWithoutEffect        Predicate = "allyWithoutEffect"
	AllyBelowMaxHealth       Predicate = "allyBelowMaxHealth"
	AnyAllyDead              Predicate = "anyAllyDead"
	AllyBelow50PercentHealth Predicate = "allyBelow50PercentHealth"
	EnemyWithoutEffect       Predicate = "enemyWithoutEffect"
)

// Name names a target set
type Name string

// Target set names
const (
	Self                           Name = "self"
	AllAllies                      Name = "allAllies"
	AllEnemies                     Name = "allEnemies"
	RandomAlly                     Name = "randomAlly"
	RandomEnemy                    Name = "randomEnemy"
	RandomAllyBelowMaxHealth       Name = "randomAllyBelowMaxHealth"
	AllAlliesBelowMaxHealth        Name = "allAlliesBelowMaxHealth"
	RandomAllyBelow50PercentHealth Name = "randomAllyBelow50PercentHealth"
	RandomEnemyWithMP              Name = "randomEnemyWithMp"
	RandomDeadAlly                 Name = "randomDeadAlly"
	RandomEnemyNotProfession       Name = "randomEnemyNotProfession"
	RandomAllyWithoutEffect        Name = "randomAllyWithoutEffect"
	RandomEnemyWithoutEffect       Name = "randomEnemyWithoutEffect"
)

// filter is one eligibility rule over the roster
type filter func(caster, candidate *entities.Character, param string) bool

func alive(_, p *entities.Character, _ string) bool { return p.IsAlive() }
func dead(_, p *entities.Character, _ string) bool  { return !p.IsAlive() }

func ally(caster, p *entities.Character, _ string) bool { return p.Party == caster.Party }
func enemy(caster, p *entities.Character, _ string) bool {
	return p.Party != caster.Party
}

func hasMP(_, p *entities.Character, _ string) bool {
	return p.MP != nil && p.MP.Current() > 0
}

func notProfession(_, p *entities.Character, param string) bool {
	return p.ProfessionName() != param
}

func withoutEffect(_, p *entities.Character, param string) bool {
	return !p.Effects.HasEffect(param)
}

func belowMaxHealth(_, p *entities.Character, _ string) bool {
	return !p.HP.AtMaximum()
}

func atOrBelow50Percent(_, p *entities.Character, _ string) bool {
	return !p.HP.GreaterThanPercent(50)
}

type predicateRule struct {
	filters  []filter
	minCount int
}

var predicates = map[Predicate]predicateRule{
	EnemyHasMP:               {filters: []filter{alive, enemy, hasMP}, minCount: 1},
	MoreThanOneEnemy:         {filters: []filter{alive, enemy}, minCount: 2},
	EnemyNotProfession:       {filters: []filter{alive, enemy, notProfession}, minCount: 1},
	AnyEnemyDead:             {filters: []filter{dead, enemy}, minCount: 1},
	AllyWithoutEffect:        {filters: []filter{alive, ally, withoutEffect}, minCount: 1},
	AllyBelowMaxHealth:       {filters: []filter{alive, ally, belowMaxHealth}, minCount: 1},
	AnyAllyDead:              {filters: []filter{dead, ally}, minCount: 1},
	AllyBelow50PercentHealth: {filters: []filter{alive, ally, atOrBelow50Percent}, minCount: 1},
	EnemyWithoutEffect:       {filters: []filter{alive, enemy, withoutEffect}, minCount: 1},
}

type nameRule struct {
	filters []filter
	random  bool
}

var names = map[Name]nameRule{
	AllAllies:                      {filters: []filter{alive, ally}},
	AllEnemies:                     {filters: []filter{alive, enemy}},
	RandomAlly:                     {filters: []filter{alive, ally}, random: true},
	RandomEnemy:                    {filters: []filter{alive, enemy}, random: true},
	RandomAllyBelowMaxHealth:       {filters: []filter{alive, ally, belowMaxHealth}, random: true},
	AllAlliesBelowMaxHealth:        {filters: []filter{alive, ally, belowMaxHealth}},
	RandomAllyBelow50PercentHealth: {filters: []filter{alive, ally, atOrBelow50Percent}, random: true},
	RandomEnemyWithMP:              {filters: []filter{alive, enemy, hasMP}, random: true},
	RandomDeadAlly:                 {filters: []filter{dead, ally}, random: true},
	RandomEnemyNotProfession:       {filters: []filter{alive, enemy, notProfession}, random: true},
	RandomAllyWithoutEffect:        {filters: []filter{alive, ally, withoutEffect}, random: true},
	RandomEnemyWithoutEffect:       {filters: []filter{alive, enemy, withoutEffect}, random: true},
}

// Selector evaluates predicates and target names against one roster. It
// never mutates the roster.
type Selector struct {
	roster Roster
	roller dice.Roller
}

// Config configures a Selector
type Config struct {
	Roster Roster
	Roller dice.Roller
}

// Validate checks required dependencies
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Roster == nil {
		vb.RequiredField("Roster")
	}
	if cfg.Roller == nil {
		vb.RequiredField("Roller")
	}
	return vb.Build()
}

// NewSelector creates a selector
func NewSelector(cfg *Config) (*Selector, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Selector{roster: cfg.Roster, roller: cfg.Roller}, nil
}

// Check evaluates a predicate for caster. param is the profession or effect
// name for predicates that take one.
func (s *Selector) Check(caster *entities.Character, p Predicate, param string) (bool, error) {
	if p == Yes {
		return true, nil
	}

	rule, ok := predicates[p]
	if !ok {
		return false, errors.InvalidArgumentf("unknown target predicate %s", p)
	}

	return len(s.eligible(caster, rule.filters, param)) >= rule.minCount, nil
}

// Select returns the target set for name, in roster order. Random names
// return at most one target.
func (s *Selector) Select(caster *entities.Character, n Name, param string) ([]*entities.Character, error) {
	if n == Self {
		return []*entities.Character{caster}, nil
	}

	rule, ok := names[n]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown target name %s", n)
	}

	eligible := s.eligible(caster, rule.filters, param)
	if !rule.random || len(eligible) == 0 {
		return eligible, nil
	}

	pick, err := s.Pick(eligible)
	if err != nil {
		return nil, err
	}
	return []*entities.Character{pick}, nil
}

// Pick chooses one candidate uniformly with the selector's roller
func (s *Selector) Pick(candidates []*entities.Character) (*entities.Character, error) {
	if len(candidates) == 0 {
		return nil, errors.InvalidArgument("no candidates to pick from")
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	roll, err := s.roller.Roll(len(candidates))
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll target")
	}
	if roll < 1 || roll > len(candidates) {
		return nil, errors.Internalf("roller returned %d for d%d", roll, len(candidates))
	}
	return candidates[roll-1], nil
}

func (s *Selector) eligible(caster *entities.Character, filters []filter, param string) []*entities.Character {
	var out []*entities.Character
	for _, candidate := range s.roster.Combatants() {
		if matches(caster, candidate, filters, param) {
			out = append(out, candidate)
		}
	}
	return out
}

func matches(caster, candidate *entities.Character, filters []filter, param string) bool {
	for _, f := range filters {
		if !f(caster, candidate, param) {
			return false
		}
	}
	return true
}
