package spells

import (
	"context"
	"sort"

	"github.com/KirkDiggler/rpg-combat/internal/engine/effects"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
)

// Spell is a castable action. Implementations compute magnitudes and pick
// targets; Invocation.Cast applies the results.
type Spell interface {
	Definition() *Definition

	// ShouldCast reports whether the spell has something useful to do
	ShouldCast(inv *Invocation) (bool, error)

	// Resolve computes magnitudes and targets and calls inv.Cast
	Resolve(ctx context.Context, inv *Invocation) error
}

// PotencyFormula is implemented by spells that compute effect potency
type PotencyFormula interface {
	Potency(inv *Invocation) int
}

// DurationFormula is implemented by spells that compute effect duration
type DurationFormula interface {
	Duration(inv *Invocation) int
}

// Book is the spell registry
type Book struct {
	effects *effects.Registry
	spells  map[string]Spell
}

// NewBook creates an empty book that checks effect names against registry
func NewBook(registry *effects.Registry) (*Book, error) {
	if registry == nil {
		return nil, errors.InvalidArgument("effect registry is required")
	}
	return &Book{effects: registry, spells: make(map[string]Spell)}, nil
}

// Register validates and adds a spell
func (b *Book) Register(s Spell) error {
	if s == nil || s.Definition() == nil {
		return errors.InvalidArgument("spell definition is required")
	}

	def := s.Definition()
	if err := def.Validate(); err != nil {
		return errors.Wrapf(err, "invalid spell %s", def.Name)
	}

	for _, name := range def.Effects {
		if !b.effects.Has(name) {
			return errors.InvalidArgumentf("spell %s uses unknown effect %s", def.Name, name).
				WithMeta("spell", def.Name).
				WithMeta("effect", name)
		}
	}

	if _, exists := b.spells[def.Name]; exists {
		return errors.AlreadyExistsf("spell %s already registered", def.Name)
	}
	b.spells[def.Name] = s
	return nil
}

// Get returns the spell registered under name
func (b *Book) Get(name string) (Spell, error) {
	s, ok := b.spells[name]
	if !ok {
		return nil, errors.NotFoundf("unknown spell %s", name).WithMeta("spell", name)
	}
	return s, nil
}

// List returns every spell ordered by name
func (b *Book) List() []Spell {
	out := make([]Spell, 0, len(b.spells))
	for _, s := range b.spells {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Definition().Name < out[j].Definition().Name
	})
	return out
}

// Default returns a book holding the full catalog
func Default(registry *effects.Registry) (*Book, error) {
	b, err := NewBook(registry)
	if err != nil {
		return nil, err
	}
	for _, s := range Catalog() {
		if err := b.Register(s); err != nil {
			return nil, err
		}
	}
	return b, nil
}
