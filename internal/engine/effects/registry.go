// Package effects holds the status effect catalog. Spells name effects and
// the registry builds them.
package effects

import (
	"sort"

	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
)

// Constructor builds the named parts of an effect (stats, stun flags, hooks)
// for a potency. The registry fills in identity, duration and origin.
type Constructor func(potency int) *entities.StatusEffect

// Descriptor registers an effect implementation under a name
type Descriptor struct {
	Name string

	// Instant effects last exactly one tick regardless of the spell's
	// duration formula
	Instant bool

	// DefaultDuration is used when neither an override nor a spell formula
	// supplies one
	DefaultDuration int

	New Constructor
}

// BuildInput describes one effect instance
type BuildInput struct {
	Name     string
	ID       string
	Potency  int
	Duration int
	// Fallback is the spell's own duration, used when Duration is not set
	// and the effect is not instant
	Fallback int
	Origin   entities.EffectOrigin
	Extra    map[string]any
}

// Registry maps effect names to descriptors
type Registry struct {
	descriptors map[string]Descriptor
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]Descriptor)}
}

// Register adds a descriptor. Names are unique.
func (r *Registry) Register(d Descriptor) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", d.Name, vb)
	if d.New == nil {
		vb.RequiredField("New")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if _, exists := r.descriptors[d.Name]; exists {
		return errors.AlreadyExistsf("effect %s already registered", d.Name)
	}
	r.descriptors[d.Name] = d
	return nil
}

// Get returns the descriptor for name
func (r *Registry) Get(name string) (Descriptor, error) {
	d, ok := r.descriptors[name]
	if !ok {
		return Descriptor{}, errors.NotFoundf("unknown effect %s", name).WithMeta("effect", name)
	}
	return d, nil
}

// Has reports whether name is registered
func (r *Registry) Has(name string) bool {
	_, ok := r.descriptors[name]
	return ok
}

// Names returns the registered names in order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.descriptors))
	for name := range r.descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build instantiates an effect. An explicit Duration wins, then instant
// effects get 1 tick, then Fallback, then the descriptor default.
func (r *Registry) Build(input *BuildInput) (*entities.StatusEffect, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d, err := r.Get(input.Name)
	if err != nil {
		return nil, err
	}

	var duration int
	switch {
	case input.Duration > 0:
		duration = input.Duration
	case d.Instant:
		duration = 1
	case input.Fallback > 0:
		duration = input.Fallback
	default:
		duration = d.DefaultDuration
	}

	e := d.New(input.Potency)
	e.ID = input.ID
	e.Name = d.Name
	e.Potency = input.Potency
	e.Duration = duration
	e.Origin = input.Origin
	e.Extra = input.Extra
	if e.Hooks == nil {
		e.Hooks = NoHooks{}
	}

	return e, nil
}
