package achievements

import (
	"context"

	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
	"github.com/KirkDiggler/rpg-combat/internal/telemetry"
)

// Registry holds achievement definitions in registration order
type Registry struct {
	order []*Tiered
	names map[string]bool
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]bool)}
}

// Default returns a registry holding the catalog
func Default() *Registry {
	r := NewRegistry()
	for _, a := range Catalog() {
		// catalog definitions are valid and unique
		_ = r.Register(a)
	}
	return r
}

// Register validates and adds an achievement
func (r *Registry) Register(a *Tiered) error {
	if a == nil {
		return errors.InvalidArgument("achievement is required")
	}
	if err := a.Validate(); err != nil {
		return errors.Wrapf(err, "invalid achievement %s", a.Name)
	}
	if r.names[a.Name] {
		return errors.AlreadyExistsf("achievement %s already registered", a.Name)
	}

	r.names[a.Name] = true
	r.order = append(r.order, a)
	return nil
}

// List returns the registered achievements
func (r *Registry) List() []*Tiered {
	return r.order
}

// Check evaluates every achievement and returns the records that are new or
// have a higher tier than the one c already holds
func (r *Registry) Check(ctx context.Context, c *entities.Character, counters telemetry.Counters) ([]entities.AchievementRecord, error) {
	var earned []entities.AchievementRecord
	for _, a := range r.order {
		record, ok, err := a.Evaluate(ctx, c, counters)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if held, exists := c.Achievement(a.Name); exists && held.Tier >= record.Tier {
			continue
		}
		earned = append(earned, record)
	}
	return earned, nil
}
