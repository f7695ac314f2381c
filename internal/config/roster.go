package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-combat/internal/engine/professions"
	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
)

// Roster is a file of combatants
type Roster struct {
	Combatants []CombatantSpec `yaml:"combatants"`
}

// CombatantSpec describes one combatant in a roster file
type CombatantSpec struct {
	ID                   string             `yaml:"id"`
	Name                 string             `yaml:"name"`
	Title                string             `yaml:"title"`
	Profession           string             `yaml:"profession"`
	SecondaryProfessions []string           `yaml:"secondary_professions"`
	Level                int                `yaml:"level"`
	Party                string             `yaml:"party"`
	Player               bool               `yaml:"player"`
	Stats                map[string]float64 `yaml:"stats"`
	Collectibles         []string           `yaml:"collectibles"`
	Equipment            []ItemSpec         `yaml:"equipment"`
}

// ItemSpec is an equipped item with free-form attributes
type ItemSpec struct {
	ID         string         `yaml:"id"`
	Name       string         `yaml:"name"`
	Slot       string         `yaml:"slot"`
	Attributes map[string]any `yaml:"attributes"`
}

// LoadRoster reads a roster file
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("roster %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read roster %s", path)
	}
	return ParseRoster(data)
}

// ParseRoster decodes a roster document
func ParseRoster(data []byte) (*Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, errors.InvalidArgumentf("failed to parse roster: %v", err)
	}
	if len(r.Combatants) == 0 {
		return nil, errors.InvalidArgument("roster has no combatants")
	}
	return &r, nil
}

// Build creates fresh characters from the roster. Every call returns new
// instances, so concurrent battles never share state.
func (r *Roster) Build(registry *professions.Registry, maxLevel int) ([]*entities.Character, error) {
	if registry == nil {
		return nil, errors.InvalidArgument("profession registry is required")
	}

	vb := errors.NewValidationBuilder()
	out := make([]*entities.Character, 0, len(r.Combatants))

	for i, spec := range r.Combatants {
		field := fmt.Sprintf("Combatants[%d]", i)

		errors.ValidateRequired(field+".ID", spec.ID, vb)
		errors.ValidateRequired(field+".Name", spec.Name, vb)
		errors.ValidateRequired(field+".Party", spec.Party, vb)
		errors.ValidateRange(field+".Level", spec.Level, 1, maxLevel, vb)

		profession, err := registry.Get(spec.Profession)
		if err != nil {
			vb.InvalidField(field+".Profession", err.Error())
			continue
		}
		for _, secondary := range spec.SecondaryProfessions {
			if _, err := registry.Get(secondary); err != nil {
				vb.InvalidField(field+".SecondaryProfessions", err.Error())
			}
		}

		c := entities.NewCharacter(spec.ID, spec.Name, profession)
		c.Title = spec.Title
		c.Level = spec.Level
		c.Party = spec.Party
		c.IsPlayer = spec.Player
		c.SecondaryProfessions = append([]string(nil), spec.SecondaryProfessions...)
		for stat, value := range spec.Stats {
			c.Stats[stat] = value
		}
		for _, name := range spec.Collectibles {
			c.Collectibles.Add(name)
		}

		for j, item := range spec.Equipment {
			slot, ok := equipment.SlotFromString(item.Slot)
			if !ok {
				vb.Fieldf(fmt.Sprintf("%s.Equipment[%d].Slot", field, j), "unknown slot %q", item.Slot)
				continue
			}
			attributes := make(map[string]any, len(item.Attributes))
			for k, v := range item.Attributes {
				attributes[k] = v
			}
			c.Equip(&equipment.Item{
				ID:         item.ID,
				Name:       item.Name,
				Slot:       slot,
				Attributes: attributes,
			})
		}

		out = append(out, c)
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return out, nil
}
