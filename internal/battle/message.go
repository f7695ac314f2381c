package battle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-combat/internal/entities"
)

// Message placeholders
const (
	FieldSpellName  = "spellName"
	FieldTargetName = "targetName"
	FieldDamage     = "damage"
	FieldHealed     = "healed"
)

// MessageData holds the named fields substituted into a template
type MessageData map[string]any

// Clone copies the data so per-target fields do not leak between targets
func (d MessageData) Clone() MessageData {
	out := make(MessageData, len(d)+2)
	for k, v := range d {
		out[k] = v
	}
	return out
}

// FormatMessage replaces %player with the caster's full name and %<field>
// with each field of data. Longer field names win over their prefixes.
func FormatMessage(template string, caster *entities.Character, data MessageData) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, 2*len(keys)+2)
	for _, k := range keys {
		pairs = append(pairs, "%"+k, fmt.Sprint(data[k]))
	}
	if caster != nil {
		pairs = append(pairs, "%player", caster.FullName())
	}

	return strings.NewReplacer(pairs...).Replace(template)
}
