package achievements

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/telemetry"
)

// Achievement names
const (
	NameBoxer           = "Boxer"
	NameCollector       = "Collector"
	NameUnstoppable     = "Unstoppable"
	NameDigitalMagician = "Digital Magician"
)

// Catalog lists every built-in achievement
func Catalog() []*Tiered {
	return []*Tiered{
		Boxer(),
		Collector(),
		Unstoppable(),
		DigitalMagician(),
	}
}

// Boxer rewards opening treasure chests
func Boxer() *Tiered {
	const base = 15
	return &Tiered{
		Name:      NameBoxer,
		Type:      entities.AchievementTypeExplore,
		Metric:    ChildCount(telemetry.PathTreasure),
		Threshold: Linear(base),
		Stats: func(tier int) map[string]entities.Contribution {
			return map[string]entities.Contribution{
				entities.StatDex: entities.Flat(float64(tier * 10)),
				entities.StatAgi: entities.Flat(float64(tier * 10)),
			}
		},
		Describe: func(tier int) string {
			return fmt.Sprintf("+%d DEX/AGI for opening %d chests.", tier*10, base*tier)
		},
		Title:     NameBoxer,
		TitleTier: 5,
	}
}

// Collector rewards holding collectibles with a percentage of base stats
func Collector() *Tiered {
	const base = 25
	stats := []string{entities.StatAgi, entities.StatStr, entities.StatDex, entities.StatCon, entities.StatInt}
	return &Tiered{
		Name:      NameCollector,
		Type:      entities.AchievementTypeExplore,
		Metric:    CollectibleCount(),
		Threshold: Linear(base),
		Stats: func(tier int) map[string]entities.Contribution {
			out := make(map[string]entities.Contribution, len(stats))
			for _, s := range stats {
				out[s] = entities.PercentOfBase(float64(tier))
			}
			return out
		},
		Display: func(tier int) map[string]string {
			out := make(map[string]string, len(stats))
			for _, s := range stats {
				out[s] = fmt.Sprintf("%d%%", tier)
			}
			return out
		},
		Describe: func(tier int) string {
			return fmt.Sprintf("Gain +%d%% AGI/CON/DEX/INT/STR for having %d collectibles.", tier, tier*base)
		},
		Title:     NameCollector,
		TitleTier: 5,
	}
}

// Unstoppable rewards total damage dealt
func Unstoppable() *Tiered {
	const base = 1000
	return &Tiered{
		Name:      NameUnstoppable,
		Type:      entities.AchievementTypeCombat,
		Metric:    CounterValue(telemetry.PathGiveDamage),
		Threshold: Exponential(base, 10),
		Stats: func(tier int) map[string]entities.Contribution {
			return map[string]entities.Contribution{
				entities.StatHP:  entities.PercentOfBase(1),
				entities.StatStr: entities.Flat(float64(20 * tier)),
			}
		},
		Display: func(tier int) map[string]string {
			return map[string]string{entities.StatHP: fmt.Sprintf("+%d%% HP", tier)}
		},
		Describe: func(tier int) string {
			return fmt.Sprintf("Gain +%d%% HP and +%d STR for dealing %.0f damage.",
				tier, 20*tier, base*math.Pow(10, float64(tier-1)))
		},
		Title:     NameUnstoppable,
		TitleTier: 4,
	}
}

// DigitalMagician is a single tier title for digital effect uses
func DigitalMagician() *Tiered {
	return &Tiered{
		Name:      NameDigitalMagician,
		Type:      entities.AchievementTypeCombat,
		Metric:    CounterValue(telemetry.Path(telemetry.PathGiveEffect, "Digital")),
		Threshold: Linear(100000),
		MaxTier:   1,
		Describe: func(_ int) string {
			return "Gain a special title for 100000 Digital skill uses."
		},
		Title:     NameDigitalMagician,
		TitleTier: 1,
	}
}
