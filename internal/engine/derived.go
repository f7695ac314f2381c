package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-combat/internal/entities"
)

// HP is never below 1
func (e *engine) HP(c *entities.Character) int {
	total := c.Profession.PerLevelRate(entities.StatHP) * float64(c.Level)
	for _, stat := range entities.BaseStats() {
		total += c.Profession.HPPerStat(stat) * float64(e.Stat(c, stat))
	}
	total += float64(e.Stat(c, entities.StatHP))

	return int(math.Max(1, math.Floor(total)))
}

// MP is never below 0
func (e *engine) MP(c *entities.Character) int {
	total := c.Profession.PerLevelRate(entities.StatMP) * float64(c.Level)
	for _, stat := range entities.BaseStats() {
		total += c.Profession.MPPerStat(stat) * float64(e.Stat(c, stat))
	}
	total += float64(e.Stat(c, entities.StatMP))

	return int(math.Max(0, math.Floor(total)))
}

// Recalculate resizes the hp and mp pools to their resolved maxima
func (e *engine) Recalculate(c *entities.Character) {
	if c.HP == nil {
		c.HP = entities.NewResource(0, 1, 1)
	}
	if c.MP == nil {
		c.MP = entities.NewResource(0, 0, 0)
	}
	c.HP.SetMaximum(e.HP(c))
	c.MP.SetMaximum(e.MP(c))
}

func (e *engine) OvercomeDodge(c *entities.Character) int {
	total := 0
	for _, stat := range entities.BaseStats() {
		total += e.Stat(c, stat)
	}
	return max(10, total)
}

func (e *engine) Dodge(c *entities.Character) float64 {
	return float64(e.Stat(c, entities.StatAgi)+e.Stat(c, entities.StatLuk)) / 8
}

func (e *engine) Hit(c *entities.Character) float64 {
	return math.Max(10, float64(e.Stat(c, entities.StatStr)+e.Stat(c, entities.StatDex))/2)
}

func (e *engine) AvoidHit(c *entities.Character) float64 {
	sum := e.Stat(c, entities.StatAgi) +
		e.Stat(c, entities.StatDex) +
		e.Stat(c, entities.StatCon) +
		e.Stat(c, entities.StatInt)
	return float64(sum) / 16
}

func (e *engine) Deflect(c *entities.Character) int {
	return e.Stat(c, entities.StatLuk)
}
