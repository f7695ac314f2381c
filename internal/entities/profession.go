package entities

// Profession is a shared, read-only archetype. Characters hold a pointer to it
// and never copy or mutate it.
type Profession struct {
	Name string

	// PerLevel is the base<Stat>PerLevel table, keyed by stat (hp and mp included)
	PerLevel map[string]float64

	// HPPer and MPPer weigh each resolved base stat in the hp/mp formulas
	HPPer map[string]float64
	MPPer map[string]float64

	// ClassStats are profession-wide contributions, flat or scaled
	ClassStats map[string]Contribution
}

// PerLevelRate returns the per-level growth for stat, 0 when undefined
func (p *Profession) PerLevelRate(stat string) float64 {
	if p == nil {
		return 0
	}
	return p.PerLevel[stat]
}

// HPPerStat returns the hp weight of a base stat
func (p *Profession) HPPerStat(stat string) float64 {
	if p == nil {
		return 0
	}
	return p.HPPer[stat]
}

// MPPerStat returns the mp weight of a base stat
func (p *Profession) MPPerStat(stat string) float64 {
	if p == nil {
		return 0
	}
	return p.MPPer[stat]
}

// ClassStat returns the class contribution for stat
func (p *Profession) ClassStat(stat string) (Contribution, bool) {
	if p == nil {
		return Contribution{}, false
	}
	c, ok := p.ClassStats[stat]
	return c, ok
}
