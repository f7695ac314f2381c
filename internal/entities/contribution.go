package entities

// ScaleFunc computes a modifier from the character and the pre-modifier base
// value of the stat being resolved.
type ScaleFunc func(c *Character, base float64) float64

// Contribution is a stat contribution from a profession, achievement reward,
// or personality trait. It is either a flat number added in the base pass or
// a scaled function evaluated in the modifier pass.
type Contribution struct {
	flat   float64
	scaled ScaleFunc
}

// Flat creates a constant contribution
func Flat(value float64) Contribution {
	return Contribution{flat: value}
}

// Scaled creates a contribution evaluated against the base value
func Scaled(fn ScaleFunc) Contribution {
	return Contribution{scaled: fn}
}

// PercentOfBase creates a scaled contribution worth percent% of the base value
func PercentOfBase(percent float64) Contribution {
	return Scaled(func(_ *Character, base float64) float64 {
		return base * 0.01 * percent
	})
}

// IsScaled reports whether the contribution belongs to the modifier pass
func (c Contribution) IsScaled() bool {
	return c.scaled != nil
}

// FlatValue returns the constant value; scaled contributions return 0
func (c Contribution) FlatValue() float64 {
	if c.scaled != nil {
		return 0
	}
	return c.flat
}

// Apply evaluates a scaled contribution; flat contributions return 0
func (c Contribution) Apply(ch *Character, base float64) float64 {
	if c.scaled == nil {
		return 0
	}
	return c.scaled(ch, base)
}
