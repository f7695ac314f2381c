package entities

// Resource is a bounded integer pool such as hp or mp. Every mutation clamps
// the current value to [minimum, maximum].
type Resource struct {
	minimum int
	maximum int
	current int
}

// NewResource creates a resource clamped to the given bounds
func NewResource(minimum, maximum, current int) *Resource {
	if maximum < minimum {
		maximum = minimum
	}
	r := &Resource{minimum: minimum, maximum: maximum}
	r.Set(current)
	return r
}

// Current returns the current value
func (r *Resource) Current() int {
	return r.current
}

// Minimum returns the lower bound
func (r *Resource) Minimum() int {
	return r.minimum
}

// Maximum returns the upper bound
func (r *Resource) Maximum() int {
	return r.maximum
}

// Set replaces the current value
func (r *Resource) Set(value int) {
	r.current = r.clamp(value)
}

// Add increases the current value
func (r *Resource) Add(amount int) {
	r.Set(r.current + amount)
}

// Sub decreases the current value
func (r *Resource) Sub(amount int) {
	r.Set(r.current - amount)
}

// SetMaximum changes the upper bound and re-clamps the current value
func (r *Resource) SetMaximum(maximum int) {
	if maximum < r.minimum {
		maximum = r.minimum
	}
	r.maximum = maximum
	r.Set(r.current)
}

// ToMaximum fills the pool
func (r *Resource) ToMaximum() {
	r.current = r.maximum
}

// ToMinimum empties the pool
func (r *Resource) ToMinimum() {
	r.current = r.minimum
}

// AtMaximum reports whether the pool is full
func (r *Resource) AtMaximum() bool {
	return r.current >= r.maximum
}

// AtMinimum reports whether the pool is empty
func (r *Resource) AtMinimum() bool {
	return r.current <= r.minimum
}

// Percent returns the current value as a percentage of the maximum
func (r *Resource) Percent() float64 {
	if r.maximum == 0 {
		return 0
	}
	return float64(r.current) / float64(r.maximum) * 100
}

// GreaterThanPercent reports whether the pool is above the given percentage
func (r *Resource) GreaterThanPercent(percent float64) bool {
	return r.Percent() > percent
}

func (r *Resource) clamp(value int) int {
	if value < r.minimum {
		return r.minimum
	}
	if value > r.maximum {
		return r.maximum
	}
	return value
}
