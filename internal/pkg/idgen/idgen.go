// Package idgen provides ID generation for battles and status effects
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// Func adapts a plain function to Generator
type Func func() string

// Generate calls f
func (f Func) Generate() string {
	return f()
}

// NewSequential returns prefix_1, prefix_2, ... Tests and replayable
// simulations use it.
func NewSequential(prefix string) Generator {
	var n atomic.Uint64
	return Func(func() string {
		return withPrefix(prefix, strconv.FormatUint(n.Add(1), 10))
	})
}

// NewUUID returns prefix_<uuid>
func NewUUID(prefix string) Generator {
	return Func(func() string {
		return withPrefix(prefix, uuid.NewString())
	})
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
