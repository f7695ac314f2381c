// Package statistics stores per-character counters keyed by dot-delimited
// paths such as Combat.Give.Damage
package statistics

import "context"

//go:generate mockgen -destination=mock/mock_repository.go -package=statisticsmock github.com/KirkDiggler/rpg-combat/internal/repositories/statistics Repository

// IncrementInput adds amounts to one character's counters. All paths are
// applied together.
type IncrementInput struct {
	CharacterID string
	Amounts     map[string]float64
}

// IncrementOutput contains the counter values after the increment
type IncrementOutput struct {
	Values map[string]float64
}

// GetInput identifies one counter
type GetInput struct {
	CharacterID string
	Path        string
}

// GetOutput contains a counter value. Missing counters read as 0.
type GetOutput struct {
	Value float64
}

// ListInput selects the counters under a prefix. An empty prefix lists all.
type ListInput struct {
	CharacterID string
	Prefix      string
}

// ListOutput contains counters keyed by full path
type ListOutput struct {
	Counters map[string]float64
}

// DeleteInput identifies a character whose counters are dropped
type DeleteInput struct {
	CharacterID string
}

// DeleteOutput reports how many counters were removed
type DeleteOutput struct {
	CountersDeleted int
}

// Repository defines the interface for counter storage
type Repository interface {
	// Increment adds to one or more counters
	Increment(ctx context.Context, input IncrementInput) (*IncrementOutput, error)

	// Get reads one counter
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List reads every counter under a prefix
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete drops every counter of a character
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

const (
	errCharacterIDEmpty = "character ID cannot be empty"
	errPathEmpty        = "path cannot be empty"
	errNoAmounts        = "at least one amount is required"
)

// HasPrefix reports whether path is prefix itself or lies under it
func HasPrefix(path, prefix string) bool {
	if prefix == "" {
		return true
	}
	if len(path) < len(prefix) || path[:len(prefix)] != prefix {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '.'
}
