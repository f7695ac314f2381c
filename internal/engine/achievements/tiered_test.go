package achievements_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-combat/internal/engine/achievements"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
)

func TestTierForLinear(t *testing.T) {
	threshold := achievements.Linear(15)

	testCases := []struct {
		name     string
		metric   float64
		expected int
	}{
		{name: "nothing", metric: 0, expected: 0},
		{name: "just below tier 1", metric: 14, expected: 0},
		{name: "exactly tier 1", metric: 15, expected: 1},
		{name: "boundary is inclusive", metric: 75, expected: 5},
		{name: "one below boundary", metric: 74, expected: 4},
		{name: "far past", metric: 1500, expected: 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, achievements.TierFor(tc.metric, threshold, 0))
		})
	}
}

func TestTierForExponential(t *testing.T) {
	threshold := achievements.Exponential(1000, 10)

	assert.Equal(t, 0, achievements.TierFor(999, threshold, 0))
	assert.Equal(t, 1, achievements.TierFor(1000, threshold, 0))
	assert.Equal(t, 1, achievements.TierFor(9999, threshold, 0))
	assert.Equal(t, 2, achievements.TierFor(10000, threshold, 0))
	assert.Equal(t, 4, achievements.TierFor(1000000, threshold, 0))
}

func TestTierForMaxTier(t *testing.T) {
	assert.Equal(t, 1, achievements.TierFor(1e9, achievements.Linear(100000), 1))
	assert.Equal(t, 3, achievements.TierFor(1e9, achievements.Linear(1), 3))
}

func TestTieredValidate(t *testing.T) {
	testCases := []struct {
		name    string
		tiered  *achievements.Tiered
		message string
	}{
		{
			name:    "missing everything",
			tiered:  &achievements.Tiered{},
			message: "Metric",
		},
		{
			name: "zero base never terminates",
			tiered: &achievements.Tiered{
				Name:      "Zero",
				Metric:    achievements.CollectibleCount(),
				Threshold: achievements.Linear(0),
				Title:     "Zero",
				TitleTier: 1,
			},
			message: "tier 1 threshold must be positive",
		},
		{
			name: "title without tier",
			tiered: &achievements.Tiered{
				Name:      "Untitled",
				Metric:    achievements.CollectibleCount(),
				Threshold: achievements.Linear(1),
				Title:     "Untitled",
			},
			message: "TitleTier",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.tiered.Validate()
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.message)
		})
	}

	for _, a := range achievements.Catalog() {
		assert.NoError(t, a.Validate(), a.Name)
	}
}
