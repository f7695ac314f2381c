package statistics

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-combat/internal/errors"
)

// InMemoryRepository keeps counters in process memory
type InMemoryRepository struct {
	mu       sync.RWMutex
	counters map[string]map[string]float64
}

// NewInMemoryRepository creates an empty in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		counters: make(map[string]map[string]float64),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Increment adds every amount under one lock
func (r *InMemoryRepository) Increment(_ context.Context, input IncrementInput) (*IncrementOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if len(input.Amounts) == 0 {
		return nil, errors.InvalidArgument(errNoAmounts)
	}
	for path := range input.Amounts {
		if path == "" {
			return nil, errors.InvalidArgument(errPathEmpty)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	counters, ok := r.counters[input.CharacterID]
	if !ok {
		counters = make(map[string]float64)
		r.counters[input.CharacterID] = counters
	}

	values := make(map[string]float64, len(input.Amounts))
	for path, amount := range input.Amounts {
		counters[path] += amount
		values[path] = counters[path]
	}

	return &IncrementOutput{Values: values}, nil
}

// Get reads one counter
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Path == "" {
		return nil, errors.InvalidArgument(errPathEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return &GetOutput{Value: r.counters[input.CharacterID][input.Path]}, nil
}

// List copies the counters under a prefix
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	counters := make(map[string]float64)
	for path, value := range r.counters[input.CharacterID] {
		if HasPrefix(path, input.Prefix) {
			counters[path] = value
		}
	}

	return &ListOutput{Counters: counters}, nil
}

// Delete drops a character's counters
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := len(r.counters[input.CharacterID])
	delete(r.counters, input.CharacterID)

	return &DeleteOutput{CountersDeleted: deleted}, nil
}
