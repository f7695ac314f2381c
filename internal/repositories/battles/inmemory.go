package battles

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-combat/internal/battle"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
)

// InMemoryRepository implements Repository with a map. Battles are live
// objects guarded by their own lock, so they are stored by reference.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*battle.Battle
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*battle.Battle),
	}
}

// Save stores a battle
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Battle == nil || input.Battle.ID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Battle.ID] = input.Battle

	return &SaveOutput{}, nil
}

// Get retrieves a battle by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, exists := r.store[input.BattleID]
	if !exists {
		return nil, errors.NotFoundf("battle %s not found", input.BattleID)
	}

	return &GetOutput{Battle: b}, nil
}

// List returns stored battle IDs in order
func (r *InMemoryRepository) List(_ context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.store))
	for id := range r.store {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &ListOutput{BattleIDs: ids}, nil
}

// Delete removes a battle
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.BattleID]; !exists {
		return nil, errors.NotFoundf("battle %s not found", input.BattleID)
	}

	delete(r.store, input.BattleID)

	return &DeleteOutput{}, nil
}
