// Package battles stores live battles between orchestrator calls
package battles

//go:generate mockgen -destination=mock/mock_repository.go -package=battlesmock github.com/KirkDiggler/rpg-combat/internal/repositories/battles Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-combat/internal/battle"
)

// Repository defines the storage interface for battles
type Repository interface {
	// Save stores a battle, replacing any battle with the same ID
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves a battle by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List returns the IDs of every stored battle
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Delete removes a battle
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the request for saving a battle
type SaveInput struct {
	Battle *battle.Battle
}

// SaveOutput defines the response for saving a battle
type SaveOutput struct{}

// GetInput defines the request for retrieving a battle
type GetInput struct {
	BattleID string
}

// GetOutput defines the response for retrieving a battle
type GetOutput struct {
	Battle *battle.Battle
}

// ListInput defines the request for listing battles
type ListInput struct{}

// ListOutput defines the response for listing battles
type ListOutput struct {
	BattleIDs []string
}

// DeleteInput defines the request for deleting a battle
type DeleteInput struct {
	BattleID string
}

// DeleteOutput defines the response for deleting a battle
type DeleteOutput struct{}
