package combat

import (
	"github.com/KirkDiggler/rpg-combat/internal/battle"
	"github.com/KirkDiggler/rpg-combat/internal/engine"
	"github.com/KirkDiggler/rpg-combat/internal/engine/spells"
	"github.com/KirkDiggler/rpg-combat/internal/entities"
)

// StartBattleInput defines the request for starting a battle
type StartBattleInput struct {
	Combatants []*entities.Character

	// Restore fills every combatant's hp and mp after the maxima are
	// recalculated
	Restore bool
}

// StartBattleOutput defines the response for starting a battle
type StartBattleOutput struct {
	BattleID string
	Parties  []string
}

// GetBattleInput defines the request for reading a battle
type GetBattleInput struct {
	BattleID string
}

// CombatantSummary is a read-only view of one combatant
type CombatantSummary struct {
	ID         string
	Name       string
	Party      string
	Profession string
	Level      int
	HP         int
	MaxHP      int
	MP         int
	MaxMP      int
	Effects    []string
}

// GetBattleOutput defines the response for reading a battle
type GetBattleOutput struct {
	BattleID   string
	Round      int
	Combatants []CombatantSummary
	Messages   []battle.LogEntry
	Over       bool
	Winner     string
}

// CastInput defines the request for casting a named spell
type CastInput struct {
	BattleID string
	CasterID string
	Spell    string
}

// CastOutput defines the response for casting a spell
type CastOutput struct {
	Result *spells.CastResult
}

// TakeTurnInput defines the request for one combatant's turn
type TakeTurnInput struct {
	BattleID    string
	CombatantID string
}

// TurnSummary describes what one combatant did
type TurnSummary struct {
	CombatantID string

	// Skipped is set when the combatant was dead or had nothing to cast
	Skipped bool

	Stunned     bool
	StunMessage string

	Spell  string
	Result *spells.CastResult
}

// TakeTurnOutput defines the response for one turn
type TakeTurnOutput struct {
	Turn TurnSummary
}

// RunRoundInput defines the request for running a round
type RunRoundInput struct {
	BattleID string
}

// RunRoundOutput defines the response for a round
type RunRoundOutput struct {
	// Round is the number of the round that just ran
	Round  int
	Turns  []TurnSummary
	Over   bool
	Winner string
}

// EndBattleInput defines the request for dropping a battle
type EndBattleInput struct {
	BattleID string
}

// EndBattleOutput defines the response for dropping a battle
type EndBattleOutput struct {
	Winner string
}

// CheckAchievementsInput defines the request for checking achievements
type CheckAchievementsInput struct {
	BattleID    string
	CharacterID string
}

// CheckAchievementsOutput defines the response for checking achievements
type CheckAchievementsOutput struct {
	// Unlocked holds new or upgraded records, already stored on the character
	Unlocked []entities.AchievementRecord
}

// CalculateStatsInput defines the request for a stat sheet
type CalculateStatsInput struct {
	BattleID    string
	CharacterID string
}

// CalculateStatsOutput defines the response for a stat sheet
type CalculateStatsOutput struct {
	Sheet *engine.CalculateCharacterStatsOutput
}
