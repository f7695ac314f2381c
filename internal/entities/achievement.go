package entities

// AchievementType groups achievements for display
type AchievementType string

// Achievement types
const (
	AchievementTypeCombat  AchievementType = "Combat"
	AchievementTypeExplore AchievementType = "Explore"
	AchievementTypeSpecial AchievementType = "Special"
)

// RewardType tags an achievement reward
type RewardType string

// Reward types
const (
	RewardTypeStats RewardType = "stats"
	RewardTypeTitle RewardType = "title"
)

// Reward is one payout of an unlocked achievement tier
type Reward struct {
	Type RewardType

	// Stats holds per-stat contributions for stats rewards
	Stats map[string]Contribution

	// Display holds human readable descriptions of scaled stats ("3%")
	Display map[string]string

	// Title is set for title rewards
	Title string
}

// AchievementRecord is an unlocked achievement at a given tier. Read-only once
// stored on a character.
type AchievementRecord struct {
	Name        string
	Tier        int
	Type        AchievementType
	Description string
	Rewards     []Reward
}

// PersonalityTrait is an active personality and its stat contributions
type PersonalityTrait struct {
	Name  string
	Stats map[string]Contribution
}
