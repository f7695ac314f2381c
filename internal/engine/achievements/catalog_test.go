package achievements_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-combat/internal/engine"
	"github.com/KirkDiggler/rpg-combat/internal/engine/achievements"
	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
	"github.com/KirkDiggler/rpg-combat/internal/repositories/statistics"
	"github.com/KirkDiggler/rpg-combat/internal/telemetry"
	"github.com/KirkDiggler/rpg-combat/internal/testutils/builders"
)

type AchievementsTestSuite struct {
	suite.Suite
	ctx       context.Context
	sink      *telemetry.Sink
	counters  telemetry.Counters
	registry  *achievements.Registry
	engine    engine.Engine
	character *entities.Character
}

func TestAchievementsSuite(t *testing.T) {
	suite.Run(t, new(AchievementsTestSuite))
}

func (s *AchievementsTestSuite) SetupTest() {
	s.ctx = context.Background()

	var err error
	s.sink, err = telemetry.NewSink(&telemetry.Config{Repository: statistics.NewInMemoryRepository()})
	s.Require().NoError(err)

	s.engine, err = engine.New(&engine.Config{Reductions: engine.DefaultReductionDefaults()})
	s.Require().NoError(err)

	s.character = builders.NewCharacterBuilder().
		WithID("hero").
		WithStat(entities.StatStr, 100).
		WithStat(entities.StatAgi, 50).
		Build()
	s.counters = s.sink.Counters(s.character.ID)
	s.registry = achievements.Default()
}

func (s *AchievementsTestSuite) openChests(n int) {
	for i := 0; i < n; i++ {
		s.Require().NoError(telemetry.RecordTreasure(s.ctx, s.counters, fmt.Sprintf("Chest%d", i)))
	}
}

func (s *AchievementsTestSuite) check() []entities.AchievementRecord {
	records, err := s.registry.Check(s.ctx, s.character, s.counters)
	s.Require().NoError(err)
	return records
}

func (s *AchievementsTestSuite) TestNothingEarnedAtTierZero() {
	s.openChests(14)
	s.Empty(s.check())
}

func (s *AchievementsTestSuite) TestBoxerTiersOnDistinctChests() {
	s.openChests(75)
	// reopening a chest does not add a distinct treasure
	s.Require().NoError(telemetry.RecordTreasure(s.ctx, s.counters, "Chest0"))

	records := s.check()
	s.Require().Len(records, 1)
	boxer := records[0]
	s.Equal(achievements.NameBoxer, boxer.Name)
	s.Equal(5, boxer.Tier)
	s.Equal("+50 DEX/AGI for opening 75 chests.", boxer.Description)
	s.Require().Len(boxer.Rewards, 2)
	s.Equal(entities.RewardTypeTitle, boxer.Rewards[1].Type)
	s.Equal("Boxer", boxer.Rewards[1].Title)

	// 50 base, 1 from the level curve, 50 from the reward
	s.character.SetAchievement(boxer)
	s.Equal(101, s.engine.Stat(s.character, entities.StatAgi))
	s.Equal([]string{"Boxer"}, s.character.Titles())
}

func (s *AchievementsTestSuite) TestBoxerBelowTitleTier() {
	s.openChests(74)

	records := s.check()
	s.Require().Len(records, 1)
	s.Equal(4, records[0].Tier)
	s.Len(records[0].Rewards, 1)
}

func (s *AchievementsTestSuite) TestCollectorScalesBaseStats() {
	for i := 0; i < 50; i++ {
		s.character.Collectibles.Add(fmt.Sprintf("Relic%d", i))
	}

	records := s.check()
	s.Require().Len(records, 1)
	collector := records[0]
	s.Equal(2, collector.Tier)
	s.Equal("2%", collector.Rewards[0].Display[entities.StatStr])

	s.character.SetAchievement(collector)
	s.Equal(103, s.engine.Stat(s.character, entities.StatStr))
	s.Equal(52, s.engine.Stat(s.character, entities.StatAgi))
}

func (s *AchievementsTestSuite) TestUnstoppableExponentialTiers() {
	s.Require().NoError(s.counters.IncrementCounter(s.ctx, telemetry.PathGiveDamage, 10000))

	records := s.check()
	s.Require().Len(records, 1)
	unstoppable := records[0]
	s.Equal(2, unstoppable.Tier)
	s.Len(unstoppable.Rewards, 1)

	s.character.SetAchievement(unstoppable)
	s.Equal(141, s.engine.Stat(s.character, entities.StatStr))
}

func (s *AchievementsTestSuite) TestDigitalMagicianSingleTier() {
	path := telemetry.Path(telemetry.PathGiveEffect, "Digital")
	s.Require().NoError(s.counters.IncrementCounter(s.ctx, path, 99999))
	s.Empty(s.check())

	s.Require().NoError(s.counters.IncrementCounter(s.ctx, path, 1000000))
	records := s.check()
	s.Require().Len(records, 1)
	s.Equal(1, records[0].Tier)
	s.Equal("Digital Magician", records[0].Rewards[0].Title)
}

func (s *AchievementsTestSuite) TestCheckOnlyReturnsUpgrades() {
	s.openChests(15)
	records := s.check()
	s.Require().Len(records, 1)
	s.character.SetAchievement(records[0])

	s.Empty(s.check())

	s.openChests(30)
	records = s.check()
	s.Require().Len(records, 1)
	s.Equal(2, records[0].Tier)
}

func (s *AchievementsTestSuite) TestRegisterRejectsDuplicates() {
	err := s.registry.Register(achievements.Boxer())
	s.True(errors.IsAlreadyExists(err))

	err = s.registry.Register(nil)
	s.True(errors.IsInvalidArgument(err))

	s.Len(s.registry.List(), 4)
}
