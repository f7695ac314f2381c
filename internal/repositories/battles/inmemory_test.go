package battles_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-combat/internal/battle"
	"github.com/KirkDiggler/rpg-combat/internal/engine"
	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
	"github.com/KirkDiggler/rpg-combat/internal/repositories/battles"
	"github.com/KirkDiggler/rpg-combat/internal/repositories/statistics"
	"github.com/KirkDiggler/rpg-combat/internal/telemetry"
	"github.com/KirkDiggler/rpg-combat/internal/testutils"
)

type InMemoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *battles.InMemoryRepository
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryTestSuite))
}

func (s *InMemoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = battles.NewInMemory()
}

func (s *InMemoryTestSuite) newBattle(id string) *battle.Battle {
	eng, err := engine.New(&engine.Config{Reductions: engine.DefaultReductionDefaults()})
	s.Require().NoError(err)
	sink, err := telemetry.NewSink(&telemetry.Config{Repository: statistics.NewInMemoryRepository()})
	s.Require().NoError(err)

	b, err := battle.New(&battle.Config{
		ID:         id,
		Combatants: []*entities.Character{testutils.CreateTestCleric()},
		Engine:     eng,
		Telemetry:  sink,
		EventBus:   &testutils.RecordingEventBus{},
	})
	s.Require().NoError(err)
	return b
}

func (s *InMemoryTestSuite) TestSaveAndGet() {
	b := s.newBattle("battle-1")
	_, err := s.repo.Save(s.ctx, &battles.SaveInput{Battle: b})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, &battles.GetInput{BattleID: "battle-1"})
	s.Require().NoError(err)
	s.Same(b, out.Battle)
}

func (s *InMemoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, &battles.GetInput{BattleID: "nope"})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryTestSuite) TestListIsSorted() {
	for _, id := range []string{"battle-b", "battle-a"} {
		_, err := s.repo.Save(s.ctx, &battles.SaveInput{Battle: s.newBattle(id)})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, &battles.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"battle-a", "battle-b"}, out.BattleIDs)
}

func (s *InMemoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, &battles.SaveInput{Battle: s.newBattle("battle-1")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, &battles.DeleteInput{BattleID: "battle-1"})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, &battles.DeleteInput{BattleID: "battle-1"})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryTestSuite) TestInputValidation() {
	_, err := s.repo.Save(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, &battles.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, &battles.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, &battles.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}
