package targeting_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-combat/internal/engine/professions"
	"github.com/KirkDiggler/rpg-combat/internal/engine/targeting"
	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
	"github.com/KirkDiggler/rpg-combat/internal/testutils"
	"github.com/KirkDiggler/rpg-combat/internal/testutils/builders"
)

type staticRoster []*entities.Character

func (r staticRoster) Combatants() []*entities.Character { return r }

type TargetingTestSuite struct {
	suite.Suite
	caster   *entities.Character
	ally     *entities.Character
	deadAlly *entities.Character
	enemyA   *entities.Character
	enemyB   *entities.Character
	roller   *testutils.ScriptedRoller
	selector *targeting.Selector
}

func TestTargetingSuite(t *testing.T) {
	suite.Run(t, new(TargetingTestSuite))
}

func (s *TargetingTestSuite) SetupTest() {
	s.caster = builders.NewCharacterBuilder().WithID("caster").InParty("heroes").Build()
	s.ally = builders.NewCharacterBuilder().WithID("ally").InParty("heroes").WithHP(4, 10).Build()
	s.deadAlly = builders.NewCharacterBuilder().WithID("dead").InParty("heroes").WithHP(0, 10).Build()
	s.enemyA = builders.NewCharacterBuilder().WithID("enemy-a").InParty("monsters").
		WithProfession(professions.Monster()).WithMP(0, 0).Build()
	s.enemyB = builders.NewCharacterBuilder().WithID("enemy-b").InParty("monsters").
		WithProfession(professions.Mage()).WithMP(5, 10).Build()

	s.roller = testutils.NewScriptedRoller(1)
	var err error
	s.selector, err = targeting.NewSelector(&targeting.Config{
		Roster: staticRoster{s.caster, s.ally, s.deadAlly, s.enemyA, s.enemyB},
		Roller: s.roller,
	})
	s.Require().NoError(err)
}

func (s *TargetingTestSuite) check(p targeting.Predicate, param string) bool {
	ok, err := s.selector.Check(s.caster, p, param)
	s.Require().NoError(err)
	return ok
}

func (s *TargetingTestSuite) TestNewSelectorValidates() {
	_, err := targeting.NewSelector(&targeting.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Roster")
	s.Contains(err.Error(), "Roller")
}

func (s *TargetingTestSuite) TestPredicates() {
	s.True(s.check(targeting.Yes, ""))
	s.True(s.check(targeting.EnemyHasMP, ""))
	s.True(s.check(targeting.MoreThanOneEnemy, ""))
	s.True(s.check(targeting.EnemyNotProfession, professions.NameMonster))
	s.False(s.check(targeting.AnyEnemyDead, ""))
	s.True(s.check(targeting.AnyAllyDead, ""))
	s.True(s.check(targeting.AllyBelowMaxHealth, ""))
	s.True(s.check(targeting.AllyBelow50PercentHealth, ""))
	s.True(s.check(targeting.AllyWithoutEffect, "regenerate"))
	s.True(s.check(targeting.EnemyWithoutEffect, "poison"))
}

func (s *TargetingTestSuite) TestPredicatesFlipWithState() {
	s.enemyB.HP.ToMinimum()
	s.False(s.check(targeting.MoreThanOneEnemy, ""))
	s.False(s.check(targeting.EnemyHasMP, ""))
	s.True(s.check(targeting.AnyEnemyDead, ""))
	s.False(s.check(targeting.EnemyNotProfession, professions.NameMonster))

	s.ally.HP.ToMaximum()
	s.False(s.check(targeting.AllyBelowMaxHealth, ""))
	s.False(s.check(targeting.AllyBelow50PercentHealth, ""))

	s.ally.Effects.Add(&entities.StatusEffect{Name: "regenerate"})
	s.caster.Effects.Add(&entities.StatusEffect{Name: "regenerate"})
	s.False(s.check(targeting.AllyWithoutEffect, "regenerate"))
}

func (s *TargetingTestSuite) TestUnknownNames() {
	_, err := s.selector.Check(s.caster, targeting.Predicate("allyIsSad"), "")
	s.True(errors.IsInvalidArgument(err))

	_, err = s.selector.Select(s.caster, targeting.Name("everyone"), "")
	s.True(errors.IsInvalidArgument(err))
}

func (s *TargetingTestSuite) TestSetSelectors() {
	testCases := []struct {
		name     targeting.Name
		param    string
		expected []string
	}{
		{targeting.Self, "", []string{"caster"}},
		{targeting.AllAllies, "", []string{"caster", "ally"}},
		{targeting.AllEnemies, "", []string{"enemy-a", "enemy-b"}},
		{targeting.AllAlliesBelowMaxHealth, "", []string{"ally"}},
		{targeting.RandomDeadAlly, "", []string{"dead"}},
		{targeting.RandomEnemyWithMP, "", []string{"enemy-b"}},
		{targeting.RandomEnemyNotProfession, professions.NameMage, []string{"enemy-a"}},
		{targeting.RandomAllyBelow50PercentHealth, "", []string{"ally"}},
	}

	for _, tc := range testCases {
		s.Run(string(tc.name), func() {
			targets, err := s.selector.Select(s.caster, tc.name, tc.param)
			s.Require().NoError(err)
			ids := make([]string, len(targets))
			for i, t := range targets {
				ids[i] = t.ID
			}
			s.Equal(tc.expected, ids)
		})
	}
}

func (s *TargetingTestSuite) TestRandomPickUsesRoller() {
	s.roller = testutils.NewScriptedRoller(1, 2)
	selector, err := targeting.NewSelector(&targeting.Config{
		Roster: staticRoster{s.caster, s.enemyA, s.enemyB},
		Roller: s.roller,
	})
	s.Require().NoError(err)

	targets, err := selector.Select(s.caster, targeting.RandomEnemy, "")
	s.Require().NoError(err)
	s.Require().Len(targets, 1)
	s.Equal("enemy-b", targets[0].ID)
	s.Equal([]int{2}, s.roller.Sizes)
}

func (s *TargetingTestSuite) TestEmptySetIsNotAnError() {
	s.ally.HP.ToMaximum()

	targets, err := s.selector.Select(s.caster, targeting.RandomAllyBelowMaxHealth, "")
	s.Require().NoError(err)
	s.Empty(targets)
}

func (s *TargetingTestSuite) TestSelectDoesNotMutate() {
	before := s.ally.HP.Current()
	for i := 0; i < 3; i++ {
		_, err := s.selector.Select(s.caster, targeting.AllAllies, "")
		s.Require().NoError(err)
		_, err = s.selector.Check(s.caster, targeting.AllyBelowMaxHealth, "")
		s.Require().NoError(err)
	}
	s.Equal(before, s.ally.HP.Current())
}
