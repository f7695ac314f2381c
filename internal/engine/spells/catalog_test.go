package spells_test

import (
	"github.com/KirkDiggler/rpg-combat/internal/engine/effects"
	"github.com/KirkDiggler/rpg-combat/internal/engine/professions"
	"github.com/KirkDiggler/rpg-combat/internal/engine/spells"
	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/telemetry"
	"github.com/KirkDiggler/rpg-combat/internal/testutils"
)

func (s *CasterTestSuite) TestAttackLandsAndKnocksProne() {
	// fighter str resolves to 15: magnitude rolls in [5, 15], the sixth face is 10
	s.roller = testutils.NewScriptedRoller(1, 6)
	s.rebuildCaster(true)

	result, err := s.caster.Invoke(s.ctx, s.battle, s.fighter, spells.NewAttack())
	s.Require().NoError(err)

	s.Equal(31, s.goblin.HP.Current())
	s.Equal([]string{"Bram attacked Goblin goblin-1 for 9 damage!"}, result.Messages)
	s.True(s.goblin.Effects.HasEffect(effects.NameProne))
	s.Equal(2, result.Casts)
	s.Equal(2.0, s.counter(s.fighter, "Combat.Utilize.Physical"))
	s.Equal(1.0, s.counter(s.fighter, "Combat.Give.Effect.Physical"))
}

func (s *CasterTestSuite) TestAttackDodged() {
	s.goblin.Stats[entities.StatAgi] = 80

	result, err := s.caster.Invoke(s.ctx, s.battle, s.fighter, spells.NewAttack())
	s.Require().NoError(err)

	s.Equal(40, s.goblin.HP.Current())
	s.Equal([]string{"Bram attacked Goblin goblin-1, but Goblin goblin-1 dodged!"}, result.Messages)
	s.False(s.goblin.Effects.HasEffect(effects.NameProne))
	s.Equal(0.0, s.counter(s.fighter, telemetry.PathGiveDamage))
}

func (s *CasterTestSuite) TestShatterSkipsShatteredEnemies() {
	fighter := testutils.CreateTestFighter()
	fighter.Level = 10
	s.battle = s.newBattle(fighter, s.goblin)

	shatter := spells.NewShatter()
	ok, err := s.caster.CanCast(s.battle, fighter, shatter)
	s.Require().NoError(err)
	s.True(ok)

	result, err := s.caster.Invoke(s.ctx, s.battle, fighter, shatter)
	s.Require().NoError(err)
	s.Equal([]string{effects.NameShatter}, result.Effects)

	list := s.goblin.Effects.List()
	s.Require().Len(list, 1)
	s.Equal(3, list[0].Duration)
	s.Equal(s.engine.Stat(fighter, entities.StatStr)/10, list[0].Potency)

	ok, err = s.caster.CanCast(s.battle, fighter, shatter)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *CasterTestSuite) TestReviveRaisesDeadAlly() {
	s.cleric.Level = 20
	s.fighter.HP.ToMinimum()
	revive := spells.NewRevive()

	ok, err := s.caster.CanCast(s.battle, s.cleric, revive)
	s.Require().NoError(err)
	s.True(ok)

	result, err := s.caster.Invoke(s.ctx, s.battle, s.cleric, revive)
	s.Require().NoError(err)

	s.True(s.fighter.IsAlive())
	s.Equal(20, s.fighter.HP.Current())
	s.Equal(0, result.Kills)
	s.Equal([]string{"Ada cast revive on Bram, who rises with 20 hp!"}, result.Messages)
}

func (s *CasterTestSuite) TestRegenerateNeedsHurtAllyWithoutIt() {
	s.cleric.Level = 10
	regenerate := spells.NewRegenerate()

	ok, err := s.caster.CanCast(s.battle, s.cleric, regenerate)
	s.Require().NoError(err)
	s.False(ok)

	s.fighter.HP.Set(40)
	ok, err = s.caster.CanCast(s.battle, s.cleric, regenerate)
	s.Require().NoError(err)
	s.True(ok)

	result, err := s.caster.Invoke(s.ctx, s.battle, s.cleric, regenerate)
	s.Require().NoError(err)
	s.Require().Len(result.Targets, 1)

	target, err := s.battle.Combatant(result.Targets[0])
	s.Require().NoError(err)
	s.True(target.Effects.HasEffect(effects.NameRegenerate))
	s.Equal(4, target.Effects.List()[0].Duration)
}

func (s *CasterTestSuite) TestVenomBoltPoisonsTarget() {
	mage := testutils.CreateTestFighter()
	mage.Profession = nil
	mage.Level = 5
	mage.SecondaryProfessions = []string{professions.NameMage}
	mage.Stats[entities.StatInt] = 30
	mage.MP = entities.NewResource(0, 50, 50)
	s.battle = s.newBattle(mage, s.goblin)

	result, err := s.caster.Invoke(s.ctx, s.battle, mage, spells.NewVenomBolt())
	s.Require().NoError(err)
	s.True(result.Cast)
	s.Equal("venom bolt", result.Tier)
	s.True(s.goblin.Effects.HasEffect(effects.NameVenom))
	s.Equal(3, s.goblin.Effects.List()[0].Potency)
	s.Equal(-3.0, s.goblin.Effects.Stat(entities.StatCon))
}
