package effects_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-combat/internal/engine/effects"
	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
	"github.com/KirkDiggler/rpg-combat/internal/testutils/builders"
)

type EffectsTestSuite struct {
	suite.Suite
	registry *effects.Registry
}

func TestEffectsSuite(t *testing.T) {
	suite.Run(t, new(EffectsTestSuite))
}

func (s *EffectsTestSuite) SetupTest() {
	s.registry = effects.Default()
}

func (s *EffectsTestSuite) build(name string, potency, duration int) *entities.StatusEffect {
	e, err := s.registry.Build(&effects.BuildInput{
		Name:     name,
		ID:       "effect-1",
		Potency:  potency,
		Duration: duration,
	})
	s.Require().NoError(err)
	return e
}

func (s *EffectsTestSuite) TestUnknownEffect() {
	_, err := s.registry.Build(&effects.BuildInput{Name: "frozen"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.False(s.registry.Has("frozen"))
}

func (s *EffectsTestSuite) TestRegisterRejectsDuplicatesAndBlanks() {
	err := s.registry.Register(effects.Descriptor{
		Name: effects.NameProne,
		New:  func(int) *entities.StatusEffect { return &entities.StatusEffect{} },
	})
	s.True(errors.IsAlreadyExists(err))

	err = s.registry.Register(effects.Descriptor{Name: "hex"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *EffectsTestSuite) TestInstantEffectLastsOneTick() {
	e := s.build(effects.NameProne, 1, 0)
	s.Equal(1, e.Duration)
	s.True(e.Stun)

	e, err := s.registry.Build(&effects.BuildInput{Name: effects.NameProne, Potency: 1, Fallback: 4})
	s.Require().NoError(err)
	s.Equal(1, e.Duration, "the spell's own duration does not stretch an instant effect")
}

func (s *EffectsTestSuite) TestExplicitDurationBeatsInstant() {
	s.Equal(3, s.build(effects.NameProne, 1, 3).Duration)
}

func (s *EffectsTestSuite) TestDurationPrecedence() {
	build := func(duration, fallback int) int {
		e, err := s.registry.Build(&effects.BuildInput{
			Name:     effects.NamePoison,
			Potency:  2,
			Duration: duration,
			Fallback: fallback,
		})
		s.Require().NoError(err)
		return e.Duration
	}

	s.Equal(5, build(5, 9))
	s.Equal(9, build(0, 9))
	s.Equal(3, build(0, 0))
}

func (s *EffectsTestSuite) TestDurationFallsBackToDefault() {
	s.Equal(3, s.build(effects.NamePoison, 2, 0).Duration)
	s.Equal(7, s.build(effects.NamePoison, 2, 7).Duration)
}

func (s *EffectsTestSuite) TestTickRoundTrip() {
	for _, duration := range []int{1, 2, 5} {
		target := builders.NewCharacterBuilder().WithHP(100, 100).Build()
		target.Effects.Add(s.build(effects.NameBlind, 1, duration))

		for i := 0; i < duration-1; i++ {
			target.Effects.Tick(target)
		}
		s.True(target.Effects.HasEffect(effects.NameBlind), "duration %d after %d ticks", duration, duration-1)

		expired := target.Effects.Tick(target)
		s.False(target.Effects.HasEffect(effects.NameBlind), "duration %d after %d ticks", duration, duration)
		s.Len(expired, 1)
	}
}

func (s *EffectsTestSuite) TestPoisonClampsAtZero() {
	target := builders.NewCharacterBuilder().WithHP(5, 10).Build()
	target.Effects.Add(s.build(effects.NamePoison, 4, 3))

	target.Effects.Tick(target)
	s.Equal(1, target.HP.Current())
	target.Effects.Tick(target)
	s.Equal(0, target.HP.Current())
}

func (s *EffectsTestSuite) TestVampireDrainsToCaster() {
	caster := builders.NewCharacterBuilder().WithID("caster").WithHP(5, 20).Build()
	target := builders.NewCharacterBuilder().WithID("target").WithHP(3, 20).Build()

	e, err := s.registry.Build(&effects.BuildInput{
		Name:     effects.NameVampire,
		Potency:  5,
		Duration: 2,
		Origin:   entities.EffectOrigin{CasterID: caster.ID, Ref: caster},
	})
	s.Require().NoError(err)
	target.Effects.Add(e)

	target.Effects.Tick(target)
	s.Equal(0, target.HP.Current())
	s.Equal(8, caster.HP.Current(), "caster gains only what was taken")
}

func (s *EffectsTestSuite) TestStatDeltas() {
	target := builders.NewCharacterBuilder().Build()
	target.Effects.Add(s.build(effects.NameShatter, 3, 2))

	s.Equal(-3.0, target.Effects.Stat(entities.StatCon))
	s.Equal(-3.0, target.Effects.Stat(entities.StatDamageReduction))
}

func (s *EffectsTestSuite) TestRegenerateSkipsDead() {
	target := builders.NewCharacterBuilder().WithHP(0, 20).Build()
	target.Effects.Add(s.build(effects.NameRegenerate, 4, 2))

	target.Effects.Tick(target)
	s.Equal(0, target.HP.Current())
}
