package spells_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-combat/internal/engine/effects"
	"github.com/KirkDiggler/rpg-combat/internal/engine/professions"
	"github.com/KirkDiggler/rpg-combat/internal/engine/spells"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
)

type staticSpell struct {
	def *spells.Definition
}

func (s staticSpell) Definition() *spells.Definition { return s.def }

func (s staticSpell) ShouldCast(_ *spells.Invocation) (bool, error) { return true, nil }

func (s staticSpell) Resolve(_ context.Context, _ *spells.Invocation) error { return nil }

func newStaticSpell(name string, effectNames ...string) staticSpell {
	return staticSpell{def: &spells.Definition{
		Name:    name,
		Element: spells.ElementIce,
		Tiers: []spells.Tier{
			{Name: name, Level: 1, Professions: []string{professions.NameMage}},
		},
		Effects: effectNames,
	}}
}

func TestBookRegister(t *testing.T) {
	book, err := spells.NewBook(effects.Default())
	require.NoError(t, err)

	require.NoError(t, book.Register(newStaticSpell("Frost", effects.NameBlind)))

	err = book.Register(newStaticSpell("Frost"))
	assert.True(t, errors.IsAlreadyExists(err))

	err = book.Register(newStaticSpell("Freeze", "frozen"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "unknown effect frozen")

	invalid := newStaticSpell("Broken")
	invalid.def.Tiers = nil
	err = book.Register(invalid)
	assert.True(t, errors.IsInvalidArgument(err))

	got, err := book.Get("Frost")
	require.NoError(t, err)
	assert.Equal(t, "Frost", got.Definition().Name)

	_, err = book.Get("Missing")
	assert.True(t, errors.IsNotFound(err))
}

func TestNewBookRequiresRegistry(t *testing.T) {
	_, err := spells.NewBook(nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestDefaultBookHoldsCatalog(t *testing.T) {
	book, err := spells.Default(effects.Default())
	require.NoError(t, err)

	var names []string
	for _, s := range book.List() {
		names = append(names, s.Definition().Name)
	}
	assert.Equal(t, []string{
		spells.NameAttack,
		spells.NameCure,
		spells.NameGlitch,
		spells.NameMagicMissile,
		spells.NameRegenerate,
		spells.NameRevive,
		spells.NameShatter,
		spells.NameVenomBolt,
	}, names)
}
