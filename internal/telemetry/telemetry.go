// Package telemetry records per-character combat counters. Paths are
// dot-delimited, for example Combat.Give.Damage or Character.Treasure.Urn.
package telemetry

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-combat/internal/errors"
	"github.com/KirkDiggler/rpg-combat/internal/repositories/statistics"
)

// Counter paths written by the cast protocol
const (
	PathUtilize       = "Combat.Utilize"
	PathGiveDamage    = "Combat.Give.Damage"
	PathReceiveDamage = "Combat.Receive.Damage"
	PathGiveEffect    = "Combat.Give.Effect"
	PathReceiveEffect = "Combat.Receive.Effect"
	PathKills         = "Combat.Kills"
	PathDeaths        = "Combat.Deaths"
	PathTreasure      = "Character.Treasure"
)

// Controller tags for kill and death counters
const (
	ControllerPlayer  = "Player"
	ControllerMonster = "Monster"
)

// Path joins segments with dots
func Path(segments ...string) string {
	return strings.Join(segments, ".")
}

// Counters is one character's counter view
type Counters interface {
	IncrementCounter(ctx context.Context, path string, amount float64) error
	Increment(ctx context.Context, path string) error
	BatchIncrement(ctx context.Context, paths []string) error
	GetCounterValue(ctx context.Context, path string) (float64, error)
	CountChildCounters(ctx context.Context, prefix string) (int, error)
}

// Config configures a Sink
type Config struct {
	Repository statistics.Repository
}

// Validate checks required dependencies
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Repository == nil {
		vb.RequiredField("Repository")
	}
	return vb.Build()
}

// Sink hands out counter views backed by the statistics repository
type Sink struct {
	repo statistics.Repository
}

// NewSink creates a sink
func NewSink(cfg *Config) (*Sink, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Sink{repo: cfg.Repository}, nil
}

// Counters returns the counter view for one character
func (s *Sink) Counters(characterID string) Counters {
	return &counters{repo: s.repo, characterID: characterID}
}

// Reset drops every counter of a character
func (s *Sink) Reset(ctx context.Context, characterID string) error {
	_, err := s.repo.Delete(ctx, statistics.DeleteInput{CharacterID: characterID})
	if err != nil {
		return errors.Wrapf(err, "failed to reset counters for %s", characterID)
	}
	return nil
}

type counters struct {
	repo        statistics.Repository
	characterID string
}

func (c *counters) IncrementCounter(ctx context.Context, path string, amount float64) error {
	_, err := c.repo.Increment(ctx, statistics.IncrementInput{
		CharacterID: c.characterID,
		Amounts:     map[string]float64{path: amount},
	})
	if err != nil {
		return errors.Wrapf(err, "failed to increment %s", path)
	}
	return nil
}

func (c *counters) Increment(ctx context.Context, path string) error {
	return c.IncrementCounter(ctx, path, 1)
}

// BatchIncrement adds 1 to each path; repeated paths add once per mention
func (c *counters) BatchIncrement(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	amounts := make(map[string]float64, len(paths))
	for _, p := range paths {
		amounts[p]++
	}

	_, err := c.repo.Increment(ctx, statistics.IncrementInput{
		CharacterID: c.characterID,
		Amounts:     amounts,
	})
	if err != nil {
		return errors.Wrap(err, "failed to batch increment counters")
	}
	return nil
}

func (c *counters) GetCounterValue(ctx context.Context, path string) (float64, error) {
	out, err := c.repo.Get(ctx, statistics.GetInput{CharacterID: c.characterID, Path: path})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read %s", path)
	}
	return out.Value, nil
}

// CountChildCounters counts the distinct segments directly under prefix
func (c *counters) CountChildCounters(ctx context.Context, prefix string) (int, error) {
	out, err := c.repo.List(ctx, statistics.ListInput{CharacterID: c.characterID, Prefix: prefix})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to list %s", prefix)
	}

	children := make(map[string]struct{})
	for path := range out.Counters {
		rest := strings.TrimPrefix(path, prefix+".")
		if rest == path {
			continue
		}
		child, _, _ := strings.Cut(rest, ".")
		children[child] = struct{}{}
	}
	return len(children), nil
}

// RecordTreasure counts a treasure find under Character.Treasure.<name>
func RecordTreasure(ctx context.Context, c Counters, name string) error {
	if name == "" {
		return errors.InvalidArgument("treasure name is required")
	}
	return c.Increment(ctx, Path(PathTreasure, name))
}

// ControllerOf tags a character for kill and death counters
func ControllerOf(isPlayer bool) string {
	if isPlayer {
		return ControllerPlayer
	}
	return ControllerMonster
}
