package statistics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-combat/internal/errors"
	"github.com/KirkDiggler/rpg-combat/internal/repositories/statistics"
	"github.com/KirkDiggler/rpg-combat/internal/testutils"
)

const testCharID = "char_test123"

// RepositoryContractSuite runs the same cases against every implementation
type RepositoryContractSuite struct {
	suite.Suite
	newRepo func() (statistics.Repository, func())
	repo    statistics.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RepositoryContractSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo, s.cleanup = s.newRepo()
}

func (s *RepositoryContractSuite) TearDownTest() {
	s.cleanup()
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func() (statistics.Repository, func()) {
			return statistics.NewInMemoryRepository(), func() {}
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func() (statistics.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := statistics.NewRedisRepository(&statistics.Config{Client: client})
			if err != nil {
				t.Fatal(err)
			}
			return repo, cleanup
		},
	})
}

func (s *RepositoryContractSuite) TestIncrementAccumulates() {
	out, err := s.repo.Increment(s.ctx, statistics.IncrementInput{
		CharacterID: testCharID,
		Amounts:     map[string]float64{"Combat.Give.Damage": 12, "Combat.Utilize.Heal": 1},
	})
	s.Require().NoError(err)
	s.InDelta(12.0, out.Values["Combat.Give.Damage"], 0.0001)

	out, err = s.repo.Increment(s.ctx, statistics.IncrementInput{
		CharacterID: testCharID,
		Amounts:     map[string]float64{"Combat.Give.Damage": -4.5},
	})
	s.Require().NoError(err)
	s.InDelta(7.5, out.Values["Combat.Give.Damage"], 0.0001)

	got, err := s.repo.Get(s.ctx, statistics.GetInput{CharacterID: testCharID, Path: "Combat.Utilize.Heal"})
	s.Require().NoError(err)
	s.InDelta(1.0, got.Value, 0.0001)
}

func (s *RepositoryContractSuite) TestMissingCounterReadsZero() {
	got, err := s.repo.Get(s.ctx, statistics.GetInput{CharacterID: testCharID, Path: "Combat.Kills.Monster"})
	s.Require().NoError(err)
	s.Equal(0.0, got.Value)
}

func (s *RepositoryContractSuite) TestListFiltersOnSegmentBoundary() {
	_, err := s.repo.Increment(s.ctx, statistics.IncrementInput{
		CharacterID: testCharID,
		Amounts: map[string]float64{
			"Character.Treasure.Chest":  1,
			"Character.Treasure.Urn":    2,
			"Character.TreasureHunts":   5,
			"Combat.Receive.Damage":     3,
			"Character.Treasure.Urn.Ex": 1,
		},
	})
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, statistics.ListInput{CharacterID: testCharID, Prefix: "Character.Treasure"})
	s.Require().NoError(err)
	s.Equal(map[string]float64{
		"Character.Treasure.Chest":  1,
		"Character.Treasure.Urn":    2,
		"Character.Treasure.Urn.Ex": 1,
	}, out.Counters)

	all, err := s.repo.List(s.ctx, statistics.ListInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Len(all.Counters, 5)
}

func (s *RepositoryContractSuite) TestDelete() {
	_, err := s.repo.Increment(s.ctx, statistics.IncrementInput{
		CharacterID: testCharID,
		Amounts:     map[string]float64{"a": 1, "b": 1},
	})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, statistics.DeleteInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Equal(2, out.CountersDeleted)

	all, err := s.repo.List(s.ctx, statistics.ListInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Empty(all.Counters)
}

func (s *RepositoryContractSuite) TestValidation() {
	_, err := s.repo.Increment(s.ctx, statistics.IncrementInput{Amounts: map[string]float64{"a": 1}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Increment(s.ctx, statistics.IncrementInput{CharacterID: testCharID})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Increment(s.ctx, statistics.IncrementInput{
		CharacterID: testCharID,
		Amounts:     map[string]float64{"": 1},
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, statistics.GetInput{CharacterID: testCharID})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, statistics.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTTL(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedis(t)
	defer cleanup()

	repo, err := statistics.NewRedisRepository(&statistics.Config{Client: client, TTL: time.Hour})
	if err != nil {
		t.Fatal(err)
	}

	_, err = repo.Increment(context.Background(), statistics.IncrementInput{
		CharacterID: testCharID,
		Amounts:     map[string]float64{"Combat.Give.Damage": 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	if ttl := mr.TTL("statistics:" + testCharID); ttl != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", ttl)
	}
}

func TestNewRedisRepositoryValidation(t *testing.T) {
	_, err := statistics.NewRedisRepository(nil)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}

	_, err = statistics.NewRedisRepository(&statistics.Config{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestHasPrefix(t *testing.T) {
	cases := map[string]bool{
		"Combat.Give.Damage":   true,
		"Combat.Give":          true,
		"Combat.GiveUp":        false,
		"Combat":               false,
		"Character.Give.Thing": false,
	}
	for path, want := range cases {
		if got := statistics.HasPrefix(path, "Combat.Give"); got != want {
			t.Errorf("HasPrefix(%q) = %v, want %v", path, got, want)
		}
	}
}
