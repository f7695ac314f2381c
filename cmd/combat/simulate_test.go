package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-combat/internal/battle"
	"github.com/KirkDiggler/rpg-combat/internal/config"
	"github.com/KirkDiggler/rpg-combat/internal/engine/professions"
	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/orchestrators/combat"
	combatmock "github.com/KirkDiggler/rpg-combat/internal/orchestrators/combat/mock"
)

type SimulateTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	mockService *combatmock.MockService
	app         *app
	roster      *config.Roster
}

func TestSimulateSuite(t *testing.T) {
	suite.Run(t, new(SimulateTestSuite))
}

func (s *SimulateTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockService = combatmock.NewMockService(s.ctrl)
	s.app = &app{
		professions: professions.Default(),
		service:     s.mockService,
	}

	settings = config.DefaultSettings()
	maxRounds = 3

	var err error
	s.roster, err = loadRoster("")
	s.Require().NoError(err)
}

func (s *SimulateTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SimulateTestSuite) expectStart() {
	s.mockService.EXPECT().
		StartBattle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *combat.StartBattleInput) (*combat.StartBattleOutput, error) {
			s.Len(input.Combatants, 7)
			s.True(input.Restore)
			return &combat.StartBattleOutput{BattleID: "battle_1"}, nil
		})
}

func (s *SimulateTestSuite) expectEnd() {
	s.mockService.EXPECT().
		EndBattle(gomock.Any(), &combat.EndBattleInput{BattleID: "battle_1"}).
		Return(&combat.EndBattleOutput{}, nil)
}

func (s *SimulateTestSuite) TestReportsWinnerAndAchievements() {
	s.expectStart()
	s.expectEnd()

	gomock.InOrder(
		s.mockService.EXPECT().
			RunRound(gomock.Any(), &combat.RunRoundInput{BattleID: "battle_1"}).
			Return(&combat.RunRoundOutput{Round: 1}, nil),
		s.mockService.EXPECT().
			RunRound(gomock.Any(), &combat.RunRoundInput{BattleID: "battle_1"}).
			Return(&combat.RunRoundOutput{Round: 2, Over: true, Winner: "heroes"}, nil),
	)

	s.mockService.EXPECT().
		CheckAchievements(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *combat.CheckAchievementsInput) (*combat.CheckAchievementsOutput, error) {
			if input.CharacterID != "ada" {
				return &combat.CheckAchievementsOutput{}, nil
			}
			return &combat.CheckAchievementsOutput{Unlocked: []entities.AchievementRecord{
				{Name: "Healer", Tier: 1, Description: "heal 100 hp"},
			}}, nil
		}).
		Times(4)

	s.mockService.EXPECT().
		GetBattle(gomock.Any(), &combat.GetBattleInput{BattleID: "battle_1"}).
		Return(&combat.GetBattleOutput{
			BattleID: "battle_1",
			Messages: []battle.LogEntry{{Round: 2, Message: "Ada cast cure"}},
		}, nil)

	report, err := simulateBattle(s.ctx, s.app, s.roster)
	s.Require().NoError(err)
	s.Equal("battle_1", report.BattleID)
	s.Equal(2, report.Rounds)
	s.Equal("heroes", report.Winner)
	s.Equal([]string{"Ada earned Healer (tier 1): heal 100 hp"}, report.Achievements)
	s.Equal([]string{"[round 2] Ada cast cure"}, report.Messages)
}

func (s *SimulateTestSuite) TestStopsAtMaxRoundsAsDraw() {
	s.expectStart()
	s.expectEnd()

	round := 0
	s.mockService.EXPECT().
		RunRound(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *combat.RunRoundInput) (*combat.RunRoundOutput, error) {
			round++
			return &combat.RunRoundOutput{Round: round}, nil
		}).
		Times(maxRounds)
	s.mockService.EXPECT().
		CheckAchievements(gomock.Any(), gomock.Any()).
		Return(&combat.CheckAchievementsOutput{}, nil).
		Times(4)
	s.mockService.EXPECT().
		GetBattle(gomock.Any(), gomock.Any()).
		Return(&combat.GetBattleOutput{BattleID: "battle_1"}, nil)

	report, err := simulateBattle(s.ctx, s.app, s.roster)
	s.Require().NoError(err)
	s.Equal(maxRounds, report.Rounds)
	s.Empty(report.Winner)
}

func (s *SimulateTestSuite) TestRoundErrorStillEndsBattle() {
	s.expectStart()
	s.expectEnd()

	roundErr := errors.New("battle state lost")
	s.mockService.EXPECT().
		RunRound(gomock.Any(), gomock.Any()).
		Return(nil, roundErr)

	report, err := simulateBattle(s.ctx, s.app, s.roster)
	s.Require().Error(err)
	s.ErrorIs(err, roundErr)
	s.Nil(report)
}

func (s *SimulateTestSuite) TestStartErrorSkipsEnd() {
	startErr := errors.New("no parties")
	s.mockService.EXPECT().
		StartBattle(gomock.Any(), gomock.Any()).
		Return(nil, startErr)

	_, err := simulateBattle(s.ctx, s.app, s.roster)
	s.ErrorIs(err, startErr)
}
