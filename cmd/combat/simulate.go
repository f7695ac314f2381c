package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-combat/internal/config"
	"github.com/KirkDiggler/rpg-combat/internal/entities"
	"github.com/KirkDiggler/rpg-combat/internal/orchestrators/combat"
)

var (
	rosterPath   string
	battleCount  int
	maxRounds    int
	parallelism  int
	printBattles bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run battles between the parties of a roster",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&rosterPath, "roster", "", "roster file (defaults to the bundled roster)")
	simulateCmd.Flags().IntVar(&battleCount, "battles", 1, "number of independent battles")
	simulateCmd.Flags().IntVar(&maxRounds, "max-rounds", 100, "rounds before a battle is called a draw")
	simulateCmd.Flags().IntVar(&parallelism, "parallel", 4, "battles run at once")
	simulateCmd.Flags().BoolVar(&printBattles, "log", false, "print each battle's combat log")
}

// battleReport is what one simulated battle produced
type battleReport struct {
	BattleID     string
	Rounds       int
	Winner       string
	Messages     []string
	Achievements []string
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if battleCount < 1 {
		return fmt.Errorf("--battles must be at least 1, got %d", battleCount)
	}
	if maxRounds < 1 {
		return fmt.Errorf("--max-rounds must be at least 1, got %d", maxRounds)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	roster, err := loadRoster(rosterPath)
	if err != nil {
		return err
	}

	a, err := newApp(&settings)
	if err != nil {
		return err
	}
	defer a.Close()

	reports := make([]*battleReport, battleCount)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, parallelism))
	for i := range reports {
		g.Go(func() error {
			report, err := simulateBattle(ctx, a, roster)
			if err != nil {
				return fmt.Errorf("battle %d: %w", i+1, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printReports(cmd.OutOrStdout(), reports)
	return nil
}

func simulateBattle(ctx context.Context, a *app, roster *config.Roster) (*battleReport, error) {
	combatants, err := roster.Build(a.professions, settings.MaxLevel)
	if err != nil {
		return nil, err
	}

	started, err := a.service.StartBattle(ctx, &combat.StartBattleInput{
		Combatants: combatants,
		Restore:    true,
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		if _, err := a.service.EndBattle(context.WithoutCancel(ctx), &combat.EndBattleInput{BattleID: started.BattleID}); err != nil {
			slog.Warn("Failed to end battle", "battle_id", started.BattleID, "error", err)
		}
	}()

	report := &battleReport{BattleID: started.BattleID}
	for report.Rounds < maxRounds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		round, err := a.service.RunRound(ctx, &combat.RunRoundInput{BattleID: started.BattleID})
		if err != nil {
			return nil, err
		}
		report.Rounds = round.Round
		if round.Over {
			report.Winner = round.Winner
			break
		}
	}

	for _, c := range combatants {
		if !c.IsPlayer {
			continue
		}
		unlocked, err := a.service.CheckAchievements(ctx, &combat.CheckAchievementsInput{
			BattleID:    started.BattleID,
			CharacterID: c.ID,
		})
		if err != nil {
			return nil, err
		}
		for _, record := range unlocked.Unlocked {
			report.Achievements = append(report.Achievements, describeAchievement(c, record))
		}
	}

	summary, err := a.service.GetBattle(ctx, &combat.GetBattleInput{BattleID: started.BattleID})
	if err != nil {
		return nil, err
	}
	for _, entry := range summary.Messages {
		report.Messages = append(report.Messages, fmt.Sprintf("[round %d] %s", entry.Round, entry.Message))
	}

	return report, nil
}

func describeAchievement(c *entities.Character, record entities.AchievementRecord) string {
	return fmt.Sprintf("%s earned %s (tier %d): %s", c.FullName(), record.Name, record.Tier, record.Description)
}

func printReports(w io.Writer, reports []*battleReport) {
	wins := make(map[string]int)
	for i, r := range reports {
		winner := r.Winner
		if winner == "" {
			winner = "draw"
		}
		wins[winner]++

		fmt.Fprintf(w, "battle %d (%s): %s after %d rounds\n", i+1, r.BattleID, winner, r.Rounds)
		if printBattles {
			for _, m := range r.Messages {
				fmt.Fprintf(w, "  %s\n", m)
			}
		}
		for _, a := range r.Achievements {
			fmt.Fprintf(w, "  %s\n", a)
		}
	}

	if len(reports) > 1 {
		fmt.Fprintln(w, "results:")
		for _, name := range sortedKeys(wins) {
			fmt.Fprintf(w, "  %s: %d\n", name, wins[name])
		}
	}
}
