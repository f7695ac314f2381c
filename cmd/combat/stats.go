package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-combat/internal/engine"
	"github.com/KirkDiggler/rpg-combat/internal/engine/professions"
	"github.com/KirkDiggler/rpg-combat/internal/entities"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the resolved stat sheet of every combatant in a roster",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&rosterPath, "roster", "", "roster file (defaults to the bundled roster)")
}

func runStats(cmd *cobra.Command, args []string) error {
	roster, err := loadRoster(rosterPath)
	if err != nil {
		return err
	}

	eng, err := engine.New(settings.EngineConfig())
	if err != nil {
		return err
	}

	combatants, err := roster.Build(professions.Default(), settings.MaxLevel)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, c := range combatants {
		eng.Recalculate(c)
		sheet, err := eng.CalculateCharacterStats(cmd.Context(), &engine.CalculateCharacterStatsInput{Character: c})
		if err != nil {
			return err
		}
		printSheet(w, c, sheet)
	}
	return w.Flush()
}

func printSheet(w io.Writer, c *entities.Character, sheet *engine.CalculateCharacterStatsOutput) {
	fmt.Fprintf(w, "%s\t%s %d\t%s\n", c.FullName(), c.ProfessionName(), c.Level, c.Party)
	fmt.Fprintf(w, "  hp\t%d\tmp\t%d\n", sheet.MaxHP, sheet.MaxMP)
	for _, name := range sortedKeys(sheet.Stats) {
		fmt.Fprintf(w, "  %s\t%d\n", name, sheet.Stats[name])
	}
	fmt.Fprintf(w, "  dodge\t%.2f\tovercome dodge\t%d\n", sheet.Dodge, sheet.OvercomeDodge)
	fmt.Fprintf(w, "  hit\t%.2f\tavoid hit\t%.2f\n", sheet.Hit, sheet.AvoidHit)
	fmt.Fprintf(w, "  deflect\t%d\n", sheet.Deflect)
	fmt.Fprintf(w, "  item find range\t%.1f\tx%.2f\n", sheet.ItemFindRange, sheet.ItemFindRangeMultiplier)
	fmt.Fprintf(w, "  gold\t%.2f\txp\t%.2f\n", sheet.Gold, sheet.XP)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
