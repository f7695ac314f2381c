package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-combat/internal/engine/effects"
	"github.com/KirkDiggler/rpg-combat/internal/engine/spells"
)

var spellsCmd = &cobra.Command{
	Use:   "spells",
	Short: "List the spell book with every tier",
	RunE:  runSpells,
}

func runSpells(cmd *cobra.Command, args []string) error {
	book, err := spells.Default(effects.Default())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SPELL\tELEMENT\tTIER\tLEVEL\tCOST\tPOWER\tWEIGHT\tPROFESSIONS")
	for _, spell := range book.List() {
		def := spell.Definition()
		for _, tier := range def.Tiers {
			cost := fmt.Sprintf("%d %s", tier.Cost, def.PoolKind())
			professions := strings.Join(tier.Professions, ",")
			if len(tier.Collectibles) > 0 {
				professions += " (needs " + strings.Join(tier.Collectibles, ", ") + ")"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%.1f\t%d\t%s\n",
				def.Name, def.Element, tier.Name, tier.Level, cost, tier.SpellPower, tier.Weight, professions)
		}
	}
	return w.Flush()
}
