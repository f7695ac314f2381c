// Package main is the entry point for the combat simulator
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-combat/internal/config"
)

var (
	settingsPath string
	logLevel     string
	settings     config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "rpg-combat",
	Short: "Idle RPG combat simulator",
	Long:  `rpg-combat resolves character stats and runs spell-driven battles between parties.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		settings, err = config.Load(settingsPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			settings.LogLevel = logLevel
			if err := settings.Validate(); err != nil {
				return err
			}
		}
		slog.SetDefault(newLogger(cmd.ErrOrStderr(), &settings))
		return nil
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "config", "combat.yaml", "settings file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(spellsCmd)
}

func newLogger(w io.Writer, s *config.Settings) *slog.Logger {
	opts := &slog.HandlerOptions{Level: s.Level()}
	if s.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
