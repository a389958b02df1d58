// Package cli implements the Cobra command hierarchy for the cstv tool:
// running a single election, comparing all six rule combinations side by
// side, and serving the HTTP/websocket API.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pbvote/cstv/internal/applog"
	"github.com/pbvote/cstv/internal/config"
	"github.com/pbvote/cstv/numeric"
)

// flags holds the parsed global flag values, registered in init and read
// in PersistentPreRunE.
var flags struct {
	ConfigPath string
}

// loadedConfig is the configuration decoded from the config file, or the
// defaults when no file is given. Subcommands apply their own flag
// overrides on top of it.
var loadedConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "cstv",
	Short: "Run cumulative support transfer voting elections.",
	Long: `cstv runs cumulative support transfer voting elections, the CSTV family
of participatory-budgeting rules: greedy-by-excess, greedy-by-support, and
greedy-by-support-over-cost selection, each paired with an
elimination-with-transfer or minimal-transfer fallback and a matching
postprocess pass.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if flags.ConfigPath != "" {
			loaded, err := config.LoadFromFile(flags.ConfigPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		loadedConfig = cfg

		switch cfg.NumericMode {
		case "exact":
			numeric.SetMode(numeric.ModeExact)
		case "float":
			numeric.SetMode(numeric.ModeFloat)
		default:
			return fmt.Errorf("config: invalid numeric_mode %q (allowed: exact, float)", cfg.NumericMode)
		}

		slog.Debug("configuration loaded", "combination", cfg.Combination, "numericMode", cfg.NumericMode)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "path to cstv.toml (defaults are used when omitted)")
}

// Execute runs the root command, returning a process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		applog.Root().Error(err.Error())
		return 1
	}
	return 0
}

// RootCmd returns the root cobra.Command, for testing and completion setup.
func RootCmd() *cobra.Command {
	return rootCmd
}
