package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pbvote/cstv/cstv"
	"github.com/pbvote/cstv/internal/electionio"
	"github.com/pbvote/cstv/tiebreak"
)

var runFlags struct {
	File        string
	Combination string
	Verbose     bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single election from a JSON election file",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runFlags.File, "file", "f", "", "path to the election JSON file (required)")
	runCmd.Flags().StringVarP(&runFlags.Combination, "combination", "c", "", "override the combination named in the election file or config")
	runCmd.Flags().BoolVarP(&runFlags.Verbose, "verbose", "v", false, "print the driver's trace lines as the election runs")
	_ = runCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	spec, err := electionio.LoadFile(runFlags.File)
	if err != nil {
		return err
	}
	if runFlags.Combination != "" {
		spec.Combination = runFlags.Combination
	} else if spec.Combination == "" && loadedConfig != nil {
		spec.Combination = loadedConfig.Combination
	}

	combination, err := cstv.ParseCombination(spec.Combination)
	if err != nil {
		return err
	}

	instance, profile, err := spec.Build()
	if err != nil {
		return err
	}

	opts := []cstv.Option{
		cstv.WithCombination(combination),
		cstv.WithTieBreaker(tiebreak.Default),
	}
	if runFlags.Verbose {
		opts = append(opts, cstv.WithTrace(func(line string) {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}))
	}

	result, err := cstv.Cstv(instance, profile, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "funded under %s:\n", combination)
	for _, id := range result {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", instance.ByID(id).Name)
	}
	return nil
}
