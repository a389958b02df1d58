package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pbvote/cstv/cstv"
	"github.com/pbvote/cstv/internal/electionio"
	"github.com/pbvote/cstv/tiebreak"
)

var compareFlags struct {
	File string
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run every rule combination against the same election and show the funded sets side by side",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareFlags.File, "file", "f", "", "path to the election JSON file (required)")
	_ = compareCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(compareCmd)
}

var allCombinations = []cstv.Combination{cstv.EWT, cstv.EWTC, cstv.EWTS, cstv.MT, cstv.MTC, cstv.MTS}

func runCompare(cmd *cobra.Command, args []string) error {
	spec, err := electionio.LoadFile(compareFlags.File)
	if err != nil {
		return err
	}

	instance, profile, err := spec.Build()
	if err != nil {
		return err
	}

	results := make([]cstv.BudgetAllocation, len(allCombinations))

	var g errgroup.Group
	for i, combination := range allCombinations {
		i, combination := i, combination
		g.Go(func() error {
			result, err := cstv.Cstv(instance, profile,
				cstv.WithCombination(combination),
				cstv.WithTieBreaker(tiebreak.Default),
			)
			if err != nil {
				return fmt.Errorf("%s: %w", combination, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, combination := range allCombinations {
		names := make([]string, len(results[i]))
		for j, id := range results[i] {
			names[j] = instance.ByID(id).Name
		}
		sort.Strings(names)
		fmt.Fprintf(cmd.OutOrStdout(), "%-5s %v\n", combination, names)
	}
	return nil
}
