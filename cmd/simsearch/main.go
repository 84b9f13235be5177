// Command simsearch ranks candidate strings against a query from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simsearch-dev/simsearch"
)

func newRootCmd() *cobra.Command {
	var (
		top    int
		plain  bool
		folded bool
	)

	cmd := &cobra.Command{
		Use:          "simsearch QUERY ITEM [ITEM...]",
		Short:        "Rank candidate strings by similarity to a query",
		Args:         cobra.MinimumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, items := args[0], args[1:]

			text := func(s string) string { return s }
			scorer := simsearch.WeightedLev(text)
			switch {
			case folded:
				scorer = simsearch.FoldedLev(text)
			case plain:
				scorer = simsearch.Lev(text)
			}

			engine := simsearch.New[string]()
			if err := engine.AddScorer(scorer); err != nil {
				return err
			}
			engine.AddBatch(items)

			k := len(items)
			if top > 0 && top < k {
				k = top
			}
			for _, r := range engine.TopK(query, k) {
				fmt.Fprintf(cmd.OutOrStdout(), "%.4f\t%s\n", r.Score, r.Value)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&top, "top", "k", 0, "only print the k best matches")
	cmd.Flags().BoolVar(&plain, "plain", false, "use plain Levenshtein similarity instead of weighted")
	cmd.Flags().BoolVar(&folded, "fold", false, "ignore case and diacritics")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
