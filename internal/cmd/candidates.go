package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"autocorrect/internal/corrector"
)

var maxDistance int

var candidatesCmd = &cobra.Command{
	Use:   "candidates <word>",
	Short: "List ranked corrections for a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(svc *corrector.Service) error {
			sc := svc.Corrector()
			maxDist := sc.Options().MaxEditDistance
			if cmd.Flags().Changed("max-distance") {
				maxDist = maxDistance
			}
			return runCandidates(cmd.OutOrStdout(), sc, args[0], maxDist)
		})
	},
}

func init() {
	candidatesCmd.Flags().IntVarP(&maxDistance, "max-distance", "m", 2, "maximum edit distance (default: corrector.max_edit_distance)")
}

func runCandidates(out io.Writer, sc *corrector.SpellCorrector, word string, maxDist int) error {
	if maxDist < 0 {
		return fmt.Errorf("max-distance must be >= 0, got %d", maxDist)
	}
	cands := sc.Candidates(strings.ToLower(word), maxDist)
	if len(cands) == 0 {
		fmt.Fprintf(out, "no candidates for %q within %d edits\n", word, maxDist)
		return nil
	}
	for i, c := range cands {
		fmt.Fprintf(out, "%d. %s\tdistance=%d\tfrequency=%d\n", i+1, c.Term, c.Distance, c.Frequency)
	}
	return nil
}
