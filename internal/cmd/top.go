package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"autocorrect/internal/corrector"
	"autocorrect/internal/vocab"
)

var topN int

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the most frequent dictionary words",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(svc *corrector.Service) error {
			return runTop(cmd.OutOrStdout(), svc.Corrector().Store(), topN)
		})
	},
}

func init() {
	topCmd.Flags().IntVarP(&topN, "count", "n", 20, "number of words")
}

func runTop(out io.Writer, store *vocab.Store, n int) error {
	if n <= 0 {
		return fmt.Errorf("n must be > 0, got %d", n)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tWORD\tFREQUENCY")
	for i, e := range store.Top(n) {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", i+1, e.Word, e.Frequency)
	}
	return tw.Flush()
}
