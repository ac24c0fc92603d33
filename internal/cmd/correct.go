package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"autocorrect/internal/corrector"
)

var correctCmd = &cobra.Command{
	Use:   "correct [text...]",
	Short: "Correct text from arguments or stdin",
	Long: `Correct the given text, or every line of stdin when no text is given.
Whitespace and punctuation are kept exactly as written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(svc *corrector.Service) error {
			return runCorrect(cmd.InOrStdin(), cmd.OutOrStdout(), svc.Corrector(), args)
		})
	},
}

func runCorrect(in io.Reader, out io.Writer, sc *corrector.SpellCorrector, args []string) error {
	if len(args) > 0 {
		_, err := fmt.Fprintln(out, sc.CorrectText(strings.Join(args, " ")))
		return err
	}
	r := bufio.NewReader(in)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			if _, werr := io.WriteString(out, sc.CorrectText(line)); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}
}
