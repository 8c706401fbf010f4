package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bjornpagen/pairdist/internal/logging"
	"github.com/bjornpagen/pairdist/pairlist"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const inputPath = "input.txt"

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "pairdist",
	Short: "Print the sorted distance and the similarity score of " + inputPath,
	Long: `pairdist reads two columns of unsigned integers from ` + inputPath + ` and prints:

  distance    sum of |left[i] - right[i]| after sorting both columns
  similarity  sum of left value * occurrences of that value in the right column

Malformed lines are skipped with a warning on stderr.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(inputPath, cmd.OutOrStdout(), logger)
	},
}

func run(path string, w io.Writer, log *zap.Logger) error {
	c, err := pairlist.Read(path, log)
	if err != nil {
		return err
	}

	return report(w, c)
}

// report prints both results. A failed computation suppresses only its own
// line; the first error is returned once everything printable is printed.
func report(w io.Writer, c pairlist.Columns) error {
	left, right := c.Sorted()
	dist, distErr := pairlist.Distance(left, right)
	if distErr == nil {
		fmt.Fprintln(w, "distance:", spew.Sprint(dist))
	}

	sim, simErr := pairlist.Similarity(c.Left, c.Frequencies())
	if simErr == nil {
		fmt.Fprintln(w, "similarity:", spew.Sprint(sim))
	}

	if distErr != nil {
		return fmt.Errorf("compute distance: %w", distErr)
	}
	if simErr != nil {
		return fmt.Errorf("compute similarity: %w", simErr)
	}
	return nil
}

func main() {
	logger = logging.New(os.Stderr)

	err := rootCmd.Execute()
	if err != nil {
		logger.Error("pairdist failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}

	_ = logger.Sync()
}
