package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bjornpagen/pairdist/internal/logging"
	"github.com/bjornpagen/pairdist/pairlist"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type freq struct {
	Value uint64
	Count uint64
}

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:           "freqtable <path to pair list>",
	Short:         "Print how often each right-column value occurs, most frequent first",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dump(args[0], cmd.OutOrStdout(), logger)
	},
}

func dump(path string, w io.Writer, log *zap.Logger) error {
	_, m, err := pairlist.ReadFrequencies(path, log)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, freqsToString(sortFreqs(m)))
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}

// sortFreqs orders by count descending, ties by value ascending.
func sortFreqs(m pairlist.FreqMap) []freq {
	freqs := make([]freq, 0, len(m))
	for v, n := range m {
		freqs = append(freqs, freq{Value: v, Count: n})
	}

	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Value < freqs[j].Value
	})

	return freqs
}

func freqsToString(freqs []freq) string {
	var b strings.Builder

	for _, f := range freqs {
		fmt.Fprintf(&b, "%d %d\n", f.Value, f.Count)
	}

	return b.String()
}

func main() {
	logger = logging.New(os.Stderr)

	err := rootCmd.Execute()
	if err != nil {
		logger.Error("freqtable failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}

	_ = logger.Sync()
}
