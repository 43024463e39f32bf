package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/sable/foundation/core/error"
	"github.com/msto63/sable/internal/journal"
)

var (
	historyLimit  int
	historyStatus string
	historySource string
	historyStats  bool
	historyShow   string
	historyPrune  time.Duration
	historyFormat string
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"journal", "log"},
	Short:   "Show recorded parse runs",
	Long: `Show the parse journal, newest runs first.

Examples:
  sable history --limit 5
  sable history --status error
  sable history --show 6f1c...    # print the recorded output of one run
  sable history --stats
  sable history --prune 720h      # delete runs older than 30 days`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to show")
	historyCmd.Flags().StringVar(&historyStatus, "status", "", "only show runs with this status (ok, error)")
	historyCmd.Flags().StringVar(&historySource, "source", "", "only show runs of this source")
	historyCmd.Flags().BoolVar(&historyStats, "stats", false, "show summary statistics")
	historyCmd.Flags().StringVar(&historyShow, "show", "", "print the output or diagnostic of the run with this ID")
	historyCmd.Flags().DurationVar(&historyPrune, "prune", 0, "delete runs older than this age")
	historyCmd.Flags().StringVarP(&historyFormat, "format", "f", "", "table, json or yaml")
}

func runHistory(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	if j == nil {
		return mdwerror.New("journal is disabled in the configuration").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("history")
	}
	defer j.Close()

	ctx := contextOrBackground(cmd.Context())
	out := cmd.OutOrStdout()

	format := historyFormat
	if format == "table" {
		format = "sexpr"
	}
	renderer, err := newRenderer(format)
	if err != nil {
		return err
	}

	switch {
	case historyPrune > 0:
		n, err := j.Prune(ctx, historyPrune)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "pruned %d runs\n", n)
		return nil

	case historyStats:
		stats, err := j.Stats(ctx)
		if err != nil {
			return err
		}
		return renderer.Stats(out, stats)

	case historyShow != "":
		run, err := j.Get(ctx, historyShow)
		if err != nil {
			return err
		}
		if run.Status == journal.StatusError {
			fmt.Fprintln(out, run.Diagnostic)
			return nil
		}
		fmt.Fprint(out, run.Output)
		return nil
	}

	if historyStatus != "" && historyStatus != string(journal.StatusOK) && historyStatus != string(journal.StatusError) {
		return mdwerror.Newf("unknown status %q, use ok or error", historyStatus).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("history")
	}

	runs, err := j.List(ctx, journal.Filter{
		Status: journal.Status(historyStatus),
		Source: historySource,
		Limit:  historyLimit,
	})
	if err != nil {
		return err
	}
	return renderer.Runs(out, runs)
}
