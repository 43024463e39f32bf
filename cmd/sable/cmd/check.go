package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <tokens-file>...",
	Short: "Validate token files without printing forms",
	Long: `Parse each token file and report "ok" with a short summary or the
diagnostic of the first syntax error. All files are checked; the exit
code is 1 if any of them failed. Checks are not recorded in the journal.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	renderer, err := newRenderer("")
	if err != nil {
		return err
	}
	engine := newEngine()

	failed := 0
	for _, path := range args {
		result, err := engine.ParseFile(path)
		if err != nil {
			failed++
			fmt.Fprintln(cmd.ErrOrStderr(), renderer.Diagnostic(path, err))
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderer.Summary(result))
	}

	if failed > 0 {
		if len(args) > 1 {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d files failed\n", failed, len(args))
		}
		return errReported
	}
	return nil
}
