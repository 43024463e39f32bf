package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/sable/foundation/core/log"
	"github.com/msto63/sable/foundation/lang"
	"github.com/msto63/sable/internal/tui/inspector"
)

var inspectCmd = &cobra.Command{
	Use:     "inspect <tokens-file>",
	Aliases: []string{"browse"},
	Short:   "Browse the parsed forms of a token file",
	Long: `Start an interactive viewer showing one parsed form at a time.

Keys:
  n / p, Tab     next / previous form
  j / k, arrows  scroll
  PgUp / PgDn    page
  g / G          top / bottom
  t              switch between tree and s-expression
  q, Ctrl+C      quit`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// log output would corrupt the alternate screen
		engine := lang.New(lang.Options{Logger: mdwlog.Discard(), MaxTokens: appConfig.Parser.MaxTokens})
		return inspector.Run(inspector.Config{
			Path:   args[0],
			Engine: engine,
		})
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
