package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/sable/pkg/core/version"
)

var (
	GitCommit = "development"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "sable v%s\n", version.Toolchain)
		fmt.Fprintf(out, "  Parser:        %s\n", version.Parser)
		fmt.Fprintf(out, "  Parse service: %s\n", version.ParseService)
		fmt.Fprintf(out, "  Journal:       %s (schema %d)\n", version.Journal, version.JournalSchema)
		fmt.Fprintf(out, "  Git Commit:    %s\n", GitCommit)
		fmt.Fprintf(out, "  Build Date:    %s\n", BuildDate)
		fmt.Fprintf(out, "  Go Version:    %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:       %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
