package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/sable/foundation/lang"
	"github.com/msto63/sable/foundation/lang/token"
	"github.com/msto63/sable/internal/journal"
	"github.com/msto63/sable/internal/parsesvc"
	"github.com/msto63/sable/internal/render"
)

var (
	parseFormat    string
	parseNoJournal bool
	parseRemote    string
	parseTimeout   time.Duration
)

var parseCmd = &cobra.Command{
	Use:   "parse <tokens-file>",
	Short: "Parse a token file and print its forms",
	Long: `Parse a token file and print the resulting forms.

Output formats:
  sexpr  one s-expression per form (default)
  tree   indented node tree
  json   tagged node documents
  yaml   tagged node documents

On a syntax error the diagnostic "<line>:<col> | <message>" is printed
and the exit code is 1. With --remote the tokens are sent to a running
parse service instead of being parsed locally.

Examples:
  sable parse examples/identity.yaml
  sable parse --format tree examples/identity.yaml
  sable parse --remote 127.0.0.1:9470 examples/identity.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "output format: sexpr, tree, json, yaml (default from config)")
	parseCmd.Flags().BoolVar(&parseNoJournal, "no-journal", false, "do not record the run in the journal")
	parseCmd.Flags().StringVar(&parseRemote, "remote", "", "address of a parse service to use instead of the local parser")
	parseCmd.Flags().DurationVar(&parseTimeout, "timeout", 10*time.Second, "timeout for remote parsing")
}

func runParse(cmd *cobra.Command, args []string) error {
	renderer, err := newRenderer(parseFormat)
	if err != nil {
		return err
	}

	stream, err := token.LoadFile(args[0])
	if err != nil {
		return err
	}

	var resp *parsesvc.Response
	if parseRemote != "" {
		resp, err = parseRemotely(cmd.Context(), stream)
	} else {
		resp, err = parseLocally(cmd.Context(), stream)
	}
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.Diagnostic(stream.Source, err))
		return errReported
	}

	return renderer.Forms(cmd.OutOrStdout(), resp.Source, resp.Forms)
}

func parseLocally(ctx context.Context, stream *token.Stream) (*parsesvc.Response, error) {
	var recorder parsesvc.Recorder
	if !parseNoJournal {
		j, err := openJournal()
		if err != nil {
			appLogger.WarnWithErr("journal unavailable, run not recorded", err)
		} else if j != nil {
			defer j.Close()
			recorder = j
		}
	}

	svc := parsesvc.NewService(parsesvc.Config{
		MaxTokens: appConfig.Parser.MaxTokens,
		CacheSize: 1,
	}, recorder, appLogger)
	defer svc.Close()

	return svc.Parse(contextOrBackground(ctx), parsesvc.Request{Source: stream.Source, Tokens: stream.Tokens})
}

func parseRemotely(ctx context.Context, stream *token.Stream) (*parsesvc.Response, error) {
	client, err := parsesvc.Dial(parseRemote, appLogger)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(contextOrBackground(ctx), parseTimeout)
	defer cancel()

	return client.Parse(ctx, stream.Source, stream.Tokens)
}

// newRenderer resolves the output format from the flag or the config
func newRenderer(flagFormat string) (*render.Renderer, error) {
	name := flagFormat
	if name == "" {
		name = appConfig.Output.Format
	}
	format, err := render.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return render.New(format, appConfig.Output.Color), nil
}

// openJournal opens the configured journal; it returns nil when disabled
func openJournal() (*journal.Journal, error) {
	if !appConfig.Journal.Enabled {
		return nil, nil
	}
	return journal.Open(journal.Config{Path: appConfig.Journal.Path})
}

func newEngine() *lang.Engine {
	return lang.New(lang.Options{Logger: appLogger, MaxTokens: appConfig.Parser.MaxTokens})
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
