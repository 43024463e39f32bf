package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/sable/internal/parsesvc"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gRPC parse service",
	Long: `Run the sable.v1.ParseService gRPC service.

Requests and responses are google.protobuf.Struct documents:

  request:  {"source": "...", "tokens": [{"kind": "lparen", "line": 1, "col": 1}, ...]}
  response: {"source": "...", "tokens": 12, "forms": [...], "rendered": [...], "cached": false}

Syntax errors are returned as INVALID_ARGUMENT with the diagnostic as
message. The standard grpc.health.v1.Health service and, when enabled,
server reflection are registered as well.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (default from config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := parsesvc.DefaultConfig()
	cfg.Host = appConfig.Server.Host
	cfg.Port = appConfig.Server.Port
	cfg.EnableReflection = appConfig.Server.EnableReflection
	cfg.RequestTimeout = appConfig.Server.RequestTimeout.Duration
	cfg.CacheSize = appConfig.Server.CacheSize
	cfg.CacheTTL = appConfig.Server.CacheTTL.Duration
	cfg.MaxTokens = appConfig.Parser.MaxTokens

	if serveHost != "" {
		cfg.Host = serveHost
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	var recorder parsesvc.Recorder
	j, err := openJournal()
	if err != nil {
		return err
	}
	if j != nil {
		defer j.Close()
		recorder = j
	}

	server := parsesvc.New(cfg, recorder, appLogger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "sable parse service listening on %s:%d\n", cfg.Host, cfg.Port)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		fmt.Fprintln(cmd.OutOrStdout(), "shutting down...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	server.Stop(ctx)

	return nil
}
