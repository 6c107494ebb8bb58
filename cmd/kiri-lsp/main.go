// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"kiri/internal/config"
	"kiri/internal/lsp"
)

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

var log = commonlog.GetLogger("kiri.lsp.main")

// newRootCmd builds the server command. serve runs once the config is
// loaded and logging is set up.
func newRootCmd(serve func(cfg *config.Config) error) *cobra.Command {
	var (
		cfgFile string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:           "kiri-lsp",
		Short:         "Kiri language server over stdio",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			verbosity := cfg.LSP.LogVerbosity
			if verbose {
				verbosity = max(verbosity, 2)
			}
			var logPath *string
			if cfg.LSP.LogFile != "" {
				logPath = &cfg.LSP.LogFile
			}
			commonlog.Configure(verbosity, logPath)

			return serve(cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $KIRI_CONFIG or ./kiri.toml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	return cmd
}

func serve(cfg *config.Config) error {
	kiriHandler := lsp.NewKiriHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     kiriHandler.Initialize,
		Initialized:                    kiriHandler.Initialized,
		Shutdown:                       kiriHandler.Shutdown,
		SetTrace:                       kiriHandler.SetTrace,
		TextDocumentDidOpen:            kiriHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           kiriHandler.TextDocumentDidClose,
		TextDocumentDidChange:          kiriHandler.TextDocumentDidChange,
		TextDocumentCompletion:         kiriHandler.TextDocumentCompletion,
		TextDocumentDocumentSymbol:     kiriHandler.TextDocumentDocumentSymbol,
		TextDocumentSemanticTokensFull: kiriHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, cfg.LSP.Name, false)

	log.Infof("Starting Kiri LSP server %s", version)

	// Start the server over standard input/output (used by most editors for LSP)
	if err := s.RunStdio(); err != nil {
		log.Errorf("Error starting Kiri LSP server: %s", err)
		return err
	}
	return nil
}

func main() {
	if err := newRootCmd(serve).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
