// Command atlex dumps token streams, checks AT report sources, and
// inspects grammar descriptions.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// errDiagnostics makes a command exit with status 1 after diagnostics
// went to stdout; no further message is printed for it.
var errDiagnostics = errors.New("diagnostics reported")

var (
	rootCmd = &cobra.Command{
		Use:   "atlex",
		Short: "Tokenizer and checker for AT report sources",
		Long: `atlex tokenizes AT report sources against a mode-based lexical
grammar. It ships with the grammar of the AT language built in and can
load custom grammar descriptions in the same directive format.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	verbose    bool
	configFlag string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errDiagnostics) {
			os.Exit(1)
		}
		slog.Error("command failed", "error", err)
		os.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(setupLogging)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "settings file (default: "+defaultConfigHint+")")
}

func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
